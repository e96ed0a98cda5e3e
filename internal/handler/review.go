package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/talentperformer/contract-review/internal/team"
)

// allowedExtensions Web 前端接受的上传扩展名
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

type ReviewHandler struct {
	team *team.Team
}

// NewReviewHandler 创建评审处理器
func NewReviewHandler(t *team.Team) *ReviewHandler {
	return &ReviewHandler{team: t}
}

// Review 接收合同文件与可选目标，返回汇总后的 Markdown 报告
// 未上传文件与分析失败是两种不同的用户可见状态
func (h *ReviewHandler) Review(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please upload a contract document"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type, expected pdf, docx or txt"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	goal := c.PostForm("goal")

	markdown, err := h.team.RunContractTeam(c.Request.Context(), fileBytes, fileHeader.Filename, goal)
	if err != nil {
		klog.Errorf("合同评审失败: filename=%s, err=%v", fileHeader.Filename, err)

		var extractionErr *team.ExtractionError
		if errors.As(err, &extractionErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not extract text from the document"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis failed, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"markdown": markdown})
}

// Health 健康检查
func (h *ReviewHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
