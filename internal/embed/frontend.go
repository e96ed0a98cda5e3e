package embed

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

//go:embed ui/*
var embeddedFiles embed.FS

// SetupRouter 设置前端静态页面路由
func SetupRouter(r *gin.Engine) {
	// 添加 gzip 压缩中间件
	r.Use(gzip.Gzip(gzip.BestCompression))

	r.GET("/", func(c *gin.Context) {
		page, err := fs.ReadFile(embeddedFiles, "ui/index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
}
