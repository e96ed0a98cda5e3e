package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF 逐页抽取文本，空白页/失败页降级为空字符串，页间以空行连接
func extractPDF(fileBytes []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, extractPDFPage(reader, i))
	}

	return strings.TrimSpace(strings.Join(pages, "\n\n")), nil
}

// extractPDFPage 抽取单页文本，任何失败都返回空串
// ledongthuc/pdf 在畸形 content stream 上会 panic，这里兜住
func extractPDFPage(reader *pdf.Reader, pageNum int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}
