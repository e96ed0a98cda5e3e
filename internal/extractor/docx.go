package extractor

import (
	"bytes"
	"fmt"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// extractDOCX 按文档顺序拼接段落文本，段落间以换行连接
func extractDOCX(fileBytes []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}

	return strings.TrimSpace(strings.Join(paragraphs, "\n")), nil
}
