// Package extractor 把任意文档字节转换为纯文本
// 按文件扩展名分发：.pdf / .docx / 其余按纯文本尽力解码
package extractor

import (
	"strings"

	"k8s.io/klog/v2"
)

// Extractor 文本抽取能力
type Extractor interface {
	Extract(fileBytes []byte, filename string) (string, error)
}

// DocumentExtractor 默认实现，无内部状态，可并发使用
type DocumentExtractor struct{}

func New() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract 抽取文档文本
// 整文档级别的失败（损坏的 pdf/docx 容器）返回错误；
// 单页/单段落级别的失败降级为空内容，不影响其余部分
func (e *DocumentExtractor) Extract(fileBytes []byte, filename string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(filename))
	klog.V(6).Infof("抽取文档文本: filename=%s, size=%d", name, len(fileBytes))

	switch {
	case strings.HasSuffix(name, ".pdf"):
		return extractPDF(fileBytes)
	case strings.HasSuffix(name, ".docx"):
		return extractDOCX(fileBytes)
	default:
		// .txt 与未知扩展名都按纯文本处理
		return extractPlainText(fileBytes), nil
	}
}
