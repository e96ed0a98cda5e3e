package extractor

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// extractPlainText 尽力解码：合法 UTF-8 直接用，否则按 Latin-1 有损解码
// Latin-1 对任意字节都有映射，因此该路径永不失败
func extractPlainText(fileBytes []byte) string {
	if utf8.Valid(fileBytes) {
		return strings.TrimSpace(string(fileBytes))
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(fileBytes)
	if err != nil {
		decoded = fileBytes
	}
	return strings.TrimSpace(string(decoded))
}
