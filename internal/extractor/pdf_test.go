package extractor

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// buildPDF 按给定的页内容流构造一份最小可解析的 PDF，"" 表示空白页
func buildPDF(streams []string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	addObj := func(num int, body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	kids := make([]string, len(streams))
	for i := range streams {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	addObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	addObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(streams)))
	addObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, stream := range streams {
		addObj(4+2*i, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+2*i))
		addObj(5+2*i, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset)
	return buf.Bytes()
}

func textStream(text string) string {
	return fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
}

func TestExtractPDFJoinsPages(t *testing.T) {
	e := New()
	data := buildPDF([]string{
		textStream("Payment due in 30 days."),
		textStream("Termination requires notice."),
	})

	text, err := e.Extract(data, "contract.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := strings.Index(text, "Payment due in 30 days.")
	second := strings.Index(text, "Termination requires notice.")
	if first < 0 || second < 0 {
		t.Fatalf("missing page text: %q", text)
	}
	if first > second {
		t.Errorf("pages out of order: %q", text)
	}
	if !strings.Contains(text[first:second], "\n\n") {
		t.Errorf("pages not separated by a blank line: %q", text)
	}
}

func TestExtractPDFEmptyPageDegrades(t *testing.T) {
	e := New()
	data := buildPDF([]string{
		textStream("Clause one."),
		"",
		textStream("Clause two."),
	})

	text, err := e.Extract(data, "contract.pdf")
	if err != nil {
		t.Fatalf("empty page must not fail the document: %v", err)
	}
	if !strings.Contains(text, "Clause one.") || !strings.Contains(text, "Clause two.") {
		t.Fatalf("surviving pages missing: %q", text)
	}
	if strings.TrimSpace(text) != text {
		t.Errorf("result not trimmed: %q", text)
	}
}
