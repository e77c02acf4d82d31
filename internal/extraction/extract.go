// Package extraction converts uploaded resume files into plain text.
package extraction

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted by ExtractText.
const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedFormat indicates the uploaded file type cannot be extracted.
type ErrUnsupportedFormat struct {
	ContentType string
	Filename    string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format: %s (%s)", e.ContentType, e.Filename)
}

// ExtractText extracts plain text from an uploaded resume. The content type
// takes priority; when it is missing or generic the filename extension decides.
func ExtractText(filename, contentType string, data []byte) (string, error) {
	switch contentType {
	case MIMEPlainText:
		return Normalize(string(data)), nil
	case MIMEPDF:
		return extractPDF(data)
	case MIMEDocx:
		return extractDocx(data)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		return Normalize(string(data)), nil
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	}

	return "", &ErrUnsupportedFormat{ContentType: contentType, Filename: filename}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages, keep what we have
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return Normalize(sb.String()), nil
}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	xml := doc.Editable().GetContent()
	// Paragraph boundaries become newlines, tabs survive for layout checks.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	text := xmlTagRe.ReplaceAllString(xml, "")
	return Normalize(text), nil
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Normalize cleans extracted text without destroying layout signals.
// Line endings are unified and excessive blank lines collapsed, but internal
// spacing and tabs are kept so downstream formatting checks still see them.
func Normalize(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, " ", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")

	content = blankRunRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
