package docconv

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer
	"github.com/nguyenthenguyen/docx"
)

// Supported document kinds.
const (
	TypePDF  = "pdf"
	TypeDOCX = "docx"
)

// DetermineFileType resolves the document kind from the filename extension
// with a content-type fallback for extensionless names. Returns "" for
// unsupported files.
func DetermineFileType(filename, contentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return TypePDF
	case ".docx":
		return TypeDOCX
	case "":
	default:
		return ""
	}

	switch contentType {
	case "application/pdf":
		return TypePDF
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return TypeDOCX
	default:
		return ""
	}
}

// ExtractText decodes uploaded document bytes to plain text.
func ExtractText(fileType string, data []byte) (string, error) {
	switch fileType {
	case TypePDF:
		return extractPDFText(data)
	case TypeDOCX:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileType)
	}
}

// extractPDFText pulls the text layer from each PDF page.
func extractPDFText(pdfData []byte) (string, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	paraClose = regexp.MustCompile(`</w:p>`)
	xmlTag    = regexp.MustCompile(`<[^>]+>`)
)

// extractDocxText unpacks the word-processing XML and strips markup,
// preserving paragraph breaks as newlines.
func extractDocxText(data []byte) (string, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = paraClose.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return content, nil
}
