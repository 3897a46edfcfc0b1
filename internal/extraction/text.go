package extraction

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// ExtractText pulls plain text out of a resume file locally, without the
// extraction service. Used to fill Candidate.ResumeText and as the raw
// material when no API key is configured.
func ExtractText(data []byte, mimeType string) (string, error) {
	switch normalizeMIME(mimeType) {
	case "application/pdf":
		return pdfText(data)
	case "text/html":
		return htmlText(data)
	case "text/plain":
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported resume type: %s", mimeType)
	}
}

func normalizeMIME(mimeType string) string {
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return strings.TrimSpace(string(text)), nil
}

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text()), nil
}
