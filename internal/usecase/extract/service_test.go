package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/kailas-cloud/resumatch/internal/domain"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func docWith(paragraphs ...string) string {
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)
	return body.String()
}

func TestExtract(t *testing.T) {
	content := buildDOCX(t, docWith("Senior  Go   developer", "Docker, Kubernetes"))
	svc := NewService(0)

	got, err := svc.Extract(content, "resume.docx")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "Senior Go developer Docker, Kubernetes"
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
	if got.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", got.WordCount)
	}
	if got.CharCount != len(want) {
		t.Errorf("CharCount = %d, want %d", got.CharCount, len(want))
	}
}

func TestExtractTooLarge(t *testing.T) {
	svc := NewService(16)
	_, err := svc.Extract(make([]byte, 17), "resume.pdf")
	if !errors.Is(err, domain.ErrFileTooLarge) {
		t.Errorf("error = %v, want ErrFileTooLarge", err)
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	content := buildDOCX(t, docWith())
	svc := NewService(0)

	_, err := svc.Extract(content, "resume.docx")
	if !errors.Is(err, domain.ErrExtractionFailed) {
		t.Errorf("error = %v, want ErrExtractionFailed", err)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	svc := NewService(0)
	_, err := svc.Extract([]byte("plain text"), "resume.txt")
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}
