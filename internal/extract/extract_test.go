package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
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

const sampleDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior Go developer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Kubernetes and </w:t></w:r><w:r><w:t>Docker</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestTextDOCX(t *testing.T) {
	content := buildDOCX(t, sampleDocument)
	got, err := Text(content, "resume.docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "Senior Go developer") {
		t.Errorf("missing first paragraph in %q", got)
	}
	// Runs split across elements join without a separator.
	if !strings.Contains(got, "Kubernetes and Docker") {
		t.Errorf("split runs not joined in %q", got)
	}
	// Paragraphs separate with newlines.
	if !strings.Contains(got, "developer\n") {
		t.Errorf("paragraph break missing in %q", got)
	}
}

func TestTextDOCXUppercaseExtension(t *testing.T) {
	content := buildDOCX(t, sampleDocument)
	if _, err := Text(content, "RESUME.DOCX"); err != nil {
		t.Fatalf("uppercase extension rejected: %v", err)
	}
}

func TestTextUnsupportedFormat(t *testing.T) {
	for _, name := range []string{"resume.txt", "resume.doc", "resume", "resume.pdf.exe"} {
		_, err := Text([]byte("irrelevant"), name)
		if !errors.Is(err, domain.ErrUnsupportedFormat) {
			t.Errorf("Text(%q) error = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestTextCorruptPDF(t *testing.T) {
	_, err := Text([]byte("not a pdf at all"), "resume.pdf")
	if !errors.Is(err, domain.ErrExtractionFailed) {
		t.Errorf("corrupt pdf error = %v, want ErrExtractionFailed", err)
	}
}

func TestTextCorruptDOCX(t *testing.T) {
	_, err := Text([]byte("not a zip"), "resume.docx")
	if !errors.Is(err, domain.ErrExtractionFailed) {
		t.Errorf("corrupt docx error = %v, want ErrExtractionFailed", err)
	}
}

func TestTextDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := w.Write([]byte("<w:styles/>")); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(buf.Bytes(), "resume.docx")
	if !errors.Is(err, domain.ErrExtractionFailed) {
		t.Errorf("missing document.xml error = %v, want ErrExtractionFailed", err)
	}
}
