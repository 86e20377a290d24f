// Package extract parses uploaded PDF and DOCX documents into plain text.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kailas-cloud/resumatch/internal/domain"
)

// Text extracts plain text from file content, dispatching on the filename
// extension. Unknown extensions yield ErrUnsupportedFormat; unreadable
// content yields ErrExtractionFailed.
func Text(content []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(content)
	case ".docx":
		return fromDOCX(content)
	default:
		return "", fmt.Errorf(
			"unsupported file type %q, only PDF and DOCX are supported: %w",
			filename, domain.ErrUnsupportedFormat,
		)
	}
}
