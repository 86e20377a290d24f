// Package extract turns uploaded resume files into normalized plain text.
package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/resumatch/internal/domain"
	"github.com/kailas-cloud/resumatch/internal/domain/text"
	"github.com/kailas-cloud/resumatch/internal/extract"
)

// DefaultMaxUploadBytes caps uploads at 10 MB.
const DefaultMaxUploadBytes = 10 << 20

// Result is the outcome of a successful extraction.
type Result struct {
	Text      string
	WordCount int
	CharCount int
}

// Service validates, parses and normalizes uploaded documents.
type Service struct {
	maxUploadBytes int
}

// NewService builds a Service with the given upload cap. A non-positive cap
// falls back to DefaultMaxUploadBytes.
func NewService(maxUploadBytes int) *Service {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Service{maxUploadBytes: maxUploadBytes}
}

// Extract parses the file content and returns its normalized text together
// with word and character counts. Counts are taken on the normalized text,
// characters counted as runes.
func (s *Service) Extract(content []byte, filename string) (Result, error) {
	if len(content) > s.maxUploadBytes {
		return Result{}, fmt.Errorf(
			"upload of %d bytes exceeds limit of %d: %w",
			len(content), s.maxUploadBytes, domain.ErrFileTooLarge,
		)
	}

	raw, err := extract.Text(content, filename)
	if err != nil {
		return Result{}, err
	}

	normalized := text.Normalize(raw)
	if normalized == "" {
		return Result{}, fmt.Errorf("document %q contains no extractable text: %w",
			filename, domain.ErrExtractionFailed)
	}

	return Result{
		Text:      normalized,
		WordCount: len(strings.Fields(normalized)),
		CharCount: utf8.RuneCountInString(normalized),
	}, nil
}
