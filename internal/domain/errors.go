package domain

import "errors"

var (
	// ErrInputTooShort signals a text below the minimum trimmed length.
	ErrInputTooShort = errors.New("input text too short")
	// ErrTooManyItems signals a batch over the size cap.
	ErrTooManyItems = errors.New("too many items in batch")
	// ErrUnsupportedFormat signals an upload with an unrecognized file type.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrExtractionFailed signals corrupt or unreadable upload content.
	ErrExtractionFailed = errors.New("text extraction failed")
	// ErrFileTooLarge signals an upload over the configured size cap.
	ErrFileTooLarge = errors.New("file too large")
	// ErrEmbeddingUnavailable signals that the embedding provider cannot be reached.
	ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")
	// ErrEmbeddingProviderError signals a per-call embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrEmbeddingQuotaExceeded signals an exhausted embedding token budget.
	ErrEmbeddingQuotaExceeded = errors.New("embedding quota exceeded")
)
