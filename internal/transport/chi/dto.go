package chi

import "time"

// ErrorCode identifies an error category in API responses.
type ErrorCode string

const (
	ErrorCodeBadRequest           ErrorCode = "bad_request"
	ErrorCodeInputTooShort        ErrorCode = "input_too_short"
	ErrorCodeTooManyItems         ErrorCode = "too_many_items"
	ErrorCodeUnsupportedFormat    ErrorCode = "unsupported_format"
	ErrorCodeExtractionFailed     ErrorCode = "extraction_failed"
	ErrorCodeFileTooLarge         ErrorCode = "file_too_large"
	ErrorCodeEmbeddingUnavailable ErrorCode = "embedding_unavailable"
	ErrorCodeEmbeddingProvider    ErrorCode = "embedding_provider_error"
	ErrorCodeQuotaExceeded        ErrorCode = "embedding_quota_exceeded"
	ErrorCodeInternalError        ErrorCode = "internal_error"
)

// ErrorResponse is the envelope returned on any request failure.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ExtractTextResponse is the result of a document upload.
type ExtractTextResponse struct {
	Text        string    `json:"text"`
	WordCount   int       `json:"word_count"`
	CharCount   int       `json:"char_count"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// SimilarityRequest matches one resume against one job description.
type SimilarityRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// SimilarityResponse carries the combined semantic and keyword analysis.
type SimilarityResponse struct {
	SimilarityScore   float64  `json:"similarity_score"`
	KeywordMatchScore float64  `json:"keyword_match_score"`
	MatchedKeywords   []string `json:"matched_keywords"`
	MissingKeywords   []string `json:"missing_keywords"`
	ResumeKeywords    []string `json:"resume_keywords"`
	JobKeywords       []string `json:"job_keywords"`
}

// BatchSimilarityRequest scores many resumes against one job description.
type BatchSimilarityRequest struct {
	Resumes        []string `json:"resumes"`
	JobDescription string   `json:"job_description"`
}

// BatchSimilarityResult is one scored resume, index referring to the
// position in the request.
type BatchSimilarityResult struct {
	Index           int     `json:"index"`
	SimilarityScore float64 `json:"similarity_score"`
}

// BatchSimilarityResponse lists results sorted by descending score.
type BatchSimilarityResponse struct {
	Results        []BatchSimilarityResult `json:"results"`
	TotalProcessed int                     `json:"total_processed"`
}

// HealthResponse reports service and component status.
type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}
