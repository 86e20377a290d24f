// Package chi holds the HTTP transport: handlers, DTOs and middleware.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/resumatch/internal/domain"
	dommatch "github.com/kailas-cloud/resumatch/internal/domain/match"
	extractuc "github.com/kailas-cloud/resumatch/internal/usecase/extract"
	healthuc "github.com/kailas-cloud/resumatch/internal/usecase/health"
	"github.com/kailas-cloud/resumatch/internal/version"
)

// Matcher runs the matching pipeline.
type Matcher interface {
	Single(ctx context.Context, resumeText, jobText string) (dommatch.Report, error)
	Batch(ctx context.Context, resumes []string, jobText string) ([]dommatch.BatchEntry, error)
}

// Extractor parses uploaded documents.
type Extractor interface {
	Extract(content []byte, filename string) (extractuc.Result, error)
}

// HealthService aggregates component health checks.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements the HTTP API.
type Server struct {
	matcher       Matcher
	extractor     Extractor
	health        HealthService
	logger        *zap.Logger
	maxUploadMem  int64
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(matcher Matcher, extractor Extractor, health HealthService, logger *zap.Logger) *Server {
	s := &Server{
		matcher:      matcher,
		extractor:    extractor,
		health:       health,
		logger:       logger,
		maxUploadMem: 32 << 20,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInputTooShort, http.StatusBadRequest, ErrorCodeInputTooShort),
		sentinelHandler(domain.ErrTooManyItems, http.StatusBadRequest, ErrorCodeTooManyItems),
		sentinelHandler(domain.ErrUnsupportedFormat, http.StatusBadRequest, ErrorCodeUnsupportedFormat),
		sentinelHandler(domain.ErrExtractionFailed, http.StatusUnprocessableEntity, ErrorCodeExtractionFailed),
		sentinelHandler(domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, ErrorCodeFileTooLarge),
		sentinelHandler(domain.ErrEmbeddingQuotaExceeded, http.StatusPaymentRequired, ErrorCodeQuotaExceeded),
		sentinelHandler(domain.ErrEmbeddingUnavailable, http.StatusServiceUnavailable, ErrorCodeEmbeddingUnavailable),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, ErrorCodeEmbeddingProvider),
	}
	return s
}

// Routes mounts all API handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Root)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Post("/extract-text", s.ExtractText)
	r.Post("/calculate-similarity", s.CalculateSimilarity)
	r.Post("/batch-similarity", s.BatchSimilarity)
}

// ExtractText handles POST /extract-text.
func (s *Server) ExtractText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUploadMem); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "missing file field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "failed to read upload")
		return
	}

	res, err := s.extractor.Extract(content, header.Filename)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ExtractTextResponse{
		Text:        res.Text,
		WordCount:   res.WordCount,
		CharCount:   res.CharCount,
		ExtractedAt: time.Now().UTC(),
	})
}

// CalculateSimilarity handles POST /calculate-similarity.
func (s *Server) CalculateSimilarity(w http.ResponseWriter, r *http.Request) {
	var req SimilarityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	report, err := s.matcher.Single(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SimilarityResponse{
		SimilarityScore:   report.SimilarityScore,
		KeywordMatchScore: report.KeywordScore,
		MatchedKeywords:   emptyIfNil(report.MatchedKeywords),
		MissingKeywords:   emptyIfNil(report.MissingKeywords),
		ResumeKeywords:    emptyIfNil(report.ResumeKeywords),
		JobKeywords:       emptyIfNil(report.JobKeywords),
	})
}

// BatchSimilarity handles POST /batch-similarity.
func (s *Server) BatchSimilarity(w http.ResponseWriter, r *http.Request) {
	var req BatchSimilarityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entries, err := s.matcher.Batch(r.Context(), req.Resumes, req.JobDescription)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]BatchSimilarityResult, len(entries))
	for i, e := range entries {
		results[i] = BatchSimilarityResult{
			Index:           e.Index,
			SimilarityScore: e.SimilarityScore,
		}
	}

	writeJSON(w, http.StatusOK, BatchSimilarityResponse{
		Results:        results,
		TotalProcessed: len(results),
	})
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	s.writeHealth(w, r, false)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeHealth(w, r, true)
}

func (s *Server) writeHealth(w http.ResponseWriter, r *http.Request, withChecks bool) {
	report := s.health.Check(r.Context())

	resp := HealthResponse{
		Status:  string(report.Status),
		Service: "resumatch",
		Version: version.Version,
	}
	if withChecks {
		checks := make(map[string]string, len(report.Checks))
		for k, v := range report.Checks {
			checks[k] = string(v)
		}
		resp.Checks = checks
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInputTooShort,
		domain.ErrTooManyItems,
		domain.ErrUnsupportedFormat,
		domain.ErrExtractionFailed,
		domain.ErrFileTooLarge,
		domain.ErrEmbeddingQuotaExceeded,
		domain.ErrEmbeddingUnavailable,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
