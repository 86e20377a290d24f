// Package match composes keyword analysis and semantic similarity into the
// resume/job matching pipeline.
package match

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/resumatch/internal/domain"
	"github.com/kailas-cloud/resumatch/internal/domain/keyword"
	dommatch "github.com/kailas-cloud/resumatch/internal/domain/match"
)

// Defaults mirror the pipeline contract: extract with headroom over the
// reported list size so set operations during matching don't starve the
// reported best-20.
const (
	DefaultTopN        = 30
	DefaultReportLimit = 20
	DefaultMinTextLen  = 10
	DefaultMaxBatch    = 100
)

// Service runs single and batch matches.
type Service struct {
	scorer      SimilarityScorer
	topN        int
	reportLimit int
	minTextLen  int
	maxBatch    int
}

// New creates a match service with default pipeline settings.
func New(scorer SimilarityScorer) *Service {
	return &Service{
		scorer:      scorer,
		topN:        DefaultTopN,
		reportLimit: DefaultReportLimit,
		minTextLen:  DefaultMinTextLen,
		maxBatch:    DefaultMaxBatch,
	}
}

// WithLimits overrides pipeline settings. Non-positive values keep defaults.
func (s *Service) WithLimits(topN, reportLimit, minTextLen, maxBatch int) *Service {
	if topN > 0 {
		s.topN = topN
	}
	if reportLimit > 0 {
		s.reportLimit = reportLimit
	}
	if minTextLen > 0 {
		s.minTextLen = minTextLen
	}
	if maxBatch > 0 {
		s.maxBatch = maxBatch
	}
	return s
}

// MaxBatch returns the batch size cap.
func (s *Service) MaxBatch() int { return s.maxBatch }

// Single matches one resume against one job description. Both texts must be
// at least the minimum trimmed length in runes, not bytes; violations are
// rejected before any embedding call.
func (s *Service) Single(ctx context.Context, resumeText, jobText string) (dommatch.Report, error) {
	if utf8.RuneCountInString(strings.TrimSpace(resumeText)) < s.minTextLen {
		return dommatch.Report{}, fmt.Errorf(
			"resume text below %d characters: %w", s.minTextLen, domain.ErrInputTooShort,
		)
	}
	if utf8.RuneCountInString(strings.TrimSpace(jobText)) < s.minTextLen {
		return dommatch.Report{}, fmt.Errorf(
			"job description below %d characters: %w", s.minTextLen, domain.ErrInputTooShort,
		)
	}

	score, err := s.scorer.Similarity(ctx, resumeText, jobText)
	if err != nil {
		return dommatch.Report{}, fmt.Errorf("similarity: %w", err)
	}

	resumeKeywords := keyword.Extract(resumeText, s.topN)
	jobKeywords := keyword.Extract(jobText, s.topN)
	matched, missing := keyword.Match(resumeKeywords, jobKeywords)

	return dommatch.Report{
		SimilarityScore: score,
		KeywordScore:    keyword.Score(resumeKeywords, jobKeywords),
		MatchedKeywords: truncate(matched, s.reportLimit),
		MissingKeywords: truncate(missing, s.reportLimit),
		ResumeKeywords:  truncate(resumeKeywords, s.reportLimit),
		JobKeywords:     truncate(jobKeywords, s.reportLimit),
	}, nil
}

// Batch scores many resumes against one job description and returns entries
// sorted descending by score, original indices preserved. The size cap is
// checked before any embedding call.
func (s *Service) Batch(ctx context.Context, resumes []string, jobText string) ([]dommatch.BatchEntry, error) {
	if len(resumes) > s.maxBatch {
		return nil, fmt.Errorf(
			"batch of %d exceeds cap of %d: %w", len(resumes), s.maxBatch, domain.ErrTooManyItems,
		)
	}
	if len(resumes) == 0 {
		return []dommatch.BatchEntry{}, nil
	}

	scores, err := s.scorer.BatchSimilarity(ctx, resumes, jobText)
	if err != nil {
		return nil, fmt.Errorf("batch similarity: %w", err)
	}

	entries := make([]dommatch.BatchEntry, len(scores))
	for i, score := range scores {
		entries[i] = dommatch.BatchEntry{Index: i, SimilarityScore: score}
	}

	dommatch.SortByScore(entries)
	return entries, nil
}

func truncate(list []string, limit int) []string {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
