// Package match holds the pipeline result types shared between the match
// usecase and the transport layer.
package match

import "sort"

// Report is the outcome of matching one resume against one job description.
// Keyword lists are truncated to the configured report limit.
type Report struct {
	SimilarityScore float64
	KeywordScore    float64
	MatchedKeywords []string
	MissingKeywords []string
	ResumeKeywords  []string
	JobKeywords     []string
}

// BatchEntry is one scored resume in a batch result. Index is the 0-based
// position in the request, preserved through sorting so callers can recover
// input order.
type BatchEntry struct {
	Index           int
	SimilarityScore float64
}

// SortByScore orders entries descending by similarity score. The sort is
// stable: tied scores keep their original relative index order.
func SortByScore(entries []BatchEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SimilarityScore > entries[j].SimilarityScore
	})
}
