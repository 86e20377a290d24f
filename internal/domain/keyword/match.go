package keyword

import (
	"sort"
	"strings"
)

// Match compares two keyword lists case-insensitively. matched is the
// intersection, missing the job-only terms; both come back sorted
// lexicographically.
func Match(resumeKeywords, jobKeywords []string) (matched, missing []string) {
	resumeSet := foldSet(resumeKeywords)
	jobSet := foldSet(jobKeywords)

	matched = make([]string, 0, len(jobSet))
	missing = make([]string, 0, len(jobSet))
	for kw := range jobSet {
		if _, ok := resumeSet[kw]; ok {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// Score is the fraction of job keywords present in the resume, in [0,1].
// 0.0 when the job list is empty.
func Score(resumeKeywords, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return 0.0
	}

	matched, _ := Match(resumeKeywords, jobKeywords)

	score := float64(len(matched)) / float64(len(jobKeywords))
	if score > 1.0 {
		return 1.0
	}
	return score
}

func foldSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[strings.ToLower(strings.TrimSpace(kw))] = struct{}{}
	}
	return set
}
