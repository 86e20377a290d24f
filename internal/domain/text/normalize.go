// Package text canonicalizes raw extracted document text.
package text

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Word characters plus the punctuation that carries meaning in
	// resumes and job postings (c++, c#, .net, node.js, ci/cd, emails).
	// \p{L}\p{N} instead of \w: names and skills are not ASCII-only.
	disallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s\-\+\#\.\,\@\(\)\:\;\/\&]`)
)

// Normalize rewrites raw text into a single-spaced string drawn from the
// allow-listed character class. Total over any input, including empty.
func Normalize(raw string) string {
	s := whitespaceRun.ReplaceAllString(raw, " ")
	s = disallowed.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
