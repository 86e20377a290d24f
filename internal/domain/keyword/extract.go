// Package keyword extracts and compares salient terms from normalized
// document text.
package keyword

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var wordToken = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Extract returns up to topN lowercase keywords for a text: domain-vocabulary
// hits first (sorted for determinism), then the most frequent remaining
// tokens in descending-frequency order. An empty or keyword-free text yields
// an empty list; extraction never fails.
func Extract(text string, topN int) []string {
	if topN < 1 {
		return nil
	}

	lower := strings.ToLower(text)
	tokens := filterTokens(wordToken.FindAllString(lower, -1))

	hits := vocabularyHits(lower, tokens)
	frequent := topFrequent(tokens, 2*topN)

	keywords := make([]string, 0, len(hits)+len(frequent))
	keywords = append(keywords, hits...)

	seen := make(map[string]struct{}, len(hits))
	for _, h := range hits {
		seen[h] = struct{}{}
	}
	for _, w := range frequent {
		if _, ok := seen[w]; ok {
			continue
		}
		keywords = append(keywords, w)
	}

	if len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

// filterTokens keeps tokens of length > 2 that are not stopwords. The word
// regexp already restricts tokens to letters and digits.
func filterTokens(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

// vocabularyHits scans the domain vocabulary: multi-word entries by literal
// substring containment in the lowercased text, single-word entries by
// membership in the filtered token pool. Hits are sorted lexicographically.
func vocabularyHits(lower string, tokens []string) []string {
	pool := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		pool[tok] = struct{}{}
	}

	var hits []string
	for _, entry := range domainVocabulary {
		if strings.Contains(entry, " ") {
			if strings.Contains(lower, entry) {
				hits = append(hits, entry)
			}
		} else if _, ok := pool[entry]; ok {
			hits = append(hits, entry)
		}
	}

	sort.Strings(hits)
	return hits
}

// topFrequent returns up to limit tokens ranked by descending frequency,
// ties broken by first-occurrence order.
func topFrequent(tokens []string, limit int) []string {
	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	unique := make([]string, 0, len(tokens))

	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
			unique = append(unique, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return firstSeen[unique[i]] < firstSeen[unique[j]]
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}
