package match

import "context"

// SimilarityScorer scores texts against a reference via the embedding
// provider.
type SimilarityScorer interface {
	Similarity(ctx context.Context, textA, textB string) (float64, error)
	BatchSimilarity(ctx context.Context, texts []string, reference string) ([]float64, error)
}
