// Package similarity scores semantic closeness of text pairs via the
// embedding provider.
package similarity

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/resumatch/internal/domain"
	"github.com/kailas-cloud/resumatch/internal/domain/vector"
)

// Service computes bounded cosine similarity over provider embeddings.
type Service struct {
	embed Embedder
}

// New creates a similarity service.
func New(embed Embedder) *Service {
	return &Service{embed: embed}
}

// Similarity scores one text pair in [0,1]. Both texts are embedded in a
// single provider call.
func (s *Service) Similarity(ctx context.Context, textA, textB string) (float64, error) {
	res, err := s.embed.BatchEmbed(ctx, []string{textA, textB})
	if err != nil {
		return 0, fmt.Errorf("embed pair: %w", err)
	}
	if len(res.Embeddings) != 2 {
		return 0, fmt.Errorf(
			"expected 2 embeddings, got %d: %w", len(res.Embeddings), domain.ErrEmbeddingProviderError,
		)
	}

	sim, err := vector.Cosine(res.Embeddings[0], res.Embeddings[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrEmbeddingProviderError, err)
	}

	return vector.Clamp01(sim), nil
}

// BatchSimilarity scores each text against a shared reference, returning one
// score per input in input order. All texts plus the reference go to the
// provider in a single call, the reference appended last. A provider failure
// returns no partial scores.
func (s *Service) BatchSimilarity(ctx context.Context, texts []string, reference string) ([]float64, error) {
	all := make([]string, 0, len(texts)+1)
	all = append(all, texts...)
	all = append(all, reference)

	res, err := s.embed.BatchEmbed(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("embed batch: %w", err)
	}
	if len(res.Embeddings) != len(all) {
		return nil, fmt.Errorf(
			"expected %d embeddings, got %d: %w", len(all), len(res.Embeddings), domain.ErrEmbeddingProviderError,
		)
	}

	ref := res.Embeddings[len(res.Embeddings)-1]

	scores := make([]float64, len(texts))
	for i := range texts {
		sim, err := vector.Cosine(res.Embeddings[i], ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingProviderError, err)
		}
		scores[i] = vector.Clamp01(sim)
	}

	return scores, nil
}
