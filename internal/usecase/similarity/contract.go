package similarity

import (
	"context"

	"github.com/kailas-cloud/resumatch/internal/domain"
)

// Embedder vectorizes multiple texts in one provider call.
type Embedder interface {
	BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error)
}
