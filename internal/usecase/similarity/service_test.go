package similarity

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/resumatch/internal/domain"
)

// --- Mocks ---

// fakeEmbedder maps each text to a deterministic vector.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
	batches [][]string
}

func (f *fakeEmbedder) BatchEmbed(_ context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	f.calls++
	f.batches = append(f.batches, texts)
	if f.err != nil {
		return domain.BatchEmbeddingResult{}, f.err
	}
	embeddings := make([][]float32, len(texts))
	for i, t := range texts {
		embeddings[i] = f.vectors[t]
	}
	return domain.BatchEmbeddingResult{Embeddings: embeddings}, nil
}

// --- Tests ---

func TestSimilarity_SinglePairOneProviderCall(t *testing.T) {
	embed := &fakeEmbedder{vectors: map[string][]float32{
		"backend engineer": {1, 0},
		"go developer":     {1, 1},
	}}
	svc := New(embed)

	got, err := svc.Similarity(context.Background(), "backend engineer", "go developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embed.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", embed.calls)
	}
	want := 1 / math.Sqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Similarity = %v, want %v", got, want)
	}
}

func TestSimilarity_SelfSimilarityIsMaximal(t *testing.T) {
	embed := &fakeEmbedder{vectors: map[string][]float32{
		"same text": {0.2, -0.4, 0.9},
	}}
	svc := New(embed)

	got, err := svc.Similarity(context.Background(), "same text", "same text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-6 {
		t.Errorf("self-similarity = %v, want 1.0", got)
	}
}

func TestSimilarity_ClampsAdversarialCosine(t *testing.T) {
	// Opposite vectors produce raw cosine -1; the score must stay in [0,1].
	embed := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 2},
		"b": {-1, -2},
	}}
	svc := New(embed)

	got, err := svc.Similarity(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected clamped score 0, got %v", got)
	}
}

func TestSimilarity_ProviderErrorPropagates(t *testing.T) {
	embed := &fakeEmbedder{err: domain.ErrEmbeddingProviderError}
	svc := New(embed)

	_, err := svc.Similarity(context.Background(), "a", "b")
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestSimilarity_DimensionMismatchIsProviderError(t *testing.T) {
	embed := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 2},
		"b": {1, 2, 3},
	}}
	svc := New(embed)

	_, err := svc.Similarity(context.Background(), "a", "b")
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected provider error for dimension mismatch, got %v", err)
	}
}

func TestBatchSimilarity_SingleCallReferenceLast(t *testing.T) {
	embed := &fakeEmbedder{vectors: map[string][]float32{
		"r1":  {1, 0},
		"r2":  {0, 1},
		"r3":  {1, 1},
		"job": {1, 0},
	}}
	svc := New(embed)

	scores, err := svc.BatchSimilarity(context.Background(), []string{"r1", "r2", "r3"}, "job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if embed.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", embed.calls)
	}
	batch := embed.batches[0]
	if batch[len(batch)-1] != "job" {
		t.Errorf("expected reference appended last, got batch %v", batch)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	want := []float64{1.0, 0.0, 1 / math.Sqrt2}
	for i, w := range want {
		if math.Abs(scores[i]-w) > 1e-9 {
			t.Errorf("scores[%d] = %v, want %v", i, scores[i], w)
		}
	}
}

func TestBatchSimilarity_ConsistentWithSinglePair(t *testing.T) {
	embed := &fakeEmbedder{vectors: map[string][]float32{
		"r1":  {0.5, 0.1, -0.2},
		"r2":  {-0.3, 0.9, 0.4},
		"job": {0.2, 0.7, 0.1},
	}}
	svc := New(embed)

	batch, err := svc.BatchSimilarity(context.Background(), []string{"r1", "r2"}, "job")
	if err != nil {
		t.Fatalf("unexpected batch error: %v", err)
	}

	for i, text := range []string{"r1", "r2"} {
		single, err := svc.Similarity(context.Background(), text, "job")
		if err != nil {
			t.Fatalf("unexpected single error: %v", err)
		}
		if math.Abs(batch[i]-single) > 1e-9 {
			t.Errorf("batch[%d] = %v, single = %v", i, batch[i], single)
		}
	}
}

func TestBatchSimilarity_NoPartialResultsOnFailure(t *testing.T) {
	embed := &fakeEmbedder{err: errors.New("connection reset")}
	svc := New(embed)

	scores, err := svc.BatchSimilarity(context.Background(), []string{"a", "b"}, "job")
	if err == nil {
		t.Fatal("expected error")
	}
	if scores != nil {
		t.Errorf("expected nil scores on failure, got %v", scores)
	}
}

func TestBatchSimilarity_ScoresBounded(t *testing.T) {
	embed := &fakeEmbedder{vectors: map[string][]float32{
		"neg": {-5, -5},
		"pos": {3, 3},
		"ref": {1, 1},
	}}
	svc := New(embed)

	scores, err := svc.BatchSimilarity(context.Background(), []string{"neg", "pos"}, "ref")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range scores {
		if s < 0 || s > 1 {
			t.Errorf("scores[%d] = %v out of [0,1]", i, s)
		}
	}
}
