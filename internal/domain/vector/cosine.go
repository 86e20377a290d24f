// Package vector holds embedding-space math shared by the scoring services.
package vector

import (
	"fmt"
	"math"
)

// Cosine computes the cosine similarity of two equal-length vectors.
// The raw value is in [-1,1] up to floating-point error; callers that need a
// bounded score apply Clamp01. A zero-norm vector yields 0.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Clamp01 bounds a similarity to [0,1]. Embedding-space cosine can drift
// outside the interval through floating-point error; clamping, not
// re-normalization, is the correctness fix.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
