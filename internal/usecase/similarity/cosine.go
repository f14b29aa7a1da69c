package similarity

import (
	"fmt"
	"math"
)

// Cosine computes the cosine similarity between two embedding vectors: dot
// product over the product of Euclidean norms. Vectors of unequal length are
// rejected as a caller bug (inconsistent embedding model). A zero-norm vector
// yields 0 rather than dividing by zero.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimensionality mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// FormatPercent renders a similarity value as a percentage string with one
// decimal digit. Values with magnitude above 1 are treated as already being
// percentages; the result is clamped to [0, 100].
func FormatPercent(v float64) string {
	pct := v
	if math.Abs(pct) <= 1 {
		pct *= 100
	}

	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}

	return fmt.Sprintf("%.1f%%", pct)
}
