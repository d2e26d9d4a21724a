package doccluster

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMetric measures the dissimilarity between two feature vectors of
// equal length.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return math.Sqrt(euclideanSumOfSquares(a, b))
}

func euclideanSumOfSquares(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// CosineMetric computes the cosine dissimilarity: 1 - cosine_similarity.
// For two zero vectors, the result is NaN (0/0).
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	return 1.0 - dot/math.Sqrt(normA*normB)
}

// Pairwise computes the symmetric distance matrix between the rows of m.
// For a document-term matrix this is document-to-document dissimilarity.
func Pairwise(m *mat.Dense, metric DistanceMetric) *mat.SymDense {
	n, _ := m.Dims()
	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist.SetSym(i, j, metric.Distance(m.RawRowView(i), m.RawRowView(j)))
		}
	}
	return dist
}

// PairwiseColumns computes the symmetric distance matrix between the
// columns of m. For a document-term matrix this is term-to-term
// dissimilarity over the terms' document profiles.
func PairwiseColumns(m *mat.Dense, metric DistanceMetric) *mat.SymDense {
	var t mat.Dense
	t.CloneFrom(m.T())
	return Pairwise(&t, metric)
}
