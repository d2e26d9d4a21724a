package doccluster

import (
	"errors"
	"fmt"
	"sort"
)

// Validation failures for [TopFeatures] and [TopTerms]. Each one is a
// caller contract violation: the computation is deterministic, so retrying
// with the same input cannot succeed.
var (
	// ErrInvalidClusterCount is returned when fewer than two cluster
	// centers are supplied; the average of the other clusters is
	// undefined for a single cluster.
	ErrInvalidClusterCount = errors.New("doccluster: need at least 2 cluster centers")

	// ErrClusterIndexOutOfRange is returned when the queried cluster
	// index does not address a row of the center matrix.
	ErrClusterIndexOutOfRange = errors.New("doccluster: cluster index out of range")

	// ErrInvalidRequestSize is returned when the requested feature count
	// is below 1 or above the number of features.
	ErrInvalidRequestSize = errors.New("doccluster: requested feature count out of range")

	// ErrDimensionMismatch is returned when the center rows do not all
	// have the same (nonzero) length, or when a term list does not match
	// the feature dimension.
	ErrDimensionMismatch = errors.New("doccluster: cluster centers have mismatched dimensions")
)

// TopFeatures returns the indices of the n features that most distinguish
// cluster k from the other clusters. centers holds one mean feature vector
// per cluster, all of equal length, and is not modified.
//
// For every feature f it computes
//
//	diff[f] = centers[k][f] - mean(centers[j][f] for all j != k)
//
// and returns the n feature indices with the largest diff, in descending
// order of diff, ties broken by ascending feature index. The mean over the
// other clusters is unweighted: every non-target cluster contributes
// equally regardless of how many members it has.
//
// A cluster's raw highest-weight features tend to be generically frequent
// terms. Contrasting against the average of the rest surfaces the features
// unique to the cluster instead.
func TopFeatures(centers [][]float64, k, n int) ([]int, error) {
	if len(centers) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidClusterCount, len(centers))
	}
	if k < 0 || k >= len(centers) {
		return nil, fmt.Errorf("%w: k=%d with %d clusters", ErrClusterIndexOutOfRange, k, len(centers))
	}
	nf := len(centers[0])
	for j, c := range centers {
		if len(c) != nf {
			return nil, fmt.Errorf("%w: center 0 has %d features, center %d has %d",
				ErrDimensionMismatch, nf, j, len(c))
		}
	}
	if nf == 0 {
		return nil, fmt.Errorf("%w: centers have no features", ErrDimensionMismatch)
	}
	if n < 1 || n > nf {
		return nil, fmt.Errorf("%w: n=%d with %d features", ErrInvalidRequestSize, n, nf)
	}

	diff := make([]float64, nf)
	copy(diff, centers[k])
	others := float64(len(centers) - 1)
	for j, c := range centers {
		if j == k {
			continue
		}
		for f, v := range c {
			diff[f] -= v / others
		}
	}

	order := make([]int, nf)
	for i := range order {
		order[i] = i
	}
	// Descending by diff; ties broken by the lower feature index so the
	// result is a total order and repeat calls agree exactly.
	sort.Slice(order, func(a, b int) bool {
		if diff[order[a]] != diff[order[b]] {
			return diff[order[a]] > diff[order[b]]
		}
		return order[a] < order[b]
	})
	return order[:n], nil
}

// TopTerms is TopFeatures with the resulting indices mapped through terms,
// the feature space shared by all centers. len(terms) must equal the
// feature dimension of centers.
func TopTerms(terms []string, centers [][]float64, k, n int) ([]string, error) {
	idx, err := TopFeatures(centers, k, n)
	if err != nil {
		return nil, err
	}
	if len(terms) != len(centers[0]) {
		return nil, fmt.Errorf("%w: %d terms for %d features",
			ErrDimensionMismatch, len(terms), len(centers[0]))
	}
	out := make([]string, len(idx))
	for i, f := range idx {
		out[i] = terms[f]
	}
	return out, nil
}
