package doccluster

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"
)

// MDS projects a dissimilarity matrix into dims-dimensional coordinates
// using classical (Torgerson) multidimensional scaling. It returns an
// n×dims coordinate matrix whose columns are ordered by decreasing
// eigenvalue, so the first two columns are the usual 2-D map, together
// with all n eigenvalues of the doubly-centered matrix.
//
// Only the first k columns carry meaning, where k is the number of
// positive eigenvalues; when the dissimilarities come from a
// higher-dimensional or non-Euclidean space the trailing requested
// columns are zero.
func MDS(dist *mat.SymDense, dims int) (*mat.Dense, []float64, error) {
	n := dist.SymmetricDim()
	if dims < 1 || dims > n {
		return nil, nil, fmt.Errorf("doccluster: MDS dims must be in [1, %d], got %d", n, dims)
	}

	var coords mat.Dense
	eig := make([]float64, n)
	k, _ := mds.TorgersonScaling(&coords, eig, dist)
	if k == 0 {
		return nil, nil, fmt.Errorf("doccluster: MDS failed: dissimilarities admit no Euclidean representation")
	}

	out := mat.DenseCopyOf(coords.Slice(0, n, 0, dims))
	return out, eig, nil
}
