package doccluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Linkage selects how the distance between merged clusters is measured
// during agglomerative clustering.
type Linkage string

const (
	// SingleLinkage merges on the minimum pairwise distance between
	// members. Computed via the minimum spanning tree of the distance
	// matrix.
	SingleLinkage Linkage = "single"
	// CompleteLinkage merges on the maximum pairwise distance.
	CompleteLinkage Linkage = "complete"
	// AverageLinkage merges on the size-weighted mean pairwise distance
	// (UPGMA).
	AverageLinkage Linkage = "average"
)

// Agglomerate builds a hierarchical merge tree over the documents of a
// dissimilarity matrix. The result is a scipy-format dendrogram: each row
// is [left, right, distance, mergedSize] and merged cluster IDs start at
// n. A single document yields an empty dendrogram.
func Agglomerate(dist *mat.SymDense, linkage Linkage) ([][4]float64, error) {
	n := dist.SymmetricDim()
	if n == 0 {
		return nil, fmt.Errorf("doccluster: empty distance matrix")
	}

	switch linkage {
	case SingleLinkage:
		return buildDendrogram(primMST(dist), n), nil
	case CompleteLinkage, AverageLinkage:
		return lanceWilliams(dist, linkage), nil
	default:
		return nil, fmt.Errorf("doccluster: invalid linkage %q", linkage)
	}
}

// primMST computes a minimum spanning tree of the dense distance matrix
// with Prim's algorithm. Returns n-1 edges as [from, to, weight] in chain
// format: each edge connects the previously added node to the next one.
// Single-linkage merges depend only on edge weights and connectivity, so
// the chain format is sufficient for dendrogram construction.
func primMST(dist *mat.SymDense) [][3]float64 {
	n := dist.SymmetricDim()
	if n <= 1 {
		return nil
	}

	inTree := make([]bool, n)
	currentDistances := make([]float64, n)

	inTree[0] = true
	currentNode := 0
	currentDistances[0] = math.Inf(1) // node 0 is in the tree, distance irrelevant
	for j := 1; j < n; j++ {
		currentDistances[j] = dist.At(0, j)
	}

	edges := make([][3]float64, 0, n-1)

	for i := 0; i < n-1; i++ {
		minDist := math.Inf(1)
		minNode := -1
		for j := 0; j < n; j++ {
			if !inTree[j] && currentDistances[j] < minDist {
				minDist = currentDistances[j]
				minNode = j
			}
		}

		// No finite-distance node found (NaN or +Inf rows): take the
		// first node outside the tree so the walk still terminates.
		if minNode == -1 {
			for j := 0; j < n; j++ {
				if !inTree[j] {
					minNode = j
					minDist = currentDistances[j]
					break
				}
			}
		}

		edges = append(edges, [3]float64{float64(currentNode), float64(minNode), minDist})
		inTree[minNode] = true
		currentNode = minNode

		for j := 0; j < n; j++ {
			if !inTree[j] {
				if d := dist.At(minNode, j); d < currentDistances[j] {
					currentDistances[j] = d
				}
			}
		}
	}

	return edges
}

// lanceWilliams runs naive agglomerative clustering with a Lance-Williams
// distance update, covering the complete and average linkages. O(n³) over
// the active-cluster matrix, which is fine at walkthrough corpus sizes.
func lanceWilliams(dist *mat.SymDense, linkage Linkage) [][4]float64 {
	n := dist.SymmetricDim()
	if n <= 1 {
		return nil
	}

	// Working distances between active cluster slots. Slot i starts as
	// document i and absorbs merge partners as clustering proceeds.
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i != j {
				d[i][j] = dist.At(i, j)
			}
		}
	}

	active := make([]bool, n)
	id := make([]int, n)   // dendrogram cluster ID held by each slot
	size := make([]int, n) // member count of each slot
	for i := range active {
		active[i] = true
		id[i] = i
		size[i] = 1
	}

	rows := make([][4]float64, 0, n-1)
	next := n

	for m := 0; m < n-1; m++ {
		best := math.Inf(1)
		bi, bj := -1, -1
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if active[j] && d[i][j] < best {
					best = d[i][j]
					bi, bj = i, j
				}
			}
		}

		rows = append(rows, [4]float64{float64(id[bi]), float64(id[bj]), best, float64(size[bi] + size[bj])})

		// Merge slot bj into slot bi and update distances to the rest.
		for t := 0; t < n; t++ {
			if !active[t] || t == bi || t == bj {
				continue
			}
			switch linkage {
			case CompleteLinkage:
				d[bi][t] = math.Max(d[bi][t], d[bj][t])
			default: // AverageLinkage
				si := float64(size[bi])
				sj := float64(size[bj])
				d[bi][t] = (si*d[bi][t] + sj*d[bj][t]) / (si + sj)
			}
			d[t][bi] = d[bi][t]
		}
		size[bi] += size[bj]
		active[bj] = false
		id[bi] = next
		next++
	}

	return rows
}
