package doccluster

import (
	"fmt"
	"sort"
)

// unionFind is a disjoint-set structure with path compression, sized for
// dendrogram bookkeeping: original documents occupy IDs 0..n-1 and merged
// clusters occupy n..2n-2, so merge products can be stored as roots.
type unionFind struct {
	parent []int
	size   []int
	// nextLabel is the ID of the next merged cluster, starting at n.
	nextLabel int
}

func newUnionFind(n int) *unionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &unionFind{parent: parent, size: size, nextLabel: n}
}

func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// merge records the merge of the sets rooted at ra and rb under the next
// dendrogram cluster ID and returns the merged size.
func (uf *unionFind) merge(ra, rb int) int {
	newSize := uf.size[ra] + uf.size[rb]
	uf.size[uf.nextLabel] = newSize
	uf.parent[ra] = uf.nextLabel
	uf.parent[rb] = uf.nextLabel
	uf.nextLabel++
	return newSize
}

// buildDendrogram converts spanning-tree edges into a single-linkage
// dendrogram in scipy format. edges is [][3]float64 of [from, to, weight].
// Each returned row is [left, right, distance, mergedSize]; merged cluster
// IDs start at n and increment in merge order, the same ID scheme scipy's
// linkage output uses.
func buildDendrogram(edges [][3]float64, n int) [][4]float64 {
	if len(edges) == 0 {
		return nil
	}

	sorted := make([][3]float64, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i][2] < sorted[j][2]
	})

	uf := newUnionFind(n)
	rows := make([][4]float64, 0, len(sorted))

	for _, edge := range sorted {
		ra := uf.find(int(edge[0]))
		rb := uf.find(int(edge[1]))
		newSize := uf.merge(ra, rb)
		rows = append(rows, [4]float64{float64(ra), float64(rb), edge[2], float64(newSize)})
	}

	return rows
}

// CutTree flattens a dendrogram over n documents into k clusters by
// replaying all but the last k-1 merges. Labels are assigned by first
// occurrence in document order, so label 0 always contains document 0.
func CutTree(dendrogram [][4]float64, n, k int) ([]int, error) {
	if k < 1 || k > n {
		return nil, fmt.Errorf("doccluster: cut must produce between 1 and %d clusters, got %d", n, k)
	}
	if len(dendrogram) != n-1 {
		return nil, fmt.Errorf("doccluster: dendrogram has %d merges for %d documents, want %d",
			len(dendrogram), n, n-1)
	}

	uf := newUnionFind(n)
	for i := 0; i < n-k; i++ {
		ra := uf.find(int(dendrogram[i][0]))
		rb := uf.find(int(dendrogram[i][1]))
		uf.merge(ra, rb)
	}

	labels := make([]int, n)
	byRoot := make(map[int]int)
	for p := 0; p < n; p++ {
		root := uf.find(p)
		label, ok := byRoot[root]
		if !ok {
			label = len(byRoot)
			byRoot[root] = label
		}
		labels[p] = label
	}
	return labels, nil
}
