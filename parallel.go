package doccluster

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// PairwiseParallel computes the same symmetric distance matrix as
// [Pairwise] using multiple goroutines. workers controls the degree of
// parallelism; 0 means runtime.NumCPU(), and 1 falls back to the
// sequential path. The result is bitwise identical to Pairwise.
func PairwiseParallel(m *mat.Dense, metric DistanceMetric, workers int) *mat.SymDense {
	n, _ := m.Dims()
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || n <= 1 {
		return Pairwise(m, metric)
	}

	dist := mat.NewSymDense(n, nil)

	// Split source rows across workers. Each worker computes dist(i,j)
	// for all j > i in its range; the cells written by disjoint row
	// ranges never overlap, so no synchronization is needed.
	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					dist.SetSym(i, j, metric.Distance(m.RawRowView(i), m.RawRowView(j)))
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return dist
}

// assignClustersParallel assigns every row of m to its nearest center,
// filling labels and the squared Euclidean distance to that center in
// dists. Each worker handles a contiguous row range independently, so the
// result does not depend on the worker count.
func assignClustersParallel(m *mat.Dense, centers [][]float64, labels []int, dists []float64, workers int) {
	rows, _ := m.Dims()
	if workers <= 1 || rows <= 1 {
		assignClusters(m, centers, labels, dists, 0, rows)
		return
	}

	var wg sync.WaitGroup
	rowsPerWorker := (rows + workers - 1) / workers

	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, rows)
		if startRow >= rows {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			assignClusters(m, centers, labels, dists, start, end)
		}(startRow, endRow)
	}

	wg.Wait()
}

func assignClusters(m *mat.Dense, centers [][]float64, labels []int, dists []float64, start, end int) {
	for i := start; i < end; i++ {
		row := m.RawRowView(i)
		best := 0
		bestDist := euclideanSumOfSquares(row, centers[0])
		for c := 1; c < len(centers); c++ {
			if d := euclideanSumOfSquares(row, centers[c]); d < bestDist {
				bestDist = d
				best = c
			}
		}
		labels[i] = best
		dists[i] = bestDist
	}
}
