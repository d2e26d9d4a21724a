package doccluster

import (
	"fmt"
	"math/rand"
	"runtime"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// KMeansConfig controls k-means clustering behavior. Start with
// [DefaultKMeansConfig] and override the fields you need.
type KMeansConfig struct {
	// K is the number of clusters. Must be >= 2 and at most the number
	// of documents.
	K int

	// MaxIterations caps the number of Lloyd iterations. Must be >= 0.
	// 0 means the default of 100.
	MaxIterations int

	// Seed seeds the kmeans++ initializer. Runs with the same seed and
	// data are fully deterministic. 0 means the default seed of 1.
	Seed int64

	// Workers controls the number of goroutines for the assignment
	// step. 0 means runtime.NumCPU(). The result does not depend on the
	// worker count.
	Workers int
}

// DefaultKMeansConfig returns a KMeansConfig for k clusters with default
// iteration cap and seed.
func DefaultKMeansConfig(k int) KMeansConfig {
	return KMeansConfig{K: k, MaxIterations: 100, Seed: 1}
}

func applyKMeansDefaults(cfg *KMeansConfig) {
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 100
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

func validateKMeansConfig(cfg *KMeansConfig, rows int) error {
	if cfg.K < 2 {
		return fmt.Errorf("doccluster: K must be >= 2, got %d", cfg.K)
	}
	if cfg.K > rows {
		return fmt.Errorf("doccluster: K=%d exceeds the %d documents", cfg.K, rows)
	}
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("doccluster: MaxIterations must be >= 1, got %d", cfg.MaxIterations)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("doccluster: Workers must be >= 1, got %d", cfg.Workers)
	}
	return nil
}

// KMeansResult contains the output of k-means clustering.
type KMeansResult struct {
	// Labels assigns each document (matrix row) to a cluster in [0, K).
	Labels []int

	// Centers holds one mean feature vector per cluster, aligned to the
	// same feature ordering as the input matrix columns. This is the
	// center matrix [TopFeatures] consumes.
	Centers [][]float64

	// Sizes is the member count of each cluster.
	Sizes []int

	// Inertia is the sum of squared Euclidean distances from each
	// document to its assigned center.
	Inertia float64

	// Iterations is the number of Lloyd iterations performed.
	Iterations int
}

// KMeans partitions the rows of m into cfg.K clusters with Lloyd's
// algorithm, seeded by kmeans++. m is read-only. Centers are the per-
// cluster means of the assigned rows, so handing Result.Centers to
// [TopFeatures] labels the partition by its most distinctive features.
func KMeans(m *mat.Dense, cfg KMeansConfig) (*KMeansResult, error) {
	rows, cols := m.Dims()
	applyKMeansDefaults(&cfg)
	if err := validateKMeansConfig(&cfg, rows); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	centers := seedPlusPlus(m, cfg.K, rng)

	labels := make([]int, rows)
	dists := make([]float64, rows)
	iterations := 0

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		iterations = iter + 1
		assignClustersParallel(m, centers, labels, dists, cfg.Workers)

		newCenters := make([][]float64, cfg.K)
		for c := range newCenters {
			newCenters[c] = make([]float64, cols)
		}
		sizes := make([]int, cfg.K)
		for i, lab := range labels {
			floats.Add(newCenters[lab], m.RawRowView(i))
			sizes[lab]++
		}

		for c := range newCenters {
			if sizes[c] == 0 {
				// Empty cluster: reseed from the document farthest
				// from its current center.
				far := 0
				for i, d := range dists {
					if d > dists[far] {
						far = i
					}
				}
				copy(newCenters[c], m.RawRowView(far))
				dists[far] = 0
				continue
			}
			floats.Scale(1/float64(sizes[c]), newCenters[c])
		}

		moved := 0.0
		for c := range centers {
			if d := euclideanSumOfSquares(centers[c], newCenters[c]); d > moved {
				moved = d
			}
		}
		centers = newCenters
		if moved == 0 {
			break
		}
	}

	// Final assignment against the converged centers.
	assignClustersParallel(m, centers, labels, dists, cfg.Workers)
	sizes := make([]int, cfg.K)
	for _, lab := range labels {
		sizes[lab]++
	}

	return &KMeansResult{
		Labels:     labels,
		Centers:    centers,
		Sizes:      sizes,
		Inertia:    floats.Sum(dists),
		Iterations: iterations,
	}, nil
}

// seedPlusPlus picks k initial centers with the kmeans++ scheme: the first
// uniformly at random, each subsequent one with probability proportional
// to the squared distance from the nearest chosen center.
func seedPlusPlus(m *mat.Dense, k int, rng *rand.Rand) [][]float64 {
	rows, _ := m.Dims()
	centers := make([][]float64, 0, k)

	first := rng.Intn(rows)
	centers = append(centers, append([]float64(nil), m.RawRowView(first)...))

	d2 := make([]float64, rows)
	for i := range d2 {
		d2[i] = euclideanSumOfSquares(m.RawRowView(i), centers[0])
	}

	for len(centers) < k {
		total := floats.Sum(d2)
		var idx int
		if total == 0 {
			// All remaining documents coincide with a chosen center.
			idx = rng.Intn(rows)
		} else {
			r := rng.Float64() * total
			acc := 0.0
			idx = rows - 1
			for i, v := range d2 {
				acc += v
				if acc >= r {
					idx = i
					break
				}
			}
		}

		c := append([]float64(nil), m.RawRowView(idx)...)
		centers = append(centers, c)
		for i := range d2 {
			if v := euclideanSumOfSquares(m.RawRowView(i), c); v < d2[i] {
				d2[i] = v
			}
		}
	}

	return centers
}
