package doccluster

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// twoBlobs is four points in two tight, well-separated groups; any
// seeding converges to the same partition.
func twoBlobs() *mat.Dense {
	return mat.NewDense(4, 2, []float64{
		0, 0,
		0.2, 0,
		10, 10,
		10, 10.2,
	})
}

func TestKMeans_TwoBlobs(t *testing.T) {
	res, err := KMeans(twoBlobs(), DefaultKMeansConfig(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Labels[0] != res.Labels[1] {
		t.Errorf("points 0 and 1 split across clusters: %v", res.Labels)
	}
	if res.Labels[2] != res.Labels[3] {
		t.Errorf("points 2 and 3 split across clusters: %v", res.Labels)
	}
	if res.Labels[0] == res.Labels[2] {
		t.Errorf("both blobs in one cluster: %v", res.Labels)
	}

	if !reflect.DeepEqual(res.Sizes, []int{2, 2}) {
		t.Errorf("expected sizes [2 2], got %v", res.Sizes)
	}

	// The center of the first blob's cluster is the blob mean (0.1, 0).
	low := res.Centers[res.Labels[0]]
	if !almostEqual(low[0], 0.1, floatTol) || !almostEqual(low[1], 0, floatTol) {
		t.Errorf("expected low-blob center [0.1 0], got %v", low)
	}
	high := res.Centers[res.Labels[2]]
	if !almostEqual(high[0], 10, floatTol) || !almostEqual(high[1], 10.1, floatTol) {
		t.Errorf("expected high-blob center [10 10.1], got %v", high)
	}

	// Inertia is the sum of squared distances to the blob means:
	// 4 * 0.1^2 = 0.04.
	if !almostEqual(res.Inertia, 0.04, floatTol) {
		t.Errorf("expected inertia 0.04, got %v", res.Inertia)
	}
}

func TestKMeans_DeterministicForSeed(t *testing.T) {
	cfg := DefaultKMeansConfig(2)
	cfg.Seed = 7

	first, err := KMeans(twoBlobs(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := KMeans(twoBlobs(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Labels, second.Labels) {
		t.Errorf("labels differ across runs: %v vs %v", first.Labels, second.Labels)
	}
	if !reflect.DeepEqual(first.Centers, second.Centers) {
		t.Errorf("centers differ across runs")
	}
}

func TestKMeans_WorkerCountDoesNotChangeResult(t *testing.T) {
	base := DefaultKMeansConfig(2)
	base.Workers = 1
	want, err := KMeans(twoBlobs(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, workers := range []int{2, 3, 8} {
		cfg := DefaultKMeansConfig(2)
		cfg.Workers = workers
		got, err := KMeans(twoBlobs(), cfg)
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		if !reflect.DeepEqual(got.Labels, want.Labels) {
			t.Errorf("workers=%d: labels differ: %v vs %v", workers, got.Labels, want.Labels)
		}
		if !reflect.DeepEqual(got.Centers, want.Centers) {
			t.Errorf("workers=%d: centers differ", workers)
		}
	}
}

func TestKMeans_CentersFeedTopFeatures(t *testing.T) {
	// Documents weighted on disjoint term pairs; each cluster's
	// distinctive features are its own two columns.
	m := mat.NewDense(4, 4, []float64{
		3, 1, 0, 0,
		1, 3, 0, 0,
		0, 0, 3, 1,
		0, 0, 1, 3,
	})
	res, err := KMeans(m, DefaultKMeansConfig(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top, err := TopFeatures(res.Centers, res.Labels[0], 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(top, []int{0, 1}) {
		t.Errorf("expected features [0 1] for the first cluster, got %v", top)
	}

	top, err = TopFeatures(res.Centers, res.Labels[2], 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(top, []int{2, 3}) {
		t.Errorf("expected features [2 3] for the second cluster, got %v", top)
	}
}

func TestKMeans_KEqualsRows(t *testing.T) {
	m := mat.NewDense(3, 1, []float64{0, 5, 9})
	res, err := KMeans(m, DefaultKMeansConfig(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Sizes, []int{1, 1, 1}) {
		t.Errorf("expected singleton clusters, got sizes %v", res.Sizes)
	}
	if res.Inertia != 0 {
		t.Errorf("expected zero inertia, got %v", res.Inertia)
	}
}

func TestKMeans_Validation(t *testing.T) {
	m := twoBlobs()

	if _, err := KMeans(m, KMeansConfig{K: 1}); err == nil {
		t.Error("expected error for K < 2")
	}
	if _, err := KMeans(m, KMeansConfig{K: 5}); err == nil {
		t.Error("expected error for K > document count")
	}
	if _, err := KMeans(m, KMeansConfig{K: 2, MaxIterations: -1}); err == nil {
		t.Error("expected error for negative MaxIterations")
	}
	if _, err := KMeans(m, KMeansConfig{K: 2, Workers: -2}); err == nil {
		t.Error("expected error for negative Workers")
	}
}

func TestKMeans_InputNotMutated(t *testing.T) {
	m := twoBlobs()
	want := twoBlobs()
	if _, err := KMeans(m, DefaultKMeansConfig(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mat.Equal(m, want) {
		t.Error("input matrix was mutated")
	}
}
