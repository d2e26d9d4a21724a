package doccluster_test

import (
	"fmt"

	"github.com/TrevorS/doccluster"
)

// Label the third of three clusters by its two most distinctive features.
// Features 2 and 3 carry all of that cluster's weight, and the tie between
// them breaks toward the lower feature index.
func ExampleTopTerms() {
	terms := []string{"ale", "bard", "cask", "dirge"}
	centers := [][]float64{
		{4, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 4, 4},
	}

	top, err := doccluster.TopTerms(terms, centers, 2, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(top)
	// Output:
	// [cask dirge]
}

// Run the similarity side of the pipeline over an in-memory corpus: build
// a tf-idf matrix, compute cosine dissimilarities, and cut the merge tree
// into two groups. The animal documents share vocabulary with each other
// and none with the market documents, so the cut recovers the two topics.
func Example() {
	corpus := doccluster.FromStrings(
		"The quick brown fox jumps over the lazy dog.",
		"A fox and a dog chase through the quick brush.",
		"Stocks rallied as the market closed strong today.",
		"The market fell after stocks opened weak.",
	)

	dtm, err := doccluster.BuildMatrix(corpus, doccluster.DefaultVectorizerConfig())
	if err != nil {
		panic(err)
	}
	tfidf, err := dtm.Weighted(doccluster.WeightTfidf)
	if err != nil {
		panic(err)
	}

	dist := doccluster.Pairwise(tfidf.M, doccluster.CosineMetric{})
	tree, err := doccluster.Agglomerate(dist, doccluster.SingleLinkage)
	if err != nil {
		panic(err)
	}
	labels, err := doccluster.CutTree(tree, len(corpus), 2)
	if err != nil {
		panic(err)
	}

	fmt.Println(labels)
	// Output:
	// [0 0 1 1]
}

// Partition a feature matrix with k-means and label each cluster by its
// distinctive features. No checked output: kmeans++ seeding is
// deterministic for a fixed seed but the cluster numbering is an
// implementation detail.
func ExampleKMeans() {
	dtm, err := doccluster.BuildMatrix(doccluster.FromStrings(
		"ale ale cask bard",
		"ale cask cask tavern",
		"dirge lament dirge organ",
		"dirge organ lament lament",
	), doccluster.DefaultVectorizerConfig())
	if err != nil {
		panic(err)
	}

	km, err := doccluster.KMeans(dtm.M, doccluster.DefaultKMeansConfig(2))
	if err != nil {
		panic(err)
	}

	for c := 0; c < 2; c++ {
		terms, err := doccluster.TopTerms(dtm.Terms, km.Centers, c, 2)
		if err != nil {
			panic(err)
		}
		fmt.Printf("cluster %d: %v\n", c, terms)
	}
}
