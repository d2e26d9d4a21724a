// Package doccluster is a walkthrough of document similarity,
// multidimensional scaling and clustering over small text corpora.
//
// The pipeline runs corpus -> document-term matrix -> weighting ->
// distances, and from there into either a 2-D map, a merge tree, or a
// flat k-means partition labeled by its most distinctive terms:
//
//	corpus, _ := doccluster.LoadDir(os.DirFS("essays"), ".")
//	dtm, _ := doccluster.BuildMatrix(corpus, doccluster.DefaultVectorizerConfig())
//	tfidf, _ := dtm.Weighted(doccluster.WeightTfidf)
//
//	dist := doccluster.Pairwise(tfidf.M, doccluster.CosineMetric{})
//	coords, _, _ := doccluster.MDS(dist, 2)              // 2-D document map
//	tree, _ := doccluster.Agglomerate(dist, doccluster.AverageLinkage)
//
//	km, _ := doccluster.KMeans(tfidf.M, doccluster.DefaultKMeansConfig(3))
//	terms, _ := doccluster.TopTerms(tfidf.Terms, km.Centers, 0, 5)
//	// terms are the five terms that most distinguish cluster 0
//
// # Cluster labeling
//
// [TopFeatures] characterizes a cluster not by its raw highest-weight
// terms, which tend to be generically frequent, but by the terms whose
// mean weight most exceeds the unweighted average of all other cluster
// centers. It is a pure function of the center matrix and may be called
// concurrently for different clusters.
//
// Every step is deterministic: vocabulary ordering is sorted, k-means is
// seeded, and ranking ties break on the original feature order, so repeat
// runs over the same corpus agree exactly.
package doccluster
