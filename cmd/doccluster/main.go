// Command doccluster runs the document-clustering walkthrough over a
// directory of .txt files: vectorize, weight, cluster with k-means and
// print each cluster's members and most distinctive terms. Optionally
// also prints the 2-D MDS map and the hierarchical merge tree.
//
// Usage:
//
//	doccluster [flags] <corpus-dir>
//
// Examples:
//
//	doccluster essays/
//	doccluster -k 3 -t 8 --stem essays/
//	doccluster --mds --tree --linkage average essays/
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/TrevorS/doccluster"
)

var opts struct {
	clusters      int
	top           int
	weighting     string
	metric        string
	linkage       string
	dims          int
	seed          int64
	stem          bool
	keepStopwords bool
	keepNumbers   bool
	showMDS       bool
	showTree      bool
}

func main() {
	root := &cobra.Command{
		Use:   "doccluster [flags] <corpus-dir>",
		Short: "Cluster a directory of text documents and label the clusters",
		Long: `Cluster a directory of .txt documents.

The pipeline builds a document-term matrix, weights it, partitions the
documents with k-means and prints each cluster's members together with
the terms that most distinguish it from the average of the other
clusters. The --mds and --tree flags additionally print a 2-D map of the
documents and the hierarchical merge tree.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.Flags()
	f.IntVarP(&opts.clusters, "clusters", "k", 2, "number of k-means clusters")
	f.IntVarP(&opts.top, "top", "t", 5, "distinctive terms to print per cluster")
	f.StringVarP(&opts.weighting, "weighting", "w", "tfidf", "matrix weighting: raw, frequency or tfidf")
	f.StringVarP(&opts.metric, "metric", "m", "cosine", "distance metric: euclidean or cosine")
	f.StringVar(&opts.linkage, "linkage", "average", "merge-tree linkage: single, complete or average")
	f.IntVar(&opts.dims, "dims", 2, "MDS embedding dimensions")
	f.Int64Var(&opts.seed, "seed", 1, "k-means seed")
	f.BoolVar(&opts.stem, "stem", false, "apply Porter stemming")
	f.BoolVar(&opts.keepStopwords, "keep-stopwords", false, "keep stopwords in the vocabulary")
	f.BoolVar(&opts.keepNumbers, "keep-numbers", false, "keep purely numeric tokens")
	f.BoolVar(&opts.showMDS, "mds", false, "print MDS document coordinates")
	f.BoolVar(&opts.showTree, "tree", false, "print the hierarchical merge tree")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	corpus, err := doccluster.LoadDir(os.DirFS(args[0]), ".")
	if err != nil {
		return err
	}

	vcfg := doccluster.DefaultVectorizerConfig()
	vcfg.Stem = opts.stem
	vcfg.KeepStopwords = opts.keepStopwords
	vcfg.KeepNumbers = opts.keepNumbers

	dtm, err := doccluster.BuildMatrix(corpus, vcfg)
	if err != nil {
		return err
	}
	weighted, err := dtm.Weighted(doccluster.Weighting(opts.weighting))
	if err != nil {
		return err
	}

	fmt.Printf("%d documents, %d terms (%s weighting)\n\n",
		weighted.Rows(), weighted.Cols(), weighted.Weighting())

	var metric doccluster.DistanceMetric
	switch opts.metric {
	case "euclidean":
		metric = doccluster.EuclideanMetric{}
	case "cosine":
		metric = doccluster.CosineMetric{}
	default:
		return fmt.Errorf("unknown metric %q (want euclidean or cosine)", opts.metric)
	}

	if opts.showMDS || opts.showTree {
		dist := doccluster.PairwiseParallel(weighted.M, metric, 0)
		if opts.showMDS {
			if err := printMDS(weighted, dist); err != nil {
				return err
			}
		}
		if opts.showTree {
			if err := printTree(weighted, dist); err != nil {
				return err
			}
		}
	}

	return printKMeans(weighted)
}

func printMDS(dtm *doccluster.DocTermMatrix, dist *mat.SymDense) error {
	coords, _, err := doccluster.MDS(dist, opts.dims)
	if err != nil {
		return err
	}

	fmt.Println("MDS coordinates:")
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for i, name := range dtm.Docs {
		fmt.Fprintf(tw, "  %s", name)
		for j := 0; j < opts.dims; j++ {
			fmt.Fprintf(tw, "\t%+.4f", coords.At(i, j))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func printTree(dtm *doccluster.DocTermMatrix, dist *mat.SymDense) error {
	tree, err := doccluster.Agglomerate(dist, doccluster.Linkage(opts.linkage))
	if err != nil {
		return err
	}

	// Merged cluster IDs start at the document count; lower IDs name the
	// documents themselves.
	name := func(id int) string {
		if id < len(dtm.Docs) {
			return dtm.Docs[id]
		}
		return fmt.Sprintf("#%d", id)
	}

	fmt.Printf("Merge tree (%s linkage):\n", opts.linkage)
	for i, row := range tree {
		fmt.Printf("  #%d = %s + %s at %.4f (%d docs)\n",
			len(dtm.Docs)+i, name(int(row[0])), name(int(row[1])), row[2], int(row[3]))
	}
	fmt.Println()
	return nil
}

func printKMeans(dtm *doccluster.DocTermMatrix) error {
	cfg := doccluster.DefaultKMeansConfig(opts.clusters)
	cfg.Seed = opts.seed

	km, err := doccluster.KMeans(dtm.M, cfg)
	if err != nil {
		return err
	}

	top := opts.top
	if top > len(dtm.Terms) {
		top = len(dtm.Terms)
	}

	fmt.Printf("K-means (k=%d, %d iterations, inertia %.4f):\n",
		opts.clusters, km.Iterations, km.Inertia)
	for c := 0; c < opts.clusters; c++ {
		var members []string
		for i, lab := range km.Labels {
			if lab == c {
				members = append(members, dtm.Docs[i])
			}
		}
		sort.Strings(members)

		terms, err := doccluster.TopTerms(dtm.Terms, km.Centers, c, top)
		if err != nil {
			return err
		}

		fmt.Printf("  cluster %d (%d docs): %s\n", c, km.Sizes[c], strings.Join(members, ", "))
		fmt.Printf("    distinctive terms: %s\n", strings.Join(terms, ", "))
	}
	return nil
}
