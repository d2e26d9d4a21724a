package doccluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Weighting selects how document-term matrix entries are scaled.
type Weighting string

const (
	// WeightRaw leaves entries as raw term counts.
	WeightRaw Weighting = "raw"
	// WeightFrequency divides each row by its total count, so entries
	// are within-document relative frequencies.
	WeightFrequency Weighting = "frequency"
	// WeightTfidf multiplies the relative frequency by ln(N/df), the
	// natural-log inverse document frequency. Terms occurring in every
	// document weigh zero.
	WeightTfidf Weighting = "tfidf"
)

// DocTermMatrix is a document-feature matrix: one row per document, one
// column per vocabulary term. Terms is the shared feature space; its
// ordering is fixed at construction and aligned across every row, cluster
// center and diff vector derived from the matrix.
type DocTermMatrix struct {
	Docs  []string
	Terms []string
	M     *mat.Dense

	index     map[string]int
	weighting Weighting
}

// Rows returns the number of documents.
func (d *DocTermMatrix) Rows() int {
	r, _ := d.M.Dims()
	return r
}

// Cols returns the number of vocabulary terms.
func (d *DocTermMatrix) Cols() int {
	_, c := d.M.Dims()
	return c
}

// Row returns the feature vector of document i, backed by the matrix.
// Callers must not modify it.
func (d *DocTermMatrix) Row(i int) []float64 {
	return d.M.RawRowView(i)
}

// TermIndex returns the column of term, or -1 when the term is not in the
// vocabulary.
func (d *DocTermMatrix) TermIndex(term string) int {
	j, ok := d.index[term]
	if !ok {
		return -1
	}
	return j
}

// Weighting reports the scheme the matrix entries currently carry.
func (d *DocTermMatrix) Weighting() Weighting {
	return d.weighting
}

// Weighted returns a new matrix with entries rescaled under w. The
// receiver must hold raw counts (weighting schemes do not compose) and is
// never modified. Documents whose tokens were all filtered out keep a
// zero row.
func (d *DocTermMatrix) Weighted(w Weighting) (*DocTermMatrix, error) {
	if d.weighting != WeightRaw {
		return nil, fmt.Errorf("doccluster: cannot reweight a %q matrix, start from raw counts", d.weighting)
	}

	nd, nt := d.M.Dims()
	out := mat.NewDense(nd, nt, nil)

	switch w {
	case WeightRaw:
		out.Copy(d.M)

	case WeightFrequency:
		for i := 0; i < nd; i++ {
			row := d.M.RawRowView(i)
			total := floats.Sum(row)
			if total == 0 {
				continue
			}
			dst := out.RawRowView(i)
			for j, v := range row {
				dst[j] = v / total
			}
		}

	case WeightTfidf:
		idf := make([]float64, nt)
		for j := 0; j < nt; j++ {
			df := 0.0
			for i := 0; i < nd; i++ {
				if d.M.At(i, j) > 0 {
					df++
				}
			}
			if df > 0 {
				idf[j] = math.Log(float64(nd) / df)
			}
		}
		for i := 0; i < nd; i++ {
			row := d.M.RawRowView(i)
			total := floats.Sum(row)
			if total == 0 {
				continue
			}
			dst := out.RawRowView(i)
			for j, v := range row {
				dst[j] = v / total * idf[j]
			}
		}

	default:
		return nil, fmt.Errorf("doccluster: unknown weighting %q", w)
	}

	return &DocTermMatrix{
		Docs:      d.Docs,
		Terms:     d.Terms,
		M:         out,
		index:     d.index,
		weighting: w,
	}, nil
}
