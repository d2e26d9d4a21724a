package doccluster

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
	"gonum.org/v1/gonum/mat"
)

// VectorizerConfig controls how raw text becomes a document-term matrix.
// Every normalization step can be toggled independently. The zero value
// applies the full pipeline (lower-casing, punctuation stripping, stopword
// and number removal) without stemming and without a length cutoff; start
// with [DefaultVectorizerConfig] for the usual settings.
type VectorizerConfig struct {
	// KeepCase disables lower-casing of the input text.
	KeepCase bool

	// KeepPunctuation disables replacing punctuation and symbol runes
	// with spaces before tokenization.
	KeepPunctuation bool

	// KeepStopwords disables removal of the built-in English stopword
	// list (and ExtraStopwords).
	KeepStopwords bool

	// KeepNumbers disables dropping purely numeric tokens.
	KeepNumbers bool

	// Stem reduces each surviving token to its Porter stem, merging
	// inflected forms ("clusters", "clustering" -> "cluster") into one
	// matrix column. Default: off.
	Stem bool

	// MinTermLength drops tokens shorter than this many runes.
	// 0 keeps every token. Default (via DefaultVectorizerConfig): 2.
	MinTermLength int

	// ExtraStopwords are removed in addition to the built-in list when
	// stopword removal is active. Matched case-insensitively.
	ExtraStopwords []string
}

// DefaultVectorizerConfig returns a VectorizerConfig with the usual
// settings: full normalization pipeline, no stemming, single-rune tokens
// dropped.
func DefaultVectorizerConfig() VectorizerConfig {
	return VectorizerConfig{MinTermLength: 2}
}

func validateVectorizerConfig(cfg *VectorizerConfig) error {
	if cfg.MinTermLength < 0 {
		return fmt.Errorf("doccluster: MinTermLength must be >= 0, got %d", cfg.MinTermLength)
	}
	return nil
}

// BuildMatrix tokenizes every document under cfg and assembles the raw
// count document-term matrix. The vocabulary is the sorted set of tokens
// surviving the pipeline across the whole corpus; it fixes the feature
// ordering shared by all downstream vectors. Returns an error when the
// corpus is empty or the pipeline leaves no tokens at all.
func BuildMatrix(c Corpus, cfg VectorizerConfig) (*DocTermMatrix, error) {
	if err := validateVectorizerConfig(&cfg); err != nil {
		return nil, err
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("doccluster: empty corpus")
	}

	stop := stopwordSet(cfg.ExtraStopwords)

	docTokens := make([][]string, len(c))
	vocab := make(map[string]struct{})
	for i, d := range c {
		docTokens[i] = tokenize(d.Text, cfg, stop)
		for _, t := range docTokens[i] {
			vocab[t] = struct{}{}
		}
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("doccluster: no terms survived the vectorizer pipeline")
	}

	terms := make([]string, 0, len(vocab))
	for t := range vocab {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for j, t := range terms {
		index[t] = j
	}

	m := mat.NewDense(len(c), len(terms), nil)
	for i, toks := range docTokens {
		for _, t := range toks {
			j := index[t]
			m.Set(i, j, m.At(i, j)+1)
		}
	}

	docs := make([]string, len(c))
	for i, d := range c {
		docs[i] = d.Name
	}
	return &DocTermMatrix{
		Docs:      docs,
		Terms:     terms,
		M:         m,
		index:     index,
		weighting: WeightRaw,
	}, nil
}

// tokenize runs one document through the configured pipeline and returns
// its surviving tokens in text order.
func tokenize(text string, cfg VectorizerConfig, stop map[string]struct{}) []string {
	if !cfg.KeepCase {
		text = strings.ToLower(text)
	}
	if !cfg.KeepPunctuation {
		text = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				return ' '
			}
			return r
		}, text)
	}

	var tokens []string
	for _, tok := range strings.Fields(text) {
		if cfg.MinTermLength > 0 && len([]rune(tok)) < cfg.MinTermLength {
			continue
		}
		if !cfg.KeepNumbers && isNumeric(tok) {
			continue
		}
		if !cfg.KeepStopwords {
			if _, ok := stop[tok]; ok {
				continue
			}
		}
		if cfg.Stem {
			tok = porterstemmer.StemString(tok)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// isNumeric reports whether every rune of tok is a digit.
func isNumeric(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(tok) > 0
}
