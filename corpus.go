package doccluster

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Document is one named text in a corpus.
type Document struct {
	Name string
	Text string
}

// Corpus is an ordered collection of documents. The order is significant:
// it fixes the row order of every matrix derived from the corpus.
type Corpus []Document

// LoadDir reads every .txt file directly under dir in fsys into a corpus.
// Documents are named by file base name without the extension and appear
// in lexical filename order, so repeat loads of the same directory produce
// the same row order. Subdirectories and non-.txt files are skipped.
func LoadDir(fsys fs.FS, dir string) (Corpus, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("doccluster: reading corpus dir: %w", err)
	}

	var c Corpus
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("doccluster: reading %s: %w", e.Name(), err)
		}
		c = append(c, Document{
			Name: strings.TrimSuffix(e.Name(), ".txt"),
			Text: string(data),
		})
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("doccluster: no .txt files under %q", dir)
	}
	return c, nil
}

// FromStrings wraps raw texts as a corpus with generated names
// doc1, doc2, and so on.
func FromStrings(texts ...string) Corpus {
	c := make(Corpus, len(texts))
	for i, t := range texts {
		c[i] = Document{Name: fmt.Sprintf("doc%d", i+1), Text: t}
	}
	return c
}
