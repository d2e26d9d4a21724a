package doccluster

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestLoadDir_ReadsTxtFilesInOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"essays/b.txt":     {Data: []byte("second text")},
		"essays/a.txt":     {Data: []byte("first text")},
		"essays/notes.md":  {Data: []byte("ignored")},
		"essays/sub/c.txt": {Data: []byte("ignored too")},
	}

	c, err := LoadDir(fsys, "essays")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := make([]string, len(c))
	for i, d := range c {
		names[i] = d.Name
	}
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", names)
	}
	if c[0].Text != "first text" || c[1].Text != "second text" {
		t.Errorf("document texts misassigned: %+v", c)
	}
}

func TestLoadDir_MissingDir(t *testing.T) {
	if _, err := LoadDir(fstest.MapFS{}, "nope"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoadDir_NoTxtFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/readme.md": {Data: []byte("x")},
	}
	if _, err := LoadDir(fsys, "docs"); err == nil {
		t.Error("expected error when directory holds no .txt files")
	}
}

func TestFromStrings_GeneratesNames(t *testing.T) {
	c := FromStrings("one", "two")
	want := Corpus{
		{Name: "doc1", Text: "one"},
		{Name: "doc2", Text: "two"},
	}
	if !reflect.DeepEqual(c, want) {
		t.Errorf("expected %+v, got %+v", want, c)
	}
}
