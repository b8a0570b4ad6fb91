package finder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
}

func TestFindDatasets(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"example-directed.v", "example-directed.e",
		"example-directed-BFS", "example-directed-PR", "example-directed-notes.txt",
		"graphs/road.v", "graphs/road.e",
		"orphan.v",
		".cache/hidden.v", ".cache/hidden.e",
	)

	datasets, err := FindDatasets(root)
	if err != nil {
		t.Fatalf("FindDatasets() error = %v", err)
	}

	if len(datasets) != 2 {
		t.Fatalf("FindDatasets() found %d datasets, expected 2: %v", len(datasets), datasets)
	}

	ds := datasets[0]
	if ds.Name != "example-directed" {
		t.Errorf("Expected example-directed first, got %q", ds.Name)
	}
	if len(ds.Expected) != 2 {
		t.Errorf("Expected BFS and PR reference outputs, got %v", ds.Expected)
	}
	if ds.Expected["BFS"] != filepath.Join(root, "example-directed-BFS") {
		t.Errorf("Unexpected BFS reference %q", ds.Expected["BFS"])
	}

	if datasets[1].Name != "road" || datasets[1].EdgePath != filepath.Join(root, "graphs", "road.e") {
		t.Errorf("Unexpected second dataset %+v", datasets[1])
	}
}

func TestFindDataset(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "g.v", "g.e")

	ds, err := FindDataset(root, "g")
	if err != nil {
		t.Fatalf("FindDataset() error = %v", err)
	}
	if ds.VertexPath != filepath.Join(root, "g.v") {
		t.Errorf("Unexpected vertex path %q", ds.VertexPath)
	}

	if _, err := FindDataset(root, "missing"); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("Expected ErrDatasetNotFound, got %v", err)
	}
	if _, err := FindDataset(filepath.Join(root, "nope"), "g"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestFindDatasetAmbiguous(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a/road.v", "a/road.e", "b/road.v", "b/road.e", "b/city.v", "b/city.e")

	_, err := FindDataset(root, "road")
	if !errors.Is(err, ErrAmbiguousDataset) {
		t.Fatalf("Expected ErrAmbiguousDataset, got %v", err)
	}
	for _, want := range []string{filepath.Join(root, "a", "road.v"), filepath.Join(root, "b", "road.v")} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %s in error %q", want, err.Error())
		}
	}

	if _, err := FindDataset(root, "city"); err != nil {
		t.Errorf("FindDataset() error = %v", err)
	}
}
