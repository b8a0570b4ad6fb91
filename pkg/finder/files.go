package finder

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// ErrDatasetNotFound is returned when no complete vertex/edge pair has the requested name
var ErrDatasetNotFound = errors.New("dataset not found")

// ErrAmbiguousDataset is returned when more than one directory holds a dataset with the requested name
var ErrAmbiguousDataset = errors.New("ambiguous dataset")

// Dataset is a graph stored as <name>.v and <name>.e, with optional reference
// outputs named <name>-<ALGORITHM> next to them
type Dataset struct {
	Name       string
	VertexPath string
	EdgePath   string
	// Expected maps an upper-case algorithm name (BFS, PR, ...) to its reference output
	Expected map[string]string
}

// FindDatasets walks root and returns every complete vertex/edge pair, sorted by
// name. Hidden directories are skipped.
func FindDatasets(root string) ([]Dataset, error) {
	byPath := make(map[string]*Dataset)
	var others []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		stem := strings.TrimSuffix(path, ext)
		switch ext {
		case ".v":
			dataset(byPath, stem).VertexPath = path
		case ".e":
			dataset(byPath, stem).EdgePath = path
		default:
			others = append(others, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var datasets []Dataset
	for stem, ds := range byPath {
		if ds.VertexPath == "" || ds.EdgePath == "" {
			continue
		}
		for _, path := range others {
			if algorithm, ok := strings.CutPrefix(path, stem+"-"); ok && isAlgorithmSuffix(algorithm) {
				ds.Expected[algorithm] = path
			}
		}
		datasets = append(datasets, *ds)
	}

	slices.SortFunc(datasets, func(a, b Dataset) int {
		return strings.Compare(a.VertexPath, b.VertexPath)
	})
	return datasets, nil
}

// FindDataset returns the dataset called name under root. The name must be
// unique across subdirectories.
func FindDataset(root, name string) (Dataset, error) {
	datasets, err := FindDatasets(root)
	if err != nil {
		return Dataset{}, err
	}

	var matches []Dataset
	for _, ds := range datasets {
		if ds.Name == name {
			matches = append(matches, ds)
		}
	}

	switch len(matches) {
	case 0:
		return Dataset{}, fmt.Errorf("%w: %q in %s", ErrDatasetNotFound, name, root)
	case 1:
		return matches[0], nil
	default:
		paths := make([]string, len(matches))
		for i, ds := range matches {
			paths[i] = ds.VertexPath
		}
		return Dataset{}, fmt.Errorf("%w: %q matches %s", ErrAmbiguousDataset, name, strings.Join(paths, ", "))
	}
}

func dataset(byPath map[string]*Dataset, stem string) *Dataset {
	ds, ok := byPath[stem]
	if !ok {
		ds = &Dataset{Name: filepath.Base(stem), Expected: make(map[string]string)}
		byPath[stem] = ds
	}
	return ds
}

func isAlgorithmSuffix(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
