package registry

import (
	"fmt"
	"sort"

	"github.com/singlecell-tools/scfetch/internal/dataset"
)

// DefaultDataset is the dataset fetched when none is named.
const DefaultDataset = "pbmc3k"

// Entry describes a named public single-cell dataset: where it comes from
// and the filename it is saved under. Synthetic entries are generated
// locally instead of downloaded.
type Entry struct {
	Name        string
	Title       string
	URL         string
	Filename    string
	Description string
	Generate    func() *dataset.Dataset
}

// Synthetic reports whether the entry is generated locally.
func (e Entry) Synthetic() bool { return e.Generate != nil }

var entries = map[string]Entry{
	"pbmc3k": {
		Name:        "pbmc3k",
		Title:       "PBMC 3k",
		URL:         "https://falexwolf.de/data/pbmc3k_raw.h5ad",
		Filename:    "pbmc3k.h5ad",
		Description: "3k peripheral blood mononuclear cells from 10x Genomics, raw counts",
	},
	"pbmc3k-processed": {
		Name:        "pbmc3k-processed",
		Title:       "PBMC 3k (processed)",
		URL:         "https://raw.githubusercontent.com/chanzuckerberg/cellxgene/main/example-dataset/pbmc3k.h5ad",
		Filename:    "pbmc3k_processed.h5ad",
		Description: "PBMC 3k with filtering, normalization, clustering and embeddings applied",
	},
	"pbmc68k-reduced": {
		Name:        "pbmc68k-reduced",
		Title:       "PBMC 68k (reduced)",
		URL:         "https://raw.githubusercontent.com/scverse/scanpy/main/src/scanpy/datasets/10x_pbmc68k_reduced.h5ad",
		Filename:    "pbmc68k_reduced.h5ad",
		Description: "subsampled and processed 68k PBMCs from 10x Genomics",
	},
	"blobs": {
		Name:        "blobs",
		Title:       "blobs",
		Filename:    "blobs.h5ad",
		Description: "synthetic Gaussian-blob matrix, 640 observations x 11 features, 5 centers",
		Generate: func() *dataset.Dataset {
			return dataset.Blobs(640, 11, 5, 0)
		},
	},
}

// Lookup resolves a dataset name to its registry entry.
func Lookup(name string) (Entry, error) {
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown dataset %q (see 'scfetch list')", name)
	}
	return e, nil
}

// All returns every registry entry sorted by name.
func All() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
