// Package pipeline runs the linear fetch-and-save sequence: prepare the
// output directory, retrieve the dataset, persist it, report progress.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/singlecell-tools/scfetch/internal/dataset"
	"github.com/singlecell-tools/scfetch/internal/h5ad"
	"github.com/singlecell-tools/scfetch/internal/registry"
	"github.com/singlecell-tools/scfetch/internal/utils"
)

// Fetcher retrieves a dataset container from a URL.
type Fetcher interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Run executes the four steps for one registry entry and returns the path
// the dataset was saved to. The starting line is printed before any network
// I/O; the completion line only after the write has succeeded. Any error
// aborts the sequence with nothing written at the destination.
func Run(ctx context.Context, out io.Writer, f Fetcher, e registry.Entry, outDir string) (string, error) {
	if err := utils.EnsureDir(outDir); err != nil {
		return "", fmt.Errorf("prepare output dir: %w", err)
	}
	savePath := filepath.Join(outDir, e.Filename)

	var ds *dataset.Dataset
	if e.Synthetic() {
		fmt.Fprintf(out, "Generating %s dataset...\n", e.Title)
		ds = e.Generate()
	} else {
		fmt.Fprintf(out, "Downloading %s dataset...\n", e.Title)
		body, err := f.Download(ctx, e.URL)
		if err != nil {
			return "", err
		}
		ds = &dataset.Dataset{Name: e.Name, Raw: body}
	}

	if ds.IsRaw() {
		if err := utils.SafeWriteFile(savePath, ds.Raw); err != nil {
			return "", err
		}
	} else {
		if err := h5ad.Write(savePath, ds); err != nil {
			return "", err
		}
	}

	fmt.Fprintf(out, "Dataset saved to %s\n", savePath)
	return savePath, nil
}
