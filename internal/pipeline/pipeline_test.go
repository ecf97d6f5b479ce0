package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/singlecell-tools/scfetch/internal/dataset"
	"github.com/singlecell-tools/scfetch/internal/registry"
)

type fetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetcherFunc) Download(ctx context.Context, url string) ([]byte, error) { return f(ctx, url) }

func pbmc3kEntry() registry.Entry {
	return registry.Entry{
		Name:     "pbmc3k",
		Title:    "PBMC 3k",
		URL:      "https://example.invalid/pbmc3k_raw.h5ad",
		Filename: "pbmc3k.h5ad",
	}
}

func TestRunCreatesDirAndWritesDataset(t *testing.T) {
	base := t.TempDir()
	outDir := filepath.Join(base, "data", "raw")
	payload := []byte("annotated matrix container")

	var buf bytes.Buffer
	f := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		// The starting message must be printed strictly before the fetch.
		if !strings.Contains(buf.String(), "Downloading PBMC 3k dataset...") {
			t.Error("fetch began before the starting message was printed")
		}
		return payload, nil
	})

	savePath, err := Run(context.Background(), &buf, f, pbmc3kEntry(), outDir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if savePath != filepath.Join(outDir, "pbmc3k.h5ad") {
		t.Fatalf("unexpected save path: %s", savePath)
	}
	b, err := os.ReadFile(savePath)
	if err != nil {
		t.Fatalf("read saved dataset: %v", err)
	}
	if len(b) == 0 || string(b) != string(payload) {
		t.Fatalf("saved content mismatch: %q", b)
	}

	out := buf.String()
	start := strings.Index(out, "Downloading PBMC 3k dataset...")
	done := strings.Index(out, "Dataset saved to "+savePath)
	if start < 0 || done < 0 {
		t.Fatalf("missing status lines in output:\n%s", out)
	}
	if done < start {
		t.Fatalf("completion message printed before starting message:\n%s", out)
	}
}

func TestRunOverwritesPreviousFetch(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "data", "raw")
	e := pbmc3kEntry()

	first := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return []byte("first fetch"), nil
	})
	second := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return []byte("second fetch"), nil
	})

	if _, err := Run(context.Background(), &bytes.Buffer{}, first, e, outDir); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	savePath, err := Run(context.Background(), &bytes.Buffer{}, second, e, outDir)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one file at destination, got %d", len(entries))
	}
	b, err := os.ReadFile(savePath)
	if err != nil {
		t.Fatalf("read saved dataset: %v", err)
	}
	if string(b) != "second fetch" {
		t.Fatalf("expected second fetch to win, got %q", b)
	}
}

func TestRunFetchFailureWritesNothing(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "data", "raw")
	e := pbmc3kEntry()
	fetchErr := errors.New("remote unavailable")

	var buf bytes.Buffer
	f := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return nil, fetchErr
	})
	_, err := Run(context.Background(), &buf, f, e, outDir)
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error to propagate, got %v", err)
	}
	if _, serr := os.Stat(filepath.Join(outDir, e.Filename)); !os.IsNotExist(serr) {
		t.Fatalf("expected no file at destination after fetch failure, stat err=%v", serr)
	}
	if strings.Contains(buf.String(), "Dataset saved to") {
		t.Fatalf("completion message printed despite failure:\n%s", buf.String())
	}
}

func TestRunSyntheticDataset(t *testing.T) {
	outDir := t.TempDir()
	e := registry.Entry{
		Name:     "blobs",
		Title:    "blobs",
		Filename: "blobs.h5ad",
		Generate: func() *dataset.Dataset { return dataset.Blobs(16, 4, 2, 0) },
	}

	var buf bytes.Buffer
	savePath, err := Run(context.Background(), &buf, nil, e, outDir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	info, err := os.Stat(savePath)
	if err != nil {
		t.Fatalf("stat container: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("container is empty")
	}
	if !strings.Contains(buf.String(), "Generating blobs dataset...") {
		t.Fatalf("missing generation message:\n%s", buf.String())
	}
}
