// Package h5ad encodes matrix-form datasets into HDF5 containers.
package h5ad

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/scigolib/hdf5"

	"github.com/singlecell-tools/scfetch/internal/dataset"
)

// Write encodes a matrix-form dataset as an HDF5 container at path, writing
// through a temp file and renaming into place. The container holds /X as a
// 2-D float64 dataset (observations x features, row-major) and /labels as a
// 1-D int32 dataset with one group label per observation.
func Write(path string, d *dataset.Dataset) error {
	if len(d.X) == 0 {
		return errors.New("dataset matrix is empty")
	}
	tmp := path + ".tmp-" + uuid.NewString()
	if err := encode(tmp, d); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

func encode(path string, d *dataset.Dataset) error {
	rows := len(d.X)
	cols := len(d.X[0])

	fw, err := hdf5.CreateForWrite(path, hdf5.CreateTruncate)
	if err != nil {
		return fmt.Errorf("create container: %w", err)
	}

	flat := make([]float64, 0, rows*cols)
	for _, row := range d.X {
		if len(row) != cols {
			_ = fw.Close()
			return fmt.Errorf("ragged matrix: row has %d features, want %d", len(row), cols)
		}
		flat = append(flat, row...)
	}
	x, err := fw.CreateDataset("/X", hdf5.Float64, []uint64{uint64(rows), uint64(cols)})
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("create /X: %w", err)
	}
	if err := x.Write(flat); err != nil {
		_ = fw.Close()
		return fmt.Errorf("write /X: %w", err)
	}

	if len(d.Labels) > 0 {
		labels, err := fw.CreateDataset("/labels", hdf5.Int32, []uint64{uint64(len(d.Labels))})
		if err != nil {
			_ = fw.Close()
			return fmt.Errorf("create /labels: %w", err)
		}
		if err := labels.Write(d.Labels); err != nil {
			_ = fw.Close()
			return fmt.Errorf("write /labels: %w", err)
		}
	}

	if err := fw.Close(); err != nil {
		return fmt.Errorf("close container: %w", err)
	}
	return nil
}
