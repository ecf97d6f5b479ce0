package dataset

import "math/rand"

// Dataset is an in-memory annotated data matrix: observations (cells) by
// features (genes), plus metadata. It comes in one of two forms.
//
// Fetched datasets carry the downloaded .h5ad container verbatim in Raw and
// are treated as opaque: the bytes are persisted unchanged, never inspected
// or mutated. Generated datasets populate the matrix fields instead and are
// encoded into a container at write time.
type Dataset struct {
	Name string

	// Raw is the fetched annotated-matrix container, if any.
	Raw []byte

	// Matrix form: X is observations x features, Labels holds one group
	// label per observation.
	X      [][]float64
	Labels []int32
}

// IsRaw reports whether the dataset holds a fetched container rather than an
// in-memory matrix.
func (d *Dataset) IsRaw() bool { return len(d.Raw) > 0 }

// Blobs generates an isotropic Gaussian-blob dataset: nObs observations of
// nFeatures features drawn around centers cluster centers. The same seed
// always yields the same matrix. Fewer than one center is clamped to one.
func Blobs(nObs, nFeatures, centers int, seed int64) *Dataset {
	if centers < 1 {
		centers = 1
	}
	r := rand.New(rand.NewSource(seed))

	ctrs := make([][]float64, centers)
	for c := range ctrs {
		ctr := make([]float64, nFeatures)
		for j := range ctr {
			ctr[j] = -10 + 20*r.Float64()
		}
		ctrs[c] = ctr
	}

	x := make([][]float64, nObs)
	labels := make([]int32, nObs)
	for i := range x {
		c := i % centers
		labels[i] = int32(c)
		row := make([]float64, nFeatures)
		for j := range row {
			row[j] = ctrs[c][j] + r.NormFloat64()
		}
		x[i] = row
	}
	return &Dataset{Name: "blobs", X: x, Labels: labels}
}
