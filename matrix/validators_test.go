// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/stretchr/testify/assert"
)

func TestValidateFlat(t *testing.T) {
	t.Parallel()

	assert.NoError(t, matrix.ValidateFlat(nil, 0))
	assert.NoError(t, matrix.ValidateFlat(make([]float32, 9), 3))
	assert.ErrorIs(t, matrix.ValidateFlat(make([]float32, 8), 3), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateFlat(nil, -1), matrix.ErrBadShape)
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	buf := make([]float32, 10)
	other := make([]float32, 10)

	tests := []struct {
		name string
		a, b []float32
		want bool
	}{
		{"same slice", buf, buf, true},
		{"prefix and suffix share one cell", buf[:5], buf[4:], true},
		{"adjacent halves", buf[:5], buf[5:], false},
		{"distinct allocations", buf, other, false},
		{"empty never aliases", buf[:0], buf, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matrix.Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.want, matrix.Overlaps(tc.b, tc.a), "symmetric")
		})
	}
}

func TestValidateStepOperands(t *testing.T) {
	t.Parallel()

	d := MustDense(t, 3)
	r := MustDense(t, 3)

	assert.NoError(t, matrix.ValidateStepOperands(r, d))
	assert.ErrorIs(t, matrix.ValidateStepOperands(nil, d), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateStepOperands(r, nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateStepOperands(MustDense(t, 2), d), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateStepOperands(d, d), matrix.ErrAliased)

	shared, err := matrix.NewDenseFrom(3, d.Data())
	assert.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateStepOperands(shared, d), matrix.ErrAliased,
		"distinct Dense values over one buffer still alias")
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	sym := MustFrom(t, [][]float32{
		{0, 2, nan},
		{2, 0, inf},
		{nan, inf, 0},
	})
	assert.NoError(t, matrix.ValidateSymmetric(sym))

	asym := MustFrom(t, [][]float32{{0, 1}, {2, 0}})
	assert.ErrorIs(t, matrix.ValidateSymmetric(asym), matrix.ErrAsymmetry)
	assert.ErrorIs(t, matrix.ValidateSymmetric(nil), matrix.ErrNilMatrix)
}
