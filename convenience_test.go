package dispersion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-grism-dispersion/internal/testutil"
)

func TestComputeDefault(t *testing.T) {
	out := ComputeDefault(507, 507)
	require.Len(t, out, DefaultSubarray)

	want, err := Compute(507, 507, DefaultSubarray)
	require.NoError(t, err)
	testutil.AssertBitIdentical(t, want, out)
}

func TestComputeFloat32(t *testing.T) {
	out64, err := Compute(300, 700, Subarray128)
	require.NoError(t, err)

	out32, err := ComputeFloat32(300, 700, Subarray128)
	require.NoError(t, err)
	require.Len(t, out32, Subarray128)

	for i := range out32 {
		assert.Equal(t, float32(out64[i]), out32[i], "index %d", i)
		// float32 keeps ~7 significant digits.
		assert.InDelta(t, out64[i], float64(out32[i]), math.Abs(out64[i])*1e-6)
	}
}

func TestComputeFloat32Invalid(t *testing.T) {
	out, err := ComputeFloat32(300, 700, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSubarray)
	assert.Nil(t, out)
}

func TestNewForSubarray(t *testing.T) {
	for _, n := range StandardSubarrays() {
		calc, err := NewForSubarray(n)
		require.NoError(t, err, "subarray %d", n)
		assert.Equal(t, n, calc.Subarray())
		assert.Len(t, calc.Compute(Centroid{507, 507}), n)
	}

	_, err := NewForSubarray(300)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewForSubarray(-64)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewFullFrame(t *testing.T) {
	calc, err := NewFullFrame()
	require.NoError(t, err)

	start, width := calc.Window()
	assert.Zero(t, start)
	assert.Equal(t, DetectorColumns, width)
}

func TestCalculatorComputeFloat32(t *testing.T) {
	calc, err := NewForSubarray(Subarray64)
	require.NoError(t, err)

	c := Centroid{X: 512, Y: 128}
	want, err := ComputeFloat32(c.X, c.Y, Subarray64)
	require.NoError(t, err)
	assert.Equal(t, want, calc.ComputeFloat32(c))
}
