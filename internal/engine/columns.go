// Package engine evaluates the linear dispersion relation over detector
// columns. Fill writes into caller-provided buffers and does not allocate.
package engine

import (
	"fmt"
	"sync"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-grism-dispersion/internal/calib"
)

// columnRamp holds the column indices 0..DetectorColumns-1 as float64.
// Built once and never written afterwards.
var columnRamp = sync.OnceValue(func() []float64 {
	return floats.Span(make([]float64, DetectorColumns), 0, lastColumn)
})

// Columns returns a copy of the full-frame column indices.
func Columns() []float64 {
	out := make([]float64, DetectorColumns)
	copy(out, columnRamp())
	return out
}

// Window returns the first column and width of a subarray centred on the
// full frame. Widths at or above DetectorColumns select the full frame;
// non-positive widths give an empty window.
func Window(subarray int) (start, width int) {
	if subarray >= DetectorColumns {
		return 0, DetectorColumns
	}
	if subarray <= 0 {
		return (DetectorColumns - subarray) / windowDivisor, 0
	}
	return (DetectorColumns - subarray) / windowDivisor, subarray
}

// Fill writes the wavelength of columns start..start+len(dst)-1 into dst:
//
//	dst[k] = P0 + (start + k - xc) * P1
//
// The offset, slope and zero-point are applied as separate passes so each
// step rounds exactly once. Fill panics if the range leaves the detector.
func Fill(dst []float64, start int, xc float64, c calib.Coefficients) {
	n := len(dst)
	if n == 0 {
		return
	}
	if start < 0 || start+n > DetectorColumns {
		panic(fmt.Sprintf("engine: column range [%d, %d) outside detector", start, start+n))
	}

	copy(dst, columnRamp()[start:start+n])
	floats.AddConst(-xc, dst)
	f64.Scale(dst, dst, c.P1)
	floats.AddConst(c.P0, dst)
}

// Wavelengths allocates and fills the window for one centroid.
func Wavelengths(xc, yc float64, subarray int) []float64 {
	start, width := Window(subarray)
	out := make([]float64, width)
	Fill(out, start, xc, calib.Evaluate(xc, yc))
	return out
}
