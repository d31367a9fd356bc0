package dispersion

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-grism-dispersion/internal/calib"
	"github.com/tphakala/go-grism-dispersion/internal/engine"
)

// Centroid is a direct-image source position in detector pixels.
// It must already be shifted to the grism aperture.
type Centroid struct {
	X float64
	Y float64
}

// Coefficients are the field-dependent dispersion terms for one centroid:
// P0 is the wavelength at the centroid column (angstrom) and P1 the
// dispersion (angstrom per pixel).
type Coefficients = calib.Coefficients

// Common errors returned by the calculator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid dispersion configuration")

	// ErrInvalidSubarray indicates a non-positive subarray width.
	ErrInvalidSubarray = errors.New("invalid subarray size")

	// ErrBufferTooSmall indicates the output buffer is too small.
	ErrBufferTooSmall = errors.New("output buffer too small")
)

// Compute returns the wavelength, in angstrom, of every detector column in
// the subarray window centred on the full frame, for a source at (xc, yc).
//
// Widths at or above SubarrayFull return all 1014 columns. The centroid is
// not range checked; positions off the detector are extrapolated.
func Compute(xc, yc float64, subarray int) ([]float64, error) {
	if subarray <= 0 {
		return nil, fmt.Errorf("%w: %d (must be positive)", ErrInvalidSubarray, subarray)
	}
	return engine.Wavelengths(xc, yc, subarray), nil
}

// FieldCoefficients evaluates the dispersion model at (xc, yc).
func FieldCoefficients(xc, yc float64) Coefficients {
	return calib.Evaluate(xc, yc)
}

// Window returns the first detector column and the width of a subarray
// readout. Non-positive widths give an empty window.
func Window(subarray int) (start, width int) {
	return engine.Window(subarray)
}

// IsStandardSubarray reports whether n is a WFC3 IR readout width.
func IsStandardSubarray(n int) bool {
	for _, s := range standardSubarrays {
		if s == n {
			return true
		}
	}
	return false
}

// StandardSubarrays returns the WFC3 IR readout widths, narrowest first.
func StandardSubarrays() []int {
	out := make([]int, len(standardSubarrays))
	copy(out, standardSubarrays[:])
	return out
}

// Solution is the dispersion model evaluated for one source.
type Solution struct {
	Centroid
	Coefficients
}

// NewSolution evaluates the model at c.
func NewSolution(c Centroid) Solution {
	return Solution{
		Centroid:     c,
		Coefficients: calib.Evaluate(c.X, c.Y),
	}
}

// At returns the wavelength at a detector column. Fractional columns are
// allowed.
func (s Solution) At(column float64) float64 {
	return s.P0 + float64((column-s.X)*s.P1)
}

// Dispersion returns the slope in angstrom per pixel.
func (s Solution) Dispersion() float64 {
	return s.P1
}

// Column returns the (fractional) detector column at which the given
// wavelength falls. It is the inverse of At and returns NaN for a zero slope.
func (s Solution) Column(wavelength float64) float64 {
	if s.P1 == 0 {
		return math.NaN()
	}
	return s.X + (wavelength-s.P0)/s.P1
}

// Config holds calculator configuration.
type Config struct {
	// Subarray is the readout width in pixels.
	// Set to 0 to use DefaultSubarray.
	Subarray int

	// Strict rejects widths that are not WFC3 IR readout sizes.
	Strict bool

	// EnableParallel evaluates batches concurrently, one goroutine per source.
	// Has no effect on single-source calls.
	EnableParallel bool
}

// subarray returns the effective width.
func (c *Config) subarray() int {
	if c.Subarray == 0 {
		return DefaultSubarray
	}
	return c.Subarray
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Subarray < 0 {
		return fmt.Errorf("%w: subarray must not be negative, got %d", ErrInvalidConfig, c.Subarray)
	}

	if c.Strict && !IsStandardSubarray(c.subarray()) {
		return fmt.Errorf("%w: subarray %d is not a WFC3 readout width %v",
			ErrInvalidConfig, c.subarray(), standardSubarrays)
	}

	return nil
}

// Calculator computes wavelength sequences for a fixed subarray.
// It is immutable after New and safe for concurrent use.
type Calculator struct {
	config Config
	start  int
	width  int
}

// New creates a calculator with the specified configuration.
// The configuration is copied; later changes to config have no effect.
func New(config *Config) (*Calculator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := *config
	cfg.Subarray = config.subarray()
	start, width := engine.Window(cfg.Subarray)

	return &Calculator{
		config: cfg,
		start:  start,
		width:  width,
	}, nil
}

// Subarray returns the configured readout width.
func (c *Calculator) Subarray() int {
	return c.config.Subarray
}

// Window returns the first detector column and width of the output.
func (c *Calculator) Window() (start, width int) {
	return c.start, c.width
}

// Compute returns the wavelength sequence for one source.
func (c *Calculator) Compute(centroid Centroid) []float64 {
	out := make([]float64, c.width)
	c.fill(out, centroid)
	return out
}

// ComputeInto writes the wavelength sequence for one source into dst and
// returns the number of values written. dst must hold at least Window's
// width values; extra capacity is left untouched.
func (c *Calculator) ComputeInto(dst []float64, centroid Centroid) (int, error) {
	if len(dst) < c.width {
		return 0, fmt.Errorf("%w: need %d values, got %d", ErrBufferTooSmall, c.width, len(dst))
	}
	c.fill(dst[:c.width], centroid)
	return c.width, nil
}

func (c *Calculator) fill(dst []float64, centroid Centroid) {
	engine.Fill(dst, c.start, centroid.X, calib.Evaluate(centroid.X, centroid.Y))
}
