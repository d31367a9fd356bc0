package dispersion

import "github.com/tphakala/go-grism-dispersion/internal/engine"

// WFC3 IR subarray widths in pixels.
const (
	// Subarray64 is the IRSUB64 / GRISM64 readout width.
	Subarray64 = 64

	// Subarray128 is the IRSUB128 / GRISM128 readout width.
	Subarray128 = 128

	// Subarray256 is the IRSUB256 / GRISM256 readout width.
	Subarray256 = 256

	// Subarray512 is the IRSUB512 / GRISM512 readout width.
	Subarray512 = 512

	// SubarrayFull is the full science array, reference pixels excluded.
	SubarrayFull = engine.DetectorColumns
)

// DefaultSubarray is used when no width is given.
const DefaultSubarray = Subarray256

// DetectorColumns is the number of science columns on the WFC3 IR detector.
const DetectorColumns = engine.DetectorColumns

// standardSubarrays lists the widths accepted in strict mode, narrowest first.
var standardSubarrays = [...]int{
	Subarray64,
	Subarray128,
	Subarray256,
	Subarray512,
	SubarrayFull,
}
