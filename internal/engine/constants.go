package engine

// Detector geometry
const (
	// DetectorColumns is the width of the WFC3 IR science array in pixels.
	// Reference pixels are excluded.
	DetectorColumns = 1014

	// lastColumn is the index of the final science column.
	lastColumn = DetectorColumns - 1

	// windowDivisor centres a subarray on the full frame.
	windowDivisor = 2
)
