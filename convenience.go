package dispersion

// ComputeDefault returns the wavelength sequence for a GRISM256 exposure.
func ComputeDefault(xc, yc float64) []float64 {
	out, err := Compute(xc, yc, DefaultSubarray)
	if err != nil {
		// DefaultSubarray is positive.
		panic(err)
	}
	return out
}

// ComputeFloat32 is like Compute but returns float32 wavelengths.
// The model is evaluated in float64 and narrowed afterwards.
func ComputeFloat32(xc, yc float64, subarray int) ([]float32, error) {
	output64, err := Compute(xc, yc, subarray)
	if err != nil {
		return nil, err
	}
	return narrow(output64), nil
}

// NewForSubarray creates a calculator for one of the WFC3 readout widths.
func NewForSubarray(subarray int) (*Calculator, error) {
	return New(&Config{
		Subarray: subarray,
		Strict:   true,
	})
}

// NewFullFrame creates a calculator covering all detector columns.
func NewFullFrame() (*Calculator, error) {
	return NewForSubarray(SubarrayFull)
}

// ComputeFloat32 is like Compute but returns float32 wavelengths.
func (c *Calculator) ComputeFloat32(centroid Centroid) []float32 {
	return narrow(c.Compute(centroid))
}

func narrow(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}
