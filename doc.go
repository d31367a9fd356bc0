// Package dispersion converts detector columns on HST WFC3 IR grism
// exposures into wavelengths.
//
// The wavelength solution is the field-dependent dispersion model of
// Kuntschner et al. (2009) as refit by Wilkins et al. (2014). Two
// coefficients are evaluated at the direct-image centroid of a source:
//
//	p0 = DLDP0[0] + DLDP0[1]*xc
//	p1 = DLDP1[0] + DLDP1[1]*xc + DLDP1[2]*yc + DLDP1[3]*xc² + DLDP1[4]*xc*yc + DLDP1[5]*yc²
//
// and each detector column i maps to
//
//	wavelength[i] = p0 + (i - xc)*p1
//
// in angstrom. The result is cropped to the subarray window centred on the
// 1014-column science array.
//
// # Quick Start
//
// For a single source on a GRISM256 exposure:
//
//	wl, err := dispersion.Compute(xc, yc, dispersion.Subarray256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For many sources on one exposure, build a calculator once:
//
//	calc, err := dispersion.New(&dispersion.Config{
//	    Subarray:       dispersion.Subarray512,
//	    Strict:         true,
//	    EnableParallel: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	spectra := calc.ComputeBatch(centroids)
//
// # Aperture Offsets
//
// The direct image and the grism exposure must share an aperture. When they
// do not, shift the centroid measured on the direct image before calling
// into this package. For a direct image taken with IRSUB256 and a grism
// exposure taken with GRISM256:
//
//	xc := xc0 - (522 - 410)
//	yc := yc0 - (522 - 532)
//
// Offsets for other apertures are published by STScI at
// http://www.stsci.edu/hst/observatory/apertures/wfc3.html.
//
// # Subarrays
//
// Any positive width is accepted by [Compute]; widths at or above
// [SubarrayFull] return the whole frame. [Config.Strict] restricts a
// [Calculator] to the WFC3 readout sizes listed by [StandardSubarrays].
// A non-positive width is rejected with [ErrInvalidSubarray].
//
// # Thread Safety
//
// All functions are free of side effects, and a [Calculator] is immutable
// after [New], so both may be used from any number of goroutines.
package dispersion
