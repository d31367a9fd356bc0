package dispersion

import "sync"

// ComputeBatch returns one wavelength sequence per centroid, in input order.
// When EnableParallel is set, sources are evaluated concurrently.
// Results are identical either way.
func (c *Calculator) ComputeBatch(centroids []Centroid) [][]float64 {
	output := make([][]float64, len(centroids))

	// Sequential processing (default or when parallel disabled)
	if !c.config.EnableParallel || len(centroids) <= 1 {
		for i, centroid := range centroids {
			output[i] = c.Compute(centroid)
		}
		return output
	}

	// Parallel processing: each goroutine owns one output slot
	var wg sync.WaitGroup
	for i := range centroids {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			output[idx] = c.Compute(centroids[idx])
		}(i)
	}
	wg.Wait()

	return output
}

// Solutions evaluates the model for each centroid.
func Solutions(centroids []Centroid) []Solution {
	out := make([]Solution, len(centroids))
	for i, c := range centroids {
		out[i] = NewSolution(c)
	}
	return out
}
