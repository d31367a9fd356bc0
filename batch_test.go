package dispersion

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldCentroids returns a grid of sources across the detector.
func fieldCentroids(step float64) []Centroid {
	var out []Centroid
	for y := 0.0; y < DetectorColumns; y += step {
		for x := 0.0; x < DetectorColumns; x += step {
			out = append(out, Centroid{X: x, Y: y})
		}
	}
	return out
}

// TestComputeBatchParallel tests that parallel processing produces correct results.
func TestComputeBatchParallel(t *testing.T) {
	centroids := fieldCentroids(101.3)

	seq, err := New(&Config{Subarray: Subarray256})
	require.NoError(t, err)
	par, err := New(&Config{Subarray: Subarray256, EnableParallel: true})
	require.NoError(t, err)

	outSeq := seq.ComputeBatch(centroids)
	outPar := par.ComputeBatch(centroids)

	require.Len(t, outSeq, len(centroids))
	if diff := cmp.Diff(outSeq, outPar); diff != "" {
		t.Errorf("parallel batch differs from sequential (-seq +par):\n%s", diff)
	}

	for i, c := range centroids {
		if diff := cmp.Diff(seq.Compute(c), outSeq[i]); diff != "" {
			t.Fatalf("batch[%d] differs from single compute (-want +got):\n%s", i, diff)
		}
	}
}

func TestComputeBatchEmpty(t *testing.T) {
	calc, err := New(&Config{EnableParallel: true})
	require.NoError(t, err)

	assert.Empty(t, calc.ComputeBatch(nil))

	single := calc.ComputeBatch([]Centroid{{507, 507}})
	require.Len(t, single, 1)
	assert.Len(t, single[0], DefaultSubarray)
}

// TestComputeConcurrent calls the package-level functions from many
// goroutines; run with -race.
func TestComputeConcurrent(t *testing.T) {
	const workers = 16

	want, err := Compute(507, 507, SubarrayFull)
	require.NoError(t, err)

	calc, err := NewFullFrame()
	require.NoError(t, err)

	results := make([][]float64, 2*workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(2)
		go func(slot int) {
			defer wg.Done()
			results[slot], _ = Compute(507, 507, SubarrayFull)
		}(2 * w)
		go func(slot int) {
			defer wg.Done()
			results[slot] = calc.Compute(Centroid{507, 507})
		}(2*w + 1)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("result %d differs (-want +got):\n%s", i, diff)
		}
	}
}

func TestSolutions(t *testing.T) {
	centroids := fieldCentroids(337.7)
	sols := Solutions(centroids)
	require.Len(t, sols, len(centroids))

	for i, s := range sols {
		assert.Equal(t, NewSolution(centroids[i]), s)
	}
}
