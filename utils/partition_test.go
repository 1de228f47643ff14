package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Test bucket size distribution
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 10000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Buckets tile the index range with no gaps or overlaps
		for np := 1; np <= 16; np++ {
			pm := NewPartitionMap(np, 100)
			next := 0
			for n := 0; n < np; n++ {
				min, max := pm.GetBucketRange(n)
				assert.Equal(t, next, min)
				next = max
			}
			assert.Equal(t, 100, next)
		}
	}
}

func TestRKCoefficients(t *testing.T) {
	// One low storage step of dy/dt = y over dt must match exp(dt) to the
	// order of the integrator
	var (
		y, resid float64 = 1, 0
		dt               = 0.1
	)
	for INTRK := 0; INTRK < 5; INTRK++ {
		resid = RK4a[INTRK]*resid + dt*y
		y += RK4b[INTRK] * resid
	}
	assert.InDelta(t, math.Exp(dt), y, 1.e-7)
	assert.Equal(t, 5, len(RK4a))
	assert.Equal(t, 5, len(RK4b))
	assert.Equal(t, 5, len(RK4c))
	assert.Equal(t, 0., RK4a[0])
}
