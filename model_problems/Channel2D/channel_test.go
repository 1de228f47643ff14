package Channel2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gocean/InputParameters"
	"github.com/notargets/gocean/grid"
	"github.com/notargets/gocean/ops"
)

func testInput() *InputParameters.InputParametersChannel {
	return &InputParameters.InputParametersChannel{
		Title:          "Channel Test",
		CFL:            0.3,
		FinalTime:      0.05,
		Nx:             32,
		Ny:             32,
		Nz:             1,
		Lx:             1,
		Ly:             1,
		Lz:             1,
		Scheme:         "upwind",
		Order:          3,
		Stencil:        "vorticity",
		ObstacleXMin:   0.4,
		ObstacleXMax:   0.6,
		ObstacleYMin:   0.4,
		ObstacleYMax:   0.6,
		ParallelDegree: 4,
		LogFrequency:   100,
	}
}

func TestChannelSetup(t *testing.T) {
	c := NewChannel(testInput(), 0, false)
	{ // Obstacle cells are classified solid and the mask reaches every
		// staggered position adjacent to them
		g := c.G
		assert.True(t, g.Mask.NumSolid() > 0)
		solidFound := false
		c.C.EachInterior(func(i, j, k int) {
			if g.Inactive(grid.CCC, i, j, k) {
				solidFound = true
				assert.Equal(t, 0., c.U.At(i, j, k))
				assert.Equal(t, 0., c.V.At(i, j, k))
			}
		})
		assert.True(t, solidFound)
	}
	{ // The initial flow is discretely divergence free at every fluid cell
		g := c.G
		c.C.EachInterior(func(i, j, k int) {
			if g.Inactive(grid.CCC, i, j, k) {
				return
			}
			assert.True(t, near(0, ops.HorizontalDivergence(g, c.U, c.V, i, j, k), 1.e-12))
		})
		assert.True(t, near(0, c.DivergenceSum(), 1.e-11))
	}
	{ // No flow crosses the obstacle boundary
		g := c.G
		c.U.EachInterior(func(i, j, k int) {
			if g.Inactive(grid.FCC, i, j, k) {
				assert.Equal(t, 0., c.U.At(i, j, k))
			}
			if g.Inactive(grid.CFC, i, j, k) {
				assert.Equal(t, 0., c.V.At(i, j, k))
			}
		})
	}
	{ // Nonzero flow away from the obstacle
		assert.True(t, c.MaxSpeed() > 0)
	}
}

func TestTracerConservation(t *testing.T) {
	// A uniform tracer advected through the steady divergence free flow
	// around the obstacle must stay uniform: min, max and mean all pinned
	// to the initial value
	c := NewChannel(testInput(), 0, false)
	c.Run(false)
	cmin, cmax, cmean := c.TracerStats()
	assert.True(t, near(1, cmin, 1.e-10))
	assert.True(t, near(1, cmax, 1.e-10))
	assert.True(t, near(1, cmean, 1.e-10))
}

func TestMomentumDiagnostics(t *testing.T) {
	{ // The configured scheme produces finite momentum tendencies
		c := NewChannel(testInput(), 2, false)
		duMax, dvMax := c.MomentumTendencyMax()
		assert.False(t, math.IsNaN(duMax) || math.IsInf(duMax, 0))
		assert.False(t, math.IsNaN(dvMax) || math.IsInf(dvMax, 0))
		assert.True(t, duMax > 0)
		assert.True(t, dvMax > 0)
	}
	{ // Disabling advection zeroes them
		ip := testInput()
		ip.Scheme = "none"
		c := NewChannel(ip, 2, false)
		duMax, dvMax := c.MomentumTendencyMax()
		assert.Equal(t, 0., duMax)
		assert.Equal(t, 0., dvMax)
	}
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
