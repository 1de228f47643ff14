package advection

import (
	"github.com/notargets/gocean/grid"
	"github.com/notargets/gocean/ops"
)

// TracerTendency is the advective tendency of a cell-centered tracer:
// the negated divergence of its advective flux by (u,v,w). Conservative by
// construction; with a divergence-free velocity field a uniform tracer
// stays uniform, immersed geometry included.
func TracerTendency(g *grid.Grid, u, v, w, c *grid.Field, i, j, k int) float64 {
	return -ops.TracerFluxDivergence(g, u, v, w, c, i, j, k)
}
