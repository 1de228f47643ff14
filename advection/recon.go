package advection

import (
	"fmt"

	"github.com/notargets/gocean/grid"
	"github.com/notargets/gocean/ops"
)

/*
	Biased reconstruction stencils. Each returns a candidate value at a
	reconstruction point from one side of it: left biased stencils lean on
	upstream nodes for positive transport, right biased ones mirror them.
	First order is donor cell; third order is the upwind-biased parabolic
	reconstruction. Higher orders slot in here without touching the
	assembly, which only consumes the (left, right) candidate pair.

	Two reconstruction targets appear, matching the staggered layout:
	face-to-center (operand nodes are faces bounding the target center,
	nearest at offsets {0,+1}) and center-to-face (operand cells straddle
	the target face, nearest at offsets {-1,0}).
*/

// reconFn produces one biased candidate from a composable point function
// evaluated at the stencil nodes.
type reconFn func(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64

// stencilPair bundles the left and right biased reconstructions for one
// (axis, target) combination, resolved once at scheme construction.
type stencilPair struct {
	left, right reconFn
}

// third order upwind-biased weights for the three-node stencils
const (
	w0 = -1. / 8.
	w1 = 6. / 8.
	w2 = 3. / 8.
)

// face-to-center along y: target is center j, faces j (below) and j+1
// (above) are the nearest operands.

func leftY1Center(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return fn(g, i, j, k, qs...)
}
func rightY1Center(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return fn(g, i, j+1, k, qs...)
}
func leftY3Center(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return w0*fn(g, i, j-1, k, qs...) + w1*fn(g, i, j, k, qs...) + w2*fn(g, i, j+1, k, qs...)
}
func rightY3Center(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return w2*fn(g, i, j, k, qs...) + w1*fn(g, i, j+1, k, qs...) + w0*fn(g, i, j+2, k, qs...)
}

// face-to-center along x

func leftX1Center(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return fn(g, i, j, k, qs...)
}
func rightX1Center(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return fn(g, i+1, j, k, qs...)
}
func leftX3Center(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return w0*fn(g, i-1, j, k, qs...) + w1*fn(g, i, j, k, qs...) + w2*fn(g, i+1, j, k, qs...)
}
func rightX3Center(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return w2*fn(g, i, j, k, qs...) + w1*fn(g, i+1, j, k, qs...) + w0*fn(g, i+2, j, k, qs...)
}

// center-to-face along y: target is face j, cells j-1 (below) and j
// (above) are the nearest operands.

func leftY1Face(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return fn(g, i, j-1, k, qs...)
}
func rightY1Face(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return fn(g, i, j, k, qs...)
}
func leftY3Face(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return w0*fn(g, i, j-2, k, qs...) + w1*fn(g, i, j-1, k, qs...) + w2*fn(g, i, j, k, qs...)
}
func rightY3Face(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return w2*fn(g, i, j-1, k, qs...) + w1*fn(g, i, j, k, qs...) + w0*fn(g, i, j+1, k, qs...)
}

// center-to-face along x

func leftX1Face(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return fn(g, i-1, j, k, qs...)
}
func rightX1Face(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return fn(g, i, j, k, qs...)
}
func leftX3Face(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return w0*fn(g, i-2, j, k, qs...) + w1*fn(g, i-1, j, k, qs...) + w2*fn(g, i, j, k, qs...)
}
func rightX3Face(g *grid.Grid, fn ops.PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return w2*fn(g, i-1, j, k, qs...) + w1*fn(g, i, j, k, qs...) + w0*fn(g, i+1, j, k, qs...)
}

func newStencils(order int) (xCenter, yCenter, xFace, yFace stencilPair) {
	switch order {
	case 1:
		xCenter = stencilPair{leftX1Center, rightX1Center}
		yCenter = stencilPair{leftY1Center, rightY1Center}
		xFace = stencilPair{leftX1Face, rightX1Face}
		yFace = stencilPair{leftY1Face, rightY1Face}
	case 3:
		xCenter = stencilPair{leftX3Center, rightX3Center}
		yCenter = stencilPair{leftY3Center, rightY3Center}
		xFace = stencilPair{leftX3Face, rightX3Face}
		yFace = stencilPair{leftY3Face, rightY3Face}
	default:
		panic(fmt.Errorf("unsupported reconstruction order %d, have {1, 3}", order))
	}
	return
}
