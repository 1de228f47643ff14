package ops

import "github.com/notargets/gocean/grid"

/*
	Two point averaging family, the discrete interpolation operators that
	move staggered quantities between locations. Offsets mirror the
	derivative family: averaging to a Face reads operand nodes {0,-1},
	averaging to a Center reads {0,+1}.

	These are unmasked: activity handling is the masked derivative family's
	job and the advection assembly composes the two accordingly.
*/

func axF(g *grid.Grid, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	return 0.5 * (fn(g, i, j, k, qs...) + fn(g, i-1, j, k, qs...))
}
func axC(g *grid.Grid, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	return 0.5 * (fn(g, i+1, j, k, qs...) + fn(g, i, j, k, qs...))
}
func ayF(g *grid.Grid, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	return 0.5 * (fn(g, i, j, k, qs...) + fn(g, i, j-1, k, qs...))
}
func ayC(g *grid.Grid, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	return 0.5 * (fn(g, i, j+1, k, qs...) + fn(g, i, j, k, qs...))
}
func azF(g *grid.Grid, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	return 0.5 * (fn(g, i, j, k, qs...) + fn(g, i, j, k-1, qs...))
}
func azC(g *grid.Grid, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	return 0.5 * (fn(g, i, j, k+1, qs...) + fn(g, i, j, k, qs...))
}

// Plain field averages, named Avg<axis><result location along axis>.
// Orthogonal placements pass through unchanged, so unlike the derivatives a
// single entry point per (axis, to) pair serves all orthogonal triples.

func AvgXFace(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return axF(g, i, j, k, Value, q)
}
func AvgXCenter(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return axC(g, i, j, k, Value, q)
}
func AvgYFace(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return ayF(g, i, j, k, Value, q)
}
func AvgYCenter(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return ayC(g, i, j, k, Value, q)
}
func AvgZFace(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return azF(g, i, j, k, Value, q)
}
func AvgZCenter(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return azC(g, i, j, k, Value, q)
}

// Transform variants for composed operators.

func AvgXFaceOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return axF(g, i, j, k, fn, qs...)
}
func AvgXCenterOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return axC(g, i, j, k, fn, qs...)
}
func AvgYFaceOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return ayF(g, i, j, k, fn, qs...)
}
func AvgYCenterOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return ayC(g, i, j, k, fn, qs...)
}
func AvgZFaceOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return azF(g, i, j, k, fn, qs...)
}
func AvgZCenterOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return azC(g, i, j, k, fn, qs...)
}
