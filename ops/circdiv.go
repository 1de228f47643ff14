package ops

import "github.com/notargets/gocean/grid"

// Flux style point functions used by the integral operators below. Each
// evaluates a face-normal transport pre-multiplied by the face metric.

func lenX(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return g.DxSpacing(i, j, k) * qs[0].At(i, j, k)
}
func lenY(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return g.DySpacing(i, j, k) * qs[0].At(i, j, k)
}
func areaXU(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return g.AreaX(i, j, k) * qs[0].At(i, j, k)
}
func areaYV(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return g.AreaY(i, j, k) * qs[0].At(i, j, k)
}
func areaZW(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return g.AreaZ(i, j, k) * qs[0].At(i, j, k)
}

// advective tracer fluxes: face area times face-normal velocity times the
// tracer interpolated to the face. qs = (velocity, tracer).
func tracerFluxX(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return g.AreaX(i, j, k) * qs[0].At(i, j, k) * axF(g, i, j, k, Value, qs[1])
}
func tracerFluxY(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return g.AreaY(i, j, k) * qs[0].At(i, j, k) * ayF(g, i, j, k, Value, qs[1])
}
func tracerFluxZ(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return g.AreaZ(i, j, k) * qs[0].At(i, j, k) * azF(g, i, j, k, Value, qs[1])
}

/*
	Circulation is the discrete line integral of (u,v) around the vertical
	vorticity cell at (Face,Face,Center):

		delta_x(Dy*v) - delta_y(Dx*u)

	built from masked derivatives, so the circulation is exactly zero
	wherever the vorticity cell touches solid geometry.
*/
func Circulation(g *grid.Grid, u, v *grid.Field, i, j, k int) float64 {
	return DxFFCOf(g, lenY, i, j, k, v) - DyFFCOf(g, lenX, i, j, k, u)
}

// VorticityZ is the discrete Stokes theorem: circulation over the area of
// the vorticity cell.
func VorticityZ(g *grid.Grid, u, v *grid.Field, i, j, k int) float64 {
	return Circulation(g, u, v, i, j, k) / g.AreaZ(i, j, k)
}

/*
	HorizontalDivergence is the discrete divergence theorem over the
	horizontal projection of cell (i,j,k), at (Center,Center,Center):

		[delta_x(Dy*u) + delta_y(Dx*v)] / Az

	The masked derivatives guarantee no spurious flux is integrated across a
	solid face.
*/
func HorizontalDivergence(g *grid.Grid, u, v *grid.Field, i, j, k int) float64 {
	return (DxCCCOf(g, lenY, i, j, k, u) + DyCCCOf(g, lenX, i, j, k, v)) /
		g.AreaZ(i, j, k)
}

// Divergence is the full 3-D velocity divergence at the cell center.
func Divergence(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64 {
	return (DxCCCOf(g, areaXU, i, j, k, u) +
		DyCCCOf(g, areaYV, i, j, k, v) +
		DzCCCOf(g, areaZW, i, j, k, w)) / g.Volume(i, j, k)
}

// TracerFluxDivergence is the divergence of the advective flux of the
// cell-centered tracer c by (u,v,w), with centered face interpolation. This
// is the flux-divergence operator the conservative advection forms delegate
// to; the tendency of c is its negation.
func TracerFluxDivergence(g *grid.Grid, u, v, w, c *grid.Field, i, j, k int) float64 {
	return (DxCCCOf(g, tracerFluxX, i, j, k, u, c) +
		DyCCCOf(g, tracerFluxY, i, j, k, v, c) +
		DzCCCOf(g, tracerFluxZ, i, j, k, w, c)) / g.Volume(i, j, k)
}
