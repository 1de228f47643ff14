package advection

import (
	"github.com/notargets/gocean/grid"
	"github.com/notargets/gocean/ops"
)

/*
	Flux form (conservative) momentum advection: the tendency is the
	negated divergence of the advective momentum flux, assembled from the
	masked flux derivatives. Mathematically equivalent to the vector
	invariant form, discretely distinct.

	For u at (F,C,C) the three flux components live at (C,C,C), (F,F,C) and
	(F,C,F); each is the area-weighted transporting velocity brought to the
	flux point times the transported component brought there too.
*/

type fluxForm struct{}

func (fluxForm) Print() string { return FluxForm.Print() }

// qs = (u, v, w) throughout.

func uFluxX(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	ax := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.AreaX(i, j, k) * qs[0].At(i, j, k)
	}
	return ops.AvgXCenterOf(g, ax, i, j, k, qs[0]) *
		ops.AvgXCenterOf(g, ops.Value, i, j, k, qs[0])
}

func uFluxY(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	ay := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.AreaY(i, j, k) * qs[0].At(i, j, k)
	}
	return ops.AvgXFaceOf(g, ay, i, j, k, qs[1]) *
		ops.AvgYFaceOf(g, ops.Value, i, j, k, qs[0])
}

func uFluxZ(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	az := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.AreaZ(i, j, k) * qs[0].At(i, j, k)
	}
	return ops.AvgXFaceOf(g, az, i, j, k, qs[2]) *
		ops.AvgZFaceOf(g, ops.Value, i, j, k, qs[0])
}

func vFluxX(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	ax := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.AreaX(i, j, k) * qs[0].At(i, j, k)
	}
	return ops.AvgYFaceOf(g, ax, i, j, k, qs[0]) *
		ops.AvgXFaceOf(g, ops.Value, i, j, k, qs[1])
}

func vFluxY(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	ay := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.AreaY(i, j, k) * qs[0].At(i, j, k)
	}
	return ops.AvgYCenterOf(g, ay, i, j, k, qs[1]) *
		ops.AvgYCenterOf(g, ops.Value, i, j, k, qs[1])
}

func vFluxZ(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	az := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.AreaZ(i, j, k) * qs[0].At(i, j, k)
	}
	return ops.AvgYFaceOf(g, az, i, j, k, qs[2]) *
		ops.AvgZFaceOf(g, ops.Value, i, j, k, qs[1])
}

func (fluxForm) TendencyU(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64 {
	return -(ops.DxFCCOf(g, uFluxX, i, j, k, u, v, w) +
		ops.DyFCCOf(g, uFluxY, i, j, k, u, v, w) +
		ops.DzFCCOf(g, uFluxZ, i, j, k, u, v, w)) / g.Volume(i, j, k)
}

func (fluxForm) TendencyV(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64 {
	return -(ops.DxCFCOf(g, vFluxX, i, j, k, u, v, w) +
		ops.DyCFCOf(g, vFluxY, i, j, k, u, v, w) +
		ops.DzCFCOf(g, vFluxZ, i, j, k, u, v, w)) / g.Volume(i, j, k)
}
