package advection

import (
	"github.com/notargets/gocean/grid"
	"github.com/notargets/gocean/ops"
)

/*
	Vector invariant momentum advection. The nonlinear term decomposes into
	three independently computed, additively combined pieces:

	  du/dt += +zeta3 * vhat  -  (w du/dz)  -  d(K)/dx
	  dv/dt += -zeta3 * uhat  -  (w dv/dz)  -  d(K)/dy

	with K the discrete kinetic energy head. The antisymmetric +zeta*vhat /
	-zeta*uhat pairing makes the vorticity term inject zero net kinetic
	energy over a closed or periodic domain.

	The low order variant below averages the vorticity between its two
	defining locations; the upwind variant (upwind.go) swaps that average
	for a blend of biased reconstructions.
*/

type vectorInvariant struct{}

func (vectorInvariant) Print() string { return VectorInvariant.Print() }

// zetaPt is the vertical vorticity at (F,F,C) as a composable point
// function; qs = (u, v).
func zetaPt(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return ops.VorticityZ(g, qs[0], qs[1], i, j, k)
}

// zeta times the cross velocity averaged onto the vorticity point.
// qs = (u, v).
func zetaVx(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return zetaPt(g, i, j, k, qs...) * ops.AvgXFaceOf(g, ops.Value, i, j, k, qs[1])
}
func zetaUy(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return zetaPt(g, i, j, k, qs...) * ops.AvgYFaceOf(g, ops.Value, i, j, k, qs[0])
}

// vertical flux of horizontal momentum at the (F,C,F) / (C,F,F) flux
// points: area-weighted w brought to the flux point times the masked
// vertical shear. qs = (u or v, w).
func vertFluxU(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	azw := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.AreaZ(i, j, k) * qs[0].At(i, j, k)
	}
	return ops.AvgXFaceOf(g, azw, i, j, k, qs[1]) *
		ops.DzFCFOf(g, ops.Value, i, j, k, qs[0])
}
func vertFluxV(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	azw := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.AreaZ(i, j, k) * qs[0].At(i, j, k)
	}
	return ops.AvgYFaceOf(g, azw, i, j, k, qs[1]) *
		ops.DzCFFOf(g, ops.Value, i, j, k, qs[0])
}

// kineticEnergy is the Bernoulli head proxy at cell centers: each velocity
// component squared in place, averaged to the center, half the sum.
// qs = (u, v).
func kineticEnergy(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	sq := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		v := qs[0].At(i, j, k)
		return v * v
	}
	return 0.5 * (ops.AvgXCenterOf(g, sq, i, j, k, qs[0]) +
		ops.AvgYCenterOf(g, sq, i, j, k, qs[1]))
}

// Shared term assemblies. The vorticity term is the only piece the scheme
// variants disagree on.

func vorticityTermU(g *grid.Grid, u, v *grid.Field, i, j, k int) float64 {
	return ops.AvgYCenterOf(g, zetaVx, i, j, k, u, v)
}

func vorticityTermV(g *grid.Grid, u, v *grid.Field, i, j, k int) float64 {
	return -ops.AvgXCenterOf(g, zetaUy, i, j, k, u, v)
}

func verticalTermU(g *grid.Grid, u, w *grid.Field, i, j, k int) float64 {
	return ops.AvgZCenterOf(g, vertFluxU, i, j, k, u, w) / g.AreaZ(i, j, k)
}

func verticalTermV(g *grid.Grid, v, w *grid.Field, i, j, k int) float64 {
	return ops.AvgZCenterOf(g, vertFluxV, i, j, k, v, w) / g.AreaZ(i, j, k)
}

func bernoulliTermU(g *grid.Grid, u, v *grid.Field, i, j, k int) float64 {
	return ops.DxFCCOf(g, kineticEnergy, i, j, k, u, v) / g.DxSpacing(i, j, k)
}

func bernoulliTermV(g *grid.Grid, u, v *grid.Field, i, j, k int) float64 {
	return ops.DyCFCOf(g, kineticEnergy, i, j, k, u, v) / g.DySpacing(i, j, k)
}

func (vectorInvariant) TendencyU(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64 {
	return vorticityTermU(g, u, v, i, j, k) -
		verticalTermU(g, u, w, i, j, k) -
		bernoulliTermU(g, u, v, i, j, k)
}

func (vectorInvariant) TendencyV(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64 {
	return vorticityTermV(g, u, v, i, j, k) -
		verticalTermV(g, v, w, i, j, k) -
		bernoulliTermV(g, u, v, i, j, k)
}
