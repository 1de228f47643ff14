package advection

import (
	"fmt"

	"github.com/notargets/gocean/grid"
	"github.com/notargets/gocean/ops"
)

/*
	Upwind-biased vector invariant scheme. The vertical advection and
	Bernoulli terms are shared with the low order variant; only the
	vorticity term changes: instead of a centered average of zeta onto the
	velocity point, left and right biased reconstructions are computed
	independently and blended with the locally averaged transport velocity
	as the bias driver.

	The stencil kind selects the reconstructed quantity. VorticityStencil
	reconstructs the assembled vertical vorticity directly. VelocityStencil
	reconstructs the raw velocity components and forms the vorticity from
	the reconstructed values, keeping the masked derivative structure around
	the biased interpolations.
*/

type vectorInvariantUpwind struct {
	order   int
	stencil StencilKind
	width   float64
	// resolved at construction, one pair per (axis, target)
	xCenter, yCenter, xFace, yFace stencilPair
}

func newVectorInvariantUpwind(p Params) (s *vectorInvariantUpwind) {
	if p.Stencil != VelocityStencil && p.Stencil != VorticityStencil {
		panic(fmt.Errorf("unknown stencil kind %d", p.Stencil))
	}
	s = &vectorInvariantUpwind{
		order:   p.Order,
		stencil: p.Stencil,
		width:   p.BlendWidth,
	}
	s.xCenter, s.yCenter, s.xFace, s.yFace = newStencils(p.Order)
	return
}

func (s *vectorInvariantUpwind) Print() string {
	return fmt.Sprintf("%s (order %d, %s)",
		VectorInvariantUpwind.Print(), s.order, s.stencil.Print())
}

// transport velocities averaged onto the opposing velocity point

func vhatAtU(g *grid.Grid, v *grid.Field, i, j, k int) float64 {
	return ops.AvgYCenterOf(g, func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return ops.AvgXFaceOf(g, ops.Value, i, j, k, qs[0])
	}, i, j, k, v)
}

func uhatAtV(g *grid.Grid, u *grid.Field, i, j, k int) float64 {
	return ops.AvgXCenterOf(g, func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return ops.AvgYFaceOf(g, ops.Value, i, j, k, qs[0])
	}, i, j, k, u)
}

/*
	biasedZetaAtU reconstructs the vorticity in y onto the u point with one
	bias. toCenter is the face-to-center reconstruction, toFace the
	center-to-face one, both from the same side.

	VorticityStencil applies toCenter to the assembled vorticity point
	function. VelocityStencil reconstructs v onto cell centers and u onto
	vorticity faces first, then assembles the circulation from the biased
	values with the same masked derivative entries the low order path uses,
	so the zero-by-omission rule survives reconstruction.
*/
func (s *vectorInvariantUpwind) biasedZetaAtU(g *grid.Grid, toCenter, toFace reconFn,
	u, v *grid.Field, i, j, k int) float64 {
	if s.stencil == VorticityStencil {
		return toCenter(g, zetaPt, i, j, k, u, v)
	}
	reconV := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.DySpacing(i, j, k) * toCenter(g, ops.Value, i, j, k, qs[0])
	}
	reconU := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.DxSpacing(i, j, k) * toFace(g, ops.Value, i, j, k, qs[0])
	}
	return (ops.DxFCCOf(g, reconV, i, j, k, v) -
		ops.DyFCCOf(g, reconU, i, j, k, u)) / g.AreaZ(i, j, k)
}

// biasedZetaAtV mirrors biasedZetaAtU in x.
func (s *vectorInvariantUpwind) biasedZetaAtV(g *grid.Grid, toCenter, toFace reconFn,
	u, v *grid.Field, i, j, k int) float64 {
	if s.stencil == VorticityStencil {
		return toCenter(g, zetaPt, i, j, k, u, v)
	}
	reconV := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.DySpacing(i, j, k) * toFace(g, ops.Value, i, j, k, qs[0])
	}
	reconU := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
		return g.DxSpacing(i, j, k) * toCenter(g, ops.Value, i, j, k, qs[0])
	}
	return (ops.DxCFCOf(g, reconV, i, j, k, v) -
		ops.DyCFCOf(g, reconU, i, j, k, u)) / g.AreaZ(i, j, k)
}

func (s *vectorInvariantUpwind) TendencyU(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64 {
	var (
		vhat  = vhatAtU(g, v, i, j, k)
		zetaL = s.biasedZetaAtU(g, s.yCenter.left, s.yFace.left, u, v, i, j, k)
		zetaR = s.biasedZetaAtU(g, s.yCenter.right, s.yFace.right, u, v, i, j, k)
	)
	return vhat*UpwindBlend(vhat, zetaL, zetaR, s.width) -
		verticalTermU(g, u, w, i, j, k) -
		bernoulliTermU(g, u, v, i, j, k)
}

func (s *vectorInvariantUpwind) TendencyV(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64 {
	var (
		uhat  = uhatAtV(g, u, i, j, k)
		zetaL = s.biasedZetaAtV(g, s.xCenter.left, s.xFace.left, u, v, i, j, k)
		zetaR = s.biasedZetaAtV(g, s.xCenter.right, s.xFace.right, u, v, i, j, k)
	)
	return -uhat*UpwindBlend(uhat, zetaL, zetaR, s.width) -
		verticalTermV(g, v, w, i, j, k) -
		bernoulliTermV(g, u, v, i, j, k)
}
