package advection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gocean/grid"
	"github.com/notargets/gocean/ops"
)

func periodicGrid() *grid.Grid {
	return grid.NewGrid(16, 16, 1, 3, 1, 1, 1, grid.Periodic, grid.Periodic, grid.Flat)
}

// divergence free horizontal flow from a streamfunction at corners
func testFlow(g *grid.Grid) (u, v, w *grid.Field) {
	var (
		Lx  = float64(g.Nx) * g.Dx
		Ly  = float64(g.Ny) * g.Dy
		psi = grid.NewField(g, grid.FFC)
	)
	psi.EachInterior(func(i, j, k int) {
		x, y := g.XF(i), g.YF(j)
		psi.Set(i, j, k,
			0.1*math.Sin(2*math.Pi*x/Lx)*math.Cos(2*math.Pi*y/Ly))
	})
	grid.FillHalo(psi)
	u = grid.NewField(g, grid.FCC)
	v = grid.NewField(g, grid.CFC)
	w = grid.NewField(g, grid.CCF)
	u.EachInterior(func(i, j, k int) {
		u.Set(i, j, k, -(psi.At(i, j+1, k)-psi.At(i, j, k))/g.Dy)
		v.Set(i, j, k, (psi.At(i+1, j, k)-psi.At(i, j, k))/g.Dx)
	})
	grid.FillHalo(u)
	grid.FillHalo(v)
	grid.FillHalo(w)
	return
}

func TestSchemeConfiguration(t *testing.T) {
	{ // Label round trips and rejection of unknown labels
		assert.Equal(t, VectorInvariantUpwind, NewSchemeType("upwind"))
		assert.Equal(t, FluxForm, NewSchemeType("FluxForm"))
		assert.Equal(t, VorticityStencil, NewStencilKind("vorticity"))
		assert.Panics(t, func() { NewSchemeType("quick") })
		assert.Panics(t, func() { NewStencilKind("zeta") })
	}
	{ // Parameter validation is fatal at construction, not evaluation
		assert.Panics(t, func() {
			NewMomentumScheme(Params{Scheme: VectorInvariantUpwind, Order: 2,
				Stencil: VorticityStencil})
		})
		assert.Panics(t, func() {
			NewMomentumScheme(Params{Scheme: VectorInvariant, BlendWidth: -1})
		})
		assert.NotPanics(t, func() {
			NewMomentumScheme(Params{Scheme: VectorInvariantUpwind, Order: 3,
				Stencil: VelocityStencil})
		})
	}
	{ // The disabled scheme returns exactly zero
		g := periodicGrid()
		u, v, w := testFlow(g)
		ms := NewMomentumScheme(Params{Scheme: NoAdvection})
		assert.Equal(t, 0., ms.TendencyU(g, u, v, w, 4, 4, 0))
		assert.Equal(t, 0., ms.TendencyV(g, u, v, w, 4, 4, 0))
	}
}

func TestUniformFlowInvariance(t *testing.T) {
	// Uniform translation has zero vorticity and uniform kinetic energy, so
	// every scheme must return zero tendency everywhere
	var (
		g = periodicGrid()
		u = grid.NewField(g, grid.FCC)
		v = grid.NewField(g, grid.CFC)
		w = grid.NewField(g, grid.CCF)
	)
	u.SetAll(0.7)
	v.SetAll(-1.2)
	grid.FillHalo(u)
	grid.FillHalo(v)
	grid.FillHalo(w)
	schemes := []MomentumScheme{
		NewMomentumScheme(Params{Scheme: VectorInvariant}),
		NewMomentumScheme(Params{Scheme: VectorInvariantUpwind, Order: 1,
			Stencil: VorticityStencil}),
		NewMomentumScheme(Params{Scheme: VectorInvariantUpwind, Order: 3,
			Stencil: VelocityStencil}),
		NewMomentumScheme(Params{Scheme: FluxForm}),
	}
	for _, ms := range schemes {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				assert.True(t, near(0, ms.TendencyU(g, u, v, w, i, j, 0)), ms.Print())
				assert.True(t, near(0, ms.TendencyV(g, u, v, w, i, j, 0)), ms.Print())
			}
		}
	}
}

func TestEnergyNeutrality(t *testing.T) {
	// On a uniform doubly periodic grid with no solid geometry the centered
	// vector invariant tendency does no net work on a divergence free flow:
	// the vorticity term is antisymmetric under the summation by parts
	// pairing and the Bernoulli term integrates against zero divergence.
	var (
		g           = periodicGrid()
		ms          = NewMomentumScheme(Params{Scheme: VectorInvariant})
		sum, sumAbs float64
	)
	u, v, w := testFlow(g)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			du := u.At(i, j, 0) * ms.TendencyU(g, u, v, w, i, j, 0)
			dv := v.At(i, j, 0) * ms.TendencyV(g, u, v, w, i, j, 0)
			sum += du + dv
			sumAbs += math.Abs(du) + math.Abs(dv)
		}
	}
	assert.True(t, sumAbs > 0)
	assert.True(t, math.Abs(sum) < 1.e-11*sumAbs)
}

func TestUpwindBlend(t *testing.T) {
	{ // Saturated limits select one candidate exactly
		assert.Equal(t, 3., UpwindBlend(1, 3, 7, 1.e-8))
		assert.Equal(t, 7., UpwindBlend(-1, 3, 7, 1.e-8))
	}
	{ // Zero transport recovers the centered average
		assert.True(t, near(5, UpwindBlend(0, 3, 7, 1.e-8)))
	}
	{ // The transition is monotone in the transport velocity
		prev := UpwindBlend(-4, 3, 7, 1)
		for s := -3.5; s <= 4; s += 0.5 {
			b := UpwindBlend(s, 3, 7, 1)
			assert.True(t, b <= prev)
			prev = b
		}
	}
}

func TestUpwindSelection(t *testing.T) {
	// With uniform positive v the transport velocity at every u point is v,
	// and the first order vorticity stencil picks the donor corner j, so
	// the upwind tendency differs from the centered one by exactly
	// v * (zeta(j) - zeta(j+1)) / 2
	var (
		g  = periodicGrid()
		u  = grid.NewField(g, grid.FCC)
		v  = grid.NewField(g, grid.CFC)
		w  = grid.NewField(g, grid.CCF)
		v0 = 0.8
	)
	u.EachInterior(func(i, j, k int) {
		u.Set(i, j, k, math.Sin(2*math.Pi*float64(j)*g.Dy)*
			math.Cos(2*math.Pi*float64(i)*g.Dx))
	})
	v.SetAll(v0)
	grid.FillHalo(u)
	grid.FillHalo(v)
	grid.FillHalo(w)
	var (
		centered = NewMomentumScheme(Params{Scheme: VectorInvariant})
		upwind   = NewMomentumScheme(Params{Scheme: VectorInvariantUpwind,
			Order: 1, Stencil: VorticityStencil})
	)
	for j := 2; j < g.Ny-2; j++ {
		for i := 2; i < g.Nx-2; i++ {
			zL := ops.VorticityZ(g, u, v, i, j, 0)
			zR := ops.VorticityZ(g, u, v, i, j+1, 0)
			want := centered.TendencyU(g, u, v, w, i, j, 0) + v0*(zL-zR)/2
			assert.True(t, near(want, upwind.TendencyU(g, u, v, w, i, j, 0), 1.e-12))
		}
	}
	{ // Reversing the transport picks the other candidate
		v.SetAll(-v0)
		grid.FillHalo(v)
		i, j := 5, 5
		zR := ops.VorticityZ(g, u, v, i, j+1, 0)
		want := centered.TendencyU(g, u, v, w, i, j, 0) +
			(-v0)*zR - (-v0)*(ops.VorticityZ(g, u, v, i, j, 0)+zR)/2
		assert.True(t, near(want, upwind.TendencyU(g, u, v, w, i, j, 0), 1.e-12))
	}
}

func TestTracerTendency(t *testing.T) {
	// A uniform tracer in divergence free flow is steady
	var (
		g = periodicGrid()
		c = grid.NewField(g, grid.CCC)
	)
	u, v, w := testFlow(g)
	c.SetAll(4.2)
	grid.FillHalo(c)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			assert.True(t, near(0, TracerTendency(g, u, v, w, c, i, j, 0), 1.e-12))
		}
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
