package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gocean/grid"
)

func testGrid() *grid.Grid {
	return grid.NewGrid(8, 8, 4, 3, 1, 1, 1, grid.Periodic, grid.Periodic, grid.Bounded)
}

// Single solid cell at (3,3,k) for all k
func obstacleGrid() *grid.Grid {
	g := testGrid()
	return g.Immersed(func(x, y, z float64) bool {
		return x > 3*g.Dx && x < 4*g.Dx && y > 3*g.Dy && y < 4*g.Dy
	})
}

func fillDeterministic(f *grid.Field) {
	f.EachInterior(func(i, j, k int) {
		f.Set(i, j, k, math.Sin(float64(1+i)*0.7)*math.Cos(float64(2+j)*0.3)+
			0.1*float64(k))
	})
	grid.FillHalo(f)
}

func TestDerivativeRegistry(t *testing.T) {
	{ // Every axis and result location resolves in both registries
		assert.Equal(t, 24, len(Derivatives))
		assert.Equal(t, 24, len(DerivativesOf))
		for _, a := range []grid.Axis{grid.X, grid.Y, grid.Z} {
			for _, loc := range grid.Locations {
				key := DerivativeKey(a, loc)
				_, ok := Derivatives[key]
				assert.True(t, ok, key)
				_, ok = DerivativesOf[key]
				assert.True(t, ok, key)
				assert.NotPanics(t, func() { Derivative(a, loc) })
			}
		}
		assert.Equal(t, "DzFFC", DerivativeKey(grid.Z, grid.FFC))
	}
}

func TestDerivativeStencils(t *testing.T) {
	var (
		g = testGrid()
		q = grid.NewField(g, grid.CCC)
		u = grid.NewField(g, grid.FCC)
	)
	fillDeterministic(q)
	fillDeterministic(u)
	{ // A to-Face derivative differences operand nodes at offsets {0,-1},
		// bit identical to the raw difference on an unmasked grid
		for i := 1; i < g.Nx; i++ {
			assert.Equal(t, q.At(i, 4, 1)-q.At(i-1, 4, 1), DxFCC(g, q, i, 4, 1))
			assert.Equal(t, q.At(4, i, 1)-q.At(4, i-1, 1), DyCFC(g, q, 4, i, 1))
		}
		assert.Equal(t, q.At(4, 4, 2)-q.At(4, 4, 1), DzCCF(g, q, 4, 4, 2))
	}
	{ // A to-Center derivative differences operand nodes at offsets {0,+1}
		for i := 0; i < g.Nx-1; i++ {
			assert.Equal(t, u.At(i+1, 4, 1)-u.At(i, 4, 1), DxCCC(g, u, i, 4, 1))
		}
	}
	{ // Transform variants with the identity agree with the plain forms
		for _, key := range []string{"DxFCC", "DyCCC", "DzFFC", "DxCFF"} {
			plain := Derivatives[key]
			of := DerivativesOf[key]
			assert.Equal(t, plain(g, q, 4, 4, 1), of(g, Value, 4, 4, 1, q), key)
		}
	}
	{ // Transform variants difference fn values, not stored values
		lenQ := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
			return 2 * qs[0].At(i, j, k)
		}
		assert.Equal(t, 2*DxFCC(g, q, 4, 4, 1), DxFCCOf(g, lenQ, 4, 4, 1, q))
	}
}

func TestDerivativeMasking(t *testing.T) {
	var (
		ig = obstacleGrid()
		q  = grid.NewField(ig, grid.CCC)
		u  = grid.NewField(ig, grid.FCC)
	)
	fillDeterministic(q)
	fillDeterministic(u)
	// Solid region storage is garbage on purpose; masked results must be
	// exactly zero without the operands ever being read
	q.Set(3, 3, 1, math.NaN())
	u.Set(3, 3, 1, math.Inf(1))
	u.Set(4, 3, 1, math.NaN())
	{ // Differences straddling the solid cell return exactly zero
		assert.Equal(t, 0., DxFCC(ig, q, 3, 3, 1)) // face on minus side
		assert.Equal(t, 0., DxFCC(ig, q, 4, 3, 1)) // face on plus side
		assert.Equal(t, 0., DyCFC(ig, q, 3, 3, 1))
		assert.Equal(t, 0., DyCFC(ig, q, 3, 4, 1))
		assert.Equal(t, 0., DxCCC(ig, u, 3, 3, 1)) // cell between solid faces
	}
	{ // One fluid operand is not enough, the rule is all or nothing
		assert.Equal(t, 0., DxCCC(ig, u, 2, 3, 1)) // plus operand at face 3 inactive
		assert.Equal(t, 0., DxCCC(ig, u, 4, 3, 1)) // minus operand at face 4 inactive
	}
	{ // Away from the solid cell results match the unmasked difference
		assert.Equal(t, q.At(6, 6, 1)-q.At(5, 6, 1), DxFCC(ig, q, 6, 6, 1))
		assert.Equal(t, u.At(7, 6, 1)-u.At(6, 6, 1), DxCCC(ig, u, 6, 6, 1))
	}
	{ // The transform variants short circuit the same way
		blowUp := func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
			return qs[0].At(i, j, k) // would propagate NaN if evaluated
		}
		assert.Equal(t, 0., DxFCCOf(ig, blowUp, 3, 3, 1, q))
		assert.Equal(t, 0., DxFCCOf(ig, blowUp, 4, 3, 1, q))
	}
}

func TestInterpolation(t *testing.T) {
	var (
		g = testGrid()
		q = grid.NewField(g, grid.CCC)
		u = grid.NewField(g, grid.FCC)
	)
	fillDeterministic(q)
	fillDeterministic(u)
	{ // Two point averages at the matching offsets
		assert.True(t, near(0.5*(q.At(4, 4, 1)+q.At(3, 4, 1)), AvgXFace(g, q, 4, 4, 1)))
		assert.True(t, near(0.5*(u.At(5, 4, 1)+u.At(4, 4, 1)), AvgXCenter(g, u, 4, 4, 1)))
		assert.True(t, near(0.5*(q.At(4, 4, 1)+q.At(4, 3, 1)), AvgYFace(g, q, 4, 4, 1)))
		assert.True(t, near(0.5*(q.At(4, 4, 2)+q.At(4, 4, 1)), AvgZFace(g, q, 4, 4, 2)))
	}
	{ // Averages reproduce constants exactly
		c := grid.NewField(g, grid.CCC)
		c.SetAll(2.5)
		grid.FillHalo(c)
		assert.Equal(t, 2.5, AvgXFace(g, c, 4, 4, 1))
		assert.Equal(t, 2.5, AvgYCenter(g, c, 4, 4, 1))
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
