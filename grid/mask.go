package grid

/*
	SolidMask marks control volumes as solid for immersed boundary geometry.
	It is derived once from a geometric predicate at grid construction and is
	immutable afterwards; every Inactive query reduces to lookups here.

	Halo cells are classified too, so masked stencils that reach into the
	halo see consistent geometry without special cases. On periodic axes the
	halo sample wraps to the matching interior cell; on bounded axes it uses
	the extrapolated physical center.
*/
type SolidMask struct {
	g     *Grid
	solid []bool
}

func NewSolidMask(g *Grid, pred func(x, y, z float64) bool) (m *SolidMask) {
	m = &SolidMask{
		g:     g,
		solid: make([]bool, g.NumNodes()),
	}
	var (
		h = g.Halo
	)
	wrap := func(i, n int, topo Topology) int {
		if topo != Periodic {
			return i
		}
		return ((i % n) + n) % n
	}
	for k := -h; k < g.Nz+h; k++ {
		kk := wrap(k, g.Nz, g.TopoZ)
		for j := -h; j < g.Ny+h; j++ {
			jj := wrap(j, g.Ny, g.TopoY)
			for i := -h; i < g.Nx+h; i++ {
				ii := wrap(i, g.Nx, g.TopoX)
				m.solid[g.ind(i, j, k)] = pred(g.XC(ii), g.YC(jj), g.ZC(kk))
			}
		}
	}
	return
}

// Solid reports whether cell (i,j,k) is solid.
func (m *SolidMask) Solid(i, j, k int) bool {
	return m.solid[m.g.ind(i, j, k)]
}

// NumSolid counts solid interior cells.
func (m *SolidMask) NumSolid() (n int) {
	var (
		g = m.g
	)
	for k := 0; k < g.Nz; k++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				if m.Solid(i, j, k) {
					n++
				}
			}
		}
	}
	return
}
