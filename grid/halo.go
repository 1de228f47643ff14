package grid

/*
	Halo fills. Operators assume halos are coherent before any evaluation
	pass; in a decomposed run this job belongs to the exchange layer, and
	these routines are the single-rank equivalent.

	Periodic axes wrap, bounded and flat axes copy the nearest interior value
	(homogeneous zero-gradient). Fill order is x then y then z so corner
	halos end up consistent.
*/

func FillHalo(f *Field) {
	fillX(f)
	fillY(f)
	fillZ(f)
}

func fillX(f *Field) {
	var (
		g = f.g
		h = g.Halo
	)
	for k := -h; k < g.Nz+h; k++ {
		for j := -h; j < g.Ny+h; j++ {
			for n := 1; n <= h; n++ {
				switch g.TopoX {
				case Periodic:
					f.Set(-n, j, k, f.At(g.Nx-n, j, k))
					f.Set(g.Nx-1+n, j, k, f.At(n-1, j, k))
				default:
					f.Set(-n, j, k, f.At(0, j, k))
					f.Set(g.Nx-1+n, j, k, f.At(g.Nx-1, j, k))
				}
			}
		}
	}
}

func fillY(f *Field) {
	var (
		g = f.g
		h = g.Halo
	)
	for k := -h; k < g.Nz+h; k++ {
		for i := -h; i < g.Nx+h; i++ {
			for n := 1; n <= h; n++ {
				switch g.TopoY {
				case Periodic:
					f.Set(i, -n, k, f.At(i, g.Ny-n, k))
					f.Set(i, g.Ny-1+n, k, f.At(i, n-1, k))
				default:
					f.Set(i, -n, k, f.At(i, 0, k))
					f.Set(i, g.Ny-1+n, k, f.At(i, g.Ny-1, k))
				}
			}
		}
	}
}

func fillZ(f *Field) {
	var (
		g = f.g
		h = g.Halo
	)
	for j := -h; j < g.Ny+h; j++ {
		for i := -h; i < g.Nx+h; i++ {
			for n := 1; n <= h; n++ {
				switch g.TopoZ {
				case Periodic:
					f.Set(i, j, -n, f.At(i, j, g.Nz-n))
					f.Set(i, j, g.Nz-1+n, f.At(i, j, n-1))
				default:
					f.Set(i, j, -n, f.At(i, j, 0))
					f.Set(i, j, g.Nz-1+n, f.At(i, j, g.Nz-1))
				}
			}
		}
	}
}
