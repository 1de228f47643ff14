package ops

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gocean/grid"
)

/*
	Explicit sparse assembly of the horizontal divergence operator for one
	k-slab. The pointwise operators are what the hot loop runs; the matrix
	form exists for verification and for downstream elliptic setup (pressure
	projection), where the divergence operator appears as the right hand
	side assembly of the Poisson problem.

	Unknown ordering: u faces first, i fastest, then v faces, so the matrix
	maps a stacked [u; v] face vector of length 2*Nx*Ny to cell divergences
	of length Nx*Ny.
*/
func HorizontalDivergenceMatrix(g *grid.Grid, k int) (D *sparse.DOK) {
	var (
		Nx, Ny = g.Nx, g.Ny
		NC     = Nx * Ny
	)
	if g.TopoX != grid.Periodic || g.TopoY != grid.Periodic {
		err := fmt.Errorf("divergence matrix requires periodic horizontal topology, have [%s,%s]",
			g.TopoX.Print(), g.TopoY.Print())
		panic(err)
	}
	D = sparse.NewDOK(NC, 2*NC)
	uCol := func(i, j int) int { return ((j+Ny)%Ny)*Nx + (i+Nx)%Nx }
	vCol := func(i, j int) int { return NC + ((j+Ny)%Ny)*Nx + (i+Nx)%Nx }
	for j := 0; j < Ny; j++ {
		for i := 0; i < Nx; i++ {
			var (
				row = j*Nx + i
				cx  = g.DySpacing(i, j, k) / g.AreaZ(i, j, k)
				cy  = g.DxSpacing(i, j, k) / g.AreaZ(i, j, k)
			)
			// Each axis contribution carries the same all-or-nothing
			// masking rule as the pointwise operator.
			if !g.Inactive(grid.FCC, i, j, k) && !g.Inactive(grid.FCC, i+1, j, k) {
				D.Set(row, uCol(i+1, j), D.At(row, uCol(i+1, j))+cx)
				D.Set(row, uCol(i, j), D.At(row, uCol(i, j))-cx)
			}
			if !g.Inactive(grid.CFC, i, j, k) && !g.Inactive(grid.CFC, i, j+1, k) {
				D.Set(row, vCol(i, j+1), D.At(row, vCol(i, j+1))+cy)
				D.Set(row, vCol(i, j), D.At(row, vCol(i, j))-cy)
			}
		}
	}
	return
}
