package grid

import "fmt"

// Topology describes the connectivity of one grid axis.
type Topology uint8

const (
	Periodic Topology = iota
	Bounded
	Flat // single degenerate layer, all derivatives along this axis vanish
)

var topologyPrintNames = []string{"Periodic", "Bounded", "Flat"}

func (t Topology) Print() (txt string) {
	txt = topologyPrintNames[t]
	return
}

/*
	Grid is an immutable uniform rectilinear grid of Nx x Ny x Nz interior
	control volumes plus Halo ghost layers on every axis. Interior cell
	indices run 0..N-1 per axis; halo indices are negative or >= N. The
	x-Face with index i is the minus-side boundary of cell i, so Face index
	ranges coincide with cell index ranges.

	An optional SolidMask gives the grid immersed solid geometry. A nil mask
	means every node is active and all masked operators reduce to their
	unmasked finite differences.
*/
type Grid struct {
	Nx, Ny, Nz int
	Halo       int
	Dx, Dy, Dz float64 // metric spacings, uniform per axis
	TopoX      Topology
	TopoY      Topology
	TopoZ      Topology
	Mask       *SolidMask

	// strides for flat storage including halos
	sx, sy, sz int
}

func NewGrid(Nx, Ny, Nz, Halo int, Lx, Ly, Lz float64,
	TopoX, TopoY, TopoZ Topology) (g *Grid) {
	if Nx < 1 || Ny < 1 || Nz < 1 || Halo < 1 {
		err := fmt.Errorf("invalid grid dimensions [%d,%d,%d] halo %d",
			Nx, Ny, Nz, Halo)
		panic(err)
	}
	g = &Grid{
		Nx: Nx, Ny: Ny, Nz: Nz,
		Halo:  Halo,
		Dx:    Lx / float64(Nx),
		Dy:    Ly / float64(Ny),
		Dz:    Lz / float64(Nz),
		TopoX: TopoX, TopoY: TopoY, TopoZ: TopoZ,
	}
	g.sx = Nx + 2*Halo
	g.sy = Ny + 2*Halo
	g.sz = Nz + 2*Halo
	return
}

// ind maps a logical (i,j,k) including halo to flat storage. Out of range
// indices are out of contract and are not checked here.
func (g *Grid) ind(i, j, k int) int {
	return (i + g.Halo) + g.sx*((j+g.Halo)+g.sy*(k+g.Halo))
}

// NumNodes is the storage size of one field on this grid, halos included.
func (g *Grid) NumNodes() int {
	return g.sx * g.sy * g.sz
}

// Metric queries. The grid is uniform, so these ignore position today; they
// carry the (i,j,k) signature so operator code is already written against
// the stretched-grid contract.

func (g *Grid) DxSpacing(i, j, k int) float64 { return g.Dx }
func (g *Grid) DySpacing(i, j, k int) float64 { return g.Dy }
func (g *Grid) DzSpacing(i, j, k int) float64 { return g.Dz }

// AreaX is the area of the x-normal face, etc.
func (g *Grid) AreaX(i, j, k int) float64 { return g.Dy * g.Dz }
func (g *Grid) AreaY(i, j, k int) float64 { return g.Dx * g.Dz }
func (g *Grid) AreaZ(i, j, k int) float64 { return g.Dx * g.Dy }

func (g *Grid) Volume(i, j, k int) float64 { return g.Dx * g.Dy * g.Dz }

// XC, YC, ZC are the physical coordinates of the center of cell (i,j,k).
func (g *Grid) XC(i int) float64 { return (float64(i) + 0.5) * g.Dx }
func (g *Grid) YC(j int) float64 { return (float64(j) + 0.5) * g.Dy }
func (g *Grid) ZC(k int) float64 { return (float64(k) + 0.5) * g.Dz }

// XF, YF, ZF are the coordinates of the minus-side face of cell (i,j,k).
func (g *Grid) XF(i int) float64 { return float64(i) * g.Dx }
func (g *Grid) YF(j int) float64 { return float64(j) * g.Dy }
func (g *Grid) ZF(k int) float64 { return float64(k) * g.Dz }

/*
	Inactive reports whether the node at loc, (i,j,k) sits in solid
	territory. A Center-anchored node occupies a single cell and is inactive
	when that cell is solid. Each Face axis widens the straddled cell set by
	the cell on the minus side of the face, so a Face-anchored node is
	inactive when any straddled cell is solid.

	This is the only query masked operators make; it is O(1) and reads only
	the solid mask.
*/
func (g *Grid) Inactive(loc Location, i, j, k int) bool {
	if g.Mask == nil {
		return false
	}
	var (
		i0, j0, k0 = i, j, k
	)
	if loc.X == Face {
		i0 = i - 1
	}
	if loc.Y == Face {
		j0 = j - 1
	}
	if loc.Z == Face {
		k0 = k - 1
	}
	for kk := k0; kk <= k; kk++ {
		for jj := j0; jj <= j; jj++ {
			for ii := i0; ii <= i; ii++ {
				if g.Mask.Solid(ii, jj, kk) {
					return true
				}
			}
		}
	}
	return false
}

// Immersed returns a copy of g carrying the solid mask built from the
// geometry predicate, evaluated once at every cell center, halos included.
// The receiver is unchanged, so masked and unmasked views of the same
// underlying grid can coexist.
func (g *Grid) Immersed(solid func(x, y, z float64) bool) (ig *Grid) {
	gg := *g
	gg.Mask = NewSolidMask(&gg, solid)
	ig = &gg
	return
}

func (g *Grid) Print() {
	fmt.Printf("Grid [%d,%d,%d] halo %d, topology [%s,%s,%s]\n",
		g.Nx, g.Ny, g.Nz, g.Halo,
		g.TopoX.Print(), g.TopoY.Print(), g.TopoZ.Print())
	fmt.Printf("Spacing [%8.5f,%8.5f,%8.5f]\n", g.Dx, g.Dy, g.Dz)
	if g.Mask != nil {
		fmt.Printf("Immersed geometry: %d of %d interior cells solid\n",
			g.Mask.NumSolid(), g.Nx*g.Ny*g.Nz)
	}
}
