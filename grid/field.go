package grid

import "fmt"

/*
	Field is scalar data on the grid, pinned to one of the 8 staggered
	Locations at construction. Storage covers the halo, and logical indices
	match cell indices: interior 0..N-1, halo negative or >= N per axis.

	Entries inside solid territory are never read by masked operators and may
	hold anything, including NaN.
*/
type Field struct {
	Loc  Location
	g    *Grid
	data []float64
}

func NewField(g *Grid, loc Location) (f *Field) {
	f = &Field{
		Loc:  loc,
		g:    g,
		data: make([]float64, g.NumNodes()),
	}
	return
}

// Convenience constructors for the common physical placements: cell
// centered scalars and the three face-normal velocity components.

func NewCellField(g *Grid) *Field  { return NewField(g, CCC) }
func NewXFaceField(g *Grid) *Field { return NewField(g, FCC) }
func NewYFaceField(g *Grid) *Field { return NewField(g, CFC) }
func NewZFaceField(g *Grid) *Field { return NewField(g, CCF) }

func (f *Field) Grid() *Grid { return f.g }

func (f *Field) At(i, j, k int) float64 {
	return f.data[f.g.ind(i, j, k)]
}

func (f *Field) Set(i, j, k int, v float64) {
	f.data[f.g.ind(i, j, k)] = v
}

func (f *Field) Add(i, j, k int, v float64) {
	f.data[f.g.ind(i, j, k)] += v
}

// Data exposes the flat storage, halos included. Used by bulk operations
// like time step updates and fill routines.
func (f *Field) Data() []float64 { return f.data }

// Copy allocates a new field with the same location and contents.
func (f *Field) Copy() (o *Field) {
	o = NewField(f.g, f.Loc)
	copy(o.data, f.data)
	return
}

// SetAll assigns v everywhere, halos included.
func (f *Field) SetAll(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// EachInterior visits every interior node in k-outer order.
func (f *Field) EachInterior(fn func(i, j, k int)) {
	var (
		g = f.g
	)
	for k := 0; k < g.Nz; k++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				fn(i, j, k)
			}
		}
	}
}

// MinMax scans interior fluid nodes, skipping nodes inactive at the field's
// location so solid-region garbage never contaminates diagnostics.
func (f *Field) MinMax() (min, max float64) {
	var (
		g     = f.g
		first = true
	)
	f.EachInterior(func(i, j, k int) {
		if g.Inactive(f.Loc, i, j, k) {
			return
		}
		v := f.At(i, j, k)
		if first {
			min, max = v, v
			first = false
			return
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	})
	return
}

func (f *Field) Print(name string) {
	min, max := f.MinMax()
	fmt.Printf("%s[%s] min, max = %8.5f, %8.5f\n", name, f.Loc.Print(), min, max)
}
