package ops

import (
	"fmt"

	"github.com/notargets/gocean/grid"
)

/*
	Masked directional derivative family.

	For each axis and each placement the result may have along that axis
	(Face or Center) there is one derivative kernel. A to-Face derivative
	differences the two Center-anchored operand nodes straddling the face,
	offsets {0,-1}; a to-Center derivative differences the two Face-anchored
	operand nodes bounding the cell, offsets {0,+1}. With the face-i-bounds-
	cell-i-on-the-minus-side convention both rules inspect the same geometric
	adjacency.

	Solid boundaries are enforced by omission: when either operand node is
	inactive the result is exactly zero and the operands are never read, so
	arbitrary garbage in solid-region storage cannot leak through. Away from
	solid territory the result is bit-identical to the unmasked difference.

	The 48 public entry points below (24 field derivatives, 24 transform
	variants differencing a PointFunc) are thin monomorphized wrappers over
	the six kernels; the orthogonal-axis placements only select which
	operand Location the activity test uses.

	No bounds checks: indices, including the required halo, are the caller's
	contract.
*/

// PointFunc evaluates a staggered quantity at one node. Fields ride along
// as arguments so composed operators close over nothing.
type PointFunc func(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64

// Value reads qs[0] directly, the identity transform.
func Value(g *grid.Grid, i, j, k int, qs ...*grid.Field) float64 {
	return qs[0].At(i, j, k)
}

func dxF(g *grid.Grid, op grid.Location, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	if g.Inactive(op, i, j, k) || g.Inactive(op, i-1, j, k) {
		return 0
	}
	return fn(g, i, j, k, qs...) - fn(g, i-1, j, k, qs...)
}

func dxC(g *grid.Grid, op grid.Location, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	if g.Inactive(op, i, j, k) || g.Inactive(op, i+1, j, k) {
		return 0
	}
	return fn(g, i+1, j, k, qs...) - fn(g, i, j, k, qs...)
}

func dyF(g *grid.Grid, op grid.Location, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	if g.Inactive(op, i, j, k) || g.Inactive(op, i, j-1, k) {
		return 0
	}
	return fn(g, i, j, k, qs...) - fn(g, i, j-1, k, qs...)
}

func dyC(g *grid.Grid, op grid.Location, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	if g.Inactive(op, i, j, k) || g.Inactive(op, i, j+1, k) {
		return 0
	}
	return fn(g, i, j+1, k, qs...) - fn(g, i, j, k, qs...)
}

func dzF(g *grid.Grid, op grid.Location, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	if g.Inactive(op, i, j, k) || g.Inactive(op, i, j, k-1) {
		return 0
	}
	return fn(g, i, j, k, qs...) - fn(g, i, j, k-1, qs...)
}

func dzC(g *grid.Grid, op grid.Location, i, j, k int, fn PointFunc, qs ...*grid.Field) float64 {
	if g.Inactive(op, i, j, k) || g.Inactive(op, i, j, k+1) {
		return 0
	}
	return fn(g, i, j, k+1, qs...) - fn(g, i, j, k, qs...)
}

// Plain field derivatives, named D<axis><result location>. The operand
// location is the result location with the derivative axis flipped.

func DxFCC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dxF(g, grid.CCC, i, j, k, Value, q)
}
func DxFFC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dxF(g, grid.CFC, i, j, k, Value, q)
}
func DxFCF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dxF(g, grid.CCF, i, j, k, Value, q)
}
func DxFFF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dxF(g, grid.CFF, i, j, k, Value, q)
}
func DxCCC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dxC(g, grid.FCC, i, j, k, Value, q)
}
func DxCFC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dxC(g, grid.FFC, i, j, k, Value, q)
}
func DxCCF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dxC(g, grid.FCF, i, j, k, Value, q)
}
func DxCFF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dxC(g, grid.FFF, i, j, k, Value, q)
}

func DyCFC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dyF(g, grid.CCC, i, j, k, Value, q)
}
func DyFFC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dyF(g, grid.FCC, i, j, k, Value, q)
}
func DyCFF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dyF(g, grid.CCF, i, j, k, Value, q)
}
func DyFFF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dyF(g, grid.FCF, i, j, k, Value, q)
}
func DyCCC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dyC(g, grid.CFC, i, j, k, Value, q)
}
func DyFCC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dyC(g, grid.FFC, i, j, k, Value, q)
}
func DyCCF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dyC(g, grid.CFF, i, j, k, Value, q)
}
func DyFCF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dyC(g, grid.FFF, i, j, k, Value, q)
}

func DzCCF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dzF(g, grid.CCC, i, j, k, Value, q)
}
func DzFCF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dzF(g, grid.FCC, i, j, k, Value, q)
}
func DzCFF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dzF(g, grid.CFC, i, j, k, Value, q)
}
func DzFFF(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dzF(g, grid.FFC, i, j, k, Value, q)
}
func DzCCC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dzC(g, grid.CCF, i, j, k, Value, q)
}
func DzFCC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dzC(g, grid.FCF, i, j, k, Value, q)
}
func DzCFC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dzC(g, grid.CFF, i, j, k, Value, q)
}
func DzFFC(g *grid.Grid, q *grid.Field, i, j, k int) float64 {
	return dzC(g, grid.FFF, i, j, k, Value, q)
}

// Transform variants, differencing fn(node) instead of a stored value.
// These carry flux-style derivatives like delta(area * u).

func DxFCCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dxF(g, grid.CCC, i, j, k, fn, qs...)
}
func DxFFCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dxF(g, grid.CFC, i, j, k, fn, qs...)
}
func DxFCFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dxF(g, grid.CCF, i, j, k, fn, qs...)
}
func DxFFFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dxF(g, grid.CFF, i, j, k, fn, qs...)
}
func DxCCCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dxC(g, grid.FCC, i, j, k, fn, qs...)
}
func DxCFCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dxC(g, grid.FFC, i, j, k, fn, qs...)
}
func DxCCFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dxC(g, grid.FCF, i, j, k, fn, qs...)
}
func DxCFFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dxC(g, grid.FFF, i, j, k, fn, qs...)
}

func DyCFCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dyF(g, grid.CCC, i, j, k, fn, qs...)
}
func DyFFCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dyF(g, grid.FCC, i, j, k, fn, qs...)
}
func DyCFFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dyF(g, grid.CCF, i, j, k, fn, qs...)
}
func DyFFFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dyF(g, grid.FCF, i, j, k, fn, qs...)
}
func DyCCCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dyC(g, grid.CFC, i, j, k, fn, qs...)
}
func DyFCCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dyC(g, grid.FFC, i, j, k, fn, qs...)
}
func DyCCFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dyC(g, grid.CFF, i, j, k, fn, qs...)
}
func DyFCFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dyC(g, grid.FFF, i, j, k, fn, qs...)
}

func DzCCFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dzF(g, grid.CCC, i, j, k, fn, qs...)
}
func DzFCFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dzF(g, grid.FCC, i, j, k, fn, qs...)
}
func DzCFFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dzF(g, grid.CFC, i, j, k, fn, qs...)
}
func DzFFFOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dzF(g, grid.FFC, i, j, k, fn, qs...)
}
func DzCCCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dzC(g, grid.CCF, i, j, k, fn, qs...)
}
func DzFCCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dzC(g, grid.FCF, i, j, k, fn, qs...)
}
func DzCFCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dzC(g, grid.CFF, i, j, k, fn, qs...)
}
func DzFFCOf(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64 {
	return dzC(g, grid.FFF, i, j, k, fn, qs...)
}

// DerivFunc is the shape of the 24 plain entry points; DerivOfFunc the 24
// transform entry points.
type DerivFunc func(g *grid.Grid, q *grid.Field, i, j, k int) float64
type DerivOfFunc func(g *grid.Grid, fn PointFunc, i, j, k int, qs ...*grid.Field) float64

// Derivatives and DerivativesOf are the dispatch surface external layers
// bind against, keyed by axis and full result Location. The key set is
// fixed; resolving an entry that does not exist is a configuration error.
var (
	Derivatives = map[string]DerivFunc{
		"DxFCC": DxFCC, "DxFFC": DxFFC, "DxFCF": DxFCF, "DxFFF": DxFFF,
		"DxCCC": DxCCC, "DxCFC": DxCFC, "DxCCF": DxCCF, "DxCFF": DxCFF,
		"DyCFC": DyCFC, "DyFFC": DyFFC, "DyCFF": DyCFF, "DyFFF": DyFFF,
		"DyCCC": DyCCC, "DyFCC": DyFCC, "DyCCF": DyCCF, "DyFCF": DyFCF,
		"DzCCF": DzCCF, "DzFCF": DzFCF, "DzCFF": DzCFF, "DzFFF": DzFFF,
		"DzCCC": DzCCC, "DzFCC": DzFCC, "DzCFC": DzCFC, "DzFFC": DzFFC,
	}
	DerivativesOf = map[string]DerivOfFunc{
		"DxFCC": DxFCCOf, "DxFFC": DxFFCOf, "DxFCF": DxFCFOf, "DxFFF": DxFFFOf,
		"DxCCC": DxCCCOf, "DxCFC": DxCFCOf, "DxCCF": DxCCFOf, "DxCFF": DxCFFOf,
		"DyCFC": DyCFCOf, "DyFFC": DyFFCOf, "DyCFF": DyCFFOf, "DyFFF": DyFFFOf,
		"DyCCC": DyCCCOf, "DyFCC": DyFCCOf, "DyCCF": DyCCFOf, "DyFCF": DyFCFOf,
		"DzCCF": DzCCFOf, "DzFCF": DzFCFOf, "DzCFF": DzCFFOf, "DzFFF": DzFFFOf,
		"DzCCC": DzCCCOf, "DzFCC": DzFCCOf, "DzCFC": DzCFCOf, "DzFFC": DzFFCOf,
	}
)

// DerivativeKey builds the registry key for a derivative along axis a whose
// result lives at loc.
func DerivativeKey(a grid.Axis, loc grid.Location) string {
	return "D" + map[grid.Axis]string{grid.X: "x", grid.Y: "y", grid.Z: "z"}[a] +
		loc.Print()
}

// Derivative resolves one entry point at setup time. Unknown keys panic
// before any per-index evaluation happens.
func Derivative(a grid.Axis, loc grid.Location) (df DerivFunc) {
	var (
		ok  bool
		key = DerivativeKey(a, loc)
	)
	if df, ok = Derivatives[key]; !ok {
		err := fmt.Errorf("unable to use derivative named %s", key)
		panic(err)
	}
	return
}
