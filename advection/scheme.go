package advection

import (
	"fmt"
	"strings"

	"github.com/notargets/gocean/grid"
)

type SchemeType uint

const (
	NoAdvection SchemeType = iota
	VectorInvariant
	VectorInvariantUpwind
	FluxForm
)

var (
	SchemeNames = map[string]SchemeType{
		"none":            NoAdvection,
		"vectorinvariant": VectorInvariant,
		"upwind":          VectorInvariantUpwind,
		"fluxform":        FluxForm,
	}
	SchemePrintNames = []string{
		"No Advection", "Vector Invariant",
		"Vector Invariant Upwind", "Flux Form",
	}
)

func (st SchemeType) Print() (txt string) {
	txt = SchemePrintNames[st]
	return
}

func NewSchemeType(label string) (st SchemeType) {
	var (
		ok bool
	)
	if st, ok = SchemeNames[strings.ToLower(label)]; !ok {
		err := fmt.Errorf("unable to use advection scheme named %s", label)
		panic(err)
	}
	return
}

// StencilKind selects what the upwind scheme reconstructs: the vertical
// vorticity itself, or the raw velocity components with the vorticity
// formed from the reconstructed values.
type StencilKind uint

const (
	VelocityStencil StencilKind = iota
	VorticityStencil
)

var (
	StencilNames = map[string]StencilKind{
		"velocity":  VelocityStencil,
		"vorticity": VorticityStencil,
	}
	StencilPrintNames = []string{"Velocity Stencil", "Vorticity Stencil"}
)

func (sk StencilKind) Print() (txt string) {
	txt = StencilPrintNames[sk]
	return
}

func NewStencilKind(label string) (sk StencilKind) {
	var (
		ok bool
	)
	if sk, ok = StencilNames[strings.ToLower(label)]; !ok {
		err := fmt.Errorf("unable to use reconstruction stencil named %s", label)
		panic(err)
	}
	return
}

/*
	MomentumScheme is the nonlinear momentum advection tendency for the two
	horizontal velocity components, one implementation per scheme variant.
	Dispatch is resolved once at configuration time; every implementation is
	a pure, stateless per-index evaluation over immutable field snapshots,
	so a full tendency pass parallelizes without synchronization.
*/
type MomentumScheme interface {
	// TendencyU is the advective contribution to du/dt at the u point
	// (Face,Center,Center) of cell (i,j,k); TendencyV at (Center,Face,Center).
	TendencyU(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64
	TendencyV(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64
	Print() string
}

// Params carries scheme configuration. Order and Stencil only apply to the
// upwind variant; BlendWidth sets the velocity scale over which the upwind
// blend transitions around zero (defaulted when unset).
type Params struct {
	Scheme     SchemeType
	Order      int
	Stencil    StencilKind
	BlendWidth float64
}

const defaultBlendWidth = 1.e-8

// NewMomentumScheme validates the configuration and returns the resolved
// implementation. All parameter errors surface here, before any per-index
// evaluation, and are fatal.
func NewMomentumScheme(p Params) (ms MomentumScheme) {
	if p.BlendWidth == 0 {
		p.BlendWidth = defaultBlendWidth
	}
	if p.BlendWidth < 0 {
		panic(fmt.Errorf("blend width must be positive, have %g", p.BlendWidth))
	}
	switch p.Scheme {
	case NoAdvection:
		ms = noAdvection{}
	case VectorInvariant:
		ms = vectorInvariant{}
	case VectorInvariantUpwind:
		ms = newVectorInvariantUpwind(p)
	case FluxForm:
		ms = fluxForm{}
	default:
		panic(fmt.Errorf("unknown advection scheme %d", p.Scheme))
	}
	return
}

type noAdvection struct{}

func (noAdvection) TendencyU(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64 {
	return 0
}
func (noAdvection) TendencyV(g *grid.Grid, u, v, w *grid.Field, i, j, k int) float64 {
	return 0
}
func (noAdvection) Print() string { return NoAdvection.Print() }
