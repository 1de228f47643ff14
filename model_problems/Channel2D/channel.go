package Channel2D

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/notargets/gocean/InputParameters"
	"github.com/notargets/gocean/advection"
	"github.com/notargets/gocean/grid"
	"github.com/notargets/gocean/ops"
	"github.com/notargets/gocean/utils"
)

/*
	Periodic channel with a rectangular immersed obstacle.

	The velocity is the discrete curl of a streamfunction sampled at
	vorticity corners, held steady for the whole run. The streamfunction is
	pinned to zero on every corner within one cell of solid geometry, so
	all faces of solid-adjacent cells carry zero velocity, the masked
	horizontal divergence vanishes at every fluid cell, and no flow crosses
	the obstacle boundary.

	A passive cell centered tracer is advected through this flow with low
	storage Runge Kutta stepping. The momentum tendencies of the configured
	scheme are evaluated over the same flow as a diagnostic.

	Tendencies for all indices are computed from finalized field snapshots
	into separate buffers before any field is updated, sharded by j-row
	over goroutines.
*/
type Channel struct {
	CFL, FinalTime float64
	G              *grid.Grid
	Scheme         advection.MomentumScheme
	U, V, W, C     *grid.Field
	Partitions     *utils.PartitionMap
	MaxIterations  int
	LogFrequency   int
	U0             float64 // background channel speed scale
}

func NewChannel(ip *InputParameters.InputParametersChannel, ProcLimit int,
	verbose bool) (c *Channel) {
	var (
		NPar = runtime.NumCPU()
	)
	if ProcLimit > 0 {
		NPar = ProcLimit
	} else if ip.ParallelDegree > 0 {
		NPar = ip.ParallelDegree
	}
	if NPar > ip.Ny {
		NPar = ip.Ny
	}
	c = &Channel{
		CFL:           ip.CFL,
		FinalTime:     ip.FinalTime,
		MaxIterations: ip.MaxIterations,
		LogFrequency:  ip.LogFrequency,
		U0:            1,
	}
	if c.LogFrequency == 0 {
		c.LogFrequency = 50
	}
	base := grid.NewGrid(ip.Nx, ip.Ny, ip.Nz, 3, ip.Lx, ip.Ly, ip.Lz,
		grid.Periodic, grid.Periodic, grid.Bounded)
	c.G = base.Immersed(func(x, y, z float64) bool {
		return x >= ip.ObstacleXMin && x <= ip.ObstacleXMax &&
			y >= ip.ObstacleYMin && y <= ip.ObstacleYMax
	})
	c.Scheme = advection.NewMomentumScheme(advection.Params{
		Scheme:  advection.NewSchemeType(ip.Scheme),
		Order:   ip.Order,
		Stencil: stencilOrDefault(ip.Stencil),
	})
	c.Partitions = utils.NewPartitionMap(NPar, ip.Ny)
	c.InitializeSolution()
	if verbose {
		fmt.Printf("Channel Flow With Immersed Obstacle\n")
		fmt.Printf("Using %d go routines in parallel\n", NPar)
		fmt.Printf("Algorithm: %s\n", c.Scheme.Print())
		c.G.Print()
	}
	return
}

func stencilOrDefault(label string) advection.StencilKind {
	if label == "" {
		return advection.VorticityStencil
	}
	return advection.NewStencilKind(label)
}

// nearSolid reports whether corner (i,j,k) touches any cell within one
// cell of solid geometry.
func nearSolid(g *grid.Grid, i, j, k int) bool {
	if g.Mask == nil {
		return false
	}
	for cj := j - 2; cj <= j+1; cj++ {
		for ci := i - 2; ci <= i+1; ci++ {
			if g.Mask.Solid(ci, cj, k) {
				return true
			}
		}
	}
	return false
}

func (c *Channel) InitializeSolution() {
	var (
		g  = c.G
		Lx = float64(g.Nx) * g.Dx
		Ly = float64(g.Ny) * g.Dy
	)
	psi := grid.NewField(g, grid.FFC)
	psiFn := func(x, y float64) float64 {
		return -c.U0 * Ly / (2 * math.Pi) *
			math.Cos(2*math.Pi*y/Ly) * (1 + 0.3*math.Cos(2*math.Pi*x/Lx))
	}
	psi.EachInterior(func(i, j, k int) {
		if nearSolid(g, i, j, k) {
			psi.Set(i, j, k, 0)
			return
		}
		psi.Set(i, j, k, psiFn(g.XF(i), g.YF(j)))
	})
	grid.FillHalo(psi)

	c.U = grid.NewXFaceField(g)
	c.V = grid.NewYFaceField(g)
	c.W = grid.NewZFaceField(g)
	c.C = grid.NewCellField(g)
	c.U.EachInterior(func(i, j, k int) {
		c.U.Set(i, j, k, -(psi.At(i, j+1, k)-psi.At(i, j, k))/g.Dy)
		c.V.Set(i, j, k, (psi.At(i+1, j, k)-psi.At(i, j, k))/g.Dx)
	})
	c.C.SetAll(1)
	grid.FillHalo(c.U)
	grid.FillHalo(c.V)
	grid.FillHalo(c.W)
	grid.FillHalo(c.C)
}

// MaxSpeed scans the fluid region for the largest velocity magnitude.
func (c *Channel) MaxSpeed() (vmax float64) {
	vmax = c.U0
	c.U.EachInterior(func(i, j, k int) {
		s := math.Abs(c.U.At(i, j, k))
		if v := math.Abs(c.V.At(i, j, k)); v > s {
			s = v
		}
		if s > vmax {
			vmax = s
		}
	})
	return
}

// parallelPass runs fn over the interior, sharded by j-row buckets.
func (c *Channel) parallelPass(fn func(i, j, k int)) {
	var (
		g  = c.G
		NP = c.Partitions.ParallelDegree
		wg = sync.WaitGroup{}
	)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			jMin, jMax := c.Partitions.GetBucketRange(np)
			for k := 0; k < g.Nz; k++ {
				for j := jMin; j < jMax; j++ {
					for i := 0; i < g.Nx; i++ {
						fn(i, j, k)
					}
				}
			}
		}(np)
	}
	wg.Wait()
}

// TracerRHS evaluates the tracer tendency for the whole interior into rhs.
// The inputs are immutable for the duration of the pass; nothing is
// written into C until every bucket finishes.
func (c *Channel) TracerRHS(rhs *grid.Field) {
	c.parallelPass(func(i, j, k int) {
		rhs.Set(i, j, k,
			advection.TracerTendency(c.G, c.U, c.V, c.W, c.C, i, j, k))
	})
}

// MomentumTendencyMax evaluates the configured momentum scheme over the
// steady flow and reports the largest magnitude of each component.
func (c *Channel) MomentumTendencyMax() (duMax, dvMax float64) {
	var (
		g   = c.G
		NP  = c.Partitions.ParallelDegree
		wg  = sync.WaitGroup{}
		dus = make([]float64, NP)
		dvs = make([]float64, NP)
	)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			jMin, jMax := c.Partitions.GetBucketRange(np)
			for k := 0; k < g.Nz; k++ {
				for j := jMin; j < jMax; j++ {
					for i := 0; i < g.Nx; i++ {
						if du := math.Abs(c.Scheme.TendencyU(g, c.U, c.V, c.W, i, j, k)); du > dus[np] {
							dus[np] = du
						}
						if dv := math.Abs(c.Scheme.TendencyV(g, c.U, c.V, c.W, i, j, k)); dv > dvs[np] {
							dvs[np] = dv
						}
					}
				}
			}
		}(np)
	}
	wg.Wait()
	for np := 0; np < NP; np++ {
		duMax = math.Max(duMax, dus[np])
		dvMax = math.Max(dvMax, dvs[np])
	}
	return
}

func (c *Channel) Run(verbose bool) {
	var (
		g      = c.G
		hmin   = math.Min(g.Dx, g.Dy)
		resC   = grid.NewField(g, grid.CCC)
		rhsC   = grid.NewField(g, grid.CCC)
		Time   float64
		tstep  int
		Nsteps = c.MaxIterations
	)
	dt := c.CFL * hmin / c.MaxSpeed()
	if Nsteps <= 0 {
		Nsteps = int(math.Ceil(c.FinalTime/dt)) + 1
	}
	for tstep = 0; tstep < Nsteps && Time < c.FinalTime; tstep++ {
		if Time+dt > c.FinalTime {
			dt = c.FinalTime - Time
		}
		for INTRK := 0; INTRK < 5; INTRK++ {
			c.TracerRHS(rhsC)
			c.parallelPass(func(i, j, k int) {
				resC.Set(i, j, k,
					utils.RK4a[INTRK]*resC.At(i, j, k)+dt*rhsC.At(i, j, k))
			})
			c.parallelPass(func(i, j, k int) {
				c.C.Add(i, j, k, utils.RK4b[INTRK]*resC.At(i, j, k))
			})
			grid.FillHalo(c.C)
		}
		Time += dt
		if verbose && tstep%c.LogFrequency == 0 {
			cmin, cmax := c.C.MinMax()
			duMax, dvMax := c.MomentumTendencyMax()
			fmt.Printf("Time = %8.4f, step %d, tracer min, max = %8.5f, %8.5f, max |du|,|dv| = %8.5f, %8.5f\n",
				Time, tstep, cmin, cmax, duMax, dvMax)
		}
	}
	if verbose {
		fmt.Printf("Finished: Time = %8.4f in %d steps\n", Time, tstep)
	}
}

// TracerStats reports min, max and mean of the tracer over fluid cells.
func (c *Channel) TracerStats() (min, max, mean float64) {
	var (
		g = c.G
		n int
	)
	min, max = c.C.MinMax()
	c.C.EachInterior(func(i, j, k int) {
		if g.Inactive(grid.CCC, i, j, k) {
			return
		}
		mean += c.C.At(i, j, k)
		n++
	})
	mean /= float64(n)
	return
}

// DivergenceSum is the volume weighted sum of the masked horizontal
// divergence over all fluid cells, the discrete mass budget.
func (c *Channel) DivergenceSum() (sum float64) {
	var (
		g = c.G
	)
	c.C.EachInterior(func(i, j, k int) {
		if g.Inactive(grid.CCC, i, j, k) {
			return
		}
		sum += ops.HorizontalDivergence(g, c.U, c.V, i, j, k) * g.Volume(i, j, k)
	})
	return
}
