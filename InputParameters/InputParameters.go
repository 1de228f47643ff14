package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParametersChannel struct {
	Title          string  `yaml:"Title"`
	CFL            float64 `yaml:"CFL"`
	FinalTime      float64 `yaml:"FinalTime"`
	Nx             int     `yaml:"Nx"`
	Ny             int     `yaml:"Ny"`
	Nz             int     `yaml:"Nz"`
	Lx             float64 `yaml:"Lx"`
	Ly             float64 `yaml:"Ly"`
	Lz             float64 `yaml:"Lz"`
	Scheme         string  `yaml:"Scheme"`
	Order          int     `yaml:"Order"`
	Stencil        string  `yaml:"Stencil"`
	ObstacleXMin   float64 `yaml:"ObstacleXMin"`
	ObstacleXMax   float64 `yaml:"ObstacleXMax"`
	ObstacleYMin   float64 `yaml:"ObstacleYMin"`
	ObstacleYMax   float64 `yaml:"ObstacleYMax"`
	ParallelDegree int     `yaml:"ParallelDegree"` // 0 uses all processors
	MaxIterations  int     `yaml:"MaxIterations"`
	LogFrequency   int     `yaml:"LogFrequency"`
}

func (ip *InputParametersChannel) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersChannel) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d,%d,%d]\t\t= Grid Dimensions\n", ip.Nx, ip.Ny, ip.Nz)
	fmt.Printf("[%8.5f,%8.5f,%8.5f]\t= Domain Extent\n", ip.Lx, ip.Ly, ip.Lz)
	fmt.Printf("[%s]\t\t\t= Advection Scheme\n", ip.Scheme)
	if ip.Order != 0 {
		fmt.Printf("[%d]\t\t\t\t= Reconstruction Order\n", ip.Order)
		fmt.Printf("[%s]\t\t\t= Reconstruction Stencil\n", ip.Stencil)
	}
	fmt.Printf("Obstacle x[%8.5f,%8.5f] y[%8.5f,%8.5f]\n",
		ip.ObstacleXMin, ip.ObstacleXMax, ip.ObstacleYMin, ip.ObstacleYMax)
}
