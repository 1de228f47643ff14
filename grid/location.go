package grid

import (
	"fmt"
	"strings"
)

type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

var axisPrintNames = []string{"X", "Y", "Z"}

func (a Axis) Print() (txt string) {
	txt = axisPrintNames[a]
	return
}

// AxisLoc is the placement of a sample along one axis of the control volume:
// either on the cell Face bounding the volume or at its Center. On the
// Arakawa C grid every physical quantity has a fixed AxisLoc per axis.
type AxisLoc uint8

const (
	Center AxisLoc = iota
	Face
)

func (al AxisLoc) Print() (txt string) {
	if al == Face {
		return "F"
	}
	return "C"
}

// Location is one of the 8 canonical staggered positions. All-Center is a
// cell centered scalar, one Face is a velocity component normal to that
// face, two Faces is a vorticity point.
type Location struct {
	X, Y, Z AxisLoc
}

var (
	CCC = Location{Center, Center, Center}
	FCC = Location{Face, Center, Center}
	CFC = Location{Center, Face, Center}
	CCF = Location{Center, Center, Face}
	FFC = Location{Face, Face, Center}
	FCF = Location{Face, Center, Face}
	CFF = Location{Center, Face, Face}
	FFF = Location{Face, Face, Face}

	// Locations lists the 8 canonical positions in a fixed order.
	Locations = []Location{CCC, FCC, CFC, CCF, FFC, FCF, CFF, FFF}

	locationNames = map[string]Location{
		"ccc": CCC, "fcc": FCC, "cfc": CFC, "ccf": CCF,
		"ffc": FFC, "fcf": FCF, "cff": CFF, "fff": FFF,
	}
)

func (loc Location) Print() (txt string) {
	txt = loc.X.Print() + loc.Y.Print() + loc.Z.Print()
	return
}

// Along returns the placement of loc along a single axis.
func (loc Location) Along(a Axis) AxisLoc {
	switch a {
	case X:
		return loc.X
	case Y:
		return loc.Y
	}
	return loc.Z
}

// WithAxis returns loc with the placement along axis a replaced by al. The
// orthogonal axes are untouched.
func (loc Location) WithAxis(a Axis, al AxisLoc) Location {
	switch a {
	case X:
		loc.X = al
	case Y:
		loc.Y = al
	default:
		loc.Z = al
	}
	return loc
}

// NewLocation resolves a three letter label like "FCC". Unknown labels are a
// configuration error and panic, following the fail-at-setup policy.
func NewLocation(label string) (loc Location) {
	var (
		ok bool
	)
	if loc, ok = locationNames[strings.ToLower(label)]; !ok {
		err := fmt.Errorf("unable to use location named %s", label)
		panic(err)
	}
	return
}
