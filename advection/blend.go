package advection

import "math"

/*
	UpwindBlend combines two independently reconstructed candidate values
	into a single upwind-consistent one. The weight follows tanh of the
	transport velocity over the blend width: strongly positive transport
	returns the left biased candidate, strongly negative the right biased
	one, and the transition through zero is smooth and differentiable, so
	there is no flux discontinuity and no control-flow branch on the sign.
*/
func UpwindBlend(vhat, phiL, phiR, width float64) float64 {
	s := math.Tanh(vhat / width)
	return 0.5 * ((1+s)*phiL + (1-s)*phiR)
}
