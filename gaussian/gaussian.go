// Package gaussian provides the standard-normal density and distribution
// functions plus the truncated-Gaussian moment corrections used by the
// expectation-propagation rating updates.
package gaussian

import "math"

// Denominators below this are treated as a vanished tail.
const tailGuard = 1e-12

var sqrt2Pi = math.Sqrt(2.0 * math.Pi)

// Pdf returns the standard normal density at x.
func Pdf(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

// Cdf returns the standard normal cumulative distribution at x.
func Cdf(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// VWin returns the mean correction v(t) for a win/loss truncation at the
// normalized margin t. Far in the lower tail the ratio pdf/cdf degenerates
// numerically and its limit -t is returned instead.
func VWin(t float64) float64 {
	denom := Cdf(t)
	if denom < tailGuard {
		return -t
	}
	return Pdf(t) / denom
}

// WWin returns the variance correction w(t) = v(t)*(v(t)+t) for a win/loss
// truncation. It lies in (0, 1) for all finite t.
func WWin(t float64) float64 {
	v := VWin(t)
	return v * (v + t)
}

// VDraw returns the mean correction for a draw, a double truncation of the
// performance difference to [-eps, eps] around the normalized margin t.
// A vanished interval mass yields 0.
func VDraw(t, eps float64) float64 {
	a := -eps - t
	b := eps - t
	denom := Cdf(b) - Cdf(a)
	if denom < tailGuard {
		return 0.0
	}
	return (Pdf(a) - Pdf(b)) / denom
}

// WDraw returns the variance correction for a draw at normalized margin t
// and half-width eps, 0 when the interval mass has vanished.
func WDraw(t, eps float64) float64 {
	a := -eps - t
	b := eps - t
	denom := Cdf(b) - Cdf(a)
	if denom < tailGuard {
		return 0.0
	}
	v := VDraw(t, eps)
	return v*v + (b*Pdf(b)-a*Pdf(a))/denom
}
