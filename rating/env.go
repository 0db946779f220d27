// Package rating implements an online Bayesian skill-rating engine.
// Each competitor carries a Gaussian belief over their skill, and match
// outcomes update those beliefs through closed-form expectation
// propagation against truncated-Gaussian outcome factors, in the style
// of TrueSkill.
package rating

import (
	"fmt"
	"math"

	"skillrank/gaussian"
)

// Default configuration on the conventional 25-point scale.
const (
	DefaultMu              = 25.0
	DefaultSigma           = DefaultMu / 3.0
	DefaultBeta            = DefaultMu / 6.0
	DefaultTau             = DefaultMu / 300.0
	DefaultDrawProbability = 0.10
)

// Quantile search parameters for the draw-margin calibration.
const (
	marginIterations = 80
	quantileLo       = -10.0
	quantileHi       = 10.0
)

// Env holds one rating configuration and the draw margin calibrated from
// it. An Env is immutable after construction and safe for concurrent
// reads; the players it updates are not.
type Env struct {
	mu0             float64
	sigma0          float64
	beta            float64
	tau             float64
	drawProbability float64
	trust           float64
	eps             float64
}

type Option func(*Env)

// WithPrior sets the mean and deviation assigned to new players.
func WithPrior(mu, sigma float64) Option {
	return func(e *Env) {
		e.mu0 = mu
		e.sigma0 = sigma
	}
}

// WithBeta sets the performance-noise scale.
func WithBeta(beta float64) Option {
	return func(e *Env) {
		e.beta = beta
	}
}

// WithTau sets the per-match uncertainty drift.
func WithTau(tau float64) Option {
	return func(e *Env) {
		e.tau = tau
	}
}

// WithDrawProbability sets the probability mass reserved for draws
// between equally-skilled opponents.
func WithDrawProbability(p float64) Option {
	return func(e *Env) {
		e.drawProbability = p
	}
}

// WithTrust scales extra performance variance by each player's own
// uncertainty. Zero recovers the base model.
func WithTrust(trust float64) Option {
	return func(e *Env) {
		e.trust = trust
	}
}

// NewEnv builds an environment from the defaults and the given options,
// then calibrates the draw margin once from beta and the draw
// probability. The configuration is validated, not coerced.
func NewEnv(options ...Option) (*Env, error) {
	e := &Env{
		mu0:             DefaultMu,
		sigma0:          DefaultSigma,
		beta:            DefaultBeta,
		tau:             DefaultTau,
		drawProbability: DefaultDrawProbability,
	}
	for _, option := range options {
		option(e)
	}

	if e.sigma0 <= 0 {
		return nil, fmt.Errorf("rating: prior sigma must be positive, got %g", e.sigma0)
	}
	if e.beta <= 0 {
		return nil, fmt.Errorf("rating: beta must be positive, got %g", e.beta)
	}
	if e.tau < 0 {
		return nil, fmt.Errorf("rating: tau must be non-negative, got %g", e.tau)
	}
	if e.drawProbability < 0 || e.drawProbability >= 1 {
		return nil, fmt.Errorf("rating: draw probability must be in [0,1), got %g", e.drawProbability)
	}
	if e.trust < 0 {
		return nil, fmt.Errorf("rating: trust must be non-negative, got %g", e.trust)
	}

	e.eps = drawMargin(e.beta, e.drawProbability)
	return e, nil
}

// MakePlayer returns a fresh player at the environment's prior. The
// environment keeps no reference to it; the caller owns its lifetime and
// passes it back into Rate to accumulate updates.
func (e *Env) MakePlayer(name string) *Player {
	return &Player{Name: name, Mu: e.mu0, Sigma: e.sigma0}
}

// Beta returns the performance-noise scale.
func (e *Env) Beta() float64 { return e.beta }

// Tau returns the per-match drift.
func (e *Env) Tau() float64 { return e.tau }

// Eps returns the calibrated draw margin in performance-difference space.
func (e *Env) Eps() float64 { return e.eps }

// DrawProbability returns the configured draw probability.
func (e *Env) DrawProbability() float64 { return e.drawProbability }

// drawMargin converts a draw probability into a margin on the performance
// difference of two equally-skilled opponents, whose difference is
// distributed N(0, 2*beta^2). It binary-searches the standard-normal
// quantile z with Cdf(z) = (p+1)/2, then rescales: eps = z*sqrt(2)*beta.
// The search is a fixed iteration count, so the result is deterministic
// for a given configuration.
func drawMargin(beta, drawProbability float64) float64 {
	target := (drawProbability + 1.0) / 2.0

	lo, hi := quantileLo, quantileHi
	for i := 0; i < marginIterations; i++ {
		mid := (lo + hi) / 2.0
		if gaussian.Cdf(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	z := (lo + hi) / 2.0
	return z * math.Sqrt2 * beta
}
