// Package ranking derives a question's rank score from its vote totals and
// age. The score balances raw popularity against the anti-polarization goal of
// keeping a single highly-mobilized faction from dominating visibility: the
// net-vote base saturates, old questions decay toward a floor, and extremely
// lopsided vote ratios are downweighted without erasing strong consensus.
package ranking

import (
	"fmt"
	"math"
	"time"
)

// Params are the tunable policy knobs of the score curve. The shape is a
// policy slot rather than a fixed law; defaults here are the shipped policy.
type Params struct {
	// HalfLifeDays is the age at which the decay multiplier halves.
	HalfLifeDays float64
	// DecayFloor is the minimum decay multiplier so old questions never drop
	// out of ranking entirely.
	DecayFloor float64
	// Saturation is the net-vote magnitude where the base curve starts to
	// flatten, bounding the influence of raw vote count.
	Saturation float64
	// DiversityFloor is the minimum diversity multiplier applied to fully
	// one-sided vote distributions.
	DiversityFloor float64
	// MinDiversitySample is the total vote count below which the diversity
	// multiplier stays at 1, so early votes are not punished for small-sample
	// lopsidedness.
	MinDiversitySample int64
}

// DefaultParams returns the shipped ranking policy.
func DefaultParams() Params {
	return Params{
		HalfLifeDays:       7,
		DecayFloor:         0.05,
		Saturation:         50,
		DiversityFloor:     0.25,
		MinDiversitySample: 10,
	}
}

// Validate checks the params for values that would break the score contract.
func (p Params) Validate() error {
	if p.HalfLifeDays <= 0 {
		return fmt.Errorf("half-life must be positive, got %f", p.HalfLifeDays)
	}

	if p.DecayFloor < 0 || p.DecayFloor > 1 {
		return fmt.Errorf("decay floor must be in [0,1], got %f", p.DecayFloor)
	}

	if p.Saturation <= 0 {
		return fmt.Errorf("saturation must be positive, got %f", p.Saturation)
	}

	if p.DiversityFloor < 0 || p.DiversityFloor > 1 {
		return fmt.Errorf("diversity floor must be in [0,1], got %f", p.DiversityFloor)
	}

	return nil
}

// Calculator computes rank scores under a fixed policy.
type Calculator struct {
	params Params
}

// NewCalculator creates a calculator with the given policy.
func NewCalculator(params Params) *Calculator {
	return &Calculator{params: params}
}

// Score computes the rank score for a question's vote totals and age.
// Contract: monotonic in net votes for fixed age and diversity, monotonically
// non-increasing in age for fixed votes, and bounded in vote count alone.
func (c *Calculator) Score(upvotes, downvotes int64, age time.Duration) float64 {
	net := float64(upvotes - downvotes)
	base := c.params.Saturation * math.Tanh(net/c.params.Saturation)

	return base * c.timeDecay(age) * c.diversityFactor(upvotes, downvotes)
}

// timeDecay returns an exponential decay multiplier with a positive floor so
// recent, under-voted questions can still surface above long-dead ones.
func (c *Calculator) timeDecay(age time.Duration) float64 {
	if age < 0 {
		age = 0
	}

	days := age.Hours() / 24
	decay := math.Pow(0.5, days/c.params.HalfLifeDays)

	return math.Max(decay, c.params.DecayFloor)
}

// diversityFactor downweights questions whose vote ratio is extremely
// lopsided, capping the influence of coordinated brigading. The parabola
// 4r(1-r) peaks at an even split and is lifted by the floor so unanimous
// consensus keeps a reduced, non-zero weight.
func (c *Calculator) diversityFactor(upvotes, downvotes int64) float64 {
	total := upvotes + downvotes
	if total < c.params.MinDiversitySample {
		return 1
	}

	ratio := float64(upvotes) / float64(total)
	spread := 4 * ratio * (1 - ratio)

	return c.params.DiversityFloor + (1-c.params.DiversityFloor)*spread
}
