package usecase

import (
	"math"
	"math/rand"
	"time"

	"carmarket/internal/domain/entities"
)

// Estimator computes market-value estimates.
//
// The base value is randomized on purpose: the number is an estimate band,
// not a quote, and two runs over the same vehicle are allowed to differ.
// Callers that need reproducible output (tests) inject a fixed source.
type Estimator struct {
	rnd *rand.Rand
}

// NewEstimator builds an estimator over src; a nil src seeds from the clock.
func NewEstimator(src rand.Source) *Estimator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Estimator{rnd: rand.New(src)}
}

// Estimate prices a vehicle: a random base in [10000, 30000) adjusted
// linearly for model year and mileage, scaled by the condition multiplier
// and rounded to the nearest dollar. Floored at zero for absurd mileage.
func (e *Estimator) Estimate(year, mileage int, cond entities.Condition) int {
	base := float64(e.rnd.Intn(20000) + 10000)
	yearAdj := float64(year-2010) * 1000
	mileageAdj := float64(mileage) / 10000 * 500

	v := int(math.Round((base + yearAdj - mileageAdj) * entities.ConditionMultiplier(cond)))
	if v < 0 {
		v = 0
	}
	return v
}
