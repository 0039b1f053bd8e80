package sizing

import (
	"slices"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
)

// Fallback thresholds for measurements outside every band.
const (
	fallbackHeightCM = 185
	fallbackWeightKG = 100
	fallbackBulkyBMI = 25
	FallbackFitTip   = "This is our best recommendation based on your measurements."
)

// Estimator recommends a garment size from height (cm) and weight (kg).
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	table Table
}

func NewEstimator(t Table) *Estimator {
	return &Estimator{table: t.clone()}
}

// Estimate returns the first rule containing (height, weight) in priority
// order, or a BMI-based fallback when none does. It never fails.
func (e *Estimator) Estimate(height, weight float64) domain.SizeRecommendation {
	for _, r := range e.table.Rules {
		if r.Contains(height, weight) {
			return domain.SizeRecommendation{
				Size:     r.RecommendedSize,
				BodyType: r.BodyType,
				FitTip:   e.table.FitTips[r.BodyType],
				Matched:  true,
			}
		}
	}
	return fallback(height, weight)
}

func fallback(height, weight float64) domain.SizeRecommendation {
	size := domain.SizeL
	if height > fallbackHeightCM || weight > fallbackWeightKG {
		size = domain.SizeXXL
	}

	bodyType := domain.BodyTypeAthletic
	if BMI(height, weight) > fallbackBulkyBMI {
		bodyType = domain.BodyTypeBulky
	}

	return domain.SizeRecommendation{
		Size:     size,
		BodyType: bodyType,
		FitTip:   FallbackFitTip,
	}
}

// BMI is weight in kg over height in metres squared.
func BMI(height, weight float64) float64 {
	m := height / 100
	return weight / (m * m)
}

// Rules returns the table in scan order.
func (e *Estimator) Rules() []domain.SizeRule {
	return slices.Clone(e.table.Rules)
}

func (e *Estimator) FitTip(bt domain.BodyType) string {
	return e.table.FitTips[bt]
}
