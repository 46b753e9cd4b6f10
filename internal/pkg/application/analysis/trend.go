package analysis

import (
	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

const (
	TrendIncreasing       = "Increasing"
	TrendDecreasing       = "Decreasing"
	TrendStable           = "Stable"
	TrendInsufficientData = "Insufficient Data"
)

const slopeDirectionThreshold = 0.1

// AnalyzeTrend fits an ordinary least-squares line to a time-ordered
// series of same-type measurements. The regression runs over position
// indices, not actual timestamp gaps, so unevenly spaced series are
// treated as if equally spaced.
func AnalyzeTrend(t types.VitalType, series []types.VitalMeasurement) types.TrendReport {
	if len(series) < 3 {
		return types.TrendReport{
			Type:           t,
			Trend:          TrendInsufficientData,
			Recommendation: insufficientDataRecommendation,
			DataPoints:     len(series),
		}
	}

	vs := values(series)
	slope, intercept := leastSquares(vs)

	direction := TrendStable
	if slope > slopeDirectionThreshold {
		direction = TrendIncreasing
	} else if slope < -slopeDirectionThreshold {
		direction = TrendDecreasing
	}

	return types.TrendReport{
		Type:           t,
		Trend:          direction,
		Slope:          slope,
		Confidence:     rSquared(vs, slope, intercept),
		Recommendation: recommendation(t, direction),
		DataPoints:     len(series),
	}
}

// leastSquares fits y = slope*x + intercept with x = 0..n-1.
func leastSquares(vs []float64) (float64, float64) {
	n := float64(len(vs))

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range vs {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	return slope, intercept
}

// rSquared is the coefficient of determination of the fit, clamped to
// [0,1]. A series without variance has no meaningful fit quality.
func rSquared(vs []float64, slope, intercept float64) float64 {
	var sumY float64
	for _, v := range vs {
		sumY += v
	}
	mean := sumY / float64(len(vs))

	var ssTot, ssRes float64
	for i, v := range vs {
		predicted := slope*float64(i) + intercept
		ssTot += (v - mean) * (v - mean)
		ssRes += (v - predicted) * (v - predicted)
	}

	if ssTot == 0 {
		return 0
	}

	r2 := 1 - ssRes/ssTot
	if r2 < 0 {
		return 0
	}
	if r2 > 1 {
		return 1
	}

	return r2
}

const insufficientDataRecommendation = "Not enough measurements to establish a trend. Collect more readings."

// advisory text only, must not claim diagnostic authority
var recommendations = map[types.VitalType]map[string]string{
	types.VitalTypeHeartRate: {
		TrendIncreasing: "Heart rate is trending upward. Consider more frequent checks.",
		TrendDecreasing: "Heart rate is trending downward. Watch for symptoms of bradycardia.",
	},
	types.VitalTypeBloodPressure: {
		TrendIncreasing: "Blood pressure is trending upward. A medication review may be warranted.",
		TrendDecreasing: "Blood pressure is trending downward. Watch for dizziness.",
	},
	types.VitalTypeTemperature: {
		TrendIncreasing: "Temperature is trending upward. Monitor for fever.",
		TrendDecreasing: "Temperature is trending downward. Ensure the patient keeps warm.",
	},
	types.VitalTypeSpO2: {
		TrendIncreasing: "Oxygen saturation is improving. Continue current care.",
		TrendDecreasing: "Oxygen saturation is trending downward. Check breathing and consider supplemental oxygen.",
	},
	types.VitalTypeRespiratoryRate: {
		TrendIncreasing: "Respiratory rate is trending upward. Monitor for respiratory distress.",
		TrendDecreasing: "Respiratory rate is trending downward. Watch for respiratory depression.",
	},
}

const stableRecommendation = "Readings are stable. Continue routine monitoring."

func recommendation(t types.VitalType, direction string) string {
	if r, ok := recommendations[t][direction]; ok {
		return r
	}
	return stableRecommendation
}
