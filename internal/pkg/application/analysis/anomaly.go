package analysis

import (
	"math"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

const zScoreThreshold = 2.0

type Detection struct {
	IsAnomaly  bool
	Confidence float64
}

// DetectAnomaly compares a measurement against the patient's own history
// for the same vital type. With insufficient or zero-variance history it
// falls back to normal-range membership. Pure function, no side effects.
func DetectAnomaly(m types.VitalMeasurement, history []types.VitalMeasurement) Detection {
	if len(history) == 0 {
		return rangeFallback(m)
	}

	mean, stddev := meanAndStdDev(values(history))
	if stddev == 0 {
		// all historical values are identical, a z-score is undefined
		return rangeFallback(m)
	}

	z := math.Abs((m.Value - mean) / stddev)

	return Detection{
		IsAnomaly:  z > zScoreThreshold || IsCriticalValue(m),
		Confidence: stepConfidence(z),
	}
}

func rangeFallback(m types.VitalMeasurement) Detection {
	if InNormalRange(m) {
		return Detection{IsAnomaly: false, Confidence: 0.8}
	}
	return Detection{IsAnomaly: true, Confidence: 0.6}
}

func stepConfidence(z float64) float64 {
	switch {
	case z <= 1.0:
		return 0.9
	case z <= 2.0:
		return 0.7
	case z <= 3.0:
		return 0.5
	default:
		return 0.3
	}
}

func values(ms []types.VitalMeasurement) []float64 {
	vs := make([]float64, len(ms))
	for i, m := range ms {
		vs[i] = m.Value
	}
	return vs
}

func meanAndStdDev(vs []float64) (float64, float64) {
	if len(vs) == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range vs {
		sum += v
	}
	mean := sum / float64(len(vs))

	var variance float64
	for _, v := range vs {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(vs))

	return mean, math.Sqrt(variance)
}

func populationVariance(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}

	_, stddev := meanAndStdDev(vs)
	return stddev * stddev
}
