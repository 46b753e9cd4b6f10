package analysis

import (
	"time"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

const predictionHorizon = time.Hour

// PredictNext extrapolates the series' least-squares trend to one hour
// after the latest reading. Unlike AnalyzeTrend, the extrapolation step
// uses the real time gap to the prediction target.
func PredictNext(t types.VitalType, series []types.VitalMeasurement) types.Prediction {
	if len(series) < 3 {
		return types.Prediction{
			Type:              t,
			BasedOnDataPoints: len(series),
		}
	}

	vs := values(series)
	slope, _ := leastSquares(vs)

	last := series[len(series)-1]
	target := last.Timestamp.Add(predictionHorizon)
	deltaHours := target.Sub(last.Timestamp).Hours()

	predicted := last.Value + slope*deltaHours

	variance := populationVariance(vs)
	confidence := 1 - min(1, variance/100)
	if confidence < 0.1 {
		confidence = 0.1
	}

	return types.Prediction{
		Type:              t,
		PredictedValue:    &predicted,
		Confidence:        confidence,
		NextCheckTime:     target,
		BasedOnDataPoints: len(series),
	}
}
