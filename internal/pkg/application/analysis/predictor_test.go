package analysis

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func TestPredictionRequiresThreeDataPoints(t *testing.T) {
	is := is.New(t)

	p := PredictNext(types.VitalTypeHeartRate, series(types.VitalTypeHeartRate, 70, 75))

	is.Equal(p.PredictedValue, nil)
	is.Equal(p.Confidence, 0.0)
	is.Equal(p.BasedOnDataPoints, 2)
}

func TestPredictionExtrapolatesTrend(t *testing.T) {
	is := is.New(t)

	s := series(types.VitalTypeHeartRate, 60, 65, 70, 75, 80)

	p := PredictNext(types.VitalTypeHeartRate, s)

	is.True(p.PredictedValue != nil)
	is.Equal(*p.PredictedValue, 85.0)
	is.Equal(p.BasedOnDataPoints, 5)
	is.Equal(p.NextCheckTime, s[len(s)-1].Timestamp.Add(time.Hour))
}

func TestPredictionConfidenceDropsWithVariance(t *testing.T) {
	is := is.New(t)

	steady := PredictNext(types.VitalTypeHeartRate, series(types.VitalTypeHeartRate, 71, 72, 71, 72))
	noisy := PredictNext(types.VitalTypeHeartRate, series(types.VitalTypeHeartRate, 50, 110, 45, 120))

	is.True(steady.Confidence > noisy.Confidence)
	is.Equal(noisy.Confidence, 0.1)
}
