package analysis

import (
	"testing"

	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func TestTrendRequiresThreeDataPoints(t *testing.T) {
	is := is.New(t)

	report := AnalyzeTrend(types.VitalTypeHeartRate, series(types.VitalTypeHeartRate, 70, 75))

	is.Equal(report.Trend, TrendInsufficientData)
	is.Equal(report.Slope, 0.0)
	is.Equal(report.Confidence, 0.0)
	is.Equal(report.DataPoints, 2)
	is.Equal(report.Recommendation, insufficientDataRecommendation)
}

func TestTrendOnPerfectlyLinearSeries(t *testing.T) {
	is := is.New(t)

	report := AnalyzeTrend(types.VitalTypeHeartRate, series(types.VitalTypeHeartRate, 60, 65, 70, 75, 80))

	is.Equal(report.Slope, 5.0)
	is.Equal(report.Trend, TrendIncreasing)
	is.Equal(report.Confidence, 1.0)
	is.Equal(report.DataPoints, 5)
}

func TestTrendOnFlatSeriesIsStableWithZeroConfidence(t *testing.T) {
	is := is.New(t)

	report := AnalyzeTrend(types.VitalTypeSpO2, series(types.VitalTypeSpO2, 97, 97, 97, 97))

	is.Equal(report.Trend, TrendStable)
	is.Equal(report.Slope, 0.0)
	is.Equal(report.Confidence, 0.0)
	is.Equal(report.Recommendation, stableRecommendation)
}

func TestTrendDirectionOnDecreasingSeries(t *testing.T) {
	is := is.New(t)

	report := AnalyzeTrend(types.VitalTypeSpO2, series(types.VitalTypeSpO2, 98, 96, 94, 92))

	is.Equal(report.Trend, TrendDecreasing)
	is.Equal(report.Recommendation, recommendations[types.VitalTypeSpO2][TrendDecreasing])
}
