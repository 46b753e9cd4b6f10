package analysis

import (
	"testing"

	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func TestEWSForNormalReadingsIsZero(t *testing.T) {
	is := is.New(t)

	diastolic := 80.0
	bp := measurement(types.VitalTypeBloodPressure, 120)
	bp.SecondaryValue = &diastolic

	ews := ComputeEWS([]types.VitalMeasurement{
		measurement(types.VitalTypeHeartRate, 75),
		bp,
		measurement(types.VitalTypeTemperature, 36.8),
		measurement(types.VitalTypeSpO2, 98),
		measurement(types.VitalTypeRespiratoryRate, 16),
	})

	is.Equal(ews.TotalScore, 0)
	is.Equal(ews.RiskLevel, RiskLevelNormal)
	is.Equal(len(ews.Factors), 0)
}

func TestEWSHeartRateScoring(t *testing.T) {
	is := is.New(t)

	ews := ComputeEWS([]types.VitalMeasurement{measurement(types.VitalTypeHeartRate, 35)})
	is.Equal(ews.Scores[types.VitalTypeHeartRate], 3)
	is.Equal(ews.Factors[0], "Heart rate 35 bpm (critical)")

	ews = ComputeEWS([]types.VitalMeasurement{measurement(types.VitalTypeHeartRate, 65)})
	is.Equal(ews.Scores[types.VitalTypeHeartRate], 0)
}

func TestEWSUsesMostRecentReadingPerType(t *testing.T) {
	is := is.New(t)

	readings := series(types.VitalTypeHeartRate, 35, 75)

	ews := ComputeEWS(readings)

	is.Equal(ews.Scores[types.VitalTypeHeartRate], 0)
}

func TestEWSBloodPressureTakesWorseOfTwoReadings(t *testing.T) {
	is := is.New(t)

	diastolic := 125.0
	bp := measurement(types.VitalTypeBloodPressure, 120)
	bp.SecondaryValue = &diastolic

	ews := ComputeEWS([]types.VitalMeasurement{bp})

	is.Equal(ews.Scores[types.VitalTypeBloodPressure], 3)
}

func TestEWSRiskTiers(t *testing.T) {
	is := is.New(t)

	is.Equal(riskLevel(0), RiskLevelNormal)
	is.Equal(riskLevel(2), RiskLevelNormal)
	is.Equal(riskLevel(3), RiskLevelLow)
	is.Equal(riskLevel(5), RiskLevelMedium)
	is.Equal(riskLevel(7), RiskLevelHigh)
	is.Equal(riskLevel(12), RiskLevelHigh)
}
