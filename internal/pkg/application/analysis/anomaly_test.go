package analysis

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func TestEmptyHistoryFallsBackToRangeMembership(t *testing.T) {
	is := is.New(t)

	d := DetectAnomaly(measurement(types.VitalTypeHeartRate, 75), nil)

	is.Equal(d.IsAnomaly, false)
	is.Equal(d.Confidence, 0.8)
}

func TestEmptyHistoryFlagsAbnormalReading(t *testing.T) {
	is := is.New(t)

	d := DetectAnomaly(measurement(types.VitalTypeHeartRate, 140), nil)

	is.Equal(d.IsAnomaly, true)
	is.Equal(d.Confidence, 0.6)
}

func TestZeroVarianceHistoryDoesNotDivideByZero(t *testing.T) {
	is := is.New(t)

	history := series(types.VitalTypeHeartRate, 72, 72, 72, 72)

	d := DetectAnomaly(measurement(types.VitalTypeHeartRate, 75), history)
	is.Equal(d.IsAnomaly, false)
	is.Equal(d.Confidence, 0.8)

	d = DetectAnomaly(measurement(types.VitalTypeHeartRate, 130), history)
	is.Equal(d.IsAnomaly, true)
	is.Equal(d.Confidence, 0.6)
}

func TestOutlierAgainstHistoryIsAnomalous(t *testing.T) {
	is := is.New(t)

	history := series(types.VitalTypeHeartRate, 70, 72, 74, 71, 73)

	d := DetectAnomaly(measurement(types.VitalTypeHeartRate, 95), history)

	is.Equal(d.IsAnomaly, true)
	is.Equal(d.Confidence, 0.3)
}

func TestValueCloseToHistoricalMeanIsNotAnomalous(t *testing.T) {
	is := is.New(t)

	history := series(types.VitalTypeHeartRate, 70, 72, 74, 71, 73)

	d := DetectAnomaly(measurement(types.VitalTypeHeartRate, 72), history)

	is.Equal(d.IsAnomaly, false)
	is.Equal(d.Confidence, 0.9)
}

func TestCriticalValueForcesAnomalyRegardlessOfHistory(t *testing.T) {
	is := is.New(t)

	// history centred around the critical value keeps |z| small
	history := series(types.VitalTypeHeartRate, 154, 155, 156, 155, 154)

	d := DetectAnomaly(measurement(types.VitalTypeHeartRate, 155), history)

	is.Equal(d.IsAnomaly, true)
}

func TestBloodPressureCriticalRoundTrip(t *testing.T) {
	is := is.New(t)

	secondary := 115.0
	m := measurement(types.VitalTypeBloodPressure, 190)
	m.SecondaryValue = &secondary

	is.True(IsCriticalValue(m))
	is.Equal(Severity(m), types.AlertSeverityCritical)
}

func measurement(t types.VitalType, value float64) types.VitalMeasurement {
	return types.VitalMeasurement{
		PatientID: "patient-1",
		Type:      t,
		Value:     value,
		Timestamp: time.Now().UTC(),
	}
}

func series(t types.VitalType, values ...float64) []types.VitalMeasurement {
	ms := make([]types.VitalMeasurement, len(values))
	start := time.Now().UTC().Add(-time.Duration(len(values)) * time.Hour)
	for i, v := range values {
		ms[i] = measurement(t, v)
		ms[i].Timestamp = start.Add(time.Duration(i) * time.Hour)
	}
	return ms
}
