package analysis

import (
	"testing"

	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func TestNoAlertForNormalNonAnomalousMeasurement(t *testing.T) {
	is := is.New(t)

	_, warranted := ClassifyAlert(measurement(types.VitalTypeHeartRate, 75))

	is.Equal(warranted, false)
}

func TestAnomalousMeasurementAlwaysProducesAlert(t *testing.T) {
	is := is.New(t)

	m := measurement(types.VitalTypeHeartRate, 75)
	m.IsAnomaly = true

	alert, warranted := ClassifyAlert(m)

	is.True(warranted)
	is.Equal(alert.Message, "Anomaly detected: Heart rate is 75 bpm (outside normal range)")
	is.Equal(alert.Severity, types.AlertSeverityLow)
	is.Equal(alert.ActionRequired, "")
}

func TestAbnormalMeasurementProducesAlert(t *testing.T) {
	is := is.New(t)

	alert, warranted := ClassifyAlert(measurement(types.VitalTypeHeartRate, 120))

	is.True(warranted)
	is.Equal(alert.Message, "Abnormal reading: Heart rate is 120 bpm")
	is.Equal(alert.Severity, types.AlertSeverityMedium)
}

func TestCriticalAlertCarriesActionRequired(t *testing.T) {
	is := is.New(t)

	secondary := 115.0
	m := measurement(types.VitalTypeBloodPressure, 190)
	m.SecondaryValue = &secondary

	alert, warranted := ClassifyAlert(m)

	is.True(warranted)
	is.Equal(alert.Severity, types.AlertSeverityCritical)
	is.Equal(alert.ActionRequired, "Seek immediate medical attention")
	is.Equal(alert.Message, "Abnormal reading: Blood pressure is 190/115 mmHg")
}
