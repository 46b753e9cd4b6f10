package analysis

import (
	"fmt"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

const criticalAction = "Seek immediate medical attention"

// ClassifyAlert derives an alert from an annotated measurement. A
// measurement that is inside its normal range and not flagged anomalous
// never warrants an alert.
func ClassifyAlert(m types.VitalMeasurement) (types.VitalAlert, bool) {
	if InNormalRange(m) && !m.IsAnomaly {
		return types.VitalAlert{}, false
	}

	severity := Severity(m)

	var message string
	if m.IsAnomaly {
		message = fmt.Sprintf("Anomaly detected: %s is %s %s (outside normal range)", Label(m.Type), formatValue(m), Unit(m.Type))
	} else {
		message = fmt.Sprintf("Abnormal reading: %s is %s %s", Label(m.Type), formatValue(m), Unit(m.Type))
	}

	alert := types.VitalAlert{
		PatientID: m.PatientID,
		Type:      m.Type,
		Message:   message,
		Severity:  severity,
		Tenant:    m.Tenant,
	}

	if severity == types.AlertSeverityCritical {
		alert.ActionRequired = criticalAction
	}

	return alert, true
}
