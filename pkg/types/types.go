package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

type VitalType string

const (
	VitalTypeHeartRate       VitalType = "heartRate"
	VitalTypeBloodPressure   VitalType = "bloodPressure"
	VitalTypeTemperature     VitalType = "temperature"
	VitalTypeSpO2            VitalType = "spO2"
	VitalTypeRespiratoryRate VitalType = "respiratoryRate"
)

func VitalTypes() []VitalType {
	return []VitalType{
		VitalTypeHeartRate,
		VitalTypeBloodPressure,
		VitalTypeTemperature,
		VitalTypeSpO2,
		VitalTypeRespiratoryRate,
	}
}

func ParseVitalType(s string) (VitalType, error) {
	for _, vt := range VitalTypes() {
		if s == string(vt) {
			return vt, nil
		}
	}
	return "", fmt.Errorf("unknown vital type %s", s)
}

// VitalMeasurement is a single physiological reading. IsAnomaly and
// Confidence are assigned exactly once, during ingestion, before the
// measurement is first persisted.
type VitalMeasurement struct {
	ID             string    `json:"id,omitempty"`
	PatientID      string    `json:"patientID"`
	Type           VitalType `json:"type"`
	Value          float64   `json:"value"`
	SecondaryValue *float64  `json:"secondaryValue,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	Notes          string    `json:"notes,omitempty"`
	IsAnomaly      bool      `json:"isAnomaly"`
	Confidence     *float64  `json:"confidence,omitempty"`
	Tenant         string    `json:"tenant,omitempty"`
}

type AlertSeverity int

const (
	AlertSeverityLow      AlertSeverity = 1
	AlertSeverityMedium   AlertSeverity = 2
	AlertSeverityHigh     AlertSeverity = 3
	AlertSeverityCritical AlertSeverity = 4
)

var severityNames = map[AlertSeverity]string{
	AlertSeverityLow:      "low",
	AlertSeverityMedium:   "medium",
	AlertSeverityHigh:     "high",
	AlertSeverityCritical: "critical",
}

func (s AlertSeverity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

func ParseAlertSeverity(s string) (AlertSeverity, error) {
	for sev, name := range severityNames {
		if s == name {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("unknown alert severity %s", s)
}

func (s AlertSeverity) MarshalJSON() ([]byte, error) {
	name, ok := severityNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid alert severity %d", int(s))
	}
	return json.Marshal(name)
}

func (s *AlertSeverity) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(bytes.TrimSpace(b), &name); err != nil {
		return err
	}

	sev, err := ParseAlertSeverity(name)
	if err != nil {
		return err
	}

	*s = sev
	return nil
}

// VitalAlert is a warning derived from an abnormal or anomalous
// measurement. Only IsRead may change after creation.
type VitalAlert struct {
	ID             string        `json:"id,omitempty"`
	PatientID      string        `json:"patientID"`
	Type           VitalType     `json:"type"`
	Message        string        `json:"message"`
	Severity       AlertSeverity `json:"severity"`
	ObservedAt     time.Time     `json:"observedAt"`
	IsRead         bool          `json:"isRead"`
	ActionRequired string        `json:"actionRequired,omitempty"`
	Tenant         string        `json:"tenant,omitempty"`
}

type EarlyWarningScore struct {
	TotalScore int               `json:"totalScore"`
	Scores     map[VitalType]int `json:"scores"`
	RiskLevel  string            `json:"riskLevel"`
	Factors    []string          `json:"factors,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

type TrendReport struct {
	Type           VitalType `json:"type"`
	Trend          string    `json:"trend"`
	Slope          float64   `json:"slope"`
	Confidence     float64   `json:"confidence"`
	Recommendation string    `json:"recommendation"`
	DataPoints     int       `json:"dataPoints"`
}

type Prediction struct {
	Type              VitalType `json:"type"`
	PredictedValue    *float64  `json:"predictedValue"`
	Confidence        float64   `json:"confidence"`
	NextCheckTime     time.Time `json:"nextCheckTime"`
	BasedOnDataPoints int       `json:"basedOnDataPoints"`
}

type VitalStats struct {
	Type            VitalType `json:"type"`
	Count           int       `json:"count"`
	Average         float64   `json:"average"`
	Min             float64   `json:"min"`
	Max             float64   `json:"max"`
	LatestValue     float64   `json:"latestValue"`
	LatestTimestamp time.Time `json:"latestTimestamp"`
}

type HealthSummary struct {
	OverallStatus   string            `json:"overallStatus"`
	CriticalAlerts  int               `json:"criticalAlerts"`
	WarningAlerts   int               `json:"warningAlerts"`
	RecentAnomalies int               `json:"recentAnomalies"`
	EWS             EarlyWarningScore `json:"earlyWarningScore"`
	Trends          []TrendReport     `json:"trendAnalysis,omitempty"`
	LastUpdated     time.Time         `json:"lastUpdated"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
