package types

import (
	"encoding/json"
	"time"
)

type MeasurementProcessed struct {
	Measurement VitalMeasurement `json:"measurement"`
	Tenant      string           `json:"tenant,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
}

func (m *MeasurementProcessed) ContentType() string {
	return "application/json"
}
func (m *MeasurementProcessed) TopicName() string {
	return "vitalsigns.measurementProcessed"
}
func (m *MeasurementProcessed) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

type AlertCreated struct {
	Alert     VitalAlert `json:"alert"`
	Tenant    string     `json:"tenant,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "vitalsigns.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertRead struct {
	ID        string    `json:"id"`
	Tenant    string    `json:"tenant,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertRead) ContentType() string {
	return "application/json"
}
func (a *AlertRead) TopicName() string {
	return "vitalsigns.alertRead"
}
func (a *AlertRead) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type VitalNotObserved struct {
	PatientID  string    `json:"patientID"`
	Type       VitalType `json:"type"`
	Tenant     string    `json:"tenant,omitempty"`
	ObservedAt time.Time `json:"observedAt"`
}

func (v *VitalNotObserved) ContentType() string {
	return "application/json"
}
func (v *VitalNotObserved) TopicName() string {
	return "watchdog.vitalNotObserved"
}
func (v *VitalNotObserved) Body() []byte {
	b, _ := json.Marshal(v)
	return b
}
