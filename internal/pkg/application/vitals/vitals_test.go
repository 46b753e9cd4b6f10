package vitals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/alerts"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/infrastructure/storage"
	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func TestIngestRunsAnalysisAndPersists(t *testing.T) {
	is, s, m, as := setupMocks(t)
	s.QueryMeasurementsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.VitalMeasurement], error) {
		return collectionOf(heartRates(t, 70, 72, 74, 71, 73)), nil
	}

	svc := New(s, m, as)

	result, alert, err := svc.Ingest(context.Background(), types.VitalMeasurement{
		PatientID: "patient-001",
		Type:      types.VitalTypeHeartRate,
		Value:     95,
		Tenant:    "default",
	})
	is.NoErr(err)

	is.True(result.ID != "")
	is.True(result.IsAnomaly)
	is.Equal(0.3, *result.Confidence)

	is.True(alert != nil)
	is.Equal(types.AlertSeverityLow, alert.Severity)

	is.Equal(1, len(s.AddMeasurementCalls()))
	is.Equal(1, len(as.AddCalls()))
	is.Equal(types.AlertSeverityLow, as.AddCalls()[0].Alert.Severity)

	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("vitalsigns.measurementProcessed", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestIngestLoadsHistoryWindowOnce(t *testing.T) {
	is, s, m, as := setupMocks(t)
	s.QueryMeasurementsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.VitalMeasurement], error) {
		return types.Collection[types.VitalMeasurement]{}, nil
	}

	svc := New(s, m, as)

	for _, v := range []float64{72, 74} {
		_, _, err := svc.Ingest(context.Background(), types.VitalMeasurement{
			PatientID: "patient-001",
			Type:      types.VitalTypeHeartRate,
			Value:     v,
			Tenant:    "default",
		})
		is.NoErr(err)
	}

	is.Equal(1, len(s.QueryMeasurementsCalls()))
	is.Equal(2, len(s.AddMeasurementCalls()))
}

func TestIngestStoreFailureKeepsAnalysis(t *testing.T) {
	is, s, m, as := setupMocks(t)
	s.QueryMeasurementsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.VitalMeasurement], error) {
		return types.Collection[types.VitalMeasurement]{}, nil
	}
	s.AddMeasurementFunc = func(ctx context.Context, m types.VitalMeasurement) error {
		return errors.New("connection reset")
	}

	svc := New(s, m, as)

	result, alert, err := svc.Ingest(context.Background(), types.VitalMeasurement{
		PatientID: "patient-001",
		Type:      types.VitalTypeHeartRate,
		Value:     140,
		Tenant:    "default",
	})

	is.True(errors.Is(err, ErrNotPersisted))
	is.True(result.IsAnomaly)
	is.True(result.Confidence != nil)

	// the caller still receives the classified alert and may retry
	is.True(alert != nil)
	is.Equal(types.AlertSeverityHigh, alert.Severity)

	is.Equal(0, len(as.AddCalls()))
	is.Equal(0, len(m.PublishOnTopicCalls()))

	// a failed write must not leak into the history window
	is.Equal(0, len(svc.(*vitalSvc).window.entry("patient-001", types.VitalTypeHeartRate).points))
}

func TestIngestRejectsBloodPressureWithoutDiastolic(t *testing.T) {
	is, s, m, as := setupMocks(t)

	svc := New(s, m, as)

	_, _, err := svc.Ingest(context.Background(), types.VitalMeasurement{
		PatientID: "patient-001",
		Type:      types.VitalTypeBloodPressure,
		Value:     120,
		Tenant:    "default",
	})
	is.True(err != nil)
	is.Equal(0, len(s.AddMeasurementCalls()))
}

func TestIngestRejectsSecondaryValueOnOtherVitals(t *testing.T) {
	is, s, m, as := setupMocks(t)

	svc := New(s, m, as)

	diastolic := 80.0
	_, _, err := svc.Ingest(context.Background(), types.VitalMeasurement{
		PatientID:      "patient-001",
		Type:           types.VitalTypeHeartRate,
		Value:          72,
		SecondaryValue: &diastolic,
		Tenant:         "default",
	})
	is.True(err != nil)
	is.Equal(0, len(s.AddMeasurementCalls()))
}

func TestConcurrentIngestLosesNoUpdates(t *testing.T) {
	is, s, m, as := setupMocks(t)
	s.QueryMeasurementsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.VitalMeasurement], error) {
		return types.Collection[types.VitalMeasurement]{}, nil
	}

	svc := New(s, m, as)

	var wg sync.WaitGroup
	for _, v := range []float64{72, 75} {
		wg.Add(1)
		go func(value float64) {
			defer wg.Done()
			_, _, err := svc.Ingest(context.Background(), types.VitalMeasurement{
				PatientID: "patient-001",
				Type:      types.VitalTypeHeartRate,
				Value:     value,
				Tenant:    "default",
			})
			is.NoErr(err)
		}(v)
	}
	wg.Wait()

	is.Equal(2, len(s.AddMeasurementCalls()))
	is.Equal(2, len(svc.(*vitalSvc).window.entry("patient-001", types.VitalTypeHeartRate).points))
}

func TestUpdateRerunsAnomalyDetection(t *testing.T) {
	is, s, m, as := setupMocks(t)
	observedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.GetMeasurementFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.VitalMeasurement, error) {
		return types.VitalMeasurement{
			ID:        "measurement-1",
			PatientID: "patient-001",
			Type:      types.VitalTypeHeartRate,
			Value:     130,
			Timestamp: observedAt,
			IsAnomaly: true,
			Tenant:    "default",
		}, nil
	}
	s.QueryMeasurementsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.VitalMeasurement], error) {
		return types.Collection[types.VitalMeasurement]{}, nil
	}
	s.UpdateMeasurementFunc = func(ctx context.Context, m types.VitalMeasurement) error {
		return nil
	}

	svc := New(s, m, as)

	result, err := svc.Update(context.Background(), types.VitalMeasurement{
		ID:        "measurement-1",
		PatientID: "patient-001",
		Type:      types.VitalTypeHeartRate,
		Value:     73,
		Tenant:    "default",
	})
	is.NoErr(err)

	is.True(!result.IsAnomaly)
	is.Equal(0.8, *result.Confidence)
	is.Equal(observedAt, result.Timestamp)
	is.Equal(1, len(s.UpdateMeasurementCalls()))
}

func TestHealthSummary(t *testing.T) {
	is, s, m, as := setupMocks(t)
	s.QueryMeasurementsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.VitalMeasurement], error) {
		return collectionOf(heartRates(t, 72)), nil
	}
	as.QueryFunc = func(ctx context.Context, offset, limit int, patientID string, unreadOnly bool, minSeverity types.AlertSeverity, tenants []string) (types.Collection[types.VitalAlert], error) {
		critical := types.VitalAlert{
			ID:        "alert-1",
			PatientID: patientID,
			Type:      types.VitalTypeSpO2,
			Severity:  types.AlertSeverityCritical,
			Tenant:    "default",
		}
		return types.Collection[types.VitalAlert]{Data: []types.VitalAlert{critical}, Count: 1, TotalCount: 1}, nil
	}

	svc := New(s, m, as)

	summary, err := svc.HealthSummary(context.Background(), "patient-001", []string{"default"})
	is.NoErr(err)

	is.Equal(1, summary.CriticalAlerts)
	is.Equal(0, summary.WarningAlerts)
	is.Equal("critical", summary.OverallStatus)
	is.Equal(0, summary.EWS.TotalScore)
	is.Equal(0, len(summary.Trends))
}

func TestMeasurementReceivedHandler(t *testing.T) {
	is := is.New(t)

	svc := &VitalServiceMock{
		IngestFunc: func(ctx context.Context, m types.VitalMeasurement) (types.VitalMeasurement, *types.VitalAlert, error) {
			return m, nil, nil
		},
	}
	m := &messaging.MsgContextMock{}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(incomingMeasurement{
				PatientID: "patient-001",
				Type:      "heartRate",
				Value:     88,
				Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				Tenant:    "default",
			})
			return b
		},
		TopicNameFunc: func() string {
			return "vitalsign.measurement"
		},
	}

	handler := NewMeasurementReceivedHandler(m, svc)
	handler(context.Background(), msg, slog.Default())

	is.Equal(1, len(svc.IngestCalls()))
	is.Equal(types.VitalTypeHeartRate, svc.IngestCalls()[0].M.Type)
	is.Equal(88.0, svc.IngestCalls()[0].M.Value)
}

func TestMeasurementReceivedHandlerRejectsUnknownType(t *testing.T) {
	is := is.New(t)

	svc := &VitalServiceMock{}
	m := &messaging.MsgContextMock{}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return []byte(`{"patientID":"patient-001","type":"bloodSugar","value":6.2}`)
		},
		TopicNameFunc: func() string {
			return "vitalsign.measurement"
		},
	}

	handler := NewMeasurementReceivedHandler(m, svc)
	handler(context.Background(), msg, slog.Default())

	is.Equal(0, len(svc.IngestCalls()))
}

func heartRates(t *testing.T, values ...float64) []types.VitalMeasurement {
	t.Helper()

	start := time.Now().UTC().Add(-time.Duration(len(values)) * time.Hour)
	measurements := make([]types.VitalMeasurement, 0, len(values))

	for i, v := range values {
		measurements = append(measurements, types.VitalMeasurement{
			ID:        fmt.Sprintf("measurement-%d", i),
			PatientID: "patient-001",
			Type:      types.VitalTypeHeartRate,
			Value:     v,
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Tenant:    "default",
		})
	}

	return measurements
}

func collectionOf(data []types.VitalMeasurement) types.Collection[types.VitalMeasurement] {
	return types.Collection[types.VitalMeasurement]{
		Data:       data,
		Count:      uint64(len(data)),
		TotalCount: uint64(len(data)),
	}
}

func setupMocks(t *testing.T) (*is.I, *MeasurementStorageMock, *messaging.MsgContextMock, *alerts.AlertServiceMock) {
	is := is.New(t)

	s := &MeasurementStorageMock{
		AddMeasurementFunc: func(ctx context.Context, m types.VitalMeasurement) error {
			return nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}
	as := &alerts.AlertServiceMock{
		AddFunc: func(ctx context.Context, alert types.VitalAlert) error {
			return nil
		},
	}

	return is, s, m, as
}
