package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func TestAddAndQueryMeasurements(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	patientID := uuid.NewString()

	ts := time.Now().UTC().Truncate(time.Millisecond)

	for i, v := range []float64{70, 72, 74} {
		err := s.AddMeasurement(ctx, types.VitalMeasurement{
			ID:        uuid.NewString(),
			PatientID: patientID,
			Type:      types.VitalTypeHeartRate,
			Value:     v,
			Timestamp: ts.Add(time.Duration(i) * time.Minute),
			Tenant:    "default",
		})
		is.NoErr(err)
	}

	collection, err := s.QueryMeasurements(ctx,
		WithPatientID(patientID),
		WithVitalType(types.VitalTypeHeartRate),
		WithTenant("default"),
		WithLimit(10),
	)
	is.NoErr(err)

	is.Equal(int(collection.Count), 3)
	is.Equal(int(collection.TotalCount), 3)
	is.Equal(collection.Data[0].Value, 70.0)
}

func TestUpdateMeasurement(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	m := types.VitalMeasurement{
		ID:        uuid.NewString(),
		PatientID: uuid.NewString(),
		Type:      types.VitalTypeTemperature,
		Value:     36.8,
		Timestamp: time.Now().UTC(),
		Tenant:    "default",
	}

	is.NoErr(s.AddMeasurement(ctx, m))

	m.Value = 37.1
	m.Notes = "corrected"
	is.NoErr(s.UpdateMeasurement(ctx, m))

	stored, err := s.GetMeasurement(ctx, WithMeasurementID(m.ID), WithTenant("default"))
	is.NoErr(err)
	is.Equal(stored.Value, 37.1)
	is.Equal(stored.Notes, "corrected")
}

func TestQueryAlertsWithFilters(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	patientID := uuid.NewString()

	add := func(severity types.AlertSeverity, isRead bool) {
		err := s.AddAlert(ctx, types.VitalAlert{
			ID:         uuid.NewString(),
			PatientID:  patientID,
			Type:       types.VitalTypeHeartRate,
			Message:    "msg",
			Severity:   severity,
			ObservedAt: time.Now().UTC(),
			IsRead:     isRead,
			Tenant:     "default",
		})
		is.NoErr(err)
	}

	add(types.AlertSeverityLow, true)
	add(types.AlertSeverityMedium, false)
	add(types.AlertSeverityCritical, false)

	unread, err := s.QueryAlerts(ctx, WithPatientID(patientID), WithUnreadOnly(), WithTenant("default"))
	is.NoErr(err)
	is.Equal(int(unread.Count), 2)

	critical, err := s.QueryAlerts(ctx, WithPatientID(patientID), WithMinSeverity(types.AlertSeverityCritical), WithTenant("default"))
	is.NoErr(err)
	is.Equal(int(critical.Count), 1)
}

func TestMarkAlertRead(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	alertID := uuid.NewString()

	err := s.AddAlert(ctx, types.VitalAlert{
		ID:         alertID,
		PatientID:  uuid.NewString(),
		Type:       types.VitalTypeSpO2,
		Message:    "msg",
		Severity:   types.AlertSeverityHigh,
		ObservedAt: time.Now().UTC(),
		Tenant:     "default",
	})
	is.NoErr(err)

	is.NoErr(s.MarkAlertRead(ctx, alertID, "default"))

	a, err := s.GetAlert(ctx, WithAlertID(alertID), WithTenant("default"))
	is.NoErr(err)
	is.True(a.IsRead)

	err = s.MarkAlertRead(ctx, uuid.NewString(), "default")
	is.True(err != nil)
}

func TestStatsAggregation(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	patientID := uuid.NewString()
	ts := time.Now().UTC()

	for i, v := range []float64{60, 70, 80} {
		err := s.AddMeasurement(ctx, types.VitalMeasurement{
			ID:        uuid.NewString(),
			PatientID: patientID,
			Type:      types.VitalTypeHeartRate,
			Value:     v,
			Timestamp: ts.Add(time.Duration(i) * time.Minute),
			Tenant:    "default",
		})
		is.NoErr(err)
	}

	stats, err := s.Stats(ctx, WithPatientID(patientID), WithTenant("default"))
	is.NoErr(err)

	is.Equal(len(stats), 1)
	is.Equal(stats[0].Type, types.VitalTypeHeartRate)
	is.Equal(stats[0].Count, 3)
	is.Equal(stats[0].Min, 60.0)
	is.Equal(stats[0].Max, 80.0)
	is.Equal(stats[0].LatestValue, 80.0)
}
