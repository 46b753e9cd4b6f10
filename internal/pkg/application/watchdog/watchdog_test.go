package watchdog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/infrastructure/storage"
	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func TestCheckLastObservedPublishesForStaleVitals(t *testing.T) {
	is, ctx := testSetup(t)
	now, err := time.Parse(time.RFC3339, "2025-01-01T12:00:00Z")
	is.NoErr(err)

	published := []types.VitalNotObserved{}

	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			var msg types.VitalNotObserved
			json.Unmarshal(message.Body(), &msg)
			published = append(published, msg)
			return nil
		},
	}

	r := &ObservationRepositoryMock{
		LatestObservationsFunc: func(ctx context.Context) ([]storage.PatientObservation, error) {
			return []storage.PatientObservation{
				{PatientID: "patient-001", Type: types.VitalTypeHeartRate, Tenant: "default", ObservedAt: now.Add(-2 * time.Hour)},
				{PatientID: "patient-001", Type: types.VitalTypeSpO2, Tenant: "default", ObservedAt: now.Add(-5 * time.Minute)},
				{PatientID: "patient-002", Type: types.VitalTypeHeartRate, Tenant: "default", ObservedAt: now.Add(-90 * time.Minute)},
			}, nil
		},
	}

	lw := lastObservedWatcher{
		observations: r,
		messenger:    m,
		interval:     1 * time.Second,
		maxAge:       1 * time.Hour,
	}

	lw.checkLastObserved(ctx, now)

	is.Equal(2, len(published))
	is.Equal("patient-001", published[0].PatientID)
	is.Equal(types.VitalTypeHeartRate, published[0].Type)
	is.Equal("patient-002", published[1].PatientID)
}

func TestObservedWithin(t *testing.T) {
	is, _ := testSetup(t)

	observed, err := time.Parse(time.RFC3339, "2006-01-02T15:04:05Z")
	is.NoErr(err)
	now, err := time.Parse(time.RFC3339, "2006-01-02T15:03:54Z")
	is.NoErr(err)

	is.True(observedWithin(observed, now, 10*time.Second))

	now = now.Add(30 * time.Second)
	is.True(!observedWithin(observed, now, 10*time.Second))
}

func testSetup(t *testing.T) (*is.I, context.Context) {
	return is.New(t), context.Background()
}
