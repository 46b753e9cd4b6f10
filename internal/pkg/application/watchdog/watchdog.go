package watchdog

import (
	"context"
	"sync"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/infrastructure/storage"
	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

const DefaultCheckInterval = 1 * time.Minute

type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

//go:generate moq -rm -out observationrepository_mock.go . ObservationRepository
type ObservationRepository interface {
	LatestObservations(ctx context.Context) ([]storage.PatientObservation, error)
}

type watchdogImpl struct {
	watcher *lastObservedWatcher

	cancel context.CancelFunc
	done   sync.WaitGroup
}

func New(r ObservationRepository, m messaging.MsgContext, checkInterval, maxAge time.Duration) Watchdog {
	return &watchdogImpl{
		watcher: &lastObservedWatcher{
			observations: r,
			messenger:    m,
			interval:     checkInterval,
			maxAge:       maxAge,
		},
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	w.done.Add(1)
	go func() {
		defer w.done.Done()
		w.watcher.Watch(ctx)
	}()
}

func (w *watchdogImpl) Stop(ctx context.Context) {
	w.cancel()
	w.done.Wait()
}

type lastObservedWatcher struct {
	observations ObservationRepository
	messenger    messaging.MsgContext
	interval     time.Duration
	maxAge       time.Duration
}

func (l *lastObservedWatcher) Watch(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.checkLastObserved(ctx, time.Now().UTC())
		}
	}
}

func (l *lastObservedWatcher) checkLastObserved(ctx context.Context, now time.Time) {
	log := logging.GetFromContext(ctx)

	observations, err := l.observations.LatestObservations(ctx)
	if err != nil {
		log.Error("failed to fetch latest observations", "err", err.Error())
		return
	}

	for _, o := range observations {
		if observedWithin(o.ObservedAt, now, l.maxAge) {
			continue
		}

		err = l.messenger.PublishOnTopic(ctx, &types.VitalNotObserved{
			PatientID:  o.PatientID,
			Type:       o.Type,
			Tenant:     o.Tenant,
			ObservedAt: o.ObservedAt,
		})
		if err != nil {
			log.Error("failed to publish watchdog message", "patient_id", o.PatientID, "err", err.Error())
		}
	}
}

func observedWithin(observed, now time.Time, maxAge time.Duration) bool {
	return observed.After(now.Add(-maxAge))
}
