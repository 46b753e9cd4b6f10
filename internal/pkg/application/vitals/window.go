package vitals

import (
	"sync"
	"time"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

const (
	windowMaxPoints = 100
	windowMaxAge    = 30 * 24 * time.Hour

	predictionMaxPoints = 20
	predictionMaxAge    = 7 * 24 * time.Hour
)

type windowKey struct {
	patientID string
	vitalType types.VitalType
}

// historyCache keeps a rolling window of recent measurements per patient
// and vital type. It is a lossy optimisation over the database, entries
// are rebuilt from storage whenever they are missing.
type historyCache struct {
	mu      sync.Mutex
	entries map[windowKey]*windowEntry
}

type windowEntry struct {
	mu     sync.Mutex
	loaded bool
	points []types.VitalMeasurement
}

func newHistoryCache() *historyCache {
	return &historyCache{
		entries: make(map[windowKey]*windowEntry),
	}
}

func (c *historyCache) entry(patientID string, t types.VitalType) *windowEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := windowKey{patientID: patientID, vitalType: t}
	e, ok := c.entries[key]
	if !ok {
		e = &windowEntry{}
		c.entries[key] = e
	}

	return e
}

// append adds a measurement to a loaded window and trims it to the
// retention limits. The caller must hold the entry lock.
func (e *windowEntry) append(m types.VitalMeasurement) {
	i := len(e.points)
	for i > 0 && e.points[i-1].Timestamp.After(m.Timestamp) {
		i--
	}
	e.points = append(e.points, types.VitalMeasurement{})
	copy(e.points[i+1:], e.points[i:])
	e.points[i] = m

	e.trim(time.Now().UTC().Add(-windowMaxAge))
}

func (e *windowEntry) trim(cutoff time.Time) {
	first := 0
	for first < len(e.points) && e.points[first].Timestamp.Before(cutoff) {
		first++
	}
	if over := len(e.points) - first - windowMaxPoints; over > 0 {
		first += over
	}
	if first > 0 {
		e.points = append(e.points[:0], e.points[first:]...)
	}
}

// invalidate drops the cached window so that the next reader rebuilds it
// from storage. The caller must hold the entry lock.
func (e *windowEntry) invalidate() {
	e.loaded = false
	e.points = nil
}
