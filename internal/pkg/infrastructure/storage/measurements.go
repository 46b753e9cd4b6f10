package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func (s *Storage) AddMeasurement(ctx context.Context, m types.VitalMeasurement) error {
	if m.ID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO vital_measurements (measurement_id, patient_id, vital_type, value, secondary_value, observed_at, notes, is_anomaly, confidence, tenant)
		VALUES (@measurement_id, @patient_id, @vital_type, @value, @secondary_value, @observed_at, @notes, @is_anomaly, @confidence, @tenant);
	`, pgx.NamedArgs{
		"measurement_id":  m.ID,
		"patient_id":      m.PatientID,
		"vital_type":      string(m.Type),
		"value":           m.Value,
		"secondary_value": m.SecondaryValue,
		"observed_at":     m.Timestamp.UTC(),
		"notes":           m.Notes,
		"is_anomaly":      m.IsAnomaly,
		"confidence":      m.Confidence,
		"tenant":          m.Tenant,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) UpdateMeasurement(ctx context.Context, m types.VitalMeasurement) error {
	if m.ID == "" {
		return ErrNoID
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE vital_measurements
		SET value = @value, secondary_value = @secondary_value, observed_at = @observed_at,
			notes = @notes, is_anomaly = @is_anomaly, confidence = @confidence, modified_on = CURRENT_TIMESTAMP
		WHERE measurement_id = @measurement_id AND tenant = @tenant;
	`, pgx.NamedArgs{
		"measurement_id":  m.ID,
		"value":           m.Value,
		"secondary_value": m.SecondaryValue,
		"observed_at":     m.Timestamp.UTC(),
		"notes":           m.Notes,
		"is_anomaly":      m.IsAnomaly,
		"confidence":      m.Confidence,
		"tenant":          m.Tenant,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) QueryMeasurements(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.VitalMeasurement], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var offsetLimit string

	if condition.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", condition.Offset())
	}

	if condition.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", condition.Limit())
	}

	query := fmt.Sprintf(`
		SELECT measurement_id, patient_id, vital_type, value, secondary_value, observed_at, notes, is_anomaly, confidence, tenant, count(*) OVER () AS count
		FROM vital_measurements
		WHERE %s
		ORDER BY %s %s
		%s;
	`, where, condition.SortBy(), condition.SortOrder(), offsetLimit)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.VitalMeasurement]{}, err
	}

	var measurement_id, patient_id, vital_type, notes, tenant string
	var value float64
	var secondary_value, confidence *float64
	var observed_at time.Time
	var is_anomaly bool
	var count int64

	measurements := make([]types.VitalMeasurement, 0)

	_, err = pgx.ForEachRow(rows, []any{&measurement_id, &patient_id, &vital_type, &value, &secondary_value, &observed_at, &notes, &is_anomaly, &confidence, &tenant, &count}, func() error {
		m := types.VitalMeasurement{
			ID:        measurement_id,
			PatientID: patient_id,
			Type:      types.VitalType(vital_type),
			Value:     value,
			Timestamp: observed_at,
			Notes:     notes,
			IsAnomaly: is_anomaly,
			Tenant:    tenant,
		}

		if secondary_value != nil {
			v := *secondary_value
			m.SecondaryValue = &v
		}
		if confidence != nil {
			c := *confidence
			m.Confidence = &c
		}

		measurements = append(measurements, m)

		return nil
	})
	if err != nil {
		return types.Collection[types.VitalMeasurement]{}, err
	}

	return types.Collection[types.VitalMeasurement]{
		Data:       measurements,
		Count:      uint64(len(measurements)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) GetMeasurement(ctx context.Context, conditions ...ConditionFunc) (types.VitalMeasurement, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT measurement_id, patient_id, vital_type, value, secondary_value, observed_at, notes, is_anomaly, confidence, tenant
		FROM vital_measurements
		WHERE %s;
	`, where)

	var measurement_id, patient_id, vital_type, notes, tenant string
	var value float64
	var secondary_value, confidence *float64
	var observed_at time.Time
	var is_anomaly bool

	err := s.pool.QueryRow(ctx, query, args).Scan(&measurement_id, &patient_id, &vital_type, &value, &secondary_value, &observed_at, &notes, &is_anomaly, &confidence, &tenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.VitalMeasurement{}, ErrNoRows
		}
		return types.VitalMeasurement{}, err
	}

	return types.VitalMeasurement{
		ID:             measurement_id,
		PatientID:      patient_id,
		Type:           types.VitalType(vital_type),
		Value:          value,
		SecondaryValue: secondary_value,
		Timestamp:      observed_at,
		Notes:          notes,
		IsAnomaly:      is_anomaly,
		Confidence:     confidence,
		Tenant:         tenant,
	}, nil
}

func (s *Storage) Stats(ctx context.Context, conditions ...ConditionFunc) ([]types.VitalStats, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT vital_type, count(*), avg(value), min(value), max(value),
			(array_agg(value ORDER BY observed_at DESC))[1] AS latest_value,
			max(observed_at) AS latest
		FROM vital_measurements
		WHERE %s
		GROUP BY vital_type
		ORDER BY vital_type ASC;
	`, where)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	var vital_type string
	var count int64
	var average, min_value, max_value, latest_value float64
	var latest time.Time

	stats := make([]types.VitalStats, 0)

	_, err = pgx.ForEachRow(rows, []any{&vital_type, &count, &average, &min_value, &max_value, &latest_value, &latest}, func() error {
		stats = append(stats, types.VitalStats{
			Type:            types.VitalType(vital_type),
			Count:           int(count),
			Average:         average,
			Min:             min_value,
			Max:             max_value,
			LatestValue:     latest_value,
			LatestTimestamp: latest,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

type PatientObservation struct {
	PatientID  string
	Type       types.VitalType
	Tenant     string
	ObservedAt time.Time
}

// LatestObservations returns the most recent measurement timestamp per
// patient and vital type, for staleness monitoring.
func (s *Storage) LatestObservations(ctx context.Context) ([]PatientObservation, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT patient_id, vital_type, tenant, max(observed_at) AS latest
		FROM vital_measurements
		GROUP BY patient_id, vital_type, tenant;
	`)
	if err != nil {
		return nil, err
	}

	var patient_id, vital_type, tenant string
	var latest time.Time

	observations := make([]PatientObservation, 0)

	_, err = pgx.ForEachRow(rows, []any{&patient_id, &vital_type, &tenant, &latest}, func() error {
		observations = append(observations, PatientObservation{
			PatientID:  patient_id,
			Type:       types.VitalType(vital_type),
			Tenant:     tenant,
			ObservedAt: latest,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return observations, nil
}
