package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func (s *Storage) AddAlert(ctx context.Context, a types.VitalAlert) error {
	if a.ID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO vital_alerts (alert_id, patient_id, vital_type, message, severity, observed_at, is_read, action_required, tenant)
		VALUES (@alert_id, @patient_id, @vital_type, @message, @severity, @observed_at, @is_read, @action_required, @tenant);
	`, pgx.NamedArgs{
		"alert_id":        a.ID,
		"patient_id":      a.PatientID,
		"vital_type":      string(a.Type),
		"message":         a.Message,
		"severity":        int(a.Severity),
		"observed_at":     a.ObservedAt.UTC(),
		"is_read":         a.IsRead,
		"action_required": a.ActionRequired,
		"tenant":          a.Tenant,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.VitalAlert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "observed_at"
		condition.sortOrder = "DESC"
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
		SELECT alert_id, patient_id, vital_type, message, severity, observed_at, is_read, action_required, tenant, count(*) OVER () AS count
		FROM vital_alerts
		WHERE %s
		ORDER BY %s %s
		%s;
	`, where, condition.SortBy(), condition.SortOrder(), offsetLimit)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.VitalAlert]{}, err
	}

	var alert_id, patient_id, vital_type, message, action_required, tenant string
	var severity int
	var observed_at time.Time
	var is_read bool
	var count int64

	alerts := make([]types.VitalAlert, 0)

	_, err = pgx.ForEachRow(rows, []any{&alert_id, &patient_id, &vital_type, &message, &severity, &observed_at, &is_read, &action_required, &tenant, &count}, func() error {
		alerts = append(alerts, types.VitalAlert{
			ID:             alert_id,
			PatientID:      patient_id,
			Type:           types.VitalType(vital_type),
			Message:        message,
			Severity:       types.AlertSeverity(severity),
			ObservedAt:     observed_at,
			IsRead:         is_read,
			ActionRequired: action_required,
			Tenant:         tenant,
		})

		return nil
	})
	if err != nil {
		return types.Collection[types.VitalAlert]{}, err
	}

	return types.Collection[types.VitalAlert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.VitalAlert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT alert_id, patient_id, vital_type, message, severity, observed_at, is_read, action_required, tenant
		FROM vital_alerts
		WHERE %s;
	`, where)

	var alert_id, patient_id, vital_type, message, action_required, tenant string
	var severity int
	var observed_at time.Time
	var is_read bool

	err := s.pool.QueryRow(ctx, query, args).Scan(&alert_id, &patient_id, &vital_type, &message, &severity, &observed_at, &is_read, &action_required, &tenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.VitalAlert{}, ErrNoRows
		}
		return types.VitalAlert{}, err
	}

	return types.VitalAlert{
		ID:             alert_id,
		PatientID:      patient_id,
		Type:           types.VitalType(vital_type),
		Message:        message,
		Severity:       types.AlertSeverity(severity),
		ObservedAt:     observed_at,
		IsRead:         is_read,
		ActionRequired: action_required,
		Tenant:         tenant,
	}, nil
}

func (s *Storage) MarkAlertRead(ctx context.Context, alertID, tenant string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE vital_alerts SET is_read = TRUE
		WHERE alert_id = @alert_id AND tenant = @tenant;
	`, pgx.NamedArgs{
		"alert_id": alertID,
		"tenant":   tenant,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
