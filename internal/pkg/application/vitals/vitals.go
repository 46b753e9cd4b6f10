package vitals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"

	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/alerts"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/analysis"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/infrastructure/storage"
	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

var (
	// ErrNotPersisted is returned when a measurement was analysed but the
	// result could not be written to storage.
	ErrNotPersisted = fmt.Errorf("measurement not persisted")

	ErrMeasurementNotFound = fmt.Errorf("measurement not found")
)

//go:generate moq -rm -out vitalservice_mock.go . VitalService
type VitalService interface {
	Ingest(ctx context.Context, m types.VitalMeasurement) (types.VitalMeasurement, *types.VitalAlert, error)
	Update(ctx context.Context, m types.VitalMeasurement) (types.VitalMeasurement, error)
	Query(ctx context.Context, offset, limit int, patientID string, vitalType string, from, to time.Time, tenants []string) (types.Collection[types.VitalMeasurement], error)
	GetByID(ctx context.Context, measurementID string, tenants []string) (types.VitalMeasurement, error)
	Stats(ctx context.Context, patientID string, from, to time.Time, tenants []string) ([]types.VitalStats, error)

	ComputeEWS(ctx context.Context, patientID string, tenants []string) (types.EarlyWarningScore, error)
	AnalyzeTrend(ctx context.Context, patientID string, vitalType types.VitalType, from time.Time, tenants []string) (types.TrendReport, error)
	PredictNext(ctx context.Context, patientID string, vitalType types.VitalType, tenants []string) (types.Prediction, error)
	HealthSummary(ctx context.Context, patientID string, tenants []string) (types.HealthSummary, error)

	RegisterTopicMessageHandler(ctx context.Context) error
}

//go:generate moq -rm -out measurementstorage_mock.go . MeasurementStorage
type MeasurementStorage interface {
	AddMeasurement(ctx context.Context, m types.VitalMeasurement) error
	UpdateMeasurement(ctx context.Context, m types.VitalMeasurement) error
	QueryMeasurements(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.VitalMeasurement], error)
	GetMeasurement(ctx context.Context, conditions ...storage.ConditionFunc) (types.VitalMeasurement, error)
	Stats(ctx context.Context, conditions ...storage.ConditionFunc) ([]types.VitalStats, error)
}

type vitalSvc struct {
	storage   MeasurementStorage
	messenger messaging.MsgContext
	alerts    alerts.AlertService

	window *historyCache
}

func New(s MeasurementStorage, m messaging.MsgContext, as alerts.AlertService) VitalService {
	return &vitalSvc{
		storage:   s,
		messenger: m,
		alerts:    as,
		window:    newHistoryCache(),
	}
}

func (svc *vitalSvc) RegisterTopicMessageHandler(ctx context.Context) error {
	return svc.messenger.RegisterTopicMessageHandler("vitalsign.measurement", NewMeasurementReceivedHandler(svc.messenger, svc))
}

func (svc *vitalSvc) Ingest(ctx context.Context, m types.VitalMeasurement) (types.VitalMeasurement, *types.VitalAlert, error) {
	err := validate(m)
	if err != nil {
		return m, nil, err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}

	entry := svc.window.entry(m.PatientID, m.Type)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	history, err := svc.history(ctx, entry, m.PatientID, m.Type, m.Tenant)
	if err != nil {
		return m, nil, err
	}

	d := analysis.DetectAnomaly(m, history)
	m.IsAnomaly = d.IsAnomaly
	confidence := d.Confidence
	m.Confidence = &confidence

	var alert *types.VitalAlert
	if a, ok := analysis.ClassifyAlert(m); ok {
		a.ID = uuid.NewString()
		a.ObservedAt = m.Timestamp
		alert = &a
	}

	if err := ctx.Err(); err != nil {
		return m, nil, err
	}

	err = svc.storage.AddMeasurement(ctx, m)
	if err != nil {
		// the caller still gets the local analysis result and can retry
		return m, alert, fmt.Errorf("%w: %s", ErrNotPersisted, err.Error())
	}

	// the window only grows once the measurement is known to be durable
	entry.append(m)

	log := logging.GetFromContext(ctx)

	if alert != nil {
		err = svc.alerts.Add(ctx, *alert)
		if err != nil {
			log.Error("could not create alert", "patient_id", m.PatientID, "err", err.Error())
		}
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.MeasurementProcessed{
		Measurement: m,
		Tenant:      m.Tenant,
		Timestamp:   m.Timestamp,
	})
	if err != nil {
		log.Error("failed to publish measurement", "measurement_id", m.ID, "err", err.Error())
	}

	return m, alert, nil
}

func (svc *vitalSvc) Update(ctx context.Context, m types.VitalMeasurement) (types.VitalMeasurement, error) {
	if m.ID == "" {
		return m, fmt.Errorf("no id is set on measurement")
	}

	err := validate(m)
	if err != nil {
		return m, err
	}

	current, err := svc.GetByID(ctx, m.ID, []string{m.Tenant})
	if err != nil {
		return m, err
	}

	if m.Timestamp.IsZero() {
		m.Timestamp = current.Timestamp
	}

	entry := svc.window.entry(m.PatientID, m.Type)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	history, err := svc.history(ctx, entry, m.PatientID, m.Type, m.Tenant)
	if err != nil {
		return m, err
	}

	// corrected values are re-examined against the same window
	d := analysis.DetectAnomaly(m, history)
	m.IsAnomaly = d.IsAnomaly
	confidence := d.Confidence
	m.Confidence = &confidence

	err = svc.storage.UpdateMeasurement(ctx, m)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return m, ErrMeasurementNotFound
		}
		return m, err
	}

	entry.invalidate()

	return m, nil
}

func (svc *vitalSvc) Query(ctx context.Context, offset, limit int, patientID string, vitalType string, from, to time.Time, tenants []string) (types.Collection[types.VitalMeasurement], error) {
	conditions := []storage.ConditionFunc{
		storage.WithOffset(offset),
		storage.WithLimit(limit),
		storage.WithTenants(tenants),
	}

	if patientID != "" {
		conditions = append(conditions, storage.WithPatientID(patientID))
	}
	if vitalType != "" {
		t, err := types.ParseVitalType(vitalType)
		if err != nil {
			return types.Collection[types.VitalMeasurement]{}, err
		}
		conditions = append(conditions, storage.WithVitalType(t))
	}
	if !from.IsZero() || !to.IsZero() {
		conditions = append(conditions, storage.WithTimeRange(from, to))
	}

	return svc.storage.QueryMeasurements(ctx, conditions...)
}

func (svc *vitalSvc) GetByID(ctx context.Context, measurementID string, tenants []string) (types.VitalMeasurement, error) {
	m, err := svc.storage.GetMeasurement(ctx, storage.WithMeasurementID(measurementID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.VitalMeasurement{}, ErrMeasurementNotFound
		}
		return types.VitalMeasurement{}, err
	}

	return m, nil
}

func (svc *vitalSvc) Stats(ctx context.Context, patientID string, from, to time.Time, tenants []string) ([]types.VitalStats, error) {
	conditions := []storage.ConditionFunc{
		storage.WithPatientID(patientID),
		storage.WithTenants(tenants),
	}
	if !from.IsZero() || !to.IsZero() {
		conditions = append(conditions, storage.WithTimeRange(from, to))
	}

	return svc.storage.Stats(ctx, conditions...)
}

func (svc *vitalSvc) ComputeEWS(ctx context.Context, patientID string, tenants []string) (types.EarlyWarningScore, error) {
	// a score based on stale readings would be misleading, so only the
	// last day of measurements is considered
	latest, err := svc.storage.QueryMeasurements(ctx,
		storage.WithPatientID(patientID),
		storage.WithTenants(tenants),
		storage.WithTimeRange(time.Now().UTC().Add(-24*time.Hour), time.Time{}),
		storage.WithSortDesc(true),
		storage.WithLimit(windowMaxPoints),
	)
	if err != nil {
		return types.EarlyWarningScore{}, err
	}

	return analysis.ComputeEWS(latest.Data), nil
}

func (svc *vitalSvc) AnalyzeTrend(ctx context.Context, patientID string, vitalType types.VitalType, from time.Time, tenants []string) (types.TrendReport, error) {
	series, err := svc.series(ctx, patientID, vitalType, from, windowMaxPoints, tenants)
	if err != nil {
		return types.TrendReport{}, err
	}

	return analysis.AnalyzeTrend(vitalType, series), nil
}

func (svc *vitalSvc) PredictNext(ctx context.Context, patientID string, vitalType types.VitalType, tenants []string) (types.Prediction, error) {
	series, err := svc.series(ctx, patientID, vitalType, time.Now().UTC().Add(-predictionMaxAge), predictionMaxPoints, tenants)
	if err != nil {
		return types.Prediction{}, err
	}

	return analysis.PredictNext(vitalType, series), nil
}

func (svc *vitalSvc) HealthSummary(ctx context.Context, patientID string, tenants []string) (types.HealthSummary, error) {
	now := time.Now().UTC()

	ews, err := svc.ComputeEWS(ctx, patientID, tenants)
	if err != nil {
		return types.HealthSummary{}, err
	}

	unread, err := svc.alerts.Query(ctx, 0, windowMaxPoints, patientID, true, 0, tenants)
	if err != nil {
		return types.HealthSummary{}, err
	}

	summary := types.HealthSummary{
		EWS:         ews,
		LastUpdated: now,
	}

	for _, a := range unread.Data {
		switch {
		case a.Severity == types.AlertSeverityCritical:
			summary.CriticalAlerts++
		case a.Severity >= types.AlertSeverityMedium:
			summary.WarningAlerts++
		}
	}

	recent, err := svc.storage.QueryMeasurements(ctx,
		storage.WithPatientID(patientID),
		storage.WithTenants(tenants),
		storage.WithTimeRange(now.Add(-24*time.Hour), now),
		storage.WithLimit(windowMaxPoints),
	)
	if err != nil {
		return types.HealthSummary{}, err
	}

	for _, m := range recent.Data {
		if m.IsAnomaly {
			summary.RecentAnomalies++
		}
	}

	for _, t := range types.VitalTypes() {
		report, err := svc.AnalyzeTrend(ctx, patientID, t, now.Add(-windowMaxAge), tenants)
		if err != nil {
			return types.HealthSummary{}, err
		}
		if report.Trend != analysis.TrendInsufficientData {
			summary.Trends = append(summary.Trends, report)
		}
	}

	summary.OverallStatus = overallStatus(summary)

	return summary, nil
}

func overallStatus(s types.HealthSummary) string {
	switch {
	case s.CriticalAlerts > 0 || s.EWS.RiskLevel == analysis.RiskLevelHigh:
		return "critical"
	case s.WarningAlerts > 0 || s.EWS.RiskLevel == analysis.RiskLevelMedium:
		return "warning"
	case s.RecentAnomalies > 0 || s.EWS.RiskLevel == analysis.RiskLevelLow:
		return "caution"
	default:
		return "stable"
	}
}

func (svc *vitalSvc) series(ctx context.Context, patientID string, vitalType types.VitalType, from time.Time, limit int, tenants []string) ([]types.VitalMeasurement, error) {
	conditions := []storage.ConditionFunc{
		storage.WithPatientID(patientID),
		storage.WithVitalType(vitalType),
		storage.WithTenants(tenants),
		storage.WithSortDesc(true),
		storage.WithLimit(limit),
	}
	if !from.IsZero() {
		conditions = append(conditions, storage.WithTimeRange(from, time.Time{}))
	}

	coll, err := svc.storage.QueryMeasurements(ctx, conditions...)
	if err != nil {
		return nil, err
	}

	reverse(coll.Data)

	return coll.Data, nil
}

// history returns the rolling window for a patient and vital type,
// loading it from storage on first use. The caller must hold the entry
// lock.
func (svc *vitalSvc) history(ctx context.Context, entry *windowEntry, patientID string, t types.VitalType, tenant string) ([]types.VitalMeasurement, error) {
	if entry.loaded {
		return entry.points, nil
	}

	coll, err := svc.storage.QueryMeasurements(ctx,
		storage.WithPatientID(patientID),
		storage.WithVitalType(t),
		storage.WithTenant(tenant),
		storage.WithTimeRange(time.Now().UTC().Add(-windowMaxAge), time.Time{}),
		storage.WithSortDesc(true),
		storage.WithLimit(windowMaxPoints),
	)
	if err != nil {
		return nil, err
	}

	reverse(coll.Data)

	entry.points = coll.Data
	entry.loaded = true

	return entry.points, nil
}

func validate(m types.VitalMeasurement) error {
	if m.PatientID == "" {
		return fmt.Errorf("no patientID is set on measurement")
	}

	if _, err := types.ParseVitalType(string(m.Type)); err != nil {
		return err
	}

	if m.Type == types.VitalTypeBloodPressure && m.SecondaryValue == nil {
		return fmt.Errorf("blood pressure measurements require a diastolic value")
	}

	if m.Type != types.VitalTypeBloodPressure && m.SecondaryValue != nil {
		return fmt.Errorf("%s measurements must not carry a secondary value", m.Type)
	}

	return nil
}

func reverse(data []types.VitalMeasurement) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
