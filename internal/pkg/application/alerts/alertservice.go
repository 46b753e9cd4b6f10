package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"

	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/events"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/infrastructure/storage"
	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Query(ctx context.Context, offset, limit int, patientID string, unreadOnly bool, minSeverity types.AlertSeverity, tenants []string) (types.Collection[types.VitalAlert], error)
	GetByID(ctx context.Context, alertID string, tenants []string) (types.VitalAlert, error)
	Add(ctx context.Context, alert types.VitalAlert) error
	MarkRead(ctx context.Context, alertID string, tenants []string) error

	RegisterTopicMessageHandler(ctx context.Context) error
}

//go:generate moq -rm -out alertrepository_mock.go . AlertRepository
type AlertRepository interface {
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.VitalAlert], error)
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.VitalAlert, error)
	AddAlert(ctx context.Context, alert types.VitalAlert) error
	MarkAlertRead(ctx context.Context, alertID, tenant string) error
}

type alertSvc struct {
	storage   AlertRepository
	messenger messaging.MsgContext
	sender    events.EventSender
}

func New(s AlertRepository, m messaging.MsgContext, sender events.EventSender) AlertService {
	return &alertSvc{
		storage:   s,
		messenger: m,
		sender:    sender,
	}
}

func (svc *alertSvc) RegisterTopicMessageHandler(ctx context.Context) error {
	return svc.messenger.RegisterTopicMessageHandler("watchdog.vitalNotObserved", NewVitalNotObservedHandler(svc.messenger, svc))
}

func (svc *alertSvc) Query(ctx context.Context, offset, limit int, patientID string, unreadOnly bool, minSeverity types.AlertSeverity, tenants []string) (types.Collection[types.VitalAlert], error) {
	conditions := []storage.ConditionFunc{
		storage.WithOffset(offset),
		storage.WithLimit(limit),
		storage.WithTenants(tenants),
	}

	if patientID != "" {
		conditions = append(conditions, storage.WithPatientID(patientID))
	}
	if unreadOnly {
		conditions = append(conditions, storage.WithUnreadOnly())
	}
	if minSeverity > 0 {
		conditions = append(conditions, storage.WithMinSeverity(minSeverity))
	}

	alerts, err := svc.storage.QueryAlerts(ctx, conditions...)
	if err != nil {
		return types.Collection[types.VitalAlert]{}, err
	}

	return alerts, nil
}

func (svc *alertSvc) GetByID(ctx context.Context, alertID string, tenants []string) (types.VitalAlert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.VitalAlert{}, ErrAlertNotFound
		}
		return types.VitalAlert{}, err
	}

	return alert, nil
}

func (svc *alertSvc) Add(ctx context.Context, alert types.VitalAlert) error {
	if alert.PatientID == "" {
		return fmt.Errorf("no patientID is set on alert")
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.ObservedAt.IsZero() {
		alert.ObservedAt = time.Now().UTC()
	}

	err := svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return err
	}

	err = svc.messenger.PublishOnTopic(ctx, &types.AlertCreated{
		Alert:     alert,
		Tenant:    alert.Tenant,
		Timestamp: alert.ObservedAt,
	})
	if err != nil {
		return err
	}

	// delivery is best effort, a failed notification never fails the alert
	err = svc.sender.Send(ctx, alert)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("failed to deliver alert notification", "alert_id", alert.ID, "err", err.Error())
	}

	return nil
}

func (svc *alertSvc) MarkRead(ctx context.Context, alertID string, tenants []string) error {
	alert, err := svc.GetByID(ctx, alertID, tenants)
	if err != nil {
		return err
	}

	err = svc.storage.MarkAlertRead(ctx, alertID, alert.Tenant)
	if err != nil {
		return err
	}

	return svc.messenger.PublishOnTopic(ctx, &types.AlertRead{
		ID:        alert.ID,
		Tenant:    alert.Tenant,
		Timestamp: time.Now().UTC()})
}
