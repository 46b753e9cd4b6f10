package vitals

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

var tracer = otel.Tracer("vitalsign-mgmt/vitals")

type incomingMeasurement struct {
	PatientID      string    `json:"patientID"`
	Type           string    `json:"type"`
	Value          float64   `json:"value"`
	SecondaryValue *float64  `json:"secondaryValue,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	Notes          string    `json:"notes,omitempty"`
	Tenant         string    `json:"tenant"`
}

func NewMeasurementReceivedHandler(messenger messaging.MsgContext, svc VitalService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "measurement-received")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := incomingMeasurement{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		vitalType, err := types.ParseVitalType(msg.Type)
		if err != nil {
			log.Error("measurement has an unknown vital type", "type", msg.Type, "err", err.Error())
			return
		}

		m, _, err := svc.Ingest(ctx, types.VitalMeasurement{
			PatientID:      msg.PatientID,
			Type:           vitalType,
			Value:          msg.Value,
			SecondaryValue: msg.SecondaryValue,
			Timestamp:      msg.Timestamp,
			Notes:          msg.Notes,
			Tenant:         msg.Tenant,
		})
		if err != nil {
			if errors.Is(err, ErrNotPersisted) {
				log.Error("measurement analysed but not stored", "patient_id", msg.PatientID, "err", err.Error())
				return
			}
			log.Error("could not ingest measurement", "patient_id", msg.PatientID, "err", err.Error())
			return
		}

		log.Debug("measurement processed", "measurement_id", m.ID, "is_anomaly", m.IsAnomaly)
	}
}
