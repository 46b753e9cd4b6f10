package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"

	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/analysis"
	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

type vitalNotObserved struct {
	PatientID  string          `json:"patientID"`
	Type       types.VitalType `json:"type"`
	Tenant     string          `json:"tenant"`
	ObservedAt time.Time       `json:"observedAt"`
}

const notObservedPrefix = "No recent"

var tracer = otel.Tracer("vitalsign-mgmt/alerts")

func NewVitalNotObservedHandler(messenger messaging.MsgContext, svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "vital-not-observed")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := vitalNotObserved{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		alerts, err := svc.Query(ctx, 0, 100, msg.PatientID, true, 0, []string{msg.Tenant})
		if err != nil {
			log.Error("could not fetch alerts", "err", err.Error())
			return
		}
		if alerts.TotalCount > alerts.Count {
			log.Warn("too many unread alerts found")
		}

		// an unread staleness alert for the same vital is left as is
		for _, a := range alerts.Data {
			if a.Type == msg.Type && strings.HasPrefix(a.Message, notObservedPrefix) {
				return
			}
		}

		err = svc.Add(ctx, types.VitalAlert{
			PatientID: msg.PatientID,
			Type:      msg.Type,
			Message: fmt.Sprintf("%s %s readings: last observed at %s",
				notObservedPrefix, strings.ToLower(analysis.Label(msg.Type)), msg.ObservedAt.Format(time.RFC3339)),
			Severity:   types.AlertSeverityMedium,
			ObservedAt: msg.ObservedAt,
			Tenant:     msg.Tenant,
		})
		if err != nil {
			log.Error("could not create alert", "err", err.Error())
			return
		}
	}
}
