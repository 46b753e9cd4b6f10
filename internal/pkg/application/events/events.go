package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

const alertEventType = "vitalsense.alert"

//go:generate moq -rm -out eventsender_mock.go . EventSender
type EventSender interface {
	Send(ctx context.Context, alert types.VitalAlert) error
}

type eventSender struct {
	subscribers map[string][]SubscriberConfig
}

func New(cfg *Config) EventSender {
	e := &eventSender{
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, s := range cfg.Notifications {
			e.subscribers[s.Type] = s.Subscribers
		}
	}

	return e
}

func (e *eventSender) Send(ctx context.Context, alert types.VitalAlert) error {
	if s, ok := e.subscribers[alertEventType]; !ok || len(s) == 0 {
		return nil
	}

	var err error

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", alert.ID, alert.ObservedAt.Unix()))
	event.SetTime(alert.ObservedAt)

	eventData := struct {
		AlertID        string `json:"alertID"`
		PatientID      string `json:"patientID"`
		VitalType      string `json:"vitalType"`
		Message        string `json:"message"`
		Severity       string `json:"severity"`
		ActionRequired string `json:"actionRequired,omitempty"`
		Timestamp      string `json:"timestamp"`
	}{
		AlertID:        alert.ID,
		PatientID:      alert.PatientID,
		VitalType:      string(alert.Type),
		Message:        alert.Message,
		Severity:       alert.Severity.String(),
		ActionRequired: alert.ActionRequired,
		Timestamp:      alert.ObservedAt.Format(time.RFC3339Nano),
	}

	event.SetSource("github.com/vitalsense/vitalsign-mgmt")
	event.SetType(alertEventType)
	err = event.SetData(cloudevents.ApplicationJSON, eventData)
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)

	for _, s := range e.subscribers[alertEventType] {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error("failed to send event", "endpoint", s.Endpoint, "err", result.Error())
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err == nil {
		return &cfg, nil
	} else {
		return nil, err
	}
}
