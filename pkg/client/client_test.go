package client

import (
	"context"
	"testing"

	test "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func TestCreateMeasurement(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/vitalsigns"),
			expects.RequestMethod("POST"),
			expects.RequestHeaderContains("Content-Type", "application/json"),
			expects.RequestBodyContaining(`"patientID":"patient-001"`, `"type":"heartRate"`),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(201),
			response.Body([]byte(`{"id":"measurement-1","patientID":"patient-001","type":"heartRate","value":72,"isAnomaly":false,"persisted":true,"timestamp":"2025-01-01T12:00:00Z"}`)),
		),
	)
	defer mockedService.Close()

	ctx := context.Background()

	c, err := New(ctx, mockedService.URL(), "", "", "")
	is.NoErr(err)
	defer c.Close(ctx)

	m, err := c.CreateMeasurement(ctx, types.VitalMeasurement{
		PatientID: "patient-001",
		Type:      types.VitalTypeHeartRate,
		Value:     72,
	})
	is.NoErr(err)
	is.Equal("measurement-1", m.ID)
}

func TestQueryAlerts(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/api/v0/alerts"),
			expects.RequestMethod("GET"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`{"data":[{"id":"alert-1","patientID":"patient-001","type":"spO2","message":"Abnormal reading: Oxygen saturation is 84 %","severity":"critical","observedAt":"2025-01-01T12:00:00Z","isRead":false,"actionRequired":"Seek immediate medical attention"}],"count":1,"totalCount":1}`)),
		),
	)
	defer mockedService.Close()

	ctx := context.Background()

	c, err := New(ctx, mockedService.URL(), "", "", "")
	is.NoErr(err)
	defer c.Close(ctx)

	alerts, err := c.QueryAlerts(ctx, "patient-001")
	is.NoErr(err)
	is.Equal(1, len(alerts))
	is.Equal(types.AlertSeverityCritical, alerts[0].Severity)
}

func TestTokenIsRequestedOnStartup(t *testing.T) {
	is := is.New(t)

	s := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/token"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(tokenResponse)),
		),
	)
	defer s.Close()

	ctx := context.Background()

	c, err := New(ctx, s.URL(), s.URL()+"/token", "", "")
	is.NoErr(err)

	c.Close(ctx)
}

const tokenResponse string = `{"access_token":"testtoken","expires_in":300,"refresh_expires_in":0,"token_type":"Bearer","not-before-policy":0,"scope":"email profile"}`
