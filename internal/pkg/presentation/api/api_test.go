package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/alerts"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/vitals"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/presentation/api/auth"
	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

func TestCreateMeasurementHandler(t *testing.T) {
	is := is.New(t)

	svc := &vitals.VitalServiceMock{
		IngestFunc: func(ctx context.Context, m types.VitalMeasurement) (types.VitalMeasurement, *types.VitalAlert, error) {
			m.ID = "measurement-1"
			m.IsAnomaly = false
			confidence := 0.9
			m.Confidence = &confidence
			return m, nil, nil
		},
	}

	body := bytes.NewBufferString(`{"patientID":"patient-001","type":"heartRate","value":72}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/vitalsigns", body)
	req = req.WithContext(auth.WithAllowedTenants(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	createMeasurementHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(svc.IngestCalls()))
	is.Equal("default", svc.IngestCalls()[0].M.Tenant)

	var response measurementResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.True(response.Persisted)
	is.Equal("measurement-1", response.ID)
}

func TestCreateMeasurementHandlerFlagsUnpersistedResults(t *testing.T) {
	is := is.New(t)

	svc := &vitals.VitalServiceMock{
		IngestFunc: func(ctx context.Context, m types.VitalMeasurement) (types.VitalMeasurement, *types.VitalAlert, error) {
			m.IsAnomaly = true
			alert := types.VitalAlert{
				PatientID: m.PatientID,
				Type:      m.Type,
				Severity:  types.AlertSeverityHigh,
			}
			return m, &alert, vitals.ErrNotPersisted
		},
	}

	body := bytes.NewBufferString(`{"patientID":"patient-001","type":"heartRate","value":140}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/vitalsigns", body)
	req = req.WithContext(auth.WithAllowedTenants(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	createMeasurementHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)

	var response measurementResponse
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.True(!response.Persisted)
	is.True(response.IsAnomaly)
	is.True(response.Alert != nil)
	is.Equal(types.AlertSeverityHigh, response.Alert.Severity)
}

func TestGetAlertsHandler(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, offset, limit int, patientID string, unreadOnly bool, minSeverity types.AlertSeverity, tenants []string) (types.Collection[types.VitalAlert], error) {
			alert := types.VitalAlert{
				ID:             "alert-1",
				PatientID:      patientID,
				Type:           types.VitalTypeSpO2,
				Message:        "Abnormal reading: Oxygen saturation is 84 %",
				Severity:       types.AlertSeverityCritical,
				ObservedAt:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
				ActionRequired: "Seek immediate medical attention",
				Tenant:         "default",
			}
			return types.Collection[types.VitalAlert]{Data: []types.VitalAlert{alert}, Count: 1, TotalCount: 1}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts?patientID=patient-001&unreadOnly=true&minSeverity=high", nil)
	req = req.WithContext(auth.WithAllowedTenants(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	getAlertsHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(svc.QueryCalls()))
	is.True(svc.QueryCalls()[0].UnreadOnly)
	is.Equal(types.AlertSeverityHigh, svc.QueryCalls()[0].MinSeverity)
	is.True(strings.Contains(res.Body.String(), `"severity":"critical"`))
}

func TestPatchUnknownAlertRespondsWithNotFound(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		MarkReadFunc: func(ctx context.Context, alertID string, tenants []string) error {
			return alerts.ErrAlertNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/no-such-alert", nil)
	req = req.WithContext(auth.WithAllowedTenants(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	patchAlertHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestGetEWSHandlerRequiresPatientID(t *testing.T) {
	is := is.New(t)

	svc := &vitals.VitalServiceMock{}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/vitalsigns/ews", nil)
	req = req.WithContext(auth.WithAllowedTenants(req.Context(), []string{"default"}))
	res := httptest.NewRecorder()

	getEWSHandler(testLogger(), svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
	is.Equal(0, len(svc.ComputeEWSCalls()))
}

func TestRegisteredRoutesEnforceBearerAuth(t *testing.T) {
	is, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/vitalsigns?patientID=patient-001", nil)
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusUnauthorized, res.Code)
}

func TestTrendRouteWithBearerToken(t *testing.T) {
	is, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/vitalsigns/trends/heartRate?patientID=patient-001&windowDays=7", nil)
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.True(strings.Contains(res.Body.String(), `"trend":"insufficient_data"`))
}

func setupRouter(t *testing.T) (*is.I, *chi.Mux) {
	is := is.New(t)

	svc := &vitals.VitalServiceMock{
		AnalyzeTrendFunc: func(ctx context.Context, patientID string, vitalType types.VitalType, from time.Time, tenants []string) (types.TrendReport, error) {
			return types.TrendReport{Type: vitalType, Trend: "insufficient_data"}, nil
		},
	}
	alertSvc := &alerts.AlertServiceMock{}

	router, err := RegisterHandlers(context.Background(), chi.NewRouter(), strings.NewReader(policies), svc, alertSvc)
	is.NoErr(err)

	return is, router
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const policies string = `
package vitalsense.authz

import rego.v1

default allow := false

allow := {"access": {"default": input.scopes}} if {
	count(input.token) > 0
}
`
