package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

type VitalsignManagementClient interface {
	CreateMeasurement(ctx context.Context, m types.VitalMeasurement) (types.VitalMeasurement, error)
	QueryAlerts(ctx context.Context, patientID string) ([]types.VitalAlert, error)
	HealthSummary(ctx context.Context, patientID string) (types.HealthSummary, error)
	Close(ctx context.Context)
}

var tracer = otel.Tracer("vitalsign-mgmt-client")

type mgmtClient struct {
	url         string
	httpClient  http.Client
	tokenSource oauth2.TokenSource
}

func New(ctx context.Context, vitalsignMgmtUrl, oauthTokenUrl, oauthClientID, oauthClientSecret string) (VitalsignManagementClient, error) {
	c := &mgmtClient{
		url: strings.TrimSuffix(vitalsignMgmtUrl, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	if oauthTokenUrl != "" {
		cfg := clientcredentials.Config{
			ClientID:     oauthClientID,
			ClientSecret: oauthClientSecret,
			TokenURL:     oauthTokenUrl,
		}

		c.tokenSource = cfg.TokenSource(ctx)

		if _, err := c.tokenSource.Token(); err != nil {
			return nil, fmt.Errorf("failed to retrieve client credentials: %w", err)
		}
	}

	return c, nil
}

func (c *mgmtClient) CreateMeasurement(ctx context.Context, m types.VitalMeasurement) (types.VitalMeasurement, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-measurement")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(m)
	if err != nil {
		return m, fmt.Errorf("failed to marshal measurement: %w", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, "/api/v0/vitalsigns", body, http.StatusCreated)
	if err != nil {
		return m, err
	}

	result := types.VitalMeasurement{}
	err = json.Unmarshal(respBody, &result)
	if err != nil {
		return m, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return result, nil
}

func (c *mgmtClient) QueryAlerts(ctx context.Context, patientID string) ([]types.VitalAlert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug("querying alerts", "patient_id", patientID)

	respBody, err := c.do(ctx, http.MethodGet, "/api/v0/alerts?patientID="+patientID, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	result := struct {
		Data []types.VitalAlert `json:"data"`
	}{}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return result.Data, nil
}

func (c *mgmtClient) HealthSummary(ctx context.Context, patientID string) (types.HealthSummary, error) {
	var err error
	ctx, span := tracer.Start(ctx, "health-summary")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	respBody, err := c.do(ctx, http.MethodGet, "/api/v0/healthsummary?patientID="+patientID, nil, http.StatusOK)
	if err != nil {
		return types.HealthSummary{}, err
	}

	result := types.HealthSummary{}
	err = json.Unmarshal(respBody, &result)
	if err != nil {
		return types.HealthSummary{}, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return result, nil
}

func (c *mgmtClient) Close(ctx context.Context) {
	c.httpClient.CloseIdleConnections()
}

func (c *mgmtClient) do(ctx context.Context, method, path string, body []byte, expectedStatus int) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = strings.NewReader(string(body))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	if c.tokenSource != nil {
		token, err := c.tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve access token: %w", err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		return nil, fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, nil
}
