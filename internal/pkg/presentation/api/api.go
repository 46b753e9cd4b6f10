package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/alerts"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/vitals"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/presentation/api/auth"
	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

var tracer = otel.Tracer("vitalsign-mgmt/api")

const defaultLimit = 100

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svc vitals.VitalService, alertSvc alerts.AlertService) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	// Handle valid / invalid tokens.
	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireAccess(auth.AnyScope))

			r.Route("/vitalsigns", func(r chi.Router) {
				r.Post("/", createMeasurementHandler(log, svc))
				r.Get("/", queryMeasurementsHandler(log, svc))
				r.Get("/stats", getStatsHandler(log, svc))
				r.Get("/ews", getEWSHandler(log, svc))
				r.Get("/trends/{vitalType}", getTrendHandler(log, svc))
				r.Get("/predictions/{vitalType}", getPredictionHandler(log, svc))
				r.Get("/{measurementID}", getMeasurementDetails(log, svc))
				r.Put("/{measurementID}", updateMeasurementHandler(log, svc))
			})

			r.Get("/healthsummary", getHealthSummaryHandler(log, svc))

			r.Get("/alerts", getAlertsHandler(log, alertSvc))
			r.Patch("/alerts/{alertID}", patchAlertHandler(log, alertSvc))
		})
	})

	return router, nil
}

type measurementResponse struct {
	types.VitalMeasurement
	Alert     *types.VitalAlert `json:"alert,omitempty"`
	Persisted bool              `json:"persisted"`
}

type collectionResponse[T any] struct {
	Data       []T    `json:"data"`
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
}

func createMeasurementHandler(log *slog.Logger, svc vitals.VitalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "create-measurement")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var m types.VitalMeasurement
		err = json.Unmarshal(body, &m)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if m.Tenant == "" && len(allowedTenants) > 0 {
			m.Tenant = allowedTenants[0]
		}
		if !contains(allowedTenants, m.Tenant) {
			requestLogger.Warn("measurement for tenant outside of allowed set", "tenant", m.Tenant)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		response := measurementResponse{Persisted: true}

		response.VitalMeasurement, response.Alert, err = svc.Ingest(ctx, m)
		if err != nil {
			if errors.Is(err, vitals.ErrNotPersisted) {
				// the analysis result is still valid and returned to the caller
				requestLogger.Error("measurement analysed but not stored", "err", err.Error())
				response.Persisted = false
				err = nil
			} else {
				requestLogger.Error("unable to ingest measurement", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		b, err := json.Marshal(response)
		if err != nil {
			requestLogger.Error("unable to marshal response", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func queryMeasurementsHandler(log *slog.Logger, svc vitals.VitalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-measurements")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := paging(r)
		from, to, err := timeRange(r)
		if err != nil {
			requestLogger.Error("invalid time range", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		collection, err := svc.Query(ctx, offset, limit,
			r.URL.Query().Get("patientID"), r.URL.Query().Get("type"),
			from, to, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch measurements", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, collectionResponse[types.VitalMeasurement]{
			Data:       collection.Data,
			Count:      collection.Count,
			Offset:     collection.Offset,
			Limit:      collection.Limit,
			TotalCount: collection.TotalCount,
		})
	}
}

func getMeasurementDetails(log *slog.Logger, svc vitals.VitalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-measurement")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		measurementID := chi.URLParam(r, "measurementID")
		if measurementID != "" {
			requestLogger = requestLogger.With(slog.String("measurement_id", measurementID))
		}

		m, err := svc.GetByID(ctx, measurementID, allowedTenants)
		if errors.Is(err, vitals.ErrMeasurementNotFound) {
			requestLogger.Debug("measurement not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch data", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, m)
	}
}

func updateMeasurementHandler(log *slog.Logger, svc vitals.VitalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "update-measurement")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		measurementID := chi.URLParam(r, "measurementID")
		if measurementID != "" {
			requestLogger = requestLogger.With(slog.String("measurement_id", measurementID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var m types.VitalMeasurement
		err = json.Unmarshal(body, &m)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		m.ID = measurementID
		if m.Tenant == "" && len(allowedTenants) > 0 {
			m.Tenant = allowedTenants[0]
		}
		if !contains(allowedTenants, m.Tenant) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		updated, err := svc.Update(ctx, m)
		if errors.Is(err, vitals.ErrMeasurementNotFound) {
			requestLogger.Debug("measurement not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update measurement", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, updated)
	}
}

func getStatsHandler(log *slog.Logger, svc vitals.VitalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-stats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		patientID := r.URL.Query().Get("patientID")
		if patientID == "" {
			requestLogger.Error("no patientID in query")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		from, to, err := timeRange(r)
		if err != nil {
			requestLogger.Error("invalid time range", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		stats, err := svc.Stats(ctx, patientID, from, to, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch stats", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, stats)
	}
}

func getEWSHandler(log *slog.Logger, svc vitals.VitalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-ews")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		patientID := r.URL.Query().Get("patientID")
		if patientID == "" {
			requestLogger.Error("no patientID in query")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		score, err := svc.ComputeEWS(ctx, patientID, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to compute early warning score", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, score)
	}
}

func getTrendHandler(log *slog.Logger, svc vitals.VitalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-trend")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		vitalType, err := types.ParseVitalType(chi.URLParam(r, "vitalType"))
		if err != nil {
			requestLogger.Error("unknown vital type", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		patientID := r.URL.Query().Get("patientID")
		if patientID == "" {
			requestLogger.Error("no patientID in query")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		from := time.Time{}
		if days := r.URL.Query().Get("windowDays"); days != "" {
			n, err := strconv.Atoi(days)
			if err != nil || n <= 0 {
				requestLogger.Error("windowDays is invalid")
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			from = time.Now().UTC().AddDate(0, 0, -n)
		}

		report, err := svc.AnalyzeTrend(ctx, patientID, vitalType, from, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to analyze trend", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, report)
	}
}

func getPredictionHandler(log *slog.Logger, svc vitals.VitalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-prediction")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		vitalType, err := types.ParseVitalType(chi.URLParam(r, "vitalType"))
		if err != nil {
			requestLogger.Error("unknown vital type", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		patientID := r.URL.Query().Get("patientID")
		if patientID == "" {
			requestLogger.Error("no patientID in query")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		prediction, err := svc.PredictNext(ctx, patientID, vitalType, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to predict next value", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, prediction)
	}
}

func getHealthSummaryHandler(log *slog.Logger, svc vitals.VitalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-health-summary")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		patientID := r.URL.Query().Get("patientID")
		if patientID == "" {
			requestLogger.Error("no patientID in query")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		summary, err := svc.HealthSummary(ctx, patientID, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to compose health summary", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, summary)
	}
}

func getAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := paging(r)
		unreadOnly := r.URL.Query().Get("unreadOnly") == "true"

		minSeverity := types.AlertSeverity(0)
		if s := r.URL.Query().Get("minSeverity"); s != "" {
			minSeverity, err = types.ParseAlertSeverity(s)
			if err != nil {
				requestLogger.Error("minSeverity is invalid", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		collection, err := svc.Query(ctx, offset, limit,
			r.URL.Query().Get("patientID"), unreadOnly, minSeverity, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, collectionResponse[types.VitalAlert]{
			Data:       collection.Data,
			Count:      collection.Count,
			Offset:     collection.Offset,
			Limit:      collection.Limit,
			TotalCount: collection.TotalCount,
		})
	}
}

func patchAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "patch-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		err = svc.MarkRead(ctx, alertID, allowedTenants)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to mark alert as read", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func writeJson(w http.ResponseWriter, log *slog.Logger, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("unable to marshal response", "err", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

func paging(r *http.Request) (offset, limit int) {
	limit = defaultLimit

	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	return
}

func timeRange(r *http.Request) (from, to time.Time, err error) {
	if v := r.URL.Query().Get("from"); v != "" {
		from, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err = time.Parse(time.RFC3339, v)
	}
	return
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
