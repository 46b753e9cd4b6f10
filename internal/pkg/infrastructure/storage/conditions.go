package storage

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	MeasurementID string
	AlertID       string
	PatientID     string
	VitalType     string

	From time.Time
	To   time.Time

	UnreadOnly  bool
	MinSeverity *types.AlertSeverity

	Tenant  string
	Tenants []string

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.MeasurementID != "" {
		args["measurement_id"] = c.MeasurementID
	}
	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.PatientID != "" {
		args["patient_id"] = c.PatientID
	}
	if c.VitalType != "" {
		args["vital_type"] = c.VitalType
	}
	if !c.From.IsZero() {
		args["from"] = c.From.UTC()
	}
	if !c.To.IsZero() {
		args["to"] = c.To.UTC()
	}
	if c.MinSeverity != nil {
		args["min_severity"] = int(*c.MinSeverity)
	}
	if c.Tenant != "" {
		args["tenant"] = c.Tenant
	}
	if c.Tenants != nil {
		args["tenants"] = c.Tenants
	}
	if c.offset != nil {
		args["offset"] = *c.offset
	}
	if c.limit != nil {
		args["limit"] = *c.limit
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.MeasurementID != "" {
		where = append(where, "measurement_id = @measurement_id")
	}
	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.PatientID != "" {
		where = append(where, "patient_id = @patient_id")
	}
	if c.VitalType != "" {
		where = append(where, "vital_type = @vital_type")
	}
	if !c.From.IsZero() {
		where = append(where, "observed_at >= @from")
	}
	if !c.To.IsZero() {
		where = append(where, "observed_at <= @to")
	}
	if c.UnreadOnly {
		where = append(where, "is_read = FALSE")
	}
	if c.MinSeverity != nil {
		where = append(where, "severity >= @min_severity")
	}

	if len(c.Tenant) > 0 {
		where = append(where, "tenant = @tenant")
	} else if len(c.Tenants) > 0 {
		where = append(where, "tenant = ANY(@tenants)")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "observed_at"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func WithMeasurementID(measurementID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.MeasurementID = measurementID
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithPatientID(patientID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.PatientID = patientID
		return c
	}
}

func WithVitalType(t types.VitalType) ConditionFunc {
	return func(c *Condition) *Condition {
		c.VitalType = string(t)
		return c
	}
}

func WithTimeRange(from, to time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.From = from
		c.To = to
		return c
	}
}

func WithUnreadOnly() ConditionFunc {
	return func(c *Condition) *Condition {
		c.UnreadOnly = true
		return c
	}
}

func WithMinSeverity(severity types.AlertSeverity) ConditionFunc {
	return func(c *Condition) *Condition {
		c.MinSeverity = &severity
		return c
	}
}

func WithTenant(tenant string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tenants = unique(append(c.Tenants, tenant))
		c.Tenant = tenant
		return c
	}
}

func WithTenants(tenants []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Tenants = unique(tenants)
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "observed_at":
			fallthrough
		case "timestamp":
			c.sortBy = "observed_at"
		case "value":
			c.sortBy = "value"
		case "severity":
			c.sortBy = "severity"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func unique(arr []string) []string {
	if len(arr) <= 1 {
		return arr
	}

	seen := make(map[string]bool)
	result := []string{}
	for _, item := range arr {
		if _, ok := seen[item]; !ok {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
