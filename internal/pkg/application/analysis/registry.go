package analysis

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

// The threshold tables below are a clinical contract. They are kept
// as data, in one place, so that the constants stay auditable.

type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// bounds is an inclusive interval. A value qualifies for the tier it
// belongs to when it falls below lo or above hi.
type bounds struct {
	lo float64
	hi float64
}

func (b bounds) outside(v float64) bool {
	return v < b.lo || v > b.hi
}

type scoreLadder struct {
	three bounds
	two   bounds
	one   bounds
}

func (l scoreLadder) score(v float64) int {
	switch {
	case l.three.outside(v):
		return 3
	case l.two.outside(v):
		return 2
	case l.one.outside(v):
		return 1
	default:
		return 0
	}
}

type severityLadder struct {
	critical bounds
	high     bounds
	medium   bounds
}

func (l severityLadder) severity(v float64) types.AlertSeverity {
	switch {
	case l.critical.outside(v):
		return types.AlertSeverityCritical
	case l.high.outside(v):
		return types.AlertSeverityHigh
	case l.medium.outside(v):
		return types.AlertSeverityMedium
	default:
		return types.AlertSeverityLow
	}
}

type vitalProfile struct {
	label  string
	unit   string
	normal Range

	ews      scoreLadder
	critical severityLadder

	// blood pressure carries a diastolic reading with its own tables
	secondaryNormal   *Range
	secondaryEWS      *scoreLadder
	secondaryCritical *severityLadder
}

var inf = math.Inf(1)

var registry = map[types.VitalType]vitalProfile{
	types.VitalTypeHeartRate: {
		label:  "Heart rate",
		unit:   "bpm",
		normal: Range{Min: 60, Max: 100},
		ews: scoreLadder{
			three: bounds{lo: 40, hi: 130},
			two:   bounds{lo: 50, hi: 110},
			one:   bounds{lo: 60, hi: 100},
		},
		critical: severityLadder{
			critical: bounds{lo: 40, hi: 150},
			high:     bounds{lo: 50, hi: 130},
			medium:   bounds{lo: 60, hi: 110},
		},
	},
	types.VitalTypeBloodPressure: {
		label:  "Blood pressure",
		unit:   "mmHg",
		normal: Range{Min: 90, Max: 140},
		ews: scoreLadder{
			three: bounds{lo: 70, hi: 200},
			two:   bounds{lo: 90, hi: 160},
			one:   bounds{lo: 100, hi: 140},
		},
		critical: severityLadder{
			critical: bounds{lo: 70, hi: 180},
			high:     bounds{lo: 80, hi: 160},
			medium:   bounds{lo: 90, hi: 140},
		},
		secondaryNormal: &Range{Min: 60, Max: 90},
		secondaryEWS: &scoreLadder{
			three: bounds{lo: 40, hi: 120},
			two:   bounds{lo: 50, hi: 110},
			one:   bounds{lo: 60, hi: 90},
		},
		secondaryCritical: &severityLadder{
			critical: bounds{lo: 40, hi: 120},
			high:     bounds{lo: 50, hi: 110},
			medium:   bounds{lo: 60, hi: 90},
		},
	},
	types.VitalTypeTemperature: {
		label:  "Temperature",
		unit:   "°C",
		normal: Range{Min: 36.1, Max: 37.2},
		ews: scoreLadder{
			three: bounds{lo: 35, hi: 39},
			two:   bounds{lo: 36, hi: 38},
			one:   bounds{lo: 36.5, hi: 37.5},
		},
		critical: severityLadder{
			critical: bounds{lo: 35, hi: 40},
			high:     bounds{lo: 35.5, hi: 39},
			medium:   bounds{lo: 36.1, hi: 38},
		},
	},
	types.VitalTypeSpO2: {
		label:  "SpO2",
		unit:   "%",
		normal: Range{Min: 95, Max: 100},
		ews: scoreLadder{
			three: bounds{lo: 85, hi: inf},
			two:   bounds{lo: 90, hi: inf},
			one:   bounds{lo: 95, hi: inf},
		},
		critical: severityLadder{
			critical: bounds{lo: 85, hi: inf},
			high:     bounds{lo: 90, hi: inf},
			medium:   bounds{lo: 95, hi: inf},
		},
	},
	types.VitalTypeRespiratoryRate: {
		label:  "Respiratory rate",
		unit:   "breaths/min",
		normal: Range{Min: 12, Max: 20},
		ews: scoreLadder{
			three: bounds{lo: 8, hi: 25},
			two:   bounds{lo: 12, hi: 20},
			one:   bounds{lo: 14, hi: 18},
		},
		critical: severityLadder{
			critical: bounds{lo: 8, hi: 30},
			high:     bounds{lo: 10, hi: 25},
			medium:   bounds{lo: 12, hi: 20},
		},
	},
}

func Unit(t types.VitalType) string {
	return registry[t].unit
}

func Label(t types.VitalType) string {
	return registry[t].label
}

func NormalRange(t types.VitalType) Range {
	return registry[t].normal
}

// InNormalRange reports whether a measurement falls inside its type's
// normal range. For blood pressure both readings have to be normal.
func InNormalRange(m types.VitalMeasurement) bool {
	p, ok := registry[m.Type]
	if !ok {
		return false
	}

	if !p.normal.Contains(m.Value) {
		return false
	}

	if p.secondaryNormal != nil && m.SecondaryValue != nil {
		return p.secondaryNormal.Contains(*m.SecondaryValue)
	}

	return true
}

// Severity classifies a measurement against its type's critical-value
// ladder. Blood pressure takes the worse of the two readings.
func Severity(m types.VitalMeasurement) types.AlertSeverity {
	p, ok := registry[m.Type]
	if !ok {
		return types.AlertSeverityLow
	}

	severity := p.critical.severity(m.Value)

	if p.secondaryCritical != nil && m.SecondaryValue != nil {
		if s := p.secondaryCritical.severity(*m.SecondaryValue); s > severity {
			severity = s
		}
	}

	return severity
}

// IsCriticalValue reports whether a measurement crosses its type's
// critical-value thresholds. These are deliberately wider than the
// normal-range bounds and independent of the EWS table.
func IsCriticalValue(m types.VitalMeasurement) bool {
	return Severity(m) == types.AlertSeverityCritical
}

func ewsScore(m types.VitalMeasurement) int {
	p, ok := registry[m.Type]
	if !ok {
		return 0
	}

	score := p.ews.score(m.Value)

	if p.secondaryEWS != nil && m.SecondaryValue != nil {
		if s := p.secondaryEWS.score(*m.SecondaryValue); s > score {
			score = s
		}
	}

	return score
}

func formatValue(m types.VitalMeasurement) string {
	v := strconv.FormatFloat(m.Value, 'f', -1, 64)
	if m.Type == types.VitalTypeBloodPressure && m.SecondaryValue != nil {
		return fmt.Sprintf("%s/%s", v, strconv.FormatFloat(*m.SecondaryValue, 'f', -1, 64))
	}
	return v
}
