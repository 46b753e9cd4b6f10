package analysis

import (
	"fmt"
	"time"

	"github.com/vitalsense/vitalsign-mgmt/pkg/types"
)

const (
	RiskLevelHigh   = "High Risk"
	RiskLevelMedium = "Medium Risk"
	RiskLevelLow    = "Low Risk"
	RiskLevelNormal = "Normal"
)

// ComputeEWS maps the most recent measurement per vital type to a 0-3
// score, sums the scores and classifies the total into a risk tier.
// Pure function of its input.
func ComputeEWS(measurements []types.VitalMeasurement) types.EarlyWarningScore {
	latest := map[types.VitalType]types.VitalMeasurement{}
	for _, m := range measurements {
		if cur, ok := latest[m.Type]; !ok || m.Timestamp.After(cur.Timestamp) {
			latest[m.Type] = m
		}
	}

	result := types.EarlyWarningScore{
		Scores:    map[types.VitalType]int{},
		Timestamp: time.Now().UTC(),
	}

	for _, vt := range types.VitalTypes() {
		m, ok := latest[vt]
		if !ok {
			continue
		}

		score := ewsScore(m)
		result.Scores[vt] = score
		result.TotalScore += score

		if score > 0 {
			result.Factors = append(result.Factors,
				fmt.Sprintf("%s %s %s (%s)", Label(vt), formatValue(m), Unit(vt), scoreQualifier(score)))
		}
	}

	result.RiskLevel = riskLevel(result.TotalScore)

	return result
}

// tier boundaries are inclusive of the lower bound, evaluated high to low
func riskLevel(total int) string {
	switch {
	case total >= 7:
		return RiskLevelHigh
	case total >= 5:
		return RiskLevelMedium
	case total >= 3:
		return RiskLevelLow
	default:
		return RiskLevelNormal
	}
}

func scoreQualifier(score int) string {
	switch score {
	case 3:
		return "critical"
	case 2:
		return "abnormal"
	default:
		return "slightly abnormal"
	}
}
