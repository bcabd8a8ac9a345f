package report

import "fmt"

// Trend thresholds: changes within ±5% are considered noise.
const trendThresholdPercent = 5.0

// TrendClass is one of the three bands a trend falls into.
type TrendClass string

const (
	TrendImprovement TrendClass = "improvement"
	TrendRegression  TrendClass = "regression"
	TrendStable      TrendClass = "stable"
	TrendNeutral     TrendClass = "neutral"
)

// Trend classifies current against a baseline. A zero baseline means no
// history exists yet.
//
// The caller currently passes a synthetic baseline (mean scaled by a
// constant); a production deployment must look up the actual previous
// run's estimate per benchmark key instead. Keeping the baseline an
// explicit parameter confines that change to the call site.
func Trend(current, baseline float64) (indicator, description string, class TrendClass) {
	if baseline == 0 {
		return "→", "no history", TrendNeutral
	}
	change := ((current - baseline) / baseline) * 100

	switch {
	case change > trendThresholdPercent:
		return "▲", fmt.Sprintf("%s (slower)", formatPercent(change)), TrendRegression
	case change < -trendThresholdPercent:
		return "▼", fmt.Sprintf("%s (faster)", formatPercent(change)), TrendImprovement
	default:
		return "→", fmt.Sprintf("%s (stable)", formatPercent(change)), TrendStable
	}
}

func formatPercent(value float64) string {
	if value >= 0 {
		return fmt.Sprintf("+%.1f%%", value)
	}
	return fmt.Sprintf("%.1f%%", value)
}

// formatNs renders a nanosecond quantity with a magnitude-appropriate
// unit.
func formatNs(value float64) string {
	switch {
	case value < 1_000:
		return fmt.Sprintf("%.2f ns", value)
	case value < 1_000_000:
		return fmt.Sprintf("%.2f µs", value/1_000)
	default:
		return fmt.Sprintf("%.2f ms", value/1_000_000)
	}
}
