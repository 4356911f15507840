package strength

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/multierr"
)

// MonthApprox is the month length used for time windows.
const MonthApprox = 30 * 24 * time.Hour

// TimeScales are the window sizes, in months, offered to users.
var TimeScales = []int{1, 3, 6, 12}

// IsTimeScale reports whether months is one of TimeScales.
func IsTimeScale(months int) bool {
	for _, m := range TimeScales {
		if m == months {
			return true
		}
	}
	return false
}

// MonthsElapsed returns (now - date) in 30-day months. Negative for future dates.
func MonthsElapsed(date, now time.Time) float64 {
	return float64(now.Sub(date)) / float64(MonthApprox)
}

// FilterByWindow keeps the logs dated at most months before now, in input order.
// Future dated logs are kept. Logs with a malformed date are left out and reported
// in the returned error; the filtered result is valid even when err != nil.
func FilterByWindow(logs []Log, months float64, now time.Time) ([]Log, error) {
	if months < 0 || math.IsNaN(months) {
		return nil, &ConfigurationError{Msg: fmt.Sprintf("time window must be a non-negative number, got %g months", months)}
	}

	var errs error
	filtered := make([]Log, 0, len(logs))
	for _, l := range logs {
		date, err := ParseDate(l.Date)
		if err != nil {
			errs = multierr.Append(errs, &LogError{LogID: l.ID, Date: l.Date, Err: err})
			continue
		}
		if MonthsElapsed(date, now) <= months {
			filtered = append(filtered, l)
		}
	}
	return filtered, errs
}
