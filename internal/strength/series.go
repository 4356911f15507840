package strength

import "go.uber.org/multierr"

// ChartSeries is line chart data: one label and one value per retained log.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Len returns the number of points.
func (s ChartSeries) Len() int {
	return len(s.Labels)
}

// BuildSeries maps logs to chart points. A log with several sets is charted by
// its best set (the maximum estimated one-rep-max). Logs whose sets cannot be
// parsed or estimated are left out and reported in the returned error.
func BuildSeries(logs []Log) (ChartSeries, error) {
	series := ChartSeries{
		Labels: make([]string, 0, len(logs)),
		Values: make([]float64, 0, len(logs)),
	}

	var errs error
	for _, l := range logs {
		best, err := BestEstimate(l)
		if err != nil {
			errs = multierr.Append(errs, &LogError{LogID: l.ID, Date: l.Date, Err: err})
			continue
		}
		series.Labels = append(series.Labels, l.Date)
		series.Values = append(series.Values, best)
	}
	return series, errs
}

// BestEstimate returns the maximum per-set estimated one-rep-max of a log.
func BestEstimate(l Log) (float64, error) {
	sets, err := ParseSets(l.Weights, l.Reps)
	if err != nil {
		return 0, err
	}
	estimates, err := EstimateSets(sets)
	if err != nil {
		return 0, err
	}

	best := estimates[0]
	for _, e := range estimates[1:] {
		if e > best {
			best = e
		}
	}
	return best, nil
}
