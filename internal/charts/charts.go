package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/alenapavlenkko/strengthstats/internal/strength"
)

const (
	Width  = 800
	Height = 480
)

var ErrNoData = errors.New("nothing to draw")

var lineColor = drawing.ColorFromHex("228cdb")

// RenderProgress рисует PNG с линией расчетного 1ПМ по датам.
// Пустой ряд рисуется как нулевая линия за последний месяц.
func RenderProgress(title string, series strength.ChartSeries, now time.Time, w io.Writer) error {
	xs, ys, err := points(series, now)
	if err != nil {
		return err
	}

	ch := chart.Chart{
		Title:      title,
		Width:      Width,
		Height:     Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006/01/02"),
		},
		YAxis: chart.YAxis{
			Name:           "1RM",
			Range:          yRange(ys),
			ValueFormatter: kgFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "1RM",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 3,
					DotColor:    lineColor,
					DotWidth:    4,
				},
			},
		},
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render progress chart: %w", err)
	}
	return nil
}

// RenderTop рисует круговую диаграмму сильнейших упражнений цветами рейтинга
func RenderTop(title string, ranked []strength.RankedExercise, w io.Writer) error {
	total := 0.0
	values := make([]chart.Value, 0, len(ranked))
	for _, r := range ranked {
		total += r.EstimatedOneRepMax
		color := drawing.ColorFromHex(strings.TrimPrefix(r.Color, "#"))
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.2f kg", r.Name, r.EstimatedOneRepMax),
			Value: r.EstimatedOneRepMax,
			Style: chart.Style{FillColor: color, StrokeColor: drawing.ColorWhite},
		})
	}
	if len(values) == 0 || total <= 0 {
		return ErrNoData
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  Width,
		Height: Height,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render top chart: %w", err)
	}
	return nil
}

// go-chart не рисует ось X из одного момента времени, поэтому такой ряд дополняется точкой на следующий день
func points(series strength.ChartSeries, now time.Time) ([]time.Time, []float64, error) {
	if series.Len() == 0 {
		return []time.Time{now.Add(-strength.MonthApprox), now}, []float64{0, 0}, nil
	}

	xs := make([]time.Time, 0, series.Len()+1)
	for _, label := range series.Labels {
		t, err := strength.ParseDate(label)
		if err != nil {
			return nil, nil, err
		}
		xs = append(xs, t)
	}
	ys := append([]float64{}, series.Values...)

	// все точки в один день: оси X нужен ненулевой диапазон
	first, last := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x.Before(first) {
			first = x
		}
		if x.After(last) {
			last = x
		}
	}
	if first.Equal(last) {
		xs = append(xs, last.Add(24*time.Hour))
		ys = append(ys, ys[len(ys)-1])
	}
	return xs, ys, nil
}

func yRange(ys []float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	if hi <= 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	return &chart.ContinuousRange{
		Min: math.Max(0, math.Floor(lo*0.9)),
		Max: math.Ceil(hi * 1.1),
	}
}

func kgFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f kg", f)
	}
	return ""
}
