package strength

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// DefaultTopN is how many exercises the strongest-lifts chart shows.
const DefaultTopN = 3

// Palette holds display colors by rank.
type Palette []string

// DefaultPalette is one color per rank for the default top 3.
var DefaultPalette = Palette{"#228cdb", "#4cb1ff", "#aedcff"}

// JoinedRow is one set joined with its exercise name.
type JoinedRow struct {
	ExerciseName string
	Weight       float64
	Reps         int
}

// RankedExercise is one entry of the strongest-lifts chart.
type RankedExercise struct {
	Name               string  `json:"name"`
	EstimatedOneRepMax float64 `json:"estimatedOneRepMax"`
	Rank               int     `json:"rank"`
	Color              string  `json:"color"`
}

type exerciseGroup struct {
	name  string
	sum   float64
	count int
}

func (g exerciseGroup) avg() float64 {
	return g.sum / float64(g.count)
}

// TopExercises ranks exercises by their average estimated one-rep-max and returns
// the best n of them. Ties keep the order in which exercises first appear in rows.
// Rows that cannot be estimated are skipped and reported in the returned error; the
// ranking is still valid in that case. A configuration error returns no ranking.
func TopExercises(rows []JoinedRow, n int, palette Palette) ([]RankedExercise, error) {
	if n < 1 {
		return nil, &ConfigurationError{Msg: fmt.Sprintf("top-N must be at least 1, got %d", n)}
	}
	if n > len(palette) {
		return nil, &ConfigurationError{
			Msg: fmt.Sprintf("top-N %d exceeds the %d available display colors", n, len(palette)),
		}
	}

	var errs error
	var groups []exerciseGroup
	index := make(map[string]int)
	for i, row := range rows {
		e, err := EstimateOneRepMax(row.Weight, row.Reps)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("row %d (%s): %w", i, row.ExerciseName, err))
			continue
		}
		gi, ok := index[row.ExerciseName]
		if !ok {
			gi = len(groups)
			index[row.ExerciseName] = gi
			groups = append(groups, exerciseGroup{name: row.ExerciseName})
		}
		groups[gi].sum += e
		groups[gi].count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].avg() > groups[j].avg()
	})

	if len(groups) > n {
		groups = groups[:n]
	}

	ranked := make([]RankedExercise, len(groups))
	for i, g := range groups {
		ranked[i] = RankedExercise{
			Name:               g.name,
			EstimatedOneRepMax: Round2(g.avg()),
			Rank:               i,
			Color:              palette[i],
		}
	}
	return ranked, errs
}
