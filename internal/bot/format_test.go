package bot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alenapavlenkko/strengthstats/internal/models"
	"github.com/alenapavlenkko/strengthstats/internal/service"
	"github.com/alenapavlenkko/strengthstats/internal/strength"
)

func TestParseLogArgs(t *testing.T) {
	dto, err := parseLogArgs("жим лежа 2024/01/15 100/105 5/3")
	require.NoError(t, err)
	assert.Equal(t, service.AddLogDTO{
		Exercise: "жим лежа",
		Date:     "2024/01/15",
		Weights:  "100/105",
		Reps:     "5/3",
	}, dto)

	_, err = parseLogArgs("squat 2024/01/15 100")
	assert.ErrorIs(t, err, errLogUsage)
}

func TestParseProgressArgs(t *testing.T) {
	tests := []struct {
		args     string
		exercise string
		months   int
		err      bool
	}{
		{args: "", exercise: "", months: 0},
		{args: "squat", exercise: "squat", months: 1},
		{args: "squat 6", exercise: "squat", months: 6},
		{args: "жим лежа 12", exercise: "жим лежа", months: 12},
		{args: "squat 5", err: true},
		// одно слово - это название упражнения
		{args: "21", exercise: "21", months: 1},
	}
	for _, tt := range tests {
		exercise, months, err := parseProgressArgs(tt.args)
		if tt.err {
			assert.ErrorIs(t, err, errProgressUsage, tt.args)
			continue
		}
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.exercise, exercise, tt.args)
		assert.Equal(t, tt.months, months, tt.args)
	}
}

func TestParseSplitArgs(t *testing.T) {
	assert.Equal(t, service.CreateSplitDTO{Name: "Push Pull Legs", DaysPerWeek: 6}, parseSplitArgs("Push Pull Legs 6"))
	assert.Equal(t, service.CreateSplitDTO{Name: "Full body"}, parseSplitArgs("Full body"))
	assert.Equal(t, service.CreateSplitDTO{Name: ""}, parseSplitArgs(""))
}

func TestFormatProgress(t *testing.T) {
	text := formatProgress("squat", 3, strength.ChartSeries{
		Labels: []string{"2024/01/01", "2024/02/01"},
		Values: []float64{112.508, 118.134},
	}, 1)
	assert.Contains(t, text, "*squat*, 3 месяца")
	assert.Contains(t, text, "Тренировок: 2")
	assert.Contains(t, text, "112.51 → 118.13 кг (+5.63)")
	assert.Contains(t, text, "Пропущено записей с ошибками: 1")

	empty := formatProgress("bench_press", 1, strength.ChartSeries{}, 0)
	assert.Contains(t, empty, `bench\_press`)
	assert.Contains(t, empty, noDataText)
	assert.NotContains(t, empty, "Пропущено")
}

func TestFormatTop(t *testing.T) {
	assert.Equal(t, noDataText, formatTop(nil))

	text := formatTop([]strength.RankedExercise{
		{Name: "squat", EstimatedOneRepMax: 148.25, Rank: 0},
		{Name: "bench", EstimatedOneRepMax: 115.33, Rank: 1},
	})
	assert.Contains(t, text, "🥇 squat: 148.25 кг")
	assert.Contains(t, text, "🥈 bench: 115.33 кг")
}

func TestFormatLists(t *testing.T) {
	assert.Contains(t, formatExercises(nil), noDataText)
	assert.Contains(t, formatExercises([]string{"bench", "squat"}), "• squat")

	assert.Contains(t, formatSplits(nil), "/addsplit")
	assert.Contains(t, formatSplits([]*models.WorkoutSplit{{Name: "PPL", DaysPerWeek: 6}}), "• PPL (6 дн/нед)")
}

func TestKeyboards(t *testing.T) {
	rows := exerciseKeyboard([]string{"bench", "curl", "squat"})
	require.Len(t, rows, 2)
	require.Len(t, rows[0], 2)
	require.Len(t, rows[1], 1)
	assert.Equal(t, "squat", rows[1][0].Text)
	require.NotNil(t, rows[1][0].CallbackData)
	assert.Equal(t, "ex:2", *rows[1][0].CallbackData)

	ts := timeScaleKeyboard(3)
	require.Len(t, ts, 1)
	require.Len(t, ts[0], len(strength.TimeScales))
	assert.Equal(t, "• 3 мес", ts[0][1].Text)
	assert.Equal(t, "ts:12", *ts[0][3].CallbackData)
}

func TestUserError(t *testing.T) {
	assert.Contains(t, userError(&service.DataUnavailableError{Query: "q", Err: errors.New("x")}), "недоступна")
	assert.Contains(t, userError(&service.ValidationError{Msg: "invalid date"}), "invalid date")
	assert.Contains(t, userError(&strength.ConfigurationError{Msg: "top-N"}), "top-N")
}

func TestCanWrite(t *testing.T) {
	open := &BotApp{}
	assert.True(t, open.canWrite(42))

	restricted := &BotApp{Admins: []int64{1, 2}}
	assert.True(t, restricted.canWrite(2))
	assert.False(t, restricted.canWrite(42))
}
