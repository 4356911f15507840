package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alenapavlenkko/strengthstats/internal/strength"
)

var reducerNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func reducerLogs() []strength.Log {
	return []strength.Log{
		{ID: 1, Date: "2024/01/10", Weights: "100", Reps: "5"},
		{ID: 2, Date: "2024/05/20", Weights: "105", Reps: "5"},
	}
}

func TestSelectExercise_AdvancesToken(t *testing.T) {
	s0 := initialState(DefaultTimeScale)
	s1 := selectExercise(s0, "squat")
	s2 := selectExercise(s1, "bench")

	assert.Equal(t, uint64(0), s0.Token)
	assert.Equal(t, "", s0.Selected)
	assert.Equal(t, uint64(1), s1.Token)
	assert.Equal(t, uint64(2), s2.Token)
	assert.Equal(t, "bench", s2.Selected)
}

func TestReceiveLogs_DiscardsStaleToken(t *testing.T) {
	s := selectExercise(initialState(DefaultTimeScale), "squat")
	s = selectExercise(s, "bench")

	got, applied := receiveLogs(s, 1, reducerLogs(), reducerNow)
	assert.False(t, applied)
	assert.Equal(t, s, got)
	assert.Empty(t, got.Logs)

	got, applied = receiveLogs(s, 2, reducerLogs(), reducerNow)
	assert.True(t, applied)
	assert.Len(t, got.Logs, 2)
	assert.Equal(t, []string{"2024/05/20"}, got.Series.Labels)
}

func TestSetTimeScale_RecomputesFromState(t *testing.T) {
	s := selectExercise(initialState(DefaultTimeScale), "squat")
	s, _ = receiveLogs(s, s.Token, reducerLogs(), reducerNow)
	require.Equal(t, 1, s.Series.Len())

	wide, err := setTimeScale(s, 6, reducerNow)
	require.NoError(t, err)
	assert.Equal(t, 6, wide.TimeScale)
	assert.Equal(t, []string{"2024/01/10", "2024/05/20"}, wide.Series.Labels)

	// исходное состояние не изменилось
	assert.Equal(t, 1, s.TimeScale)
	assert.Equal(t, 1, s.Series.Len())

	same, err := setTimeScale(wide, 2, reducerNow)
	require.Error(t, err)
	var cfgErr *strength.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, wide, same)
}

func TestReceiveExercisesAndTop_CopyInput(t *testing.T) {
	names := []string{"bench", "squat"}
	s := receiveExercises(initialState(DefaultTimeScale), names)
	names[0] = "changed"
	assert.Equal(t, []string{"bench", "squat"}, s.Exercises)

	ranked := []strength.RankedExercise{{Name: "squat", EstimatedOneRepMax: 150, Rank: 0, Color: "#228cdb"}}
	s = receiveTop(s, ranked)
	ranked[0].Name = "changed"
	assert.Equal(t, "squat", s.Top[0].Name)
}

func TestReceiveLogs_SkippedRowsInState(t *testing.T) {
	s := selectExercise(initialState(12), "squat")
	s, applied := receiveLogs(s, s.Token, []strength.Log{
		{ID: 1, Date: "2024/05/01", Weights: "100", Reps: "5"},
		{ID: 2, Date: "2024/05/02", Weights: "", Reps: "5"},
	}, reducerNow)
	require.True(t, applied)
	assert.Equal(t, 1, s.Series.Len())
	assert.Len(t, s.Skipped, 1)
}
