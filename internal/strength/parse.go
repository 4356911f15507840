package strength

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout matches the stored "YYYY/MM/DD" text; single digit months and days parse too.
	DateLayout = "2006/1/2"
	// SetSeparator delimits weights and reps in the stored text.
	SetSeparator = "/"
)

// Log is a stored log entry as it comes out of the store: one row, possibly many sets.
type Log struct {
	ID      uint
	Date    string
	Weights string
	Reps    string
}

// ParseDate parses a stored date as a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Field: "date", Value: s, Err: err}
	}
	return t, nil
}

// FormatDate is the inverse of ParseDate, always zero padded.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006/01/02")
}

// ParseSets decodes the positionally aligned weights and reps fields.
func ParseSets(weights, reps string) ([]Set, error) {
	ws, err := splitField("weights", weights)
	if err != nil {
		return nil, err
	}
	rs, err := splitField("reps", reps)
	if err != nil {
		return nil, err
	}
	if len(ws) != len(rs) {
		return nil, &ParseError{
			Field: "sets",
			Value: weights + " | " + reps,
			Err:   errors.New("weights and reps have different set counts"),
		}
	}

	sets := make([]Set, len(ws))
	for i := range ws {
		w, err := strconv.ParseFloat(ws[i], 64)
		if err != nil {
			return nil, &ParseError{Field: "weights", Value: weights, Err: err}
		}
		r, err := strconv.Atoi(rs[i])
		if err != nil {
			return nil, &ParseError{Field: "reps", Value: reps, Err: err}
		}
		sets[i] = Set{Weight: w, Reps: r}
	}
	return sets, nil
}

// FormatSets encodes sets back into the stored weights and reps text.
func FormatSets(sets []Set) (weights, reps string) {
	ws := make([]string, len(sets))
	rs := make([]string, len(sets))
	for i, s := range sets {
		ws[i] = strconv.FormatFloat(s.Weight, 'f', -1, 64)
		rs[i] = strconv.Itoa(s.Reps)
	}
	return strings.Join(ws, SetSeparator), strings.Join(rs, SetSeparator)
}

func splitField(field, value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, &ParseError{Field: field, Value: value, Err: errors.New("empty")}
	}
	tokens := strings.Split(value, SetSeparator)
	for i, t := range tokens {
		tokens[i] = strings.TrimSpace(t)
		if tokens[i] == "" {
			return nil, &ParseError{Field: field, Value: value, Err: errors.New("empty set token")}
		}
	}
	return tokens, nil
}
