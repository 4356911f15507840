package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/alenapavlenkko/strengthstats/internal/models"
	"github.com/alenapavlenkko/strengthstats/internal/service"
	"github.com/alenapavlenkko/strengthstats/internal/strength"
)

const (
	callbackExercise  = "ex:"
	callbackTimeScale = "ts:"

	noDataText = "📭 Нет данных"
)

var (
	errLogUsage      = errors.New("использование: /log <упражнение> <ГГГГ/ММ/ДД> <веса> <повторы>, например /log присед 2024/01/15 100/105 5/3")
	errProgressUsage = errors.New("использование: /progress <упражнение> [1|3|6|12]")
)

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func formatExercises(names []string) string {
	if len(names) == 0 {
		return noDataText + ". Добавьте первую запись командой /log"
	}
	var sb strings.Builder
	sb.WriteString("🏋️ *Упражнения:*\n\n")
	for _, n := range names {
		sb.WriteString("• " + escape(n) + "\n")
	}
	return sb.String()
}

func formatProgress(exercise string, months int, series strength.ChartSeries, skipped int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📈 *%s*, %s\n", escape(exercise), formatMonths(months))
	if series.Len() == 0 {
		sb.WriteString(noDataText + " за этот период")
	} else {
		first, last := series.Values[0], series.Values[series.Len()-1]
		fmt.Fprintf(&sb, "Тренировок: %d\n", series.Len())
		fmt.Fprintf(&sb, "Расчетный 1ПМ: %.2f → %.2f кг (%+.2f)", strength.Round2(first), strength.Round2(last), strength.Round2(last-first))
	}
	if skipped > 0 {
		fmt.Fprintf(&sb, "\n⚠️ Пропущено записей с ошибками: %d", skipped)
	}
	return sb.String()
}

func formatMonths(months int) string {
	switch months {
	case 1:
		return "1 месяц"
	case 3:
		return "3 месяца"
	default:
		return fmt.Sprintf("%d месяцев", months)
	}
}

func formatTop(ranked []strength.RankedExercise) string {
	if len(ranked) == 0 {
		return noDataText
	}
	medals := []string{"🥇", "🥈", "🥉"}

	var sb strings.Builder
	sb.WriteString("💪 *Сильнейшие упражнения* (средний расчетный 1ПМ)\n\n")
	for _, r := range ranked {
		mark := fmt.Sprintf("%d.", r.Rank+1)
		if r.Rank < len(medals) {
			mark = medals[r.Rank]
		}
		fmt.Fprintf(&sb, "%s %s: %.2f кг\n", mark, escape(r.Name), r.EstimatedOneRepMax)
	}
	return sb.String()
}

func formatSplits(splits []*models.WorkoutSplit) string {
	if len(splits) == 0 {
		return noDataText + ". Добавьте сплит: /addsplit <название>"
	}
	var sb strings.Builder
	sb.WriteString("📅 *Сплиты:*\n\n")
	for _, s := range splits {
		sb.WriteString("• " + escape(s.Name))
		if s.DaysPerWeek > 0 {
			fmt.Fprintf(&sb, " (%d дн/нед)", s.DaysPerWeek)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatLogAdded(entry *models.LogEntry, exercise string) string {
	return fmt.Sprintf("✅ Записано: %s, %s, %s x %s", escape(exercise), entry.Date, entry.Weights, entry.Reps)
}

// parseLogArgs: название упражнения может содержать пробелы, последние три поля фиксированы
func parseLogArgs(args string) (service.AddLogDTO, error) {
	fields := strings.Fields(args)
	if len(fields) < 4 {
		return service.AddLogDTO{}, errLogUsage
	}
	n := len(fields)
	return service.AddLogDTO{
		Exercise: strings.Join(fields[:n-3], " "),
		Date:     fields[n-3],
		Weights:  fields[n-2],
		Reps:     fields[n-1],
	}, nil
}

// parseProgressArgs возвращает упражнение и окно; окно по умолчанию - 1 месяц
func parseProgressArgs(args string) (string, int, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return "", 0, nil
	}
	months := service.DefaultTimeScale
	if n := len(fields); n > 1 {
		if m, err := strconv.Atoi(fields[n-1]); err == nil {
			if !strength.IsTimeScale(m) {
				return "", 0, errProgressUsage
			}
			months = m
			fields = fields[:n-1]
		}
	}
	return strings.Join(fields, " "), months, nil
}

// parseSplitArgs: "/addsplit Push Pull Legs 6" - число в конце это дни в неделю
func parseSplitArgs(args string) service.CreateSplitDTO {
	fields := strings.Fields(args)
	dto := service.CreateSplitDTO{}
	if n := len(fields); n > 1 {
		if d, err := strconv.Atoi(fields[n-1]); err == nil {
			dto.DaysPerWeek = d
			fields = fields[:n-1]
		}
	}
	dto.Name = strings.Join(fields, " ")
	return dto
}

func exerciseKeyboard(names []string) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(names); i += 2 {
		row := tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(names[i], callbackExercise+strconv.Itoa(i)),
		)
		if i+1 < len(names) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(names[i+1], callbackExercise+strconv.Itoa(i+1)))
		}
		rows = append(rows, row)
	}
	return rows
}

func timeScaleKeyboard(current int) [][]tgbotapi.InlineKeyboardButton {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(strength.TimeScales))
	for _, m := range strength.TimeScales {
		label := fmt.Sprintf("%d мес", m)
		if m == current {
			label = "• " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, callbackTimeScale+strconv.Itoa(m)))
	}
	return [][]tgbotapi.InlineKeyboardButton{row}
}

func userError(err error) string {
	switch {
	case service.IsValidationError(err), service.IsConfigurationError(err):
		return "❌ " + err.Error()
	case service.IsDataUnavailable(err):
		return "⚠️ База данных недоступна, попробуйте еще раз"
	default:
		return "❌ Ошибка: " + err.Error()
	}
}
