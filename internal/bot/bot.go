package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/alenapavlenkko/strengthstats/internal/charts"
	"github.com/alenapavlenkko/strengthstats/internal/service"
	"github.com/alenapavlenkko/strengthstats/pkg/utils"
)

// BotApp - основная структура бота
type BotApp struct {
	API *tgbotapi.BotAPI

	Admins []int64
	topN   int

	progressService *service.ProgressService
	workoutService  *service.WorkoutService

	// экран прогресса на каждый чат
	mu      sync.Mutex
	screens map[int64]*service.ProgressScreen
}

// Конструктор бота
func NewBotApp(
	token string,
	progressService *service.ProgressService,
	workoutService *service.WorkoutService,
	adminIDs []int64,
	topN int,
) (*BotApp, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &BotApp{
		API:             botAPI,
		Admins:          adminIDs,
		topN:            topN,
		progressService: progressService,
		workoutService:  workoutService,
		screens:         make(map[int64]*service.ProgressScreen),
	}, nil
}

// Запуск бота, останавливается по отмене ctx
func (b *BotApp) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)
	utils.Log.Info("🤖 Bot started")

	for {
		select {
		case <-ctx.Done():
			b.API.StopReceivingUpdates()
			utils.Log.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *BotApp) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}
	if update.Message == nil {
		return
	}
	if update.Message.IsCommand() {
		b.handleCommand(ctx, update)
		return
	}
	b.sendText(update.Message.Chat.ID, "Неизвестная команда. Используйте /help")
}

// Проверка админа
func (b *BotApp) isAdmin(userID int64) bool {
	for _, id := range b.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

// canWrite: без списка админов писать может любой
func (b *BotApp) canWrite(userID int64) bool {
	return len(b.Admins) == 0 || b.isAdmin(userID)
}

func (b *BotApp) screen(chatID int64) *service.ProgressScreen {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.screens[chatID]
	if !ok {
		s = service.NewProgressScreen(b.progressService, b.topN)
		b.screens[chatID] = s
	}
	return s
}

// Команды
func (b *BotApp) handleCommand(ctx context.Context, update tgbotapi.Update) {
	cmd := update.Message.Command()
	args := update.Message.CommandArguments()
	chatID := update.Message.Chat.ID
	var userID int64
	if update.Message.From != nil {
		userID = update.Message.From.ID
	}

	switch cmd {
	case "start":
		b.sendText(chatID, "👋 Привет! Я считаю расчетный 1ПМ по вашим тренировкам и рисую графики прогресса.\n\nСписок команд: /help")
	case "help":
		helpMsg := `📚 *Помощь*

/exercises - список упражнений
/progress - график прогресса, выбор упражнения кнопками
/progress <упражнение> [1|3|6|12] - график за N месяцев
/top - сильнейшие упражнения
/log <упражнение> <ГГГГ/ММ/ДД> <веса> <повторы> - добавить тренировку
/splits - сплиты
/addsplit <название> [дней в неделю] - добавить сплит

Подходы записываются через "/": веса 100/105/110, повторы 5/5/3.
1ПМ считается по формуле Бжицки.`
		b.sendText(chatID, helpMsg)
	case "exercises":
		names, err := b.progressService.ExerciseNames(ctx)
		if err != nil {
			b.sendText(chatID, userError(err))
			return
		}
		b.sendText(chatID, formatExercises(names))
	case "progress":
		b.handleProgress(ctx, chatID, args)
	case "top":
		b.handleTop(ctx, chatID)
	case "log":
		if !b.canWrite(userID) {
			b.sendText(chatID, "⛔ Недостаточно прав")
			return
		}
		b.handleLog(ctx, chatID, args)
	case "splits":
		splits, err := b.workoutService.ListSplits(ctx)
		if err != nil {
			b.sendText(chatID, userError(err))
			return
		}
		b.sendText(chatID, formatSplits(splits))
	case "addsplit":
		if !b.canWrite(userID) {
			b.sendText(chatID, "⛔ Недостаточно прав")
			return
		}
		split, err := b.workoutService.CreateSplit(ctx, parseSplitArgs(args))
		if err != nil {
			b.sendText(chatID, userError(err))
			return
		}
		b.sendText(chatID, "✅ Сплит добавлен: "+escape(split.Name))
	default:
		b.sendText(chatID, "Неизвестная команда. Используйте /help")
	}
}

func (b *BotApp) handleProgress(ctx context.Context, chatID int64, args string) {
	exercise, months, err := parseProgressArgs(args)
	if err != nil {
		b.sendText(chatID, err.Error())
		return
	}
	screen := b.screen(chatID)

	// без аргументов показываем выбор упражнения
	if exercise == "" {
		state, err := screen.Refresh(ctx)
		if err != nil {
			b.sendText(chatID, userError(err))
			return
		}
		if len(state.Exercises) == 0 {
			b.sendText(chatID, formatExercises(nil))
			return
		}
		b.sendTextWithKeyboard(chatID, "Выберите упражнение:", exerciseKeyboard(state.Exercises))
		return
	}

	if _, err := screen.SetTimeScale(months); err != nil {
		b.sendText(chatID, userError(err))
		return
	}
	state, err := screen.Select(ctx, exercise)
	if err != nil {
		b.sendText(chatID, userError(err))
		return
	}
	b.sendProgress(chatID, state)
}

func (b *BotApp) handleTop(ctx context.Context, chatID int64) {
	top, err := b.progressService.TopExercises(ctx, b.topN)
	if err != nil {
		b.sendText(chatID, userError(err))
		return
	}

	var buf bytes.Buffer
	err = charts.RenderTop("1RM", top.Exercises, &buf)
	if errors.Is(err, charts.ErrNoData) {
		b.sendText(chatID, formatTop(nil))
		return
	}
	if err != nil {
		utils.Log.WithError(err).Error("render top chart")
		b.sendText(chatID, formatTop(top.Exercises))
		return
	}
	b.sendPhoto(chatID, "top.png", buf.Bytes(), formatTop(top.Exercises))
}

func (b *BotApp) handleLog(ctx context.Context, chatID int64, args string) {
	dto, err := parseLogArgs(args)
	if err != nil {
		b.sendText(chatID, err.Error())
		return
	}
	entry, err := b.progressService.AddLog(ctx, dto)
	if err != nil {
		b.sendText(chatID, userError(err))
		return
	}
	b.sendText(chatID, formatLogAdded(entry, dto.Exercise))
}

// Кнопки выбора упражнения и масштаба времени
func (b *BotApp) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		b.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID
	screen := b.screen(chatID)
	data := callback.Data

	var (
		state service.ViewState
		err   error
	)
	switch {
	case strings.HasPrefix(data, callbackExercise):
		i, convErr := strconv.Atoi(strings.TrimPrefix(data, callbackExercise))
		names := screen.State().Exercises
		if convErr != nil || i < 0 || i >= len(names) {
			b.answerCallback(callback.ID, "Список устарел, повторите /progress")
			return
		}
		state, err = screen.Select(ctx, names[i])
	case strings.HasPrefix(data, callbackTimeScale):
		months, convErr := strconv.Atoi(strings.TrimPrefix(data, callbackTimeScale))
		if convErr != nil {
			b.answerCallback(callback.ID, "")
			return
		}
		state, err = screen.SetTimeScale(months)
		if err == nil && state.Selected == "" {
			b.answerCallback(callback.ID, "Сначала выберите упражнение")
			return
		}
	default:
		b.answerCallback(callback.ID, "")
		return
	}

	b.answerCallback(callback.ID, "")
	if err != nil {
		b.sendText(chatID, userError(err))
		return
	}
	b.sendProgress(chatID, state)
}

func (b *BotApp) sendProgress(chatID int64, state service.ViewState) {
	caption := formatProgress(state.Selected, state.TimeScale, state.Series, len(state.Skipped))

	var buf bytes.Buffer
	if err := charts.RenderProgress(state.Selected, state.Series, b.progressService.Now(), &buf); err != nil {
		utils.Log.WithError(err).Error("render progress chart")
		b.sendTextWithKeyboard(chatID, caption, timeScaleKeyboard(state.TimeScale))
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "progress.png", Bytes: buf.Bytes()})
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdown
	photo.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(timeScaleKeyboard(state.TimeScale)...)
	if _, err := b.API.Send(photo); err != nil {
		utils.Log.WithField("chat", chatID).WithError(err).Error("send progress chart")
	}
}

// Отправка сообщений
func (b *BotApp) sendText(chatID int64, text string) {
	utils.Log.WithField("chat", chatID).WithField("length", len(text)).Debug("sendText")

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := b.API.Send(msg); err != nil {
		utils.Log.WithError(err).Warn("sendText: markdown rejected, retrying as plain text")

		// Если Markdown вызывает ошибку, пробуем отправить без него
		msg.ParseMode = ""
		if _, err := b.API.Send(msg); err != nil {
			utils.Log.WithField("chat", chatID).WithError(err).Error("sendText")
		}
	}
}

func (b *BotApp) sendPhoto(chatID int64, name string, png []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: png})
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.API.Send(photo); err != nil {
		utils.Log.WithField("chat", chatID).WithError(err).Error("sendPhoto")
	}
}

func (b *BotApp) sendTextWithKeyboard(chatID int64, text string, rows [][]tgbotapi.InlineKeyboardButton) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.API.Send(msg); err != nil {
		utils.Log.WithField("chat", chatID).WithError(err).Error("sendTextWithKeyboard")
	}
}

func (b *BotApp) answerCallback(callbackID string, text string) {
	if _, err := b.API.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		utils.Log.WithError(err).Warn(fmt.Sprintf("answer callback %s", callbackID))
	}
}
