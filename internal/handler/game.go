package handler

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/dicebot/internal/config"
	"github.com/set-night/dicebot/internal/domain"
	"github.com/set-night/dicebot/internal/game"
	"github.com/set-night/dicebot/internal/middleware"
	"github.com/set-night/dicebot/internal/telegram"
)

// handlePlay starts a game for the chat from a "play_<mode>" menu button.
func (h *Handler) handlePlay(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, ok := callbackChatID(update)
	if !ok {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		h.answerCallback(ctx, update, "Попробуйте еще раз")
		return
	}

	mode := domain.Mode(strings.TrimPrefix(update.CallbackQuery.Data, "play_"))
	sess, err := h.sessions.Create(chatID, user.ID, mode)
	if err != nil {
		if errors.Is(err, domain.ErrGameActive) {
			h.answerCallback(ctx, update, "Сначала закончите текущую игру или нажмите /cancel")
			return
		}
		slog.Error("create game session", "error", err, "chat_id", chatID, "mode", mode)
		h.answerCallback(ctx, update, "Не удалось начать игру")
		return
	}
	h.answerCallback(ctx, update, "")
	slog.Info("game started", "chat_id", chatID, "mode", mode, "session_id", sess.ID)

	if sess.Step == domain.StepAwaitingChoice {
		telegram.SendMarkdown(ctx, b, chatID,
			"*"+mode.Title()+"*\n\nСделайте ставку:", choiceKeyboard(mode))
		return
	}

	// DiceBattle skips the choice step and rolls straight away.
	h.rollAndResolve(ctx, b, chatID, user.ID)
}

// handleChoice commits the user's selection and moves on to rolling.
func (h *Handler) handleChoice(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, ok := callbackChatID(update)
	if !ok {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		h.answerCallback(ctx, update, "Попробуйте еще раз")
		return
	}

	choice, err := parseChoice(update.CallbackQuery.Data)
	if err != nil {
		h.answerCallback(ctx, update, "Неизвестный вариант")
		return
	}

	if _, err := h.sessions.RecordChoice(chatID, choice); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActiveGame):
			h.answerCallback(ctx, update, "Игра не начата. Нажмите /game")
		case errors.Is(err, domain.ErrWrongStep):
			// Duplicate button press: the first one already committed.
			h.answerCallback(ctx, update, "Выбор уже сделан")
		case errors.Is(err, domain.ErrModeMismatch):
			h.answerCallback(ctx, update, "Эта кнопка от другой игры")
		default:
			slog.Error("record choice", "error", err, "chat_id", chatID)
			h.answerCallback(ctx, update, "Что-то пошло не так")
		}
		return
	}
	h.answerCallback(ctx, update, "Ставка принята: "+choice.Label())

	h.rollAndResolve(ctx, b, chatID, user.ID)
}

// rollAndResolve throws Telegram dice until the session has all required
// values, then resolves, reports and clears the game. The animation delay
// lives here, around the store calls, never inside them.
func (h *Handler) rollAndResolve(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	sess, ok := h.sessions.Get(chatID)
	if !ok {
		return
	}

	for sess.Step == domain.StepAwaitingRoll {
		if sess.GameMode == domain.ModeDiceBattle {
			caption := "Ваш бросок:"
			if len(sess.Rolls) == 1 {
				caption = "Бросок бота:"
			}
			telegram.SendText(ctx, b, chatID, caption)
		}

		msg, err := b.SendDice(ctx, &bot.SendDiceParams{ChatID: chatID, Emoji: "🎲"})
		if err != nil {
			slog.Error("send dice", "error", err, "chat_id", chatID)
			telegram.SendText(ctx, b, chatID, "Не удалось бросить кубик, попробуйте еще раз.")
			return
		}
		if msg.Dice == nil {
			slog.Error("dice message without dice payload", "chat_id", chatID)
			return
		}

		// Let the animation finish before revealing anything.
		select {
		case <-ctx.Done():
			return
		case <-time.After(config.DiceAnimationDelay):
		}

		sess, err = h.sessions.RecordRoll(chatID, msg.Dice.Value)
		if err != nil {
			// A concurrent /cancel or duplicate event can race the roll; the
			// session is gone or advanced, nothing left to report.
			slog.Warn("record roll", "error", err, "chat_id", chatID, "value", msg.Dice.Value)
			return
		}
	}

	if sess.Step != domain.StepReady {
		return
	}

	outcome, err := game.Resolve(sess)
	if err != nil {
		slog.Error("resolve game", "error", err, "chat_id", chatID, "mode", sess.GameMode)
		h.sessions.Clear(chatID)
		telegram.SendText(ctx, b, chatID, "Игра завершилась с ошибкой, попробуйте /game еще раз.")
		return
	}
	if _, err := h.sessions.MarkResolved(chatID); err != nil {
		slog.Warn("mark resolved", "error", err, "chat_id", chatID)
	}

	telegram.SendMarkdown(ctx, b, chatID, game.RenderOutcome(outcome), nil)
	h.sessions.Clear(chatID)

	if err := h.statsService.Record(ctx, userID, chatID, outcome); err != nil {
		slog.Error("record game result", "error", err, "chat_id", chatID)
	}
	slog.Info("game resolved",
		"chat_id", chatID,
		"mode", outcome.GameMode,
		"category", outcome.Category,
		"roll", outcome.Roll,
	)
}

func choiceKeyboard(mode domain.Mode) *models.InlineKeyboardMarkup {
	switch mode {
	case domain.ModeEvenOdd:
		return telegram.InlineKeyboard(telegram.ButtonRow(
			telegram.InlineButton(domain.Even.Label(), "eo_even"),
			telegram.InlineButton(domain.Odd.Label(), "eo_odd"),
		))
	case domain.ModeHighLow:
		return telegram.InlineKeyboard(telegram.ButtonRow(
			telegram.InlineButton(domain.High.Label(), "hl_high"),
			telegram.InlineButton(domain.Low.Label(), "hl_low"),
		))
	case domain.ModeGuessOne:
		return telegram.InlineKeyboard(telegram.ButtonRow(
			telegram.InlineButton("1️⃣ "+domain.GuessYes.Label(), "go_yes"),
			telegram.InlineButton(domain.GuessNo.Label(), "go_no"),
		))
	case domain.ModeNumberGuess:
		return telegram.InlineKeyboard(
			telegram.ButtonRow(
				telegram.InlineButton("1", "ng_1"),
				telegram.InlineButton("2", "ng_2"),
				telegram.InlineButton("3", "ng_3"),
			),
			telegram.ButtonRow(
				telegram.InlineButton("4", "ng_4"),
				telegram.InlineButton("5", "ng_5"),
				telegram.InlineButton("6", "ng_6"),
			),
		)
	}
	return nil
}

func parseChoice(data string) (domain.Choice, error) {
	switch data {
	case "eo_even":
		return domain.Even, nil
	case "eo_odd":
		return domain.Odd, nil
	case "hl_high":
		return domain.High, nil
	case "hl_low":
		return domain.Low, nil
	case "go_yes":
		return domain.GuessYes, nil
	case "go_no":
		return domain.GuessNo, nil
	}
	if n, ok := strings.CutPrefix(data, "ng_"); ok {
		guess, err := strconv.Atoi(n)
		if err != nil || !domain.ValidRoll(guess) {
			return nil, domain.ErrInvalidChoice
		}
		return domain.NumberGuessChoice(guess), nil
	}
	return nil, domain.ErrInvalidChoice
}

func callbackChatID(update *models.Update) (int64, bool) {
	if update.CallbackQuery == nil || update.CallbackQuery.Message.Message == nil {
		return 0, false
	}
	return update.CallbackQuery.Message.Message.Chat.ID, true
}
