package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/dicebot/internal/domain"
	"github.com/set-night/dicebot/internal/middleware"
	"github.com/set-night/dicebot/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	name := "игрок"
	if user := middleware.GetUser(ctx); user != nil && user.FirstName != "" {
		name = user.FirstName
	}

	text := fmt.Sprintf(
		"👋 Привет, *%s*!\n\n"+
			"Я — игровой бот с кубиками. Выберите игру, сделайте ставку на исход, "+
			"а я брошу кубик 🎲\n\n"+
			"📋 *Команды:*\n"+
			"/game — Выбрать игру\n"+
			"/stats — Ваша статистика\n"+
			"/cancel — Отменить текущую игру",
		name,
	)

	telegram.SendMarkdown(ctx, b, update.Message.Chat.ID, text, gameMenuKeyboard())
}

func (h *Handler) handleGameMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	telegram.SendMarkdown(ctx, b, update.Message.Chat.ID, "🎲 *Выберите игру:*", gameMenuKeyboard())
}

func (h *Handler) handleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if _, ok := h.sessions.Get(chatID); !ok {
		telegram.SendText(ctx, b, chatID, "Сейчас нет активной игры. Нажмите /game, чтобы начать.")
		return
	}
	h.sessions.Clear(chatID)
	telegram.SendText(ctx, b, chatID, "❌ Игра отменена. Нажмите /game, чтобы начать новую.")
}

func gameMenuKeyboard() *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(domain.Modes))
	for _, mode := range domain.Modes {
		rows = append(rows, telegram.ButtonRow(
			telegram.InlineButton("🎲 "+mode.Title(), "play_"+string(mode)),
		))
	}
	return telegram.InlineKeyboard(rows...)
}
