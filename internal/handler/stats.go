package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/dicebot/internal/middleware"
	"github.com/set-night/dicebot/internal/telegram"
)

func (h *Handler) handleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	user := middleware.GetUser(ctx)
	if user == nil {
		telegram.SendText(ctx, b, chatID, "Не удалось загрузить ваш профиль, попробуйте позже.")
		return
	}

	text, err := h.statsService.Summary(ctx, user.ID)
	if err != nil {
		slog.Error("stats summary", "error", err, "user_id", user.ID)
		telegram.SendText(ctx, b, chatID, "Не удалось загрузить статистику, попробуйте позже.")
		return
	}
	telegram.SendMarkdown(ctx, b, chatID, text, nil)
}
