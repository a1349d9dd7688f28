package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/game", bot.MatchTypePrefix, h.handleGameMenu)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypePrefix, h.handleCancel)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stats", bot.MatchTypePrefix, h.handleStats)

	// Game selection callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "play_", bot.MatchTypePrefix, h.handlePlay)

	// Choice callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "eo_", bot.MatchTypePrefix, h.handleChoice)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "hl_", bot.MatchTypePrefix, h.handleChoice)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "go_", bot.MatchTypePrefix, h.handleChoice)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "ng_", bot.MatchTypePrefix, h.handleChoice)
}

// answerCallback acknowledges a callback query, optionally with an alert text.
func (h *Handler) answerCallback(ctx context.Context, update *models.Update, text string) {
	if update.CallbackQuery == nil {
		return
	}
	h.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
		Text:            text,
	})
}
