package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// SendMarkdown sends a Markdown message, falling back to plain text if
// Telegram rejects the parse.
func SendMarkdown(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) error {
	params := &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: markup,
	}
	_, err := b.SendMessage(ctx, params)
	if err != nil {
		slog.Warn("markdown send failed, falling back to plain text", "error", err)
		params.ParseMode = ""
		if _, err = b.SendMessage(ctx, params); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}
	return nil
}

// SendText sends a plain text message.
func SendText(ctx context.Context, b *bot.Bot, chatID int64, text string) error {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
