package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/dicebot/internal/domain"
	"github.com/set-night/dicebot/internal/service"
)

type ctxKey string

const UserKey ctxKey = "user"

// GetUser extracts the loaded user from context.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

// UserLoader returns middleware that loads (or registers) the sending user
// and stashes it in the context for handlers.
func UserLoader(userService *service.UserService, cfg interface{ IsAdmin(int64) bool }) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var from *models.User
			if update.Message != nil {
				from = update.Message.From
			} else if update.CallbackQuery != nil {
				from = &update.CallbackQuery.From
			}

			if from == nil {
				next(ctx, b, update)
				return
			}

			user, created, err := userService.FindOrCreate(ctx, from.ID, from.FirstName, from.Username, cfg.IsAdmin(from.ID))
			if err != nil {
				slog.Error("load user", "error", err, "telegram_id", from.ID)
				next(ctx, b, update)
				return
			}
			if created {
				slog.Info("user registered", "telegram_id", from.ID, "username", from.Username)
			}

			next(context.WithValue(ctx, UserKey, user), b, update)
		}
	}
}
