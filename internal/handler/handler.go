package handler

import (
	"github.com/go-telegram/bot"
	"github.com/set-night/dicebot/internal/config"
	"github.com/set-night/dicebot/internal/service"
	"github.com/set-night/dicebot/internal/session"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot          *bot.Bot
	cfg          *config.Config
	sessions     *session.Store
	userService  *service.UserService
	statsService *service.StatsService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot          *bot.Bot
	Cfg          *config.Config
	Sessions     *session.Store
	UserService  *service.UserService
	StatsService *service.StatsService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:          deps.Bot,
		cfg:          deps.Cfg,
		sessions:     deps.Sessions,
		userService:  deps.UserService,
		statsService: deps.StatsService,
	}
}
