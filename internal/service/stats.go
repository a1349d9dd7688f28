package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/set-night/dicebot/internal/domain"
	"github.com/set-night/dicebot/internal/repository"
	"github.com/shopspring/decimal"
)

type StatsService struct {
	repo *repository.Repository
}

func NewStatsService(repo *repository.Repository) *StatsService {
	return &StatsService{repo: repo}
}

// Record persists a finished game. Called after the outcome message is
// delivered; a history row is an audit record, not session state.
func (s *StatsService) Record(ctx context.Context, userID, chatID int64, outcome domain.Outcome) error {
	return s.repo.InsertGameResult(ctx, &domain.GameResult{
		UserID:   userID,
		ChatID:   chatID,
		GameMode: outcome.GameMode,
		Category: outcome.Category,
	})
}

// Summary renders a user's per-mode totals and overall win rate.
func (s *StatsService) Summary(ctx context.Context, userID int64) (string, error) {
	stats, err := s.repo.GetModeStats(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load stats: %w", err)
	}
	if len(stats) == 0 {
		return "📊 Вы еще не сыграли ни одной игры.\nНажмите /game, чтобы начать!", nil
	}

	var b strings.Builder
	b.WriteString("📊 *Ваша статистика*\n\n")

	var wins, played int64
	for _, st := range stats {
		wins += st.Wins
		played += st.Played()
		line := fmt.Sprintf("*%s*: %d побед, %d поражений", st.GameMode.Title(), st.Wins, st.Losses)
		if st.Ties > 0 {
			line += fmt.Sprintf(", %d ничьих", st.Ties)
		}
		b.WriteString(line + "\n")
	}

	rate := decimal.NewFromInt(wins).
		Div(decimal.NewFromInt(played)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	b.WriteString(fmt.Sprintf("\nВсего игр: %d\nПроцент побед: %s%%", played, rate.String()))
	return b.String(), nil
}
