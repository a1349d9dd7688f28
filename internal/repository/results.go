package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/set-night/dicebot/internal/domain"
)

func (r *Repository) InsertGameResult(ctx context.Context, res *domain.GameResult) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO game_results (user_id, chat_id, game_mode, category)
		 VALUES ($1, $2, $3, $4)`,
		res.UserID, res.ChatID, string(res.GameMode), string(res.Category))
	if err != nil {
		return fmt.Errorf("insert game result: %w", err)
	}
	return nil
}

type modeStatRow struct {
	GameMode string `db:"game_mode"`
	Wins     int64  `db:"wins"`
	Losses   int64  `db:"losses"`
	Ties     int64  `db:"ties"`
}

func (r *Repository) GetModeStats(ctx context.Context, userID int64) ([]domain.ModeStat, error) {
	var rows []modeStatRow
	err := pgxscan.Select(ctx, r.db, &rows,
		`SELECT game_mode,
		        count(*) FILTER (WHERE category = 'win')  AS wins,
		        count(*) FILTER (WHERE category = 'lose') AS losses,
		        count(*) FILTER (WHERE category = 'tie')  AS ties
		 FROM game_results
		 WHERE user_id = $1
		 GROUP BY game_mode
		 ORDER BY game_mode`, userID)
	if err != nil {
		return nil, fmt.Errorf("get mode stats: %w", err)
	}

	stats := make([]domain.ModeStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.ModeStat{
			GameMode: domain.Mode(row.GameMode),
			Wins:     row.Wins,
			Losses:   row.Losses,
			Ties:     row.Ties,
		})
	}
	return stats, nil
}
