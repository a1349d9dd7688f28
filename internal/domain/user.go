package domain

import "time"

type User struct {
	ID         int64
	TelegramID int64
	IsAdmin    bool
	FirstName  string
	Username   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GameResult is one persisted row of game history.
type GameResult struct {
	ID        int64
	UserID    int64
	ChatID    int64
	GameMode  Mode
	Category  Category
	CreatedAt time.Time
}

// ModeStat aggregates a user's results for one mode.
type ModeStat struct {
	GameMode Mode
	Wins     int64
	Losses   int64
	Ties     int64
}

// Played returns the total games counted in the stat.
func (s ModeStat) Played() int64 {
	return s.Wins + s.Losses + s.Ties
}
