package domain

import (
	"time"

	"github.com/google/uuid"
)

// Step is the session's position in its mode-specific state machine.
type Step string

const (
	StepAwaitingChoice Step = "awaiting_choice"
	StepAwaitingRoll   Step = "awaiting_roll"
	StepReady          Step = "ready"
	StepResolved       Step = "resolved"
)

// GameSession is the per-chat record of an in-progress game. At most one
// exists per chat at any time; all mutation goes through the session store.
type GameSession struct {
	ID        uuid.UUID
	ChatID    int64
	UserID    int64
	GameMode  Mode
	Step      Step
	Choice    Choice
	Rolls     []int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Done reports whether the session reached its terminal step.
func (s *GameSession) Done() bool {
	return s.Step == StepResolved
}

// RollsNeeded returns how many dice values the session still awaits.
func (s *GameSession) RollsNeeded() int {
	return s.GameMode.RequiredRolls() - len(s.Rolls)
}
