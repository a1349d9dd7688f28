package domain

import "errors"

var (
	ErrGameActive    = errors.New("game already active in this chat")
	ErrNoActiveGame  = errors.New("no active game in this chat")
	ErrWrongStep     = errors.New("action does not match current game step")
	ErrModeMismatch  = errors.New("choice does not match game mode")
	ErrInvalidRoll   = errors.New("roll outside 1-6")
	ErrInvalidChoice = errors.New("invalid choice value")
	ErrUserNotFound  = errors.New("user not found")
)
