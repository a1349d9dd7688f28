// Package game computes outcomes of completed dice games. Every function is
// pure and deterministic: dice values are produced by Telegram's dice
// animation and arrive here already rolled. Rolls are re-validated defensively
// even though the session store rejects out-of-range values on ingestion.
package game

import (
	"fmt"

	"github.com/set-night/dicebot/internal/domain"
)

// ResolveEvenOdd decides the even/odd game: Win if the roll's parity matches
// the committed choice.
func ResolveEvenOdd(roll int, choice domain.EvenOddChoice) (domain.Outcome, error) {
	if !domain.ValidRoll(roll) {
		return domain.Outcome{}, fmt.Errorf("%w: %d", domain.ErrInvalidRoll, roll)
	}
	if choice != domain.Even && choice != domain.Odd {
		return domain.Outcome{}, fmt.Errorf("%w: even/odd %d", domain.ErrInvalidChoice, choice)
	}

	isEven := roll%2 == 0
	category := domain.Lose
	if (choice == domain.Even) == isEven {
		category = domain.Win
	}
	return domain.Outcome{
		GameMode: domain.ModeEvenOdd,
		Category: category,
		Roll:     roll,
		Choice:   choice,
	}, nil
}

// ResolveHighLow decides the high/low game: High wins on 4-6, Low on 1-3.
func ResolveHighLow(roll int, choice domain.HighLowChoice) (domain.Outcome, error) {
	if !domain.ValidRoll(roll) {
		return domain.Outcome{}, fmt.Errorf("%w: %d", domain.ErrInvalidRoll, roll)
	}
	if choice != domain.High && choice != domain.Low {
		return domain.Outcome{}, fmt.Errorf("%w: high/low %d", domain.ErrInvalidChoice, choice)
	}

	isHigh := roll >= 4
	category := domain.Lose
	if (choice == domain.High) == isHigh {
		category = domain.Win
	}
	return domain.Outcome{
		GameMode: domain.ModeHighLow,
		Category: category,
		Roll:     roll,
		Choice:   choice,
	}, nil
}

// ResolveNumberGuess decides the exact-number game: Win iff roll == guess.
func ResolveNumberGuess(roll, guess int) (domain.Outcome, error) {
	if !domain.ValidRoll(roll) {
		return domain.Outcome{}, fmt.Errorf("%w: %d", domain.ErrInvalidRoll, roll)
	}
	if !domain.ValidRoll(guess) {
		return domain.Outcome{}, fmt.Errorf("%w: guess %d", domain.ErrInvalidChoice, guess)
	}

	category := domain.Lose
	if roll == guess {
		category = domain.Win
	}
	return domain.Outcome{
		GameMode: domain.ModeNumberGuess,
		Category: category,
		Roll:     roll,
		Choice:   domain.NumberGuessChoice(guess),
	}, nil
}

// ResolveGuessOne decides the guess-one game: the user bets on whether a one
// comes up.
func ResolveGuessOne(roll int, choice domain.GuessOneChoice) (domain.Outcome, error) {
	if !domain.ValidRoll(roll) {
		return domain.Outcome{}, fmt.Errorf("%w: %d", domain.ErrInvalidRoll, roll)
	}
	if choice != domain.GuessYes && choice != domain.GuessNo {
		return domain.Outcome{}, fmt.Errorf("%w: guess-one %d", domain.ErrInvalidChoice, choice)
	}

	isOne := roll == 1
	category := domain.Lose
	if (choice == domain.GuessYes) == isOne {
		category = domain.Win
	}
	return domain.Outcome{
		GameMode: domain.ModeGuessOne,
		Category: category,
		Roll:     roll,
		Choice:   choice,
	}, nil
}

// ResolveDiceBattle compares the user's die against the bot's. This is the
// only mode where a tie is reachable.
func ResolveDiceBattle(userRoll, botRoll int) (domain.Outcome, error) {
	if !domain.ValidRoll(userRoll) {
		return domain.Outcome{}, fmt.Errorf("%w: user %d", domain.ErrInvalidRoll, userRoll)
	}
	if !domain.ValidRoll(botRoll) {
		return domain.Outcome{}, fmt.Errorf("%w: bot %d", domain.ErrInvalidRoll, botRoll)
	}

	var category domain.Category
	switch {
	case userRoll > botRoll:
		category = domain.Win
	case userRoll < botRoll:
		category = domain.Lose
	default:
		category = domain.Tie
	}
	return domain.Outcome{
		GameMode: domain.ModeDiceBattle,
		Category: category,
		Roll:     userRoll,
		BotRoll:  botRoll,
	}, nil
}

// Resolve dispatches a completed session to its mode's resolver. The session
// must be at the ready step with all required inputs recorded.
func Resolve(s *domain.GameSession) (domain.Outcome, error) {
	if s == nil || s.Step != domain.StepReady {
		return domain.Outcome{}, domain.ErrWrongStep
	}
	if len(s.Rolls) != s.GameMode.RequiredRolls() {
		return domain.Outcome{}, fmt.Errorf("%w: have %d rolls", domain.ErrWrongStep, len(s.Rolls))
	}

	switch s.GameMode {
	case domain.ModeEvenOdd:
		c, ok := s.Choice.(domain.EvenOddChoice)
		if !ok {
			return domain.Outcome{}, domain.ErrModeMismatch
		}
		return ResolveEvenOdd(s.Rolls[0], c)
	case domain.ModeHighLow:
		c, ok := s.Choice.(domain.HighLowChoice)
		if !ok {
			return domain.Outcome{}, domain.ErrModeMismatch
		}
		return ResolveHighLow(s.Rolls[0], c)
	case domain.ModeNumberGuess:
		c, ok := s.Choice.(domain.NumberGuessChoice)
		if !ok {
			return domain.Outcome{}, domain.ErrModeMismatch
		}
		return ResolveNumberGuess(s.Rolls[0], int(c))
	case domain.ModeGuessOne:
		c, ok := s.Choice.(domain.GuessOneChoice)
		if !ok {
			return domain.Outcome{}, domain.ErrModeMismatch
		}
		return ResolveGuessOne(s.Rolls[0], c)
	case domain.ModeDiceBattle:
		return ResolveDiceBattle(s.Rolls[0], s.Rolls[1])
	}
	return domain.Outcome{}, fmt.Errorf("%w: mode %q", domain.ErrInvalidChoice, s.GameMode)
}
