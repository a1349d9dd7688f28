package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/set-night/dicebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEvenOddBasic(t *testing.T) {
	o, err := ResolveEvenOdd(2, domain.Even)
	require.NoError(t, err)
	assert.Equal(t, domain.Win, o.Category)

	o, err = ResolveEvenOdd(2, domain.Odd)
	require.NoError(t, err)
	assert.Equal(t, domain.Lose, o.Category)

	o, err = ResolveEvenOdd(5, domain.Odd)
	require.NoError(t, err)
	assert.Equal(t, domain.Win, o.Category)

	o, err = ResolveEvenOdd(5, domain.Even)
	require.NoError(t, err)
	assert.Equal(t, domain.Lose, o.Category)
}

// Every roll in [1,6] yields exactly one of Win/Lose, never Tie, and Even/Odd
// are exact complements.
func TestResolveEvenOddAllRolls(t *testing.T) {
	for roll := domain.MinRoll; roll <= domain.MaxRoll; roll++ {
		even, err := ResolveEvenOdd(roll, domain.Even)
		require.NoError(t, err)
		odd, err := ResolveEvenOdd(roll, domain.Odd)
		require.NoError(t, err)

		isEven := roll%2 == 0
		assert.Equal(t, isEven, even.Category == domain.Win, "roll %d even", roll)
		assert.Equal(t, !isEven, odd.Category == domain.Win, "roll %d odd", roll)
		assert.NotEqual(t, domain.Tie, even.Category)
		assert.NotEqual(t, domain.Tie, odd.Category)
		assert.NotEqual(t, even.Category, odd.Category, "roll %d: complements", roll)
	}
}

// High wins exactly on {4,5,6}, Low is the exact complement on {1,2,3}.
func TestResolveHighLowAllRolls(t *testing.T) {
	for roll := domain.MinRoll; roll <= domain.MaxRoll; roll++ {
		high, err := ResolveHighLow(roll, domain.High)
		require.NoError(t, err)
		low, err := ResolveHighLow(roll, domain.Low)
		require.NoError(t, err)

		isHigh := roll >= 4
		assert.Equal(t, isHigh, high.Category == domain.Win, "roll %d high", roll)
		assert.Equal(t, !isHigh, low.Category == domain.Win, "roll %d low", roll)
		assert.NotEqual(t, domain.Tie, high.Category)
		assert.NotEqual(t, domain.Tie, low.Category)
	}
}

// Win iff roll == guess, across the full grid.
func TestResolveNumberGuessAllPairs(t *testing.T) {
	for roll := domain.MinRoll; roll <= domain.MaxRoll; roll++ {
		for guess := domain.MinRoll; guess <= domain.MaxRoll; guess++ {
			o, err := ResolveNumberGuess(roll, guess)
			require.NoError(t, err)
			if roll == guess {
				assert.Equal(t, domain.Win, o.Category, "roll %d guess %d", roll, guess)
			} else {
				assert.Equal(t, domain.Lose, o.Category, "roll %d guess %d", roll, guess)
			}
		}
	}
}

func TestResolveGuessOneAllRolls(t *testing.T) {
	for roll := domain.MinRoll; roll <= domain.MaxRoll; roll++ {
		yes, err := ResolveGuessOne(roll, domain.GuessYes)
		require.NoError(t, err)
		no, err := ResolveGuessOne(roll, domain.GuessNo)
		require.NoError(t, err)

		isOne := roll == 1
		assert.Equal(t, isOne, yes.Category == domain.Win, "roll %d yes", roll)
		assert.Equal(t, !isOne, no.Category == domain.Win, "roll %d no", roll)
	}
}

// Exactly one of Win/Lose/Tie holds for every pair; Tie exactly on the
// diagonal.
func TestResolveDiceBattleAllPairs(t *testing.T) {
	for user := domain.MinRoll; user <= domain.MaxRoll; user++ {
		for botRoll := domain.MinRoll; botRoll <= domain.MaxRoll; botRoll++ {
			o, err := ResolveDiceBattle(user, botRoll)
			require.NoError(t, err)

			switch {
			case user > botRoll:
				assert.Equal(t, domain.Win, o.Category, "%d vs %d", user, botRoll)
			case user < botRoll:
				assert.Equal(t, domain.Lose, o.Category, "%d vs %d", user, botRoll)
			default:
				assert.Equal(t, domain.Tie, o.Category, "%d vs %d", user, botRoll)
			}
			assert.Equal(t, user, o.Roll)
			assert.Equal(t, botRoll, o.BotRoll)
		}
	}
}

func TestResolveDiceBattleTie(t *testing.T) {
	o, err := ResolveDiceBattle(3, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.Tie, o.Category)
}

func TestResolveRejectsOutOfRangeRolls(t *testing.T) {
	for _, roll := range []int{0, 7, -1, 100} {
		_, err := ResolveEvenOdd(roll, domain.Even)
		assert.ErrorIs(t, err, domain.ErrInvalidRoll, "even/odd roll %d", roll)

		_, err = ResolveHighLow(roll, domain.High)
		assert.ErrorIs(t, err, domain.ErrInvalidRoll, "high/low roll %d", roll)

		_, err = ResolveNumberGuess(roll, 3)
		assert.ErrorIs(t, err, domain.ErrInvalidRoll, "number guess roll %d", roll)

		_, err = ResolveGuessOne(roll, domain.GuessNo)
		assert.ErrorIs(t, err, domain.ErrInvalidRoll, "guess one roll %d", roll)

		_, err = ResolveDiceBattle(roll, 3)
		assert.ErrorIs(t, err, domain.ErrInvalidRoll, "battle user roll %d", roll)

		_, err = ResolveDiceBattle(3, roll)
		assert.ErrorIs(t, err, domain.ErrInvalidRoll, "battle bot roll %d", roll)
	}
}

func TestResolveRejectsInvalidChoices(t *testing.T) {
	_, err := ResolveEvenOdd(4, domain.EvenOddChoice(9))
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)

	_, err = ResolveHighLow(4, domain.HighLowChoice(-2))
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)

	_, err = ResolveNumberGuess(4, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)

	_, err = ResolveGuessOne(4, domain.GuessOneChoice(5))
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)
}

func TestResolveDispatch(t *testing.T) {
	sess := &domain.GameSession{
		ID:       uuid.New(),
		ChatID:   1,
		GameMode: domain.ModeEvenOdd,
		Step:     domain.StepReady,
		Choice:   domain.Even,
		Rolls:    []int{4},
	}
	o, err := Resolve(sess)
	require.NoError(t, err)
	assert.Equal(t, domain.Win, o.Category)

	battle := &domain.GameSession{
		ID:       uuid.New(),
		ChatID:   2,
		GameMode: domain.ModeDiceBattle,
		Step:     domain.StepReady,
		Rolls:    []int{3, 3},
	}
	o, err = Resolve(battle)
	require.NoError(t, err)
	assert.Equal(t, domain.Tie, o.Category)
}

func TestResolveDispatchWrongStep(t *testing.T) {
	sess := &domain.GameSession{
		GameMode: domain.ModeEvenOdd,
		Step:     domain.StepAwaitingRoll,
		Choice:   domain.Even,
	}
	_, err := Resolve(sess)
	assert.ErrorIs(t, err, domain.ErrWrongStep)

	_, err = Resolve(nil)
	assert.ErrorIs(t, err, domain.ErrWrongStep)
}

func TestResolveDispatchModeMismatch(t *testing.T) {
	sess := &domain.GameSession{
		GameMode: domain.ModeEvenOdd,
		Step:     domain.StepReady,
		Choice:   domain.High,
		Rolls:    []int{4},
	}
	_, err := Resolve(sess)
	assert.ErrorIs(t, err, domain.ErrModeMismatch)
}
