package game

import (
	"testing"

	"github.com/set-night/dicebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOutcomeShowsEvidence(t *testing.T) {
	o, err := ResolveEvenOdd(4, domain.Even)
	require.NoError(t, err)

	text := RenderOutcome(o)
	assert.Contains(t, text, "Выпало: 4")
	assert.Contains(t, text, "Чётное")
}

func TestRenderOutcomeDiceBattle(t *testing.T) {
	o, err := ResolveDiceBattle(2, 5)
	require.NoError(t, err)
	text := RenderOutcome(o)
	assert.Contains(t, text, "Бот победил")
	assert.Contains(t, text, "Ваш кубик: 2")
	assert.Contains(t, text, "Кубик бота: 5")

	o, err = ResolveDiceBattle(6, 6)
	require.NoError(t, err)
	assert.Contains(t, RenderOutcome(o), "Ничья")
}

func TestPhrasePoolsNeverEmpty(t *testing.T) {
	for n := 0; n < 20; n++ {
		assert.Contains(t, winPhrases, WinPhrase())
		assert.Contains(t, losePhrases, LosePhrase())
	}
}
