package game

import (
	"fmt"
	"math/rand"

	"github.com/set-night/dicebot/internal/domain"
)

var winPhrases = []string{
	"🎉 Поздравляю! Вы угадали!",
	"🎊 Отлично! Правильный ответ!",
	"✨ Великолепно! Вы победили!",
	"🏆 Браво! Точное попадание!",
	"🎯 Превосходно! Вы угадали!",
}

var losePhrases = []string{
	"😔 Не угадали, но не расстраивайтесь!",
	"🎲 В этот раз не повезло, попробуйте еще!",
	"💪 Ничего страшного, удача улыбнется в следующий раз!",
	"🌟 Не переживайте, у вас все получится!",
	"🎮 Попытка не пытка, играем еще!",
}

// WinPhrase returns a random congratulation line.
func WinPhrase() string {
	return winPhrases[rand.Intn(len(winPhrases))]
}

// LosePhrase returns a random encouragement line.
func LosePhrase() string {
	return losePhrases[rand.Intn(len(losePhrases))]
}

// RenderOutcome formats an outcome as the message text sent to the chat.
// Randomness here is cosmetic only; the category and evidence are fixed by
// the resolution.
func RenderOutcome(o domain.Outcome) string {
	if o.GameMode == domain.ModeDiceBattle {
		var headline string
		switch o.Category {
		case domain.Win:
			headline = "🎉 Вы победили!"
		case domain.Lose:
			headline = "🤖 Бот победил!"
		default:
			headline = "🤝 Ничья!"
		}
		return fmt.Sprintf("%s\n\nВаш кубик: %d\nКубик бота: %d", headline, o.Roll, o.BotRoll)
	}

	headline := LosePhrase()
	if o.Category == domain.Win {
		headline = WinPhrase()
	}
	return fmt.Sprintf("%s\n\nВыпало: %d\nВаш выбор: %s", headline, o.Roll, o.Choice.Label())
}
