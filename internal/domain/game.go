package domain

// Mode identifies one of the fixed game types.
type Mode string

const (
	ModeEvenOdd     Mode = "even_odd"
	ModeHighLow     Mode = "high_low"
	ModeDiceBattle  Mode = "dice_battle"
	ModeNumberGuess Mode = "number_guess"
	ModeGuessOne    Mode = "guess_one"
)

// Modes lists all playable modes in menu order.
var Modes = []Mode{ModeEvenOdd, ModeHighLow, ModeNumberGuess, ModeGuessOne, ModeDiceBattle}

// Valid reports whether m is a known game mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeEvenOdd, ModeHighLow, ModeDiceBattle, ModeNumberGuess, ModeGuessOne:
		return true
	}
	return false
}

// NeedsChoice reports whether the mode requires a committed user choice
// before rolling. DiceBattle is decided by the dice alone.
func (m Mode) NeedsChoice() bool {
	return m != ModeDiceBattle
}

// RequiredRolls returns how many dice values the mode consumes.
func (m Mode) RequiredRolls() int {
	if m == ModeDiceBattle {
		return 2
	}
	return 1
}

// Title returns the user-facing game name.
func (m Mode) Title() string {
	switch m {
	case ModeEvenOdd:
		return "Чётное/Нечётное"
	case ModeHighLow:
		return "Больше/Меньше 3.5"
	case ModeDiceBattle:
		return "Битва кубиков"
	case ModeNumberGuess:
		return "Точное число"
	case ModeGuessOne:
		return "Угадать единицу"
	}
	return string(m)
}

// Choice is the user's committed selection, typed per mode. The interface is
// sealed: only the variants below implement it, so resolution can match
// exhaustively.
type Choice interface {
	// Mode returns the game mode this choice belongs to.
	Mode() Mode
	// Label returns the user-facing text of the selection.
	Label() string
}

// EvenOddChoice is the selection for the even/odd game.
type EvenOddChoice int

const (
	Even EvenOddChoice = iota
	Odd
)

func (EvenOddChoice) Mode() Mode { return ModeEvenOdd }

func (c EvenOddChoice) Label() string {
	if c == Even {
		return "Чётное"
	}
	return "Нечётное"
}

// HighLowChoice is the selection for the high/low game.
// High covers rolls 4-6, Low covers 1-3.
type HighLowChoice int

const (
	High HighLowChoice = iota
	Low
)

func (HighLowChoice) Mode() Mode { return ModeHighLow }

func (c HighLowChoice) Label() string {
	if c == High {
		return "Больше 3.5"
	}
	return "Меньше 3.5"
}

// NumberGuessChoice is the exact number the user bets on, in [1,6].
type NumberGuessChoice int

func (NumberGuessChoice) Mode() Mode { return ModeNumberGuess }

func (c NumberGuessChoice) Label() string {
	return [7]string{"?", "1", "2", "3", "4", "5", "6"}[clampRoll(int(c))]
}

// GuessOneChoice is the yes/no bet on whether a one comes up.
type GuessOneChoice int

const (
	GuessYes GuessOneChoice = iota
	GuessNo
)

func (GuessOneChoice) Mode() Mode { return ModeGuessOne }

func (c GuessOneChoice) Label() string {
	if c == GuessYes {
		return "Выпадет"
	}
	return "Не выпадет"
}

func clampRoll(v int) int {
	if v < MinRoll || v > MaxRoll {
		return 0
	}
	return v
}

// Roll bounds for a standard Telegram die.
const (
	MinRoll = 1
	MaxRoll = 6
)

// ValidRoll reports whether v is inside [MinRoll, MaxRoll].
func ValidRoll(v int) bool {
	return v >= MinRoll && v <= MaxRoll
}

// Category classifies a resolved game.
type Category string

const (
	Win  Category = "win"
	Lose Category = "lose"
	Tie  Category = "tie"
)

// Outcome is the resolved result of a completed game: the category plus the
// evidence needed to render it. Outcomes are values, never stored.
type Outcome struct {
	GameMode Mode
	Category Category
	Roll     int
	// BotRoll is set only for DiceBattle.
	BotRoll int
	// Choice is nil for DiceBattle.
	Choice Choice
}
