package config

import "time"

const (
	// Telegram's dice animation takes about three seconds; the result is sent
	// only after it finishes so the value is not spoiled.
	DiceAnimationDelay = 3 * time.Second
)
