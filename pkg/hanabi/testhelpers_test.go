package hanabi

import (
	"os"

	"github.com/decred/slog"
)

// createTestLogger mirrors the teacher's pkg/poker/game_test.go helper:
// a quiet stderr backend so test output isn't flooded.
func createTestLogger() slog.Logger {
	backend := slog.NewBackend(os.Stderr)
	log := backend.Logger("test")
	log.SetLevel(slog.LevelError)
	return log
}

func suitPtr(s Suit) *Suit             { return &s }
func numberPtr(n CardNumber) *CardNumber { return &n }

func deckOf(pairs ...CardSpec) []CardSpec {
	return append([]CardSpec{}, pairs...)
}

func spec(suit Suit, number CardNumber) CardSpec {
	return CardSpec{Suit: suit, Number: number}
}
