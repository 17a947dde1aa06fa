package hanabi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLastRoundBeginsAndFinishes(t *testing.T) {
	// Two players, hand size 5 each (10 cards dealt) plus exactly one
	// more card in the deck, so A's first play draws the last card.
	engine, err := NewGame(NewGameSetup{
		PlayerNames: []string{"A", "B"},
		Deck: deckOf(
			spec(Red, 1), spec(Yellow, 1), spec(Green, 1), spec(Blue, 1),
			spec(White, 1), spec(Red, 2), spec(Yellow, 2), spec(Green, 2),
			spec(Blue, 2), spec(White, 2), spec(Red, 3),
		),
	})
	require.NoError(t, err)

	a := engine.GetSnapshot().Players[0]
	require.NoError(t, engine.PlayCard(a.Cards[0]))

	state := engine.GetSnapshot()
	require.Equal(t, StatusLastRound, state.Status)
	require.NotNil(t, state.LastRound)
	require.Equal(t, 2, state.LastRound.TurnsRemaining)

	bID := state.Players[1].ID
	require.NoError(t, engine.GiveNumberHint(a.ID, 2))
	state = engine.GetSnapshot()
	require.Equal(t, StatusLastRound, state.Status)
	require.Equal(t, 1, state.LastRound.TurnsRemaining)

	require.NoError(t, engine.GiveColorHint(bID, Red))
	state = engine.GetSnapshot()
	require.Equal(t, StatusFinished, state.Status)

	var finished StatusLogEntry
	for _, e := range state.Logs {
		if s, ok := e.(StatusLogEntry); ok && s.Status == StatusFinished {
			finished = s
		}
	}
	require.Equal(t, ReasonFinalRoundComplete, finished.Reason)
	require.Equal(t, scoreOf(&state), finished.Score)
}

func TestEndlessModeNeverEntersLastRound(t *testing.T) {
	engine, err := NewGame(NewGameSetup{
		PlayerNames: []string{"A", "B"},
		Settings:    Settings{EndlessMode: true},
		Deck: deckOf(
			spec(Red, 1), spec(Yellow, 1), spec(Green, 1), spec(Blue, 1),
			spec(White, 1), spec(Red, 2), spec(Yellow, 2), spec(Green, 2),
			spec(Blue, 2), spec(White, 2), spec(Red, 3),
		),
	})
	require.NoError(t, err)

	a := engine.GetSnapshot().Players[0]
	require.NoError(t, engine.PlayCard(a.Cards[0]))

	state := engine.GetSnapshot()
	require.Equal(t, StatusActive, state.Status)
	require.Nil(t, state.LastRound)
}
