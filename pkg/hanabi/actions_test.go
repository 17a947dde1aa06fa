package hanabi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newScenarioOneGame(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewGame(NewGameSetup{
		PlayerNames: []string{"A", "B"},
		Deck: deckOf(
			spec(Red, 1), spec(Red, 2), spec(Yellow, 2), spec(Yellow, 3),
			spec(Green, 3), spec(Green, 4), spec(Blue, 4), spec(Blue, 5),
			spec(White, 5), spec(White, 1), spec(Red, 3), spec(Yellow, 1),
		),
	})
	require.NoError(t, err)
	engine.SetLogger(createTestLogger())
	engine.SetDebugChecks(true)
	return engine
}

func TestPlayCardSuccessAdvancesTurn(t *testing.T) {
	engine := newScenarioOneGame(t)

	err := engine.PlayCard("R1-000")
	require.NoError(t, err)

	state := engine.GetSnapshot()
	require.Equal(t, []string{"R1-000"}, state.Fireworks[Red])
	require.Equal(t, []string{"Y2-002", "G3-004", "B4-006", "W5-008", "R3-010"}, state.Players[0].Cards)
	require.Equal(t, []string{"Y1-011"}, state.DrawDeck)
	require.Equal(t, 1, state.CurrentTurnPlayerIdx)

	plays := 0
	for _, entry := range state.Logs {
		if p, ok := entry.(PlayLogEntry); ok {
			plays++
			require.True(t, p.Success)
			require.False(t, p.GainedHint)
		}
	}
	require.Equal(t, 1, plays)
}

func TestPlayCardMisplayBurnsFuse(t *testing.T) {
	engine, err := NewGame(NewGameSetup{
		PlayerNames: []string{"A", "B"},
		Deck: deckOf(
			spec(Red, 2), spec(Red, 2), spec(Yellow, 2), spec(Yellow, 2),
			spec(Green, 2), spec(Green, 2), spec(Blue, 2), spec(Blue, 2),
			spec(White, 2), spec(White, 2), spec(Red, 3), spec(Yellow, 1),
		),
	})
	require.NoError(t, err)

	err = engine.PlayCard("R2-000")
	require.NoError(t, err)

	state := engine.GetSnapshot()
	require.Empty(t, state.Fireworks[Red])
	require.Equal(t, 1, state.FuseTokensUsed)
	require.Equal(t, StatusActive, state.Status)

	found := false
	for _, entry := range state.Logs {
		if p, ok := entry.(PlayLogEntry); ok {
			found = true
			require.False(t, p.Success)
		}
	}
	require.True(t, found)
}

func TestPlayingFiveAtMaxHintsDoesNotExceedMax(t *testing.T) {
	engine, err := NewGame(NewGameSetup{
		PlayerNames: []string{"A", "B"},
		Deck: deckOf(
			spec(Red, 1), spec(Red, 2), spec(Red, 3), spec(Red, 4), spec(Red, 5),
			spec(Yellow, 1), spec(Yellow, 2), spec(Yellow, 3), spec(Yellow, 4), spec(Yellow, 5),
			spec(Green, 1), spec(Green, 2), spec(Green, 3), spec(Green, 4),
			spec(Blue, 1), spec(Blue, 2), spec(Blue, 3), spec(Blue, 4),
		),
	})
	require.NoError(t, err)

	// Round-robin dealing gives A R1,R3,R5,Y2,Y4 and B R2,R4,Y1,Y3,Y5;
	// the eight-card tail keeps the game out of its last round until
	// after the eighth play.
	require.NoError(t, engine.PlayCard("R1-000"))
	require.NoError(t, engine.PlayCard("Y1-005"))
	require.NoError(t, engine.PlayCard("Y2-006"))
	require.NoError(t, engine.PlayCard("R2-001"))
	require.NoError(t, engine.PlayCard("R3-002"))
	require.NoError(t, engine.PlayCard("Y3-007"))
	require.NoError(t, engine.PlayCard("Y4-008"))
	require.NoError(t, engine.PlayCard("R4-003"))
	require.Equal(t, 8, engine.GetSnapshot().HintTokens)

	require.NoError(t, engine.PlayCard("R5-004"))
	state := engine.GetSnapshot()
	require.Equal(t, 8, state.HintTokens)

	var last PlayLogEntry
	for _, entry := range state.Logs {
		if p, ok := entry.(PlayLogEntry); ok {
			last = p
		}
	}
	require.True(t, last.Success)
	require.False(t, last.GainedHint)
}

func TestDiscardAtMaxHintsRecordsNoGain(t *testing.T) {
	engine := newScenarioOneGame(t)
	state := engine.GetSnapshot()
	require.Equal(t, 8, state.HintTokens)

	require.NoError(t, engine.DiscardCard("R1-000"))
	state = engine.GetSnapshot()
	require.Equal(t, 8, state.HintTokens)

	var entry DiscardLogEntry
	for _, e := range state.Logs {
		if d, ok := e.(DiscardLogEntry); ok {
			entry = d
		}
	}
	require.False(t, entry.GainedHint)
}

func TestEndlessModeIndispensableDiscardEndsGame(t *testing.T) {
	engine, err := NewGame(NewGameSetup{
		PlayerNames: []string{"A", "B"},
		Settings:    Settings{EndlessMode: true},
		Deck: deckOf(
			spec(Red, 2), spec(Red, 2), spec(Yellow, 1), spec(Yellow, 1),
			spec(Green, 1), spec(Green, 1), spec(Blue, 1), spec(Blue, 1),
			spec(White, 1), spec(White, 1),
		),
	})
	require.NoError(t, err)

	require.NoError(t, engine.DiscardCard("R2-000"))
	beforeTurn := engine.GetSnapshot().CurrentTurnPlayerIdx

	require.NoError(t, engine.DiscardCard("R2-001"))
	state := engine.GetSnapshot()
	require.Equal(t, StatusLost, state.Status)
	require.Equal(t, beforeTurn, state.CurrentTurnPlayerIdx)

	var statusEntry StatusLogEntry
	for _, e := range state.Logs {
		if s, ok := e.(StatusLogEntry); ok {
			statusEntry = s
		}
	}
	require.Equal(t, ReasonIndispensableDiscarded, statusEntry.Reason)
}

func TestActionsRejectedWhenGameOver(t *testing.T) {
	engine, err := NewGame(NewGameSetup{
		PlayerNames: []string{"A", "B"},
		Settings:    Settings{MaxFuseTokens: 1},
		Deck: deckOf(
			spec(Red, 2), spec(Red, 2), spec(Yellow, 1), spec(Yellow, 1),
			spec(Green, 1), spec(Green, 1), spec(Blue, 1), spec(Blue, 1),
			spec(White, 1), spec(White, 1),
		),
	})
	require.NoError(t, err)

	require.NoError(t, engine.PlayCard("R2-000"))
	require.True(t, engine.IsGameOver())

	err = engine.PlayCard("Y1-002")
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestTurnSkipsHandlessPlayersWithNoHintTokens(t *testing.T) {
	// Round-robin dealing puts the first deck card in A's hand; make it
	// a guaranteed misplay (Y2 against an empty Y firework) so the
	// triggering action never regenerates a hint token.
	engine, err := NewGame(NewGameSetup{
		PlayerNames: []string{"A", "B", "C"},
		Deck: deckOf(
			spec(Yellow, 2), spec(Red, 1), spec(Green, 1),
			spec(Red, 2), spec(Blue, 1), spec(White, 1),
			spec(Red, 3), spec(Blue, 2), spec(White, 2),
			spec(Red, 4), spec(Blue, 3), spec(White, 3),
			spec(Red, 5), spec(Blue, 4), spec(White, 4),
			spec(Blue, 5), spec(White, 5), spec(Green, 2),
		),
	})
	require.NoError(t, err)

	state := engine.GetSnapshot()
	state.HintTokens = 0
	state.DrawDeck = append(state.DrawDeck, state.Players[1].Cards...)
	state.Players[1].Cards = nil
	restored, err := FromState(state)
	require.NoError(t, err)

	require.NoError(t, restored.PlayCard(restored.GetSnapshot().Players[0].Cards[0]))
	after := restored.GetSnapshot()
	require.Equal(t, 0, after.HintTokens)
	require.Equal(t, 2, after.CurrentTurnPlayerIdx)
}
