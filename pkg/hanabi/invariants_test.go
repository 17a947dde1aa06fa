package hanabi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromStateRoundTrip(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "rt"})
	require.NoError(t, err)

	snapshot := engine.GetSnapshot()
	restored, err := FromState(snapshot)
	require.NoError(t, err)
	require.Equal(t, snapshot, restored.GetSnapshot())
}

func TestSnapshotMutationDoesNotLeakIntoEngine(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "leak"})
	require.NoError(t, err)

	snapshot := engine.GetSnapshot()
	snapshot.HintTokens = 0
	snapshot.Players[0].Cards[0] = "tampered"

	require.Equal(t, 8, engine.GetSnapshot().HintTokens)
	require.NotEqual(t, "tampered", engine.GetSnapshot().Players[0].Cards[0])
}

func TestCheckInvariantsRejectsDuplicateZone(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "dup"})
	require.NoError(t, err)

	state := engine.GetSnapshot()
	state.DiscardPile = append(state.DiscardPile, state.Players[0].Cards[0])
	require.ErrorIs(t, CheckInvariants(&state), ErrInvalidSnapshot)
}

func TestCheckInvariantsRejectsTokenOutOfBounds(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "tok"})
	require.NoError(t, err)

	state := engine.GetSnapshot()
	state.HintTokens = state.Settings.MaxHintTokens + 1
	require.ErrorIs(t, CheckInvariants(&state), ErrInvalidSnapshot)
}

func TestCheckInvariantsRejectsMalformedFireworkPrefix(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "fw"})
	require.NoError(t, err)

	state := engine.GetSnapshot()
	cardID := state.DrawDeck[0]
	state.DrawDeck = state.DrawDeck[1:]
	state.Fireworks[Red] = append(state.Fireworks[Red], cardID)
	require.ErrorIs(t, CheckInvariants(&state), ErrInvalidSnapshot)
}

func TestCheckInvariantsRejectsContradictoryHint(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "hint"})
	require.NoError(t, err)

	state := engine.GetSnapshot()
	id := state.Players[0].Cards[0]
	card := state.Cards[id]
	card.Hints.Color = suitPtr(Red)
	card.Hints.NotColors[Red] = struct{}{}
	state.Cards[id] = card

	require.ErrorIs(t, CheckInvariants(&state), ErrInvalidSnapshot)
}

func TestCheckInvariantsRejectsTerminalWithPendingSelection(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "ui"})
	require.NoError(t, err)

	state := engine.GetSnapshot()
	state.Status = StatusFinished
	for suit := range state.Fireworks {
		state.Fireworks[suit] = nil
	}
	state.UI.PendingAction = PendingPlay
	require.ErrorIs(t, CheckInvariants(&state), ErrInvalidSnapshot)
}
