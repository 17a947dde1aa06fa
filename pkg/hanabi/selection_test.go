package hanabi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectionDrivesPlay(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "sel"})
	require.NoError(t, err)

	a := engine.GetSnapshot().Players[0]
	require.NoError(t, engine.BeginPlaySelection())
	require.NoError(t, engine.SelectCard(a.Cards[0]))
	require.NoError(t, engine.ConfirmSelection())

	state := engine.GetSnapshot()
	require.Equal(t, PendingNone, state.UI.PendingAction)
	require.Equal(t, 1, state.CurrentTurnPlayerIdx)
}

func TestSelectionHighlightsHintTargets(t *testing.T) {
	engine, err := NewGame(NewGameSetup{
		PlayerNames: []string{"A", "B"},
		Deck: deckOf(
			spec(Green, 1), spec(Red, 2), spec(White, 1), spec(Yellow, 3),
			spec(Blue, 1), spec(Green, 2), spec(Red, 1), spec(Blue, 2),
			spec(White, 3), spec(White, 1), spec(Green, 3), spec(Yellow, 1),
		),
	})
	require.NoError(t, err)

	b := engine.GetSnapshot().Players[1]
	require.NoError(t, engine.BeginNumberHintSelection())
	require.NoError(t, engine.SelectHintTarget(b.ID))
	require.NoError(t, engine.SelectHintNumber(2))

	state := engine.GetSnapshot()
	require.Equal(t, []string{"R2-001", "G2-005", "B2-007"}, state.UI.HighlightedCardIDs)

	require.NoError(t, engine.ConfirmSelection())
	state = engine.GetSnapshot()
	require.Equal(t, PendingNone, state.UI.PendingAction)
	require.Equal(t, 7, state.HintTokens)
}

func TestConfirmSelectionFailsWithoutRequiredFields(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "missing"})
	require.NoError(t, err)

	require.NoError(t, engine.BeginColorHintSelection())
	err = engine.ConfirmSelection()
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestCancelSelectionResetsUIOnly(t *testing.T) {
	engine, err := NewGame(NewGameSetup{PlayerNames: []string{"A", "B"}, Settings: DefaultSettings(), ShuffleSeed: "cancel"})
	require.NoError(t, err)

	before := engine.GetSnapshot()
	require.NoError(t, engine.BeginDiscardSelection())
	engine.CancelSelection()
	after := engine.GetSnapshot()

	require.Equal(t, PendingNone, after.UI.PendingAction)
	require.Equal(t, before.CurrentTurnPlayerIdx, after.CurrentTurnPlayerIdx)
	require.Equal(t, before.HintTokens, after.HintTokens)
}
