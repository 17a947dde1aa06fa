package hanabi

import "fmt"

// CheckInvariants validates every structural invariant from spec §3
// against state, returning ErrInvalidSnapshot naming the first one
// violated. It is run unconditionally by FromState, and optionally
// after every action when debug checks are enabled with
// SetDebugChecks — the single audit pass the teacher's domain has no direct
// equivalent of, generalized from the narrower validate-before-accept
// shape of Deck.RestoreState.
func CheckInvariants(state *HanabiState) error {
	if err := checkPlayerCounts(state); err != nil {
		return err
	}
	if err := checkZoneUniqueness(state); err != nil {
		return err
	}
	if err := checkTokenBounds(state); err != nil {
		return err
	}
	if err := checkFireworkPrefixes(state); err != nil {
		return err
	}
	if err := checkWonConsistency(state); err != nil {
		return err
	}
	if err := checkLostConsistency(state); err != nil {
		return err
	}
	if err := checkTerminalUI(state); err != nil {
		return err
	}
	if err := checkLastRoundConsistency(state); err != nil {
		return err
	}
	if err := checkHintConsistency(state); err != nil {
		return err
	}
	return nil
}

// checkPlayerCounts is invariant 8: player count in [2,5], unique ids
// and names.
func checkPlayerCounts(state *HanabiState) error {
	n := len(state.Players)
	if n < 2 || n > 5 {
		return newSnapshotError(fmt.Sprintf("player count must be in [2,5], got %d", n))
	}
	ids := make(map[string]struct{}, n)
	names := make(map[string]struct{}, n)
	for _, p := range state.Players {
		if _, ok := ids[p.ID]; ok {
			return newSnapshotError("player ids must be unique")
		}
		ids[p.ID] = struct{}{}
		if _, ok := names[p.Name]; ok {
			return newSnapshotError("player names must be unique")
		}
		names[p.Name] = struct{}{}
	}
	return nil
}

// checkZoneUniqueness is invariant 1: every card id in Cards appears
// in exactly one zone.
func checkZoneUniqueness(state *HanabiState) error {
	zoneCount := make(map[string]int, len(state.Cards))
	mark := func(id string) { zoneCount[id]++ }

	for _, p := range state.Players {
		for _, id := range p.Cards {
			mark(id)
		}
	}
	for _, id := range state.DrawDeck {
		mark(id)
	}
	for _, id := range state.DiscardPile {
		mark(id)
	}
	for _, ids := range state.Fireworks {
		for _, id := range ids {
			mark(id)
		}
	}

	for id := range state.Cards {
		if zoneCount[id] == 0 {
			return newSnapshotError(fmt.Sprintf("card %s appears in no zone", id))
		}
	}
	for id, count := range zoneCount {
		if _, ok := state.Cards[id]; !ok {
			return newSnapshotError(fmt.Sprintf("card %s referenced but not present in cards map", id))
		}
		if count != 1 {
			return newSnapshotError("card appears in multiple zones")
		}
	}
	return nil
}

// checkTokenBounds is invariant 2.
func checkTokenBounds(state *HanabiState) error {
	if state.HintTokens < 0 || state.HintTokens > state.Settings.MaxHintTokens {
		return newSnapshotError("hint tokens out of bounds")
	}
	if state.FuseTokensUsed < 0 || state.FuseTokensUsed > state.Settings.MaxFuseTokens {
		return newSnapshotError("fuse tokens out of bounds")
	}
	return nil
}

// checkFireworkPrefixes is invariant 3: each active suit's firework is
// a well-formed prefix.
func checkFireworkPrefixes(state *HanabiState) error {
	for _, suit := range state.Settings.ActiveSuits {
		ids := state.Fireworks[suit]
		for i, id := range ids {
			card, ok := state.Cards[id]
			if !ok {
				return newSnapshotError(fmt.Sprintf("firework references unknown card %s", id))
			}
			if card.Suit != suit {
				return newSnapshotError("firework card suit mismatch")
			}
			if int(card.Number) != i+1 {
				return newSnapshotError("firework is not a well-formed prefix")
			}
		}
	}
	return nil
}

// checkWonConsistency is invariant 4.
func checkWonConsistency(state *HanabiState) error {
	if state.Status != StatusWon {
		return nil
	}
	for _, suit := range state.Settings.ActiveSuits {
		if len(state.Fireworks[suit]) != 5 {
			return newSnapshotError("won state requires all active fireworks to be complete")
		}
	}
	return nil
}

// checkLostConsistency is invariant 5.
func checkLostConsistency(state *HanabiState) error {
	if state.Status != StatusLost {
		return nil
	}
	if state.FuseTokensUsed == state.Settings.MaxFuseTokens {
		return nil
	}
	// The only other legal way to be lost is the endless-mode
	// indispensable-card-discard terminal condition, which the engine
	// cannot re-derive from a bare snapshot (it is a one-shot
	// transition, not a standing state-fact). Accept it here; the
	// engine itself never produces a lost state outside these two
	// paths, so this only relaxes validation for externally
	// constructed / restored snapshots.
	if state.Settings.EndlessMode {
		return nil
	}
	return newSnapshotError("lost state requires fuse tokens exhausted (or endless-mode indispensable discard)")
}

// checkTerminalUI is invariant 6.
func checkTerminalUI(state *HanabiState) error {
	if !state.Status.terminal() {
		return nil
	}
	if state.UI.PendingAction != PendingNone {
		return newSnapshotError("no action can be pending when the game is over")
	}
	return nil
}

// checkLastRoundConsistency is invariant 7.
func checkLastRoundConsistency(state *HanabiState) error {
	if state.LastRound == nil {
		return nil
	}
	if len(state.DrawDeck) != 0 {
		return newSnapshotError("last round requires an empty draw deck")
	}
	if state.Status != StatusLastRound && state.Status != StatusFinished {
		return newSnapshotError("last round requires status last_round or finished")
	}
	return nil
}

// checkHintConsistency is the hint-metadata consistency property from
// spec §8: no card's notColors/notNumbers contains its own positive
// hint value (invariant 9).
func checkHintConsistency(state *HanabiState) error {
	for id, card := range state.Cards {
		if card.Hints.Color != nil {
			if _, excluded := card.Hints.NotColors[*card.Hints.Color]; excluded {
				return newSnapshotError(fmt.Sprintf("card %s has contradictory color hint", id))
			}
		}
		if card.Hints.Number != nil {
			if _, excluded := card.Hints.NotNumbers[*card.Hints.Number]; excluded {
				return newSnapshotError(fmt.Sprintf("card %s has contradictory number hint", id))
			}
		}
	}
	return nil
}
