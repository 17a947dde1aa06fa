package hanabi

// Deck top is index 0: drawReplacementInto and the initial deal both
// pop from the front of DrawDeck. This choice is internal and
// consistent; nothing external observes "top" except through Draw log
// entries.

// PlayCard attempts to play cardID from the current turn player's
// hand. See spec §4.2.1.
func (e *Engine) PlayCard(cardID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playCard(cardID)
}

func (e *Engine) playCard(cardID string) error {
	if e.state.Status.terminal() {
		return newActionError("game is over")
	}

	actor := e.currentPlayer()
	if actor == nil {
		return newActionError("no current player")
	}
	handIdx := indexOf(actor.Cards, cardID)
	if handIdx < 0 {
		return newActionError("card not in current player's hand")
	}

	card := e.state.Cards[cardID]
	height := len(e.state.Fireworks[card.Suit])
	success := int(card.Number) == height+1
	gainedHint := false

	actor.Cards = removeAt(actor.Cards, handIdx)

	if success {
		e.state.Fireworks[card.Suit] = append(e.state.Fireworks[card.Suit], cardID)
		if card.Number == 5 && e.state.HintTokens < e.state.Settings.MaxHintTokens {
			e.state.HintTokens++
			gainedHint = true
		}
	} else {
		e.state.DiscardPile = append(e.state.DiscardPile, cardID)
		e.state.FuseTokensUsed++
	}

	e.drawReplacementInto(actor)
	e.clearAllRecentlyHinted()

	entry := PlayLogEntry{
		baseLogEntry: e.base(),
		Type:         LogKindPlay,
		Actor:        actor.ID,
		CardID:       cardID,
		Suit:         card.Suit,
		Number:       card.Number,
		Success:      success,
		GainedHint:   gainedHint,
	}
	e.appendLog(entry)

	e.finishAction()
	e.runDebugChecks()
	return nil
}

// DiscardCard discards cardID from the current turn player's hand. The
// atomic action always succeeds when the card is in hand and the game
// is not terminal; it gains a hint token only when under the maximum
// (spec §4.2.2's reference policy).
func (e *Engine) DiscardCard(cardID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.discardCard(cardID)
}

func (e *Engine) discardCard(cardID string) error {
	if e.state.Status.terminal() {
		return newActionError("game is over")
	}

	actor := e.currentPlayer()
	if actor == nil {
		return newActionError("no current player")
	}
	handIdx := indexOf(actor.Cards, cardID)
	if handIdx < 0 {
		return newActionError("card not in current player's hand")
	}

	card := e.state.Cards[cardID]
	actor.Cards = removeAt(actor.Cards, handIdx)
	e.state.DiscardPile = append(e.state.DiscardPile, cardID)

	gainedHint := false
	if e.state.HintTokens < e.state.Settings.MaxHintTokens {
		e.state.HintTokens++
		gainedHint = true
	}

	indispensable := e.state.Settings.EndlessMode && e.isIndispensable(card.Suit, card.Number)

	if indispensable {
		// No draw occurs and the turn does not advance (spec §4.2.2).
		e.clearAllRecentlyHinted()
		entry := DiscardLogEntry{
			baseLogEntry: e.base(),
			Type:         LogKindDiscard,
			Actor:        actor.ID,
			CardID:       cardID,
			Suit:         card.Suit,
			Number:       card.Number,
			GainedHint:   gainedHint,
		}
		e.appendLog(entry)
		e.transitionTo(StatusLost, ReasonIndispensableDiscarded)
		e.runDebugChecks()
		return nil
	}

	e.drawReplacementInto(actor)
	e.clearAllRecentlyHinted()

	entry := DiscardLogEntry{
		baseLogEntry: e.base(),
		Type:         LogKindDiscard,
		Actor:        actor.ID,
		CardID:       cardID,
		Suit:         card.Suit,
		Number:       card.Number,
		GainedHint:   gainedHint,
	}
	e.appendLog(entry)

	e.finishAction()
	e.runDebugChecks()
	return nil
}

// isIndispensable reports whether the discard pile, which already
// holds the card just discarded, now holds every copy of
// (suit,number) while the firework still needs that number.
func (e *Engine) isIndispensable(suit Suit, number CardNumber) bool {
	if int(number) <= len(e.state.Fireworks[suit]) {
		return false // already played or obsolete
	}
	total := e.state.Settings.TotalCopies(suit, number)
	discarded := 0
	for _, id := range e.state.DiscardPile {
		c := e.state.Cards[id]
		if c.Suit == suit && c.Number == number {
			discarded++
		}
	}
	return discarded >= total
}

// drawReplacementInto draws one card from the deck top and appends it
// to the end of actor's hand (this implementation's chosen policy
// among the two spec §4.2.1 permits; end-append keeps hand order
// stable without needing to track the vacated slot). A no-op when the
// deck is empty. It also appends a draw log entry, matching this
// implementation's chosen draw-log-granularity (spec §9 open question:
// standalone draw entries).
func (e *Engine) drawReplacementInto(actor *Player) {
	if len(e.state.DrawDeck) == 0 {
		return
	}
	cardID := e.state.DrawDeck[0]
	e.state.DrawDeck = e.state.DrawDeck[1:]
	actor.Cards = append(actor.Cards, cardID)

	e.appendLog(DrawLogEntry{
		baseLogEntry:  e.base(),
		Type:          LogKindDraw,
		Actor:         actor.ID,
		CardID:        cardID,
		RemainingDeck: len(e.state.DrawDeck),
	})
}

func (e *Engine) clearAllRecentlyHinted() {
	for id, card := range e.state.Cards {
		if card.Hints.RecentlyHinted {
			card.Hints.RecentlyHinted = false
			e.state.Cards[id] = card
		}
	}
}

// finishAction runs the terminal-condition checks (spec §4.3) and, if
// the game is still non-terminal, advances the turn (spec §4.4). The
// endless-mode indispensable-discard path transitions to a terminal
// status itself before reaching this point and never calls it.
func (e *Engine) finishAction() {
	if e.checkTerminal() {
		return
	}
	e.advanceTurn()
}

// runDebugChecks re-validates every invariant after a completed
// action when debug checks are enabled, panicking on violation. It is
// a development aid only (spec §2) and is never active by default.
func (e *Engine) runDebugChecks() {
	if !e.debugChecks {
		return
	}
	if err := CheckInvariants(&e.state); err != nil {
		panic(err)
	}
}

// checkTerminal applies spec §4.3 rules 2-3 (rule 1 is handled inline
// by the indispensable-discard path, rule 4-5 are handled inside
// advanceTurn since they depend on the post-advance last-round
// countdown). It returns true if a terminal status was reached.
func (e *Engine) checkTerminal() bool {
	allComplete := true
	for _, suit := range e.state.Settings.ActiveSuits {
		if len(e.state.Fireworks[suit]) != 5 {
			allComplete = false
			break
		}
	}
	if allComplete {
		e.transitionTo(StatusWon, ReasonAllFireworksCompleted)
		return true
	}

	if e.state.FuseTokensUsed == e.state.Settings.MaxFuseTokens {
		e.transitionTo(StatusLost, ReasonOutOfFuses)
		return true
	}

	return false
}

// transitionTo moves the engine to a terminal status, appends the
// status log entry, and syncs the Rob-Pike status state machine.
func (e *Engine) transitionTo(status Status, reason StatusReason) {
	e.state.Status = status
	e.state.UI.reset()
	score := scoreOf(&e.state)
	e.appendLog(StatusLogEntry{
		baseLogEntry: e.base(),
		Type:         LogKindStatus,
		Status:       status,
		Reason:       reason,
		Score:        score,
	})
	e.syncStateMachine()
	e.log.Debugf("hanabi: transitioned to %s (%s), score=%d", status, reason, score)
}

func (e *Engine) syncStateMachine() {
	e.sm.SetState(stateFnFor(e.state.Status))
}

// advanceTurn implements spec §4.4: decrement the last-round counter
// first if applicable (possibly finishing the game), then walk the
// turn index forward, skipping handless players with no hint tokens,
// exactly like the teacher's advanceToNextPlayer loop generalized with
// a "no legal actor" draw-out fallback.
func (e *Engine) advanceTurn() {
	if e.state.Status == StatusLastRound && e.state.LastRound != nil {
		e.state.LastRound.TurnsRemaining--
		if e.state.LastRound.TurnsRemaining <= 0 {
			e.transitionTo(StatusFinished, ReasonFinalRoundComplete)
			return
		}
	}

	numPlayers := len(e.state.Players)
	start := e.state.CurrentTurnPlayerIdx
	idx := start
	for checked := 0; checked < numPlayers; checked++ {
		idx = (idx + 1) % numPlayers
		p := e.state.Players[idx]
		if len(p.Cards) > 0 || e.state.HintTokens > 0 {
			e.state.CurrentTurnPlayerIdx = idx
			e.state.Turn++
			e.maybeEnterLastRound()
			return
		}
	}

	// A full cycle found no legal player: draw-out.
	e.transitionTo(StatusFinished, ReasonFinalRoundComplete)
}

// maybeEnterLastRound implements spec §4.3 rule 4: the deck just
// became empty, the game wasn't already counting down, and endless
// mode is off.
func (e *Engine) maybeEnterLastRound() {
	if len(e.state.DrawDeck) != 0 {
		return
	}
	if e.state.LastRound != nil {
		return
	}
	if e.state.Settings.EndlessMode {
		return
	}
	if e.state.Status.terminal() {
		return
	}
	e.state.Status = StatusLastRound
	e.state.LastRound = &LastRoundTimer{TurnsRemaining: len(e.state.Players)}
	e.syncStateMachine()
	e.log.Debugf("hanabi: entering last round, %d turns remaining", e.state.LastRound.TurnsRemaining)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func removeAt(ids []string, idx int) []string {
	out := make([]string, 0, len(ids)-1)
	out = append(out, ids[:idx]...)
	out = append(out, ids[idx+1:]...)
	return out
}

