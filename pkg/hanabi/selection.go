package hanabi

// This file implements the optional selection sub-state from spec
// §4.5: a two-step "begin, pick fields, confirm" driver on top of the
// same atomic action methods a direct caller would use. It never
// changes a rule by itself; ConfirmSelection only ever calls into
// actions.go / hints.go.

// BeginPlaySelection starts building a play action.
func (e *Engine) BeginPlaySelection() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.beginSelection(PendingPlay)
}

// BeginDiscardSelection starts building a discard action.
func (e *Engine) BeginDiscardSelection() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.beginSelection(PendingDiscard)
}

// BeginColorHintSelection starts building a color hint action.
func (e *Engine) BeginColorHintSelection() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.beginSelection(PendingColorHint)
}

// BeginNumberHintSelection starts building a number hint action.
func (e *Engine) BeginNumberHintSelection() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.beginSelection(PendingNumberHint)
}

func (e *Engine) beginSelection(pending PendingAction) error {
	if e.state.Status.terminal() {
		return newActionError("game is over")
	}
	e.state.UI.reset()
	e.state.UI.PendingAction = pending
	return nil
}

// SelectCard records the card a pending play or discard will act on.
func (e *Engine) SelectCard(cardID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.UI.PendingAction != PendingPlay && e.state.UI.PendingAction != PendingDiscard {
		return newActionError("no play or discard selection in progress")
	}
	e.state.UI.SelectedCardID = cardID
	return nil
}

// SelectHintTarget records the player a pending hint will be given to,
// and recomputes HighlightedCardIDs against whatever hint value (color
// or number) has already been selected, if any.
func (e *Engine) SelectHintTarget(targetID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.UI.PendingAction != PendingColorHint && e.state.UI.PendingAction != PendingNumberHint {
		return newActionError("no hint selection in progress")
	}
	e.state.UI.SelectedTargetPlayerID = targetID
	e.recomputeHighlights()
	return nil
}

// SelectHintColor records the color a pending color hint will use.
func (e *Engine) SelectHintColor(suit Suit) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.UI.PendingAction != PendingColorHint {
		return newActionError("no color hint selection in progress")
	}
	e.state.UI.SelectedHintSuit = &suit
	e.recomputeHighlights()
	return nil
}

// SelectHintNumber records the number a pending number hint will use.
func (e *Engine) SelectHintNumber(number CardNumber) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.UI.PendingAction != PendingNumberHint {
		return newActionError("no number hint selection in progress")
	}
	e.state.UI.SelectedHintNumber = &number
	e.recomputeHighlights()
	return nil
}

// recomputeHighlights fills HighlightedCardIDs with the cards in the
// selected target's hand the pending hint would touch, using the same
// dry-run logic giveHint itself uses for redundancy detection.
func (e *Engine) recomputeHighlights() {
	e.state.UI.HighlightedCardIDs = nil
	target, _ := e.playerByID(e.state.UI.SelectedTargetPlayerID)
	if target == nil {
		return
	}
	var plan hintPlan
	switch {
	case e.state.UI.PendingAction == PendingColorHint && e.state.UI.SelectedHintSuit != nil:
		plan = e.planHint(target, e.state.UI.SelectedHintSuit, nil)
	case e.state.UI.PendingAction == PendingNumberHint && e.state.UI.SelectedHintNumber != nil:
		plan = e.planHint(target, nil, e.state.UI.SelectedHintNumber)
	default:
		return
	}
	for _, id := range target.Cards {
		if plan.touched[id] {
			e.state.UI.HighlightedCardIDs = append(e.state.UI.HighlightedCardIDs, id)
		}
	}
}

// ConfirmSelection dispatches the pending selection to the
// corresponding atomic action, failing with InvalidAction if any
// required field is absent. On success the selection sub-state is
// reset so the next caller starts from a clean slate; on failure it is
// left untouched so the caller can correct the missing field.
func (e *Engine) ConfirmSelection() error {
	e.mu.Lock()
	pending := e.state.UI.PendingAction
	cardID := e.state.UI.SelectedCardID
	targetID := e.state.UI.SelectedTargetPlayerID
	suit := e.state.UI.SelectedHintSuit
	number := e.state.UI.SelectedHintNumber
	e.mu.Unlock()

	var err error
	switch pending {
	case PendingPlay:
		if cardID == "" {
			return newActionError("no card selected")
		}
		err = e.PlayCard(cardID)
	case PendingDiscard:
		if cardID == "" {
			return newActionError("no card selected")
		}
		err = e.DiscardCard(cardID)
	case PendingColorHint:
		if targetID == "" || suit == nil {
			return newActionError("hint target or color not selected")
		}
		err = e.GiveColorHint(targetID, *suit)
	case PendingNumberHint:
		if targetID == "" || number == nil {
			return newActionError("hint target or number not selected")
		}
		err = e.GiveNumberHint(targetID, *number)
	default:
		return newActionError("no selection in progress")
	}

	if err == nil {
		e.mu.Lock()
		e.state.UI.reset()
		e.mu.Unlock()
	}
	return err
}

// CancelSelection resets the selection sub-state without touching
// game state.
func (e *Engine) CancelSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.UI.reset()
}
