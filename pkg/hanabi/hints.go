package hanabi

// GiveColorHint gives a color hint to targetID's hand, per spec §4.2.3.
func (e *Engine) GiveColorHint(targetID string, suit Suit) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.giveHint(targetID, &suit, nil)
}

// GiveNumberHint gives a number hint to targetID's hand, per spec §4.2.3.
func (e *Engine) GiveNumberHint(targetID string, number CardNumber) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.giveHint(targetID, nil, &number)
}

// giveHint implements both hint actions; exactly one of suit/number is
// non-nil.
func (e *Engine) giveHint(targetID string, suit *Suit, number *CardNumber) error {
	if e.state.Status.terminal() {
		return newActionError("game is over")
	}
	if e.state.HintTokens == 0 {
		return newActionError("no hint tokens remaining")
	}

	actor := e.currentPlayer()
	if actor == nil {
		return newActionError("no current player")
	}
	if targetID == actor.ID {
		return newActionError("cannot hint yourself")
	}
	target, _ := e.playerByID(targetID)
	if target == nil {
		return newActionError("unknown hint target")
	}

	wild := e.state.Settings.MulticolorWildHints
	if suit != nil {
		if wild && *suit == Multicolor {
			return newActionError("cannot call multicolor when multicolorWildHints=true")
		}
	}

	plan := e.planHint(target, suit, number)
	if !plan.anyTouched {
		return newActionError("hint touches no cards in the target's hand")
	}
	if !plan.changesAnything {
		return newActionError("hint would teach nothing new")
	}

	e.state.HintTokens--

	touchedIDs := make([]string, 0, len(plan.touched))
	for _, id := range target.Cards {
		if plan.touched[id] {
			touchedIDs = append(touchedIDs, id)
		}
	}

	for id, newHints := range plan.newHints {
		card := e.state.Cards[id]
		card.Hints = newHints
		e.state.Cards[id] = card
	}
	for id, card := range e.state.Cards {
		if !plan.touched[id] && card.Hints.RecentlyHinted {
			card.Hints.RecentlyHinted = false
			e.state.Cards[id] = card
		}
	}

	hintType := HintTypeNumber
	if suit != nil {
		hintType = HintTypeColor
	}
	e.appendLog(HintLogEntry{
		baseLogEntry:   e.base(),
		Type:           LogKindHint,
		Actor:          actor.ID,
		Target:         target.ID,
		HintType:       hintType,
		Suit:           suit,
		Number:         number,
		TouchedCardIDs: touchedIDs,
	})

	e.finishAction()
	e.runDebugChecks()
	return nil
}

// hintPlan is the dry-run result of applying a hint: which cards in
// the target's hand are touched, each affected card's would-be new
// hint metadata, and whether anything actually changes (redundancy
// detection per spec §4.2.3).
type hintPlan struct {
	touched         map[string]bool
	newHints        map[string]Hints
	anyTouched      bool
	changesAnything bool
}

func (e *Engine) planHint(target *Player, suit *Suit, number *CardNumber) hintPlan {
	plan := hintPlan{
		touched:  make(map[string]bool, len(target.Cards)),
		newHints: make(map[string]Hints, len(target.Cards)),
	}
	wild := e.state.Settings.MulticolorWildHints

	for _, id := range target.Cards {
		card := e.state.Cards[id]
		next := card.Hints.Clone()

		var touched bool
		if number != nil {
			touched = card.Number == *number
			if touched {
				next.Number = number
				delete(next.NotNumbers, *number)
				next.RecentlyHinted = true
			} else {
				next.NotNumbers[*number] = struct{}{}
			}
		} else {
			isWildTouch := wild && card.Suit == Multicolor && *suit != Multicolor
			touched = card.Suit == *suit || isWildTouch
			if touched && !isWildTouch {
				next.Color = suit
				delete(next.NotColors, *suit)
				next.RecentlyHinted = true
			} else if touched && isWildTouch {
				for _, active := range e.state.Settings.ActiveSuits {
					if active != Multicolor && active != *suit {
						next.NotColors[active] = struct{}{}
					}
				}
				next.RecentlyHinted = true
			} else {
				next.NotColors[*suit] = struct{}{}
				if wild && *suit != Multicolor {
					next.NotColors[Multicolor] = struct{}{}
				}
			}
		}

		if touched {
			plan.anyTouched = true
		}
		plan.touched[id] = touched
		plan.newHints[id] = next
		if !hintsEqual(card.Hints, next) {
			plan.changesAnything = true
		}
	}

	return plan
}

func hintsEqual(a, b Hints) bool {
	if a.RecentlyHinted != b.RecentlyHinted {
		return false
	}
	if !suitPtrEqual(a.Color, b.Color) {
		return false
	}
	if !numberPtrEqual(a.Number, b.Number) {
		return false
	}
	if !suitSetEqual(a.NotColors, b.NotColors) {
		return false
	}
	if !numberSetEqual(a.NotNumbers, b.NotNumbers) {
		return false
	}
	return true
}

func suitPtrEqual(a, b *Suit) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func numberPtrEqual(a, b *CardNumber) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func suitSetEqual(a, b map[Suit]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func numberSetEqual(a, b map[CardNumber]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
