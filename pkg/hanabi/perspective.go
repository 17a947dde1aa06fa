package hanabi

// PerspectiveCard is one card as seen by a specific viewer: the
// viewer's own cards have their face value redacted but keep their
// accumulated hint metadata, exactly as everyone else already sees it.
type PerspectiveCard struct {
	ID                 string      `json:"id"`
	Suit               *Suit       `json:"suit"`
	Number             *CardNumber `json:"number"`
	IsHiddenFromViewer bool        `json:"isHiddenFromViewer"`
	Hints              Hints       `json:"hints"`
}

// PerspectivePlayer summarizes one player's hand from a viewer's point
// of view.
type PerspectivePlayer struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Cards []PerspectiveCard `json:"cards"`
}

// Perspective is the read-only, viewer-aware projection described in
// spec §4.6.
type Perspective struct {
	ViewerID              string                             `json:"viewerId"`
	Players               []PerspectivePlayer                `json:"players"`
	Status                Status                              `json:"status"`
	HintTokens             int                                `json:"hintTokens"`
	FuseTokensUsed         int                                `json:"fuseTokensUsed"`
	MaxHintTokens          int                                `json:"maxHintTokens"`
	MaxFuseTokens          int                                `json:"maxFuseTokens"`
	ActiveSuits            []Suit                             `json:"activeSuits"`
	FireworksHeights       map[Suit]int                       `json:"fireworksHeights"`
	DrawDeckCount          int                                `json:"drawDeckCount"`
	CurrentTurnPlayerID    string                             `json:"currentTurnPlayerId"`
	Turn                   int                                `json:"turn"`
	Score                  int                                `json:"score"`
	Logs                   []LogEntry                         `json:"logs"`
	KnownUnavailableCounts map[Suit]map[CardNumber]int        `json:"knownUnavailableCounts"`
	KnownRemainingCounts   map[Suit]map[CardNumber]int        `json:"knownRemainingCounts"`
}

// GetPerspectiveState builds the view of the current game seen by
// viewerID: their own hand's face values are redacted, every other
// card's true suit/number is exposed, and hint metadata is preserved
// verbatim for everyone (spec §4.6). Fails with ErrInvalidPerspective
// if viewerID is not a player in this game.
func (e *Engine) GetPerspectiveState(viewerID string) (Perspective, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	viewer, _ := e.playerByID(viewerID)
	if viewer == nil {
		return Perspective{}, newPerspectiveError("unknown viewer id")
	}

	p := Perspective{
		ViewerID:            viewerID,
		Status:              e.state.Status,
		HintTokens:          e.state.HintTokens,
		FuseTokensUsed:      e.state.FuseTokensUsed,
		MaxHintTokens:       e.state.Settings.MaxHintTokens,
		MaxFuseTokens:       e.state.Settings.MaxFuseTokens,
		ActiveSuits:         append([]Suit{}, e.state.Settings.ActiveSuits...),
		DrawDeckCount:       len(e.state.DrawDeck),
		Turn:                e.state.Turn,
		Score:               scoreOf(&e.state),
		Logs:                append([]LogEntry{}, e.state.Logs...),
	}
	if cur := e.currentPlayer(); cur != nil {
		p.CurrentTurnPlayerID = cur.ID
	}

	p.FireworksHeights = make(map[Suit]int, len(e.state.Settings.ActiveSuits))
	for _, suit := range e.state.Settings.ActiveSuits {
		p.FireworksHeights[suit] = len(e.state.Fireworks[suit])
	}

	p.Players = make([]PerspectivePlayer, len(e.state.Players))
	for i, player := range e.state.Players {
		pp := PerspectivePlayer{ID: player.ID, Name: player.Name}
		isOwnHand := player.ID == viewerID
		pp.Cards = make([]PerspectiveCard, len(player.Cards))
		for j, cardID := range player.Cards {
			card := e.state.Cards[cardID]
			pc := PerspectiveCard{ID: cardID, Hints: card.Hints.Clone()}
			if isOwnHand {
				pc.IsHiddenFromViewer = true
			} else {
				suit, number := card.Suit, card.Number
				pc.Suit = &suit
				pc.Number = &number
			}
			pp.Cards[j] = pc
		}
		p.Players[i] = pp
	}

	p.KnownUnavailableCounts, p.KnownRemainingCounts = e.knownCounts(viewerID)
	return p, nil
}

// knownCounts computes, for every active suit and card number, how
// many copies the viewer has directly observed leaving play: discard
// pile, every firework, and every other player's (visible) hand. The
// viewer's own hand never contributes, since those cards are hidden
// from them (spec §4.6).
func (e *Engine) knownCounts(viewerID string) (unavailable, remaining map[Suit]map[CardNumber]int) {
	unavailable = make(map[Suit]map[CardNumber]int, len(e.state.Settings.ActiveSuits))
	remaining = make(map[Suit]map[CardNumber]int, len(e.state.Settings.ActiveSuits))

	for _, suit := range e.state.Settings.ActiveSuits {
		unavailable[suit] = make(map[CardNumber]int, len(CardNumbers))
		remaining[suit] = make(map[CardNumber]int, len(CardNumbers))
		for _, number := range CardNumbers {
			unavailable[suit][number] = 0
		}
	}

	count := func(id string) {
		card, ok := e.state.Cards[id]
		if !ok {
			return
		}
		if m, ok := unavailable[card.Suit]; ok {
			m[card.Number]++
		}
	}

	for _, id := range e.state.DiscardPile {
		count(id)
	}
	for _, ids := range e.state.Fireworks {
		for _, id := range ids {
			count(id)
		}
	}
	for _, player := range e.state.Players {
		if player.ID == viewerID {
			continue
		}
		for _, id := range player.Cards {
			count(id)
		}
	}

	for _, suit := range e.state.Settings.ActiveSuits {
		counts := CopyCountsFor(suit, e.state.Settings)
		for _, number := range CardNumbers {
			total := counts[number]
			remaining[suit][number] = total - unavailable[suit][number]
		}
	}

	return unavailable, remaining
}
