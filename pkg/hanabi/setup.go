package hanabi

import "fmt"

// NewGameSetup is the input to NewGame: either a fresh deck built from
// Settings and ShuffleSeed, or a caller-supplied Deck used verbatim.
type NewGameSetup struct {
	PlayerNames        []string
	PlayerIDs          []string // optional; defaults to p1..pN
	Settings           Settings
	StartingPlayerIndex int
	ShuffleSeed        string
	Deck               []CardSpec // optional; overrides Settings-driven construction
}

// NewGame constructs a fresh game from setup, building or accepting a
// deck, dealing starting hands, and assembling the initial state. It
// fails with ErrInvalidConfig for every condition spec §4.1 lists.
func NewGame(setup NewGameSetup) (*Engine, error) {
	numPlayers := len(setup.PlayerNames)
	if numPlayers < 2 || numPlayers > 5 {
		return nil, newConfigErrorf("player count must be in [2,5], got %d", numPlayers)
	}

	names := append([]string{}, setup.PlayerNames...)
	if dup := firstDuplicate(names); dup != "" {
		return nil, newConfigErrorf("player names must be unique, duplicate %q", dup)
	}

	ids := setup.PlayerIDs
	if len(ids) == 0 {
		ids = make([]string, numPlayers)
		for i := range ids {
			ids[i] = fmt.Sprintf("p%d", i+1)
		}
	}
	if len(ids) != numPlayers {
		return nil, newConfigErrorf("playerIds must have length %d, got %d", numPlayers, len(ids))
	}
	if dup := firstDuplicate(ids); dup != "" {
		return nil, newConfigErrorf("player ids must be unique, duplicate %q", dup)
	}

	if setup.StartingPlayerIndex < 0 || setup.StartingPlayerIndex >= numPlayers {
		return nil, newConfigErrorf("startingPlayerIndex %d out of range [0,%d)", setup.StartingPlayerIndex, numPlayers)
	}

	settings, err := setup.Settings.resolve(numPlayers)
	if err != nil {
		return nil, err
	}

	var specs []CardSpec
	if setup.Deck != nil {
		for _, spec := range setup.Deck {
			if !suitIsActive(spec.Suit, settings) {
				return nil, newConfigErrorf("custom deck contains unknown suit %s", spec.Suit)
			}
			if spec.Number < 1 || spec.Number > 5 {
				return nil, newConfigErrorf("custom deck contains invalid number %d", spec.Number)
			}
		}
		specs = append([]CardSpec{}, setup.Deck...)
	} else {
		specs = buildStandardDeck(settings)
		shuffleSpecs(specs, newShuffleRNG(setup.ShuffleSeed))
	}

	required := numPlayers * settings.HandSize
	if len(specs) < required {
		return nil, newConfigErrorf("deck has %d cards, need at least %d to deal starting hands", len(specs), required)
	}

	cards, index := materializeDeck(specs)

	players := make([]Player, numPlayers)
	for i := 0; i < numPlayers; i++ {
		players[i] = Player{ID: ids[i], Name: names[i], Cards: make([]string, 0, settings.HandSize)}
	}

	deckIDs := make([]string, 0, len(cards))
	for _, c := range cards {
		deckIDs = append(deckIDs, c.ID)
	}

	// Round-robin deal: one card per player per round, handSize rounds,
	// so each hand interleaves through the deck's original order rather
	// than taking a contiguous block.
	next := 0
	for round := 0; round < settings.HandSize; round++ {
		for i := 0; i < numPlayers; i++ {
			players[i].Cards = append(players[i].Cards, deckIDs[next])
			next++
		}
	}
	deckIDs = deckIDs[next:]

	fireworks := make(map[Suit][]string, len(settings.ActiveSuits))
	for _, s := range settings.ActiveSuits {
		fireworks[s] = nil
	}

	state := HanabiState{
		Players:              players,
		CurrentTurnPlayerIdx: setup.StartingPlayerIndex,
		Cards:                index,
		DrawDeck:             deckIDs,
		DiscardPile:          nil,
		Fireworks:            fireworks,
		HintTokens:           settings.MaxHintTokens,
		FuseTokensUsed:       0,
		Status:               StatusActive,
		LastRound:            nil,
		Logs:                 nil,
		Turn:                 0,
		NextLogID:            1,
		Settings:             settings,
	}

	return newEngineFromValidatedState(state), nil
}

func suitIsActive(s Suit, settings Settings) bool {
	for _, active := range settings.ActiveSuits {
		if active == s {
			return true
		}
	}
	return false
}

func firstDuplicate(values []string) string {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v
		}
		seen[v] = struct{}{}
	}
	return ""
}
