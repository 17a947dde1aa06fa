package hanabi

import "encoding/json"

// Status is the game's lifecycle phase. won, lost, and finished are
// absorbing: no further actions are accepted once reached.
type Status string

const (
	StatusActive    Status = "active"
	StatusLastRound Status = "last_round"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
	StatusFinished  Status = "finished"
)

func (s Status) terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusFinished
}

// Player is one seat at the table: an identity plus the ordered
// sequence of card ids currently in hand. Hand order is preserved;
// drawn cards append to the end.
type Player struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Cards []string `json:"cards"`
}

func (p Player) clone() Player {
	cards := make([]string, len(p.Cards))
	copy(cards, p.Cards)
	return Player{ID: p.ID, Name: p.Name, Cards: cards}
}

// LastRoundTimer tracks the countdown that begins once the deck is
// exhausted in non-endless games.
type LastRoundTimer struct {
	TurnsRemaining int `json:"turnsRemaining"`
}

// PendingAction names the action a SelectionUI is currently building.
type PendingAction string

const (
	PendingNone       PendingAction = ""
	PendingPlay       PendingAction = "play"
	PendingDiscard    PendingAction = "discard"
	PendingColorHint  PendingAction = "colorHint"
	PendingNumberHint PendingAction = "numberHint"
)

// SelectionUI is the optional multi-step selection sub-state described
// in spec §4.5. It never affects game rules by itself; ConfirmSelection
// dispatches to the same atomic action methods a direct caller would
// use.
type SelectionUI struct {
	PendingAction          PendingAction `json:"pendingAction"`
	SelectedCardID         string        `json:"selectedCardId"`
	SelectedTargetPlayerID string        `json:"selectedTargetPlayerId"`
	SelectedHintSuit       *Suit         `json:"selectedHintSuit"`
	SelectedHintNumber     *CardNumber   `json:"selectedHintNumber"`
	HighlightedCardIDs     []string      `json:"highlightedCardIds"`
}

func (u SelectionUI) clone() SelectionUI {
	out := u
	out.HighlightedCardIDs = append([]string{}, u.HighlightedCardIDs...)
	if u.SelectedHintSuit != nil {
		s := *u.SelectedHintSuit
		out.SelectedHintSuit = &s
	}
	if u.SelectedHintNumber != nil {
		n := *u.SelectedHintNumber
		out.SelectedHintNumber = &n
	}
	return out
}

func (u *SelectionUI) reset() {
	*u = SelectionUI{}
}

// HanabiState is the complete, serializable game state described in
// spec §3. GetSnapshot returns a deep copy of this structure; FromState
// consumes a deep copy of one supplied by a caller.
type HanabiState struct {
	Players              []Player            `json:"players"`
	CurrentTurnPlayerIdx int                 `json:"currentTurnPlayerIndex"`
	Cards                map[string]Card     `json:"cards"`
	DrawDeck             []string            `json:"drawDeck"`
	DiscardPile          []string            `json:"discardPile"`
	Fireworks            map[Suit][]string   `json:"fireworks"`
	HintTokens           int                 `json:"hintTokens"`
	FuseTokensUsed       int                 `json:"fuseTokensUsed"`
	Status               Status              `json:"status"`
	LastRound            *LastRoundTimer     `json:"lastRound"`
	Logs                 []LogEntry          `json:"logs"`
	Turn                 int                 `json:"turn"`
	NextLogID            int                 `json:"nextLogId"`
	Settings             Settings            `json:"settings"`
	UI                   SelectionUI         `json:"ui"`
}

// clone returns a deep copy of st, independent of any shared mutable
// containers (maps, slices, pointers).
func (st HanabiState) clone() HanabiState {
	out := HanabiState{
		CurrentTurnPlayerIdx: st.CurrentTurnPlayerIdx,
		HintTokens:           st.HintTokens,
		FuseTokensUsed:       st.FuseTokensUsed,
		Status:               st.Status,
		Turn:                 st.Turn,
		NextLogID:            st.NextLogID,
		Settings:             st.Settings.clone(),
		UI:                   st.UI.clone(),
	}

	out.Players = make([]Player, len(st.Players))
	for i, p := range st.Players {
		out.Players[i] = p.clone()
	}

	out.Cards = make(map[string]Card, len(st.Cards))
	for id, c := range st.Cards {
		out.Cards[id] = c.Clone()
	}

	out.DrawDeck = append([]string{}, st.DrawDeck...)
	out.DiscardPile = append([]string{}, st.DiscardPile...)

	out.Fireworks = make(map[Suit][]string, len(st.Fireworks))
	for s, ids := range st.Fireworks {
		out.Fireworks[s] = append([]string{}, ids...)
	}

	if st.LastRound != nil {
		lr := *st.LastRound
		out.LastRound = &lr
	}

	out.Logs = make([]LogEntry, len(st.Logs))
	copy(out.Logs, st.Logs) // log entries are immutable value structs once appended

	return out
}

// UnmarshalJSON restores a HanabiState from JSON, resolving each log
// entry's concrete type from its "type" discriminant (see
// decodeLogEntry) since encoding/json cannot do this for an interface
// field on its own.
func (st *HanabiState) UnmarshalJSON(data []byte) error {
	type alias HanabiState
	aux := struct {
		Logs []json.RawMessage `json:"logs"`
		*alias
	}{alias: (*alias)(st)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	st.Logs = make([]LogEntry, len(aux.Logs))
	for i, raw := range aux.Logs {
		entry, err := decodeLogEntry(raw)
		if err != nil {
			return err
		}
		st.Logs[i] = entry
	}
	return nil
}

func (s Settings) clone() Settings {
	out := s
	out.ActiveSuits = append([]Suit{}, s.ActiveSuits...)
	return out
}
