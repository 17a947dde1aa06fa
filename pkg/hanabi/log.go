package hanabi

import (
	"encoding/json"
	"fmt"
)

// LogKind discriminates the tagged LogEntry union. JSON consumers key
// off this value via each concrete entry's "type" field.
type LogKind string

const (
	LogKindHint    LogKind = "hint"
	LogKindPlay    LogKind = "play"
	LogKindDiscard LogKind = "discard"
	LogKindDraw    LogKind = "draw"
	LogKindStatus  LogKind = "status"
)

// HintType distinguishes a color hint from a number hint.
type HintType string

const (
	HintTypeColor  HintType = "color"
	HintTypeNumber HintType = "number"
)

// StatusReason names why a status log entry was emitted.
type StatusReason string

const (
	ReasonAllFireworksCompleted   StatusReason = "all_fireworks_completed"
	ReasonFinalRoundComplete      StatusReason = "final_round_complete"
	ReasonOutOfFuses              StatusReason = "out_of_fuses"
	ReasonIndispensableDiscarded  StatusReason = "indispensable_card_discarded"
)

// LogEntry is the tagged union of everything the engine can append to
// its chronological log. Every concrete entry carries a stable Id and
// the Turn counter's value at the time it was appended.
type LogEntry interface {
	Kind() LogKind
	EntryID() string
	EntryTurn() int
}

type baseLogEntry struct {
	ID   string `json:"id"`
	Turn int    `json:"turn"`
}

func (e baseLogEntry) EntryID() string { return e.ID }
func (e baseLogEntry) EntryTurn() int  { return e.Turn }

// HintLogEntry records a color or number hint.
type HintLogEntry struct {
	baseLogEntry
	Type          LogKind     `json:"type"`
	Actor         string      `json:"actor"`
	Target        string      `json:"target"`
	HintType      HintType    `json:"hintType"`
	Suit          *Suit       `json:"suit"`
	Number        *CardNumber `json:"number"`
	TouchedCardIDs []string   `json:"touchedCardIds"`
}

func (HintLogEntry) Kind() LogKind { return LogKindHint }

// PlayLogEntry records a play attempt (successful or a misplay).
type PlayLogEntry struct {
	baseLogEntry
	Type       LogKind    `json:"type"`
	Actor      string     `json:"actor"`
	CardID     string     `json:"cardId"`
	Suit       Suit       `json:"suit"`
	Number     CardNumber `json:"number"`
	Success    bool       `json:"success"`
	GainedHint bool       `json:"gainedHint"`
}

func (PlayLogEntry) Kind() LogKind { return LogKindPlay }

// DiscardLogEntry records a discard.
type DiscardLogEntry struct {
	baseLogEntry
	Type       LogKind    `json:"type"`
	Actor      string     `json:"actor"`
	CardID     string     `json:"cardId"`
	Suit       Suit       `json:"suit"`
	Number     CardNumber `json:"number"`
	GainedHint bool       `json:"gainedHint"`
}

func (DiscardLogEntry) Kind() LogKind { return LogKindDiscard }

// DrawLogEntry records a single card being drawn from the deck. The
// engine emits one of these for each play/discard that draws a
// replacement, appended just before that action's own play/discard
// entry, so a replay can reconstruct deck contents without needing a
// derived field on the surrounding action entry.
type DrawLogEntry struct {
	baseLogEntry
	Type          LogKind `json:"type"`
	Actor         string  `json:"actor"`
	CardID        string  `json:"cardId"`
	RemainingDeck int     `json:"remainingDeck"`
}

func (DrawLogEntry) Kind() LogKind { return LogKindDraw }

// StatusLogEntry records a transition to a terminal status (won, lost
// or finished). Entering the last round appends no status entry.
type StatusLogEntry struct {
	baseLogEntry
	Type   LogKind      `json:"type"`
	Status Status       `json:"status"`
	Reason StatusReason `json:"reason"`
	Score  int          `json:"score"`
}

func (StatusLogEntry) Kind() LogKind { return LogKindStatus }

// formatLogID formats the monotonic, zero-padded log id contract:
// log-0001, log-0002, ...
func formatLogID(n int) string {
	return fmt.Sprintf("log-%04d", n)
}

// decodeLogEntry restores one concrete LogEntry from its "type"
// discriminant. encoding/json cannot unmarshal into the LogEntry
// interface on its own since the concrete type isn't known in advance,
// so HanabiState.UnmarshalJSON calls this per raw log entry.
func decodeLogEntry(raw json.RawMessage) (LogEntry, error) {
	var discriminant struct {
		Type LogKind `json:"type"`
	}
	if err := json.Unmarshal(raw, &discriminant); err != nil {
		return nil, err
	}
	switch discriminant.Type {
	case LogKindHint:
		var e HintLogEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	case LogKindPlay:
		var e PlayLogEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	case LogKindDiscard:
		var e DiscardLogEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	case LogKindDraw:
		var e DrawLogEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	case LogKindStatus:
		var e StatusLogEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("hanabi: unknown log entry type %q", discriminant.Type)
	}
}
