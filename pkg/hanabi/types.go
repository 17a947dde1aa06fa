// Package hanabi implements a deterministic, authoritative rules engine
// for the cooperative card game Hanabi. The engine owns the complete
// game state, validates every action against rules and turn order,
// mutates state atomically, produces a chronological action log, and
// emits per-player perspective views that hide information a viewer
// must not see. It performs no I/O: callers supply setup parameters or
// a prior snapshot, call action methods, and read snapshots or
// perspectives back.
package hanabi

import "fmt"

// Suit identifies a card's color category.
type Suit int

const (
	Red Suit = iota
	Yellow
	Green
	Blue
	White
	Multicolor
)

func (s Suit) String() string {
	switch s {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case White:
		return "W"
	case Multicolor:
		return "M"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// MarshalJSON renders the suit as its one-letter code.
func (s Suit) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses the suit from its one-letter code.
func (s *Suit) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' {
		str = str[1 : len(str)-1]
	}
	parsed, ok := ParseSuit(str)
	if !ok {
		return fmt.Errorf("hanabi: invalid suit %q", str)
	}
	*s = parsed
	return nil
}

// MarshalText renders the suit as its one-letter code, so a Suit used
// as a map key (e.g. Fireworks, FireworksHeights,
// KnownUnavailableCounts) marshals the same way a Suit-typed struct
// field does instead of falling back to its bare integer value.
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the suit from its one-letter code.
func (s *Suit) UnmarshalText(text []byte) error {
	parsed, ok := ParseSuit(string(text))
	if !ok {
		return fmt.Errorf("hanabi: invalid suit %q", text)
	}
	*s = parsed
	return nil
}

// ParseSuit converts a one-letter code into a Suit.
func ParseSuit(code string) (Suit, bool) {
	switch code {
	case "R":
		return Red, true
	case "Y":
		return Yellow, true
	case "G":
		return Green, true
	case "B":
		return Blue, true
	case "W":
		return White, true
	case "M":
		return Multicolor, true
	default:
		return 0, false
	}
}

// StandardSuits are the five suits present in every Hanabi game.
var StandardSuits = []Suit{Red, Yellow, Green, Blue, White}

// CardNumber is a card's rank, in [1,5].
type CardNumber int

// CardNumbers enumerates every valid rank in ascending order. Deck
// construction and the perspective's known-count tables iterate this
// constant instead of a magic range.
var CardNumbers = []CardNumber{1, 2, 3, 4, 5}

// standardCopyCounts is the per-number copy count for a standard suit:
// 1 -> 3 copies, 2-4 -> 2 copies, 5 -> 1 copy.
var standardCopyCounts = map[CardNumber]int{1: 3, 2: 2, 3: 2, 4: 2, 5: 1}

// shortCopyCounts is used for the multicolor suit when
// Settings.MulticolorShortDeck is enabled: exactly one copy of each number.
var shortCopyCounts = map[CardNumber]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 1}

// CopyCountsFor returns the per-number copy counts for suit s under the
// given settings, so callers iterating active suits never need to
// special-case the multicolor-short-deck exception inline.
func CopyCountsFor(s Suit, settings Settings) map[CardNumber]int {
	if s == Multicolor && settings.MulticolorShortDeck {
		return shortCopyCounts
	}
	return standardCopyCounts
}

// Hints is the accumulated hint metadata attached to a card.
type Hints struct {
	Color          *Suit                    `json:"color"`
	Number         *CardNumber              `json:"number"`
	NotColors      map[Suit]struct{}        `json:"notColors"`
	NotNumbers     map[CardNumber]struct{}  `json:"notNumbers"`
	RecentlyHinted bool                     `json:"recentlyHinted"`
}

// NewHints returns an empty Hints value with initialized sets.
func NewHints() Hints {
	return Hints{
		NotColors:  make(map[Suit]struct{}),
		NotNumbers: make(map[CardNumber]struct{}),
	}
}

// Clone returns a deep copy of h.
func (h Hints) Clone() Hints {
	out := NewHints()
	if h.Color != nil {
		c := *h.Color
		out.Color = &c
	}
	if h.Number != nil {
		n := *h.Number
		out.Number = &n
	}
	for c := range h.NotColors {
		out.NotColors[c] = struct{}{}
	}
	for n := range h.NotNumbers {
		out.NotNumbers[n] = struct{}{}
	}
	out.RecentlyHinted = h.RecentlyHinted
	return out
}

// Card is a single playing card. Id is stable and opaque: it is never
// reassigned when the card moves between zones.
type Card struct {
	ID     string     `json:"id"`
	Suit   Suit       `json:"suit"`
	Number CardNumber `json:"number"`
	Hints  Hints      `json:"hints"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s%d", c.Suit, c.Number)
}

// Clone returns a deep copy of c.
func (c Card) Clone() Card {
	return Card{ID: c.ID, Suit: c.Suit, Number: c.Number, Hints: c.Hints.Clone()}
}
