package hanabi

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// CardSpec is a (suit, number) pair used to describe a custom deck
// without hint metadata or an id, matching the "deck" setup input of
// spec §4.1.
type CardSpec struct {
	Suit   Suit       `json:"suit"`
	Number CardNumber `json:"number"`
}

// buildStandardDeck returns the full ordered deck of CardSpecs implied
// by settings, before shuffling: every active suit's per-number copies,
// suit-major, number-minor.
func buildStandardDeck(settings Settings) []CardSpec {
	var specs []CardSpec
	for _, suit := range settings.ActiveSuits {
		counts := CopyCountsFor(suit, settings)
		for _, number := range CardNumbers {
			for i := 0; i < counts[number]; i++ {
				specs = append(specs, CardSpec{Suit: suit, Number: number})
			}
		}
	}
	return specs
}

// seedFromString hashes a seed string into a stable 64-bit value with
// FNV-1a, grounded on the teacher's Deck.Shuffle: a math/rand.Rand
// seeded from a *rand.Source and driven through (*rand.Rand).Shuffle.
// The only thing this generalizes is the seed's provenance — a string
// hash instead of an int64 seed — so that callers can pass any
// human-readable shuffleSeed and still get a reproducible shuffle.
func seedFromString(seed string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return int64(h.Sum64())
}

// newShuffleRNG returns the deterministic PRNG the reference shuffle
// uses for a given shuffleSeed. An empty seed falls back to a fixed
// constant rather than wall-clock time, because the engine promises
// determinism is pinned by construction input alone.
func newShuffleRNG(shuffleSeed string) *rand.Rand {
	if shuffleSeed == "" {
		return rand.New(rand.NewSource(0))
	}
	return rand.New(rand.NewSource(seedFromString(shuffleSeed)))
}

// shuffleSpecs performs a single Fisher-Yates pass over specs using
// rng, the same one-line body as the teacher's Deck.Shuffle.
func shuffleSpecs(specs []CardSpec, rng *rand.Rand) {
	rng.Shuffle(len(specs), func(i, j int) {
		specs[i], specs[j] = specs[j], specs[i]
	})
}

// materializeDeck assigns stable, zero-padded ids to an ordered
// sequence of CardSpecs: "<suit><number>-<serial>".
func materializeDeck(specs []CardSpec) ([]Card, map[string]Card) {
	cards := make([]Card, len(specs))
	index := make(map[string]Card, len(specs))
	for i, spec := range specs {
		id := fmt.Sprintf("%s%d-%03d", spec.Suit, spec.Number, i)
		card := Card{ID: id, Suit: spec.Suit, Number: spec.Number, Hints: NewHints()}
		cards[i] = card
		index[id] = card
	}
	return cards, index
}
