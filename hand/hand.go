package hand

import (
	"fmt"

	"github.com/lox/felt/card"
)

// Type identifies a hand ranking scheme together with the rule for picking
// cards from the hole and the board.
type Type int

const (
	// StandardHigh is the usual high ranking over any five of the
	// available cards.
	StandardHigh Type = iota
	// StandardLow inverts StandardHigh, giving deuce-to-seven lowball.
	StandardLow
	// ShortDeckHigh ranks a 36-card deck with flushes above full houses.
	ShortDeckHigh
	// EightOrBetterLow is the ace-to-five low capped at eight-high.
	// Hands that do not qualify have no value.
	EightOrBetterLow
	// RegularLow is the uncapped ace-to-five low.
	RegularLow
	// OmahaHigh uses exactly two hole cards and three board cards.
	OmahaHigh
	// OmahaEightOrBetterLow is the Omaha low half, eight-or-better.
	OmahaEightOrBetterLow
	// Badugi picks the lowest rainbow subset, aces low.
	Badugi
	// StandardBadugi plays badugi with aces high.
	StandardBadugi
	// KuhnPoker ranks the single held card, jack through king.
	KuhnPoker
)

var typeNames = map[Type]string{
	StandardHigh:          "standard-high",
	StandardLow:           "standard-low",
	ShortDeckHigh:         "short-deck-high",
	EightOrBetterLow:      "eight-or-better-low",
	RegularLow:            "regular-low",
	OmahaHigh:             "omaha-high",
	OmahaEightOrBetterLow: "omaha-eight-or-better-low",
	Badugi:                "badugi",
	StandardBadugi:        "standard-badugi",
	KuhnPoker:             "kuhn-poker",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("hand.Type(%d)", int(t))
}

// ParseType resolves a configuration name back to a hand type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown hand type %q", name)
}

// Low reports whether weaker lookup entries win under this type.
func (t Type) Low() bool {
	switch t {
	case StandardLow, EightOrBetterLow, RegularLow, OmahaEightOrBetterLow, Badugi, StandardBadugi:
		return true
	}
	return false
}

func (t Type) lookup() *Lookup {
	switch t {
	case StandardHigh, StandardLow:
		return standardLookup
	case ShortDeckHigh:
		return shortDeckLookup
	case EightOrBetterLow, OmahaEightOrBetterLow:
		return eightOrBetterLookup
	case RegularLow:
		return regularLookup
	case OmahaHigh:
		return standardLookup
	case Badugi:
		return badugiLookup
	case StandardBadugi:
		return standardBadugiLookup
	case KuhnPoker:
		return kuhnLookup
	default:
		return standardLookup
	}
}

// Order returns the rank ordering the type judges cards by. Variants use it
// to compare face-up cards when choosing a bring-in or street opener.
func (t Type) Order() card.RankOrder {
	return t.lookup().order
}

// Hand is an evaluated hand: the cards that formed it and its strength
// entry. Hands of the same type compare by entry.
type Hand struct {
	Type  Type
	Cards []card.Card
	Entry Entry
}

func (h Hand) String() string {
	return fmt.Sprintf("%s (%s)", h.Entry.Label, card.Join(h.Cards))
}

// Compare returns a positive value when a beats b, negative when b beats a
// and zero on a tie. Both hands must share a type.
func Compare(a, b Hand) int {
	if a.Entry.Index == b.Entry.Index {
		return 0
	}
	wins := a.Entry.Index > b.Entry.Index
	if a.Type.Low() {
		wins = !wins
	}
	if wins {
		return 1
	}
	return -1
}

// Best evaluates the strongest hand the type admits from the given hole and
// board cards. The second return is false when no combination forms a
// ranked hand, as with a non-qualifying eight-or-better low.
func (t Type) Best(hole, board []card.Card) (Hand, bool) {
	switch t {
	case OmahaHigh, OmahaEightOrBetterLow:
		return t.bestHoleBoard(hole, board, 2, 3)
	case Badugi, StandardBadugi:
		return t.bestSubset(hole, board)
	case KuhnPoker:
		return t.bestChoose(hole, board, 1)
	default:
		return t.bestChoose(hole, board, 5)
	}
}

// bestChoose searches every k-card combination of the pooled cards.
func (t Type) bestChoose(hole, board []card.Card, k int) (Hand, bool) {
	pool := make([]card.Card, 0, len(hole)+len(board))
	pool = append(pool, hole...)
	pool = append(pool, board...)
	if len(pool) < k {
		return Hand{}, false
	}

	lookup := t.lookup()
	var best Hand
	found := false
	for _, combo := range combinations(len(pool), k) {
		cards := make([]card.Card, k)
		for i, ci := range combo {
			cards[i] = pool[ci]
		}
		entry, ok := lookup.Entry(cards)
		if !ok {
			continue
		}
		candidate := Hand{Type: t, Cards: cards, Entry: entry}
		if !found || Compare(candidate, best) > 0 {
			best = candidate
			found = true
		}
	}
	return best, found
}

// bestHoleBoard searches combinations that take exactly holeCount cards
// from the hole and boardCount from the board.
func (t Type) bestHoleBoard(hole, board []card.Card, holeCount, boardCount int) (Hand, bool) {
	if len(hole) < holeCount || len(board) < boardCount {
		return Hand{}, false
	}

	lookup := t.lookup()
	var best Hand
	found := false
	for _, hc := range combinations(len(hole), holeCount) {
		for _, bc := range combinations(len(board), boardCount) {
			cards := make([]card.Card, 0, holeCount+boardCount)
			for _, i := range hc {
				cards = append(cards, hole[i])
			}
			for _, i := range bc {
				cards = append(cards, board[i])
			}
			entry, ok := lookup.Entry(cards)
			if !ok {
				continue
			}
			candidate := Hand{Type: t, Cards: cards, Entry: entry}
			if !found || Compare(candidate, best) > 0 {
				best = candidate
				found = true
			}
		}
	}
	return best, found
}

// bestSubset searches rainbow subsets of up to four cards. The lookup
// orders larger badugis above smaller ones, so the size preference falls
// out of the entry comparison.
func (t Type) bestSubset(hole, board []card.Card) (Hand, bool) {
	pool := make([]card.Card, 0, len(hole)+len(board))
	pool = append(pool, hole...)
	pool = append(pool, board...)

	maxSize := len(pool)
	if maxSize > 4 {
		maxSize = 4
	}

	lookup := t.lookup()
	var best Hand
	found := false
	for size := maxSize; size >= 1; size-- {
		for _, combo := range combinations(len(pool), size) {
			cards := make([]card.Card, size)
			for i, ci := range combo {
				cards[i] = pool[ci]
			}
			entry, ok := lookup.Entry(cards)
			if !ok {
				continue
			}
			candidate := Hand{Type: t, Cards: cards, Entry: entry}
			if !found || Compare(candidate, best) > 0 {
				best = candidate
				found = true
			}
		}
	}
	return best, found
}

// BestShowing ranks one to four face-up cards for streets that open by the
// best or worst partial hand showing. Low selects the ace-to-five ordering
// with pairs counting against the hand. The opening tables hold an entry
// for every rank multiset of those sizes, so the probe cannot miss.
func BestShowing(up []card.Card, low bool) (Entry, bool) {
	lookup := openingHighLookup
	if low {
		lookup = openingLowLookup
	}
	return lookup.Entry(up)
}

// CompareShowing orders two face-up boards judged by BestShowing with the
// same low flag. Positive means a opens ahead of b.
func CompareShowing(a, b Entry, low bool) int {
	if a.Index == b.Index {
		return 0
	}
	if betterShowing(a, b, low) {
		return 1
	}
	return -1
}

func betterShowing(a, b Entry, low bool) bool {
	if low {
		return a.Index < b.Index
	}
	return a.Index > b.Index
}
