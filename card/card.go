// Package card defines playing cards, rank orderings and deck construction
// for the hand state machine. Cards are plain values; shuffling and dealing
// belong to the caller.
package card

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. The declaration order (clubs low, spades
// high) is the tie-break order used when comparing face-up cards.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the one-letter suit code used in card notation.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph for display.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds).
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Numeric values follow the conventional
// two-low scale; variant-specific orderings live in RankOrder.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the one-letter rank code used in card notation.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// New creates a new card.
func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card in two-letter notation, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Symbol returns the card with a suit glyph for display, e.g. "A♠".
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// IsRed returns true if the card is red.
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a single card from two-letter notation. "10" is
// accepted as an alias for "T".
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("expected one card, got %q", s)
	}
	return cards[0], nil
}

// ParseCards parses a run of cards from notation like "AsKh" or
// "As Kh 10d". Whitespace between cards is ignored and parsing is
// case-insensitive.
func ParseCards(s string) ([]Card, error) {
	cards := []Card{}
	runes := []rune(strings.ReplaceAll(s, " ", ""))

	for i := 0; i < len(runes); {
		var rank Rank
		switch {
		case runes[i] == '1' && i+1 < len(runes) && runes[i+1] == '0':
			rank = Ten
			i += 2
		default:
			r, ok := parseRank(runes[i])
			if !ok {
				return nil, fmt.Errorf("invalid rank %q in %q", string(runes[i]), s)
			}
			rank = r
			i++
		}

		if i >= len(runes) {
			return nil, fmt.Errorf("missing suit at end of %q", s)
		}
		suit, ok := parseSuit(runes[i])
		if !ok {
			return nil, fmt.Errorf("invalid suit %q in %q", string(runes[i]), s)
		}
		i++

		cards = append(cards, Card{Suit: suit, Rank: rank})
	}
	return cards, nil
}

// MustParseCards parses cards and panics on invalid input. Intended for
// tests and fixed fixtures.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(r rune) (Rank, bool) {
	switch r {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(r - '0'), true
	case 't', 'T':
		return Ten, true
	case 'j', 'J':
		return Jack, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	case 'a', 'A':
		return Ace, true
	default:
		return 0, false
	}
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	case 'h', 'H':
		return Hearts, true
	case 's', 'S':
		return Spades, true
	default:
		return 0, false
	}
}

// RanksOf returns the ranks of the given cards, in order.
func RanksOf(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	return ranks
}

// AllSuited returns true if every card shares one suit. Single cards are
// suited; empty sets are not.
func AllSuited(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// AllRainbow returns true if no two cards share a suit.
func AllRainbow(cards []Card) bool {
	var seen [4]bool
	for _, c := range cards {
		if seen[c.Suit] {
			return false
		}
		seen[c.Suit] = true
	}
	return true
}

// Join renders cards as contiguous notation, e.g. "AsKhQd".
func Join(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
