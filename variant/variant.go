// Package variant provides ready-made game definitions for the table
// package: the classic fixed-limit, pot-limit and no-limit games plus an
// HCL loader for custom ones. Constructors take bet sizes and return a
// table.Variant; forced bets such as blinds, antes and the bring-in are
// table options supplied when a hand is created.
package variant

import (
	"github.com/lox/felt/card"
	"github.com/lox/felt/hand"
	"github.com/lox/felt/table"
)

// fixedLimitCap is the conventional limit on bets and raises per street
// in fixed-limit games.
const fixedLimitCap = 4

// FixedLimitTexasHoldem plays hold'em at a fixed small and big bet, the
// big bet from the turn on, four raises per street.
func FixedLimitTexasHoldem(smallBet, bigBet int) table.Variant {
	return table.Variant{
		Name:             "Fixed-limit Texas hold'em",
		Code:             "FT",
		HandTypes:        []hand.Type{hand.StandardHigh},
		BettingStructure: table.FixedLimit,
		Deck:             card.StandardDeck,
		Streets: []table.Street{
			{HoleDeal: []bool{false, false}, Opening: table.OpeningPosition, MinBet: smallBet, MaxRaises: fixedLimitCap},
			{Burn: true, BoardDeal: 3, Opening: table.OpeningPosition, MinBet: smallBet, MaxRaises: fixedLimitCap},
			{Burn: true, BoardDeal: 1, Opening: table.OpeningPosition, MinBet: bigBet, MaxRaises: fixedLimitCap},
			{Burn: true, BoardDeal: 1, Opening: table.OpeningPosition, MinBet: bigBet, MaxRaises: fixedLimitCap},
		},
	}
}

// NoLimitTexasHoldem plays hold'em with unbounded raises; minBet is
// normally the big blind.
func NoLimitTexasHoldem(minBet int) table.Variant {
	return table.Variant{
		Name:             "No-limit Texas hold'em",
		Code:             "NT",
		HandTypes:        []hand.Type{hand.StandardHigh},
		BettingStructure: table.NoLimit,
		Deck:             card.StandardDeck,
		Streets:          holdemStreets(minBet),
	}
}

// NoLimitShortDeckHoldem plays six-plus hold'em: a 36-card deck with
// flushes beating full houses. It is an ante game in which the button
// usually posts a blind, passed as table options.
func NoLimitShortDeckHoldem(minBet int) table.Variant {
	return table.Variant{
		Name:             "No-limit short-deck hold'em",
		Code:             "NS",
		HandTypes:        []hand.Type{hand.ShortDeckHigh},
		BettingStructure: table.NoLimit,
		Deck:             card.ShortDeck,
		Streets:          holdemStreets(minBet),
	}
}

// PotLimitOmahaHoldem deals four hole cards and ranks hands from exactly
// two of them; raises are capped at the pot.
func PotLimitOmahaHoldem(minBet int) table.Variant {
	return table.Variant{
		Name:             "Pot-limit Omaha hold'em",
		Code:             "PO",
		HandTypes:        []hand.Type{hand.OmahaHigh},
		BettingStructure: table.PotLimit,
		Deck:             card.StandardDeck,
		Streets: []table.Street{
			{HoleDeal: []bool{false, false, false, false}, Opening: table.OpeningPosition, MinBet: minBet},
			{Burn: true, BoardDeal: 3, Opening: table.OpeningPosition, MinBet: minBet},
			{Burn: true, BoardDeal: 1, Opening: table.OpeningPosition, MinBet: minBet},
			{Burn: true, BoardDeal: 1, Opening: table.OpeningPosition, MinBet: minBet},
		},
	}
}

// FixedLimitOmahaHoldemHiLo splits each pot between the Omaha high and
// the eight-or-better low when one qualifies.
func FixedLimitOmahaHoldemHiLo(smallBet, bigBet int) table.Variant {
	return table.Variant{
		Name:             "Fixed-limit Omaha hold'em eight or better",
		Code:             "FO/8",
		HandTypes:        []hand.Type{hand.OmahaHigh, hand.OmahaEightOrBetterLow},
		BettingStructure: table.FixedLimit,
		Deck:             card.StandardDeck,
		Streets: []table.Street{
			{HoleDeal: []bool{false, false, false, false}, Opening: table.OpeningPosition, MinBet: smallBet, MaxRaises: fixedLimitCap},
			{Burn: true, BoardDeal: 3, Opening: table.OpeningPosition, MinBet: smallBet, MaxRaises: fixedLimitCap},
			{Burn: true, BoardDeal: 1, Opening: table.OpeningPosition, MinBet: bigBet, MaxRaises: fixedLimitCap},
			{Burn: true, BoardDeal: 1, Opening: table.OpeningPosition, MinBet: bigBet, MaxRaises: fixedLimitCap},
		},
	}
}

// SevenCardStud deals two down and one up, opens third street on the
// lowest card showing with a bring-in, and switches to the big bet from
// fifth street.
func SevenCardStud(smallBet, bigBet int) table.Variant {
	return table.Variant{
		Name:             "Fixed-limit seven card stud",
		Code:             "F7S",
		HandTypes:        []hand.Type{hand.StandardHigh},
		BettingStructure: table.FixedLimit,
		Deck:             card.StandardDeck,
		Streets:          studStreets(table.OpeningLowCard, table.OpeningHighHand, smallBet, bigBet),
	}
}

// Razz is seven card stud for the ace-to-five low: the highest card
// brings it in and the best low board opens later streets.
func Razz(smallBet, bigBet int) table.Variant {
	return table.Variant{
		Name:             "Fixed-limit razz",
		Code:             "FR",
		HandTypes:        []hand.Type{hand.RegularLow},
		BettingStructure: table.FixedLimit,
		Deck:             card.StandardDeck,
		Streets:          studStreets(table.OpeningHighCard, table.OpeningLowHand, smallBet, bigBet),
	}
}

// FixedLimitDeuceToSevenLowballTripleDraw deals five cards and three
// draws, ranked by the deuce-to-seven low.
func FixedLimitDeuceToSevenLowballTripleDraw(smallBet, bigBet int) table.Variant {
	return table.Variant{
		Name:             "Fixed-limit deuce-to-seven lowball triple draw",
		Code:             "F2L3D",
		HandTypes:        []hand.Type{hand.StandardLow},
		BettingStructure: table.FixedLimit,
		Deck:             card.StandardDeck,
		Streets:          tripleDrawStreets(5, smallBet, bigBet),
	}
}

// FixedLimitBadugi deals four cards and three draws, ranked by the
// lowest rainbow hand.
func FixedLimitBadugi(smallBet, bigBet int) table.Variant {
	return table.Variant{
		Name:             "Fixed-limit badugi",
		Code:             "FB",
		HandTypes:        []hand.Type{hand.Badugi},
		BettingStructure: table.FixedLimit,
		Deck:             card.StandardDeck,
		Streets:          tripleDrawStreets(4, smallBet, bigBet),
	}
}

// KuhnPoker is the three-card toy game: one card each, a single betting
// round of one chip with one raise. Play it with a uniform ante of one.
func KuhnPoker() table.Variant {
	return table.Variant{
		Name:             "Kuhn poker",
		Code:             "KP",
		HandTypes:        []hand.Type{hand.KuhnPoker},
		BettingStructure: table.FixedLimit,
		Deck:             card.KuhnDeck,
		Streets: []table.Street{
			{HoleDeal: []bool{false}, Opening: table.OpeningPosition, MinBet: 1, MaxRaises: 1},
		},
	}
}

func holdemStreets(minBet int) []table.Street {
	return []table.Street{
		{HoleDeal: []bool{false, false}, Opening: table.OpeningPosition, MinBet: minBet},
		{Burn: true, BoardDeal: 3, Opening: table.OpeningPosition, MinBet: minBet},
		{Burn: true, BoardDeal: 1, Opening: table.OpeningPosition, MinBet: minBet},
		{Burn: true, BoardDeal: 1, Opening: table.OpeningPosition, MinBet: minBet},
	}
}

func studStreets(third, later table.Opening, smallBet, bigBet int) []table.Street {
	return []table.Street{
		{HoleDeal: []bool{false, false, true}, Opening: third, MinBet: smallBet, MaxRaises: fixedLimitCap},
		{Burn: true, HoleDeal: []bool{true}, Opening: later, MinBet: smallBet, MaxRaises: fixedLimitCap},
		{Burn: true, HoleDeal: []bool{true}, Opening: later, MinBet: bigBet, MaxRaises: fixedLimitCap},
		{Burn: true, HoleDeal: []bool{true}, Opening: later, MinBet: bigBet, MaxRaises: fixedLimitCap},
		{Burn: true, HoleDeal: []bool{false}, Opening: later, MinBet: bigBet, MaxRaises: fixedLimitCap},
	}
}

func tripleDrawStreets(holeCards, smallBet, bigBet int) []table.Street {
	first := table.Street{
		HoleDeal: make([]bool, holeCards),
		Opening:  table.OpeningPosition,
		MinBet:   smallBet, MaxRaises: fixedLimitCap,
	}
	return []table.Street{
		first,
		{Burn: true, Draw: true, Opening: table.OpeningPosition, MinBet: smallBet, MaxRaises: fixedLimitCap},
		{Burn: true, Draw: true, Opening: table.OpeningPosition, MinBet: bigBet, MaxRaises: fixedLimitCap},
		{Burn: true, Draw: true, Opening: table.OpeningPosition, MinBet: bigBet, MaxRaises: fixedLimitCap},
	}
}

// Preset couples a variant code with its constructor. Build takes the
// small and big bet; constructors that need only one size use the small
// bet and ignore the other.
type Preset struct {
	Code  string
	Name  string
	Build func(smallBet, bigBet int) table.Variant
}

// Catalog lists the built-in variants in display order.
func Catalog() []Preset {
	return []Preset{
		{"FT", "Fixed-limit Texas hold'em", FixedLimitTexasHoldem},
		{"NT", "No-limit Texas hold'em", ignoreBig(NoLimitTexasHoldem)},
		{"NS", "No-limit short-deck hold'em", ignoreBig(NoLimitShortDeckHoldem)},
		{"PO", "Pot-limit Omaha hold'em", ignoreBig(PotLimitOmahaHoldem)},
		{"FO/8", "Fixed-limit Omaha hold'em eight or better", FixedLimitOmahaHoldemHiLo},
		{"F7S", "Fixed-limit seven card stud", SevenCardStud},
		{"FR", "Fixed-limit razz", Razz},
		{"F2L3D", "Fixed-limit deuce-to-seven lowball triple draw", FixedLimitDeuceToSevenLowballTripleDraw},
		{"FB", "Fixed-limit badugi", FixedLimitBadugi},
		{"KP", "Kuhn poker", func(int, int) table.Variant { return KuhnPoker() }},
	}
}

// Find returns the preset with the given code.
func Find(code string) (Preset, bool) {
	for _, p := range Catalog() {
		if p.Code == code {
			return p, true
		}
	}
	return Preset{}, false
}

func ignoreBig(build func(int) table.Variant) func(int, int) table.Variant {
	return func(smallBet, _ int) table.Variant {
		return build(smallBet)
	}
}
