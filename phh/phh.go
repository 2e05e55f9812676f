// Package phh renders finished hands in PHH format, a TOML document with
// one standardised action string per game event.
package phh

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lox/felt/card"
	"github.com/lox/felt/table"
)

// HandHistory is a single hand encoded in PHH form. Fixed-limit games
// carry small_bet and big_bet; the other structures carry min_bet.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles,omitempty"`
	BringIn           int      `toml:"bring_in,omitempty"`
	SmallBet          int      `toml:"small_bet,omitempty"`
	BigBet            int      `toml:"big_bet,omitempty"`
	MinBet            int      `toml:"min_bet,omitempty"`
	StartingStacks    []int    `toml:"starting_stacks"`
	Actions           []string `toml:"actions"`
	HandID            string   `toml:"hand"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Table             string   `toml:"table,omitempty"`
	Players           []string `toml:"players,omitempty"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`
}

// Meta carries the table context a State does not know about.
type Meta struct {
	// HandID names the hand. Left empty, FromState assigns a random UUID.
	HandID string
	// Table is a table name for the header, if any.
	Table string
	// Players holds display names by seat. Optional; when set it must
	// cover every seat.
	Players []string
	// Played is when the hand was dealt. Left zero, the date fields are
	// omitted.
	Played time.Time
}

// FromState renders a hand to its history. The hand need not be finished;
// finishing stacks and winnings are filled in only once it is.
func FromState(st *table.State, meta Meta) (*HandHistory, error) {
	if st == nil {
		return nil, fmt.Errorf("phh: nil state")
	}
	if len(meta.Players) > 0 && len(meta.Players) != st.PlayerCount() {
		return nil, fmt.Errorf("phh: %d player names for %d seats", len(meta.Players), st.PlayerCount())
	}

	v := st.Variant()
	h := &HandHistory{
		Variant:        v.Code,
		Antes:          st.Antes(),
		BringIn:        st.BringIn(),
		StartingStacks: st.StartingStacks(),
		Actions:        Actions(st),
		HandID:         meta.HandID,
		SeatCount:      st.PlayerCount(),
		Table:          meta.Table,
		Players:        meta.Players,
	}
	if h.HandID == "" {
		h.HandID = uuid.NewString()
	}
	if anyPositive(st.BlindsOrStraddles()) {
		h.BlindsOrStraddles = st.BlindsOrStraddles()
	}
	small, big := betSizes(v.Streets)
	if v.BettingStructure == table.FixedLimit {
		h.SmallBet, h.BigBet = small, big
	} else {
		h.MinBet = small
	}
	if st.Done() {
		h.FinishingStacks = st.Stacks()
		h.Winnings = winnings(st)
	}
	if !meta.Played.IsZero() {
		year, month, day := meta.Played.Date()
		h.Year, h.Month, h.Day = year, int(month), day
	}
	return h, nil
}

// Actions renders the operations log as PHH action strings. Bookkeeping
// operations with no PHH spelling (ante and blind posts, burns, bet
// collection, payouts) are skipped; the header fields carry them.
func Actions(st *table.State) []string {
	var actions []string
	for _, op := range st.Operations() {
		if s, ok := FormatOperation(op); ok {
			actions = append(actions, s)
		}
	}
	return actions
}

// FormatOperation spells one operation as a PHH action string. The second
// return is false for operations the format does not record.
func FormatOperation(op table.Operation) (string, bool) {
	switch o := op.(type) {
	case *table.HoleDealing:
		return fmt.Sprintf("d dh p%d %s", o.PlayerIndex+1, card.Join(o.Cards)), true
	case *table.BoardDealing:
		return "d db " + card.Join(o.Cards), true
	case *table.StandingPatOrDiscarding:
		if len(o.Cards) == 0 {
			return fmt.Sprintf("p%d sd", o.PlayerIndex+1), true
		}
		return fmt.Sprintf("p%d sd %s", o.PlayerIndex+1, card.Join(o.Cards)), true
	case *table.BringInPosting:
		return fmt.Sprintf("p%d pb", o.PlayerIndex+1), true
	case *table.Folding:
		return fmt.Sprintf("p%d f", o.PlayerIndex+1), true
	case *table.CheckingOrCalling:
		return fmt.Sprintf("p%d cc", o.PlayerIndex+1), true
	case *table.CompletionBettingOrRaisingTo:
		return fmt.Sprintf("p%d cbr %d", o.PlayerIndex+1, o.Amount), true
	case *table.HoleCardsShowingOrMucking:
		if len(o.Cards) == 0 {
			return fmt.Sprintf("p%d sm", o.PlayerIndex+1), true
		}
		return fmt.Sprintf("p%d sm %s", o.PlayerIndex+1, card.Join(o.Cards)), true
	}
	return "", false
}

func winnings(st *table.State) []int {
	won := make([]int, st.PlayerCount())
	for _, op := range st.Operations() {
		if push, ok := op.(*table.ChipsPushing); ok {
			for i, amount := range push.Amounts {
				won[i] += amount
			}
		}
	}
	return won
}

func betSizes(streets []table.Street) (small, big int) {
	small = streets[0].MinBet
	for _, street := range streets {
		if street.MinBet > big {
			big = street.MinBet
		}
	}
	return small, big
}

func anyPositive(ns []int) bool {
	for _, n := range ns {
		if n > 0 {
			return true
		}
	}
	return false
}
