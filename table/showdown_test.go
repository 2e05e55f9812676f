package table

import (
	"errors"
	"testing"

	"github.com/lox/felt/card"
	"github.com/lox/felt/hand"
)

// manualShowdown automates everything except the showdown decisions.
func manualShowdown() []Automation {
	return []Automation{
		AutomateAntePosting,
		AutomateBetCollection,
		AutomateBlindOrStraddlePosting,
		AutomateCardBurning,
		AutomateHoleDealing,
		AutomateBoardDealing,
		AutomateHandKilling,
		AutomateChipsPushing,
		AutomateChipsPulling,
	}
}

func checkDown(t *testing.T, s *State) {
	t.Helper()
	for {
		if _, ok := s.ActorIndex(); !ok {
			return
		}
		if _, err := s.CheckOrCall(); err != nil {
			t.Fatalf("CheckOrCall: %v", err)
		}
	}
}

func TestShowdownOrderAndAutoMuck(t *testing.T) {
	t.Parallel()

	// Aces to player 1, kings to player 0, queens to player 2. Nobody bets
	// so the showdown starts from the first seat.
	deck := card.MustParseCards("KcAcQcKdAdQd2s7h9c2c3sTs3h4d")

	s := mustNew(t, holdemVariant(NoLimit, 8),
		WithStartingStacks([]int{200, 200, 200}),
		WithBlindsOrStraddles([]int{4, 8}),
		WithAutomations(manualShowdown()...),
		WithDeck(deck),
	)
	checkDown(t, s)

	if s.Phase() != PhaseShowdown {
		t.Fatalf("phase = %v, want %v", s.Phase(), PhaseShowdown)
	}
	if actor, ok := s.ShowdownIndex(); !ok || actor != 0 {
		t.Fatalf("showdown opens on %d (%v), want 0", actor, ok)
	}

	// Kings show first with nothing to beat.
	op, err := s.ShowOrMuckHoleCards()
	if err != nil {
		t.Fatalf("player 0 showdown: %v", err)
	}
	if op.PlayerIndex != 0 || len(op.Cards) != 2 {
		t.Fatalf("player 0 decision = %+v, want two cards shown", op)
	}

	// Aces beat the kings and show too.
	op, err = s.ShowOrMuckHoleCards()
	if err != nil {
		t.Fatalf("player 1 showdown: %v", err)
	}
	if op.PlayerIndex != 1 || len(op.Cards) != 2 {
		t.Fatalf("player 1 decision = %+v, want two cards shown", op)
	}

	// Queens can no longer win any pot and muck unprompted.
	op, err = s.ShowOrMuckHoleCards()
	if err != nil {
		t.Fatalf("player 2 showdown: %v", err)
	}
	if op.PlayerIndex != 2 || len(op.Cards) != 0 {
		t.Fatalf("player 2 decision = %+v, want a muck", op)
	}

	if !s.Done() {
		t.Fatalf("phase = %v, want %v", s.Phase(), PhaseDone)
	}

	// The shown kings lost every pot and were killed before the payout.
	var killed []int
	for _, recorded := range s.Operations() {
		if op, ok := recorded.(*HandKilling); ok {
			killed = append(killed, op.PlayerIndex)
		}
	}
	assertInts(t, "killed hands", killed, []int{0})
	assertInts(t, "stacks", s.Stacks(), []int{192, 216, 192})
}

func TestLastLiveHandCannotMuck(t *testing.T) {
	t.Parallel()

	deck := card.MustParseCards("2cAc4d5d6s7h8hJc6dQs6hKd")

	s := mustNew(t, holdemVariant(NoLimit, 2),
		WithStartingStacks([]int{200, 200}),
		WithBlindsOrStraddles([]int{1, 2}),
		WithAutomations(manualShowdown()...),
		WithDeck(deck),
	)
	checkDown(t, s)

	show := false
	if _, err := s.ShowOrMuckHoleCards(show); err != nil {
		t.Fatalf("player 0 muck: %v", err)
	}

	// Every other hand is dead, so the pot cannot be surrendered.
	if _, err := s.ShowOrMuckHoleCards(show); !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("last hand muck error = %v, want %v", err, ErrIllegalAction)
	}
	if s.Phase() != PhaseShowdown {
		t.Fatalf("phase = %v, want %v", s.Phase(), PhaseShowdown)
	}

	op, err := s.ShowOrMuckHoleCards(true)
	if err != nil {
		t.Fatalf("player 1 show: %v", err)
	}
	if op.PlayerIndex != 1 || len(op.Cards) != 2 {
		t.Fatalf("player 1 decision = %+v, want two cards shown", op)
	}

	if !s.Done() {
		t.Fatalf("phase = %v, want %v", s.Phase(), PhaseDone)
	}
	assertInts(t, "stacks", s.Stacks(), []int{198, 202})
}

func TestHighLowSplitGivesOddChipToHigh(t *testing.T) {
	t.Parallel()

	// Player 2 makes trip jacks for the high, player 1 an eight-low for
	// the low half. The five chip pot splits three and two.
	v := holdemVariant(FixedLimit, 2)
	v.HandTypes = []hand.Type{hand.StandardHigh, hand.EightOrBetterLow}
	deck := card.MustParseCards("KdAhJhQd2hJd6s3s4c8d6dTs6hJc")

	s := mustNew(t, v,
		WithStartingStacks([]int{100, 100, 100}),
		WithBlindsOrStraddles([]int{1, 2}),
		WithAutomations(AutomateAll()...),
		WithDeck(deck),
	)

	if _, err := s.CheckOrCall(); err != nil {
		t.Fatalf("player 2 call: %v", err)
	}
	if _, err := s.Fold(); err != nil {
		t.Fatalf("player 0 fold: %v", err)
	}
	checkDown(t, s)

	if !s.Done() {
		t.Fatalf("phase = %v, want %v", s.Phase(), PhaseDone)
	}

	var pushes []*ChipsPushing
	for _, recorded := range s.Operations() {
		if op, ok := recorded.(*ChipsPushing); ok {
			pushes = append(pushes, op)
		}
	}
	if len(pushes) != 1 {
		t.Fatalf("pushed %d pots, want 1", len(pushes))
	}
	assertInts(t, "pushed amounts", pushes[0].Amounts, []int{0, 2, 3})
	assertInts(t, "stacks", s.Stacks(), []int{99, 100, 101})
}

func TestUncalledBetIsRefunded(t *testing.T) {
	t.Parallel()

	s := mustNew(t, holdemVariant(NoLimit, 2),
		WithStartingStacks([]int{100, 100}),
		WithBlindsOrStraddles([]int{1, 2}),
		WithAutomations(AutomateAll()...),
		WithDeck(card.StandardDeck()),
	)

	if _, err := s.CompleteBetOrRaiseTo(50); err != nil {
		t.Fatalf("raise to 50: %v", err)
	}
	if _, err := s.Fold(); err != nil {
		t.Fatalf("fold: %v", err)
	}

	if !s.Done() {
		t.Fatalf("phase = %v, want %v", s.Phase(), PhaseDone)
	}

	// Only the matched two chips reach the pot; the other 48 come back.
	for _, recorded := range s.Operations() {
		if op, ok := recorded.(*BetCollection); ok {
			assertInts(t, "collected bets", op.Bets, []int{2, 2})
		}
		if _, ok := recorded.(*HoleCardsShowingOrMucking); ok {
			t.Fatal("an uncontested hand has no showdown")
		}
	}
	assertInts(t, "stacks", s.Stacks(), []int{98, 102})
}

func TestDrawElections(t *testing.T) {
	t.Parallel()

	v := Variant{
		Name:             "Test draw",
		Code:             "TD",
		HandTypes:        []hand.Type{hand.StandardHigh},
		BettingStructure: FixedLimit,
		Deck:             card.StandardDeck,
		Streets: []Street{
			{HoleDeal: []bool{false, false, false, false, false}, Opening: OpeningPosition, MinBet: 2},
			{Draw: true, Opening: OpeningPosition, MinBet: 2},
		},
	}

	// Player 0 draws into a straight, player 1 stands pat on a straight
	// flush.
	deck := card.MustParseCards("2c2d3c3d4c4d5c5d6c6d7h8h")

	s := mustNew(t, v,
		WithStartingStacks([]int{200, 200}),
		WithBlindsOrStraddles([]int{1, 2}),
		WithAutomations(AutomateAll()...),
		WithDeck(deck),
	)

	if _, err := s.CheckOrCall(); err != nil {
		t.Fatalf("player 1 call: %v", err)
	}
	if _, err := s.CheckOrCall(); err != nil {
		t.Fatalf("player 0 check: %v", err)
	}

	assertInts(t, "pending drawers", s.PendingDrawers(), []int{0, 1})

	// Discards must come from the drawer's own hand, without repeats.
	if _, err := s.StandPatOrDiscard(card.MustParseCards("Ah")...); !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("foreign discard error = %v, want %v", err, ErrIllegalAction)
	}
	if _, err := s.StandPatOrDiscard(card.MustParseCards("2c2c")...); !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("repeated discard error = %v, want %v", err, ErrIllegalAction)
	}

	op, err := s.StandPatOrDiscard(card.MustParseCards("2c3c")...)
	if err != nil {
		t.Fatalf("player 0 discard: %v", err)
	}
	if op.PlayerIndex != 0 || len(op.Cards) != 2 {
		t.Fatalf("discard record = %+v, want two cards from player 0", op)
	}
	assertInts(t, "pending drawers", s.PendingDrawers(), []int{1})

	op, err = s.StandPatOrDiscard()
	if err != nil {
		t.Fatalf("player 1 stand pat: %v", err)
	}
	if op.PlayerIndex != 1 || len(op.Cards) != 0 {
		t.Fatalf("stand pat record = %+v, want no cards", op)
	}

	// The replacements land behind the kept cards, face down like the
	// cards they replace.
	held, err := s.HoleCards(0)
	if err != nil {
		t.Fatalf("HoleCards: %v", err)
	}
	var cards []card.Card
	for _, hc := range held {
		if hc.Visibility != Concealed {
			t.Fatalf("hole card %s is %v, want %v", hc.Card, hc.Visibility, Concealed)
		}
		cards = append(cards, hc.Card)
	}
	want := card.MustParseCards("4c5c6c7h8h")
	if len(cards) != len(want) {
		t.Fatalf("hole cards = %v, want %v", cards, want)
	}
	for i := range cards {
		if cards[i] != want[i] {
			t.Fatalf("hole cards = %v, want %v", cards, want)
		}
	}

	if actor, ok := s.ActorIndex(); !ok || actor != 0 {
		t.Fatalf("post-draw opener = %d (%v), want 0", actor, ok)
	}
	checkDown(t, s)

	if !s.Done() {
		t.Fatalf("phase = %v, want %v", s.Phase(), PhaseDone)
	}
	assertInts(t, "stacks", s.Stacks(), []int{198, 202})
}
