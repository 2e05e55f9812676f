package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/felt/card"
	"github.com/lox/felt/table"
)

func play(t *testing.T, v table.Variant, opts ...table.Option) *table.State {
	t.Helper()
	s, err := table.New(v, opts...)
	require.NoError(t, err)
	return s
}

func checkDown(t *testing.T, s *table.State) {
	t.Helper()
	for {
		if _, ok := s.ActorIndex(); !ok {
			return
		}
		_, err := s.CheckOrCall()
		require.NoError(t, err)
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, p := range Catalog() {
		assert.False(t, seen[p.Code], "duplicate code %s", p.Code)
		seen[p.Code] = true

		v := p.Build(2, 4)
		assert.Equal(t, p.Code, v.Code, "%s builds a mismatched code", p.Name)
		assert.Equal(t, p.Name, v.Name)
		assert.NotEmpty(t, v.Streets, "%s has no streets", p.Name)
		require.NotNil(t, v.Deck, "%s has no deck", p.Name)
	}

	_, ok := Find("NT")
	assert.True(t, ok)
	_, ok = Find("XX")
	assert.False(t, ok)
}

func TestKuhnPoker(t *testing.T) {
	t.Parallel()

	deal := func(t *testing.T, stacks []int) *table.State {
		t.Helper()
		return play(t, KuhnPoker(),
			table.WithStartingStacks(stacks),
			table.WithUniformAnte(1),
			table.WithAutomations(table.AutomateAll()...),
			table.WithDeck(card.MustParseCards("KsQs")),
		)
	}

	t.Run("bet and call reach a showdown", func(t *testing.T) {
		s := deal(t, []int{2, 2})
		assert.Equal(t, []int{1, 1}, s.Stacks(), "antes leave one chip behind")
		assert.Equal(t, 2, s.TotalPot())

		_, err := s.CompleteBetOrRaiseTo(1)
		require.NoError(t, err)
		_, err = s.CheckOrCall()
		require.NoError(t, err)

		require.True(t, s.Done())
		assert.Equal(t, []int{4, 0}, s.Stacks(), "the king wins the lot")
	})

	t.Run("a bet takes the pot when the other card folds", func(t *testing.T) {
		s := deal(t, []int{2, 2})
		_, err := s.CheckOrCall()
		require.NoError(t, err)
		_, err = s.CompleteBetOrRaiseTo(1)
		require.NoError(t, err)
		_, err = s.Fold()
		require.NoError(t, err)

		require.True(t, s.Done())
		assert.Equal(t, []int{1, 3}, s.Stacks(), "the queen bluffs out the king")
	})

	t.Run("checked down cards show", func(t *testing.T) {
		s := deal(t, []int{2, 2})
		checkDown(t, s)

		require.True(t, s.Done())
		assert.Equal(t, []int{3, 1}, s.Stacks())
	})

	t.Run("one raise caps the street", func(t *testing.T) {
		s := deal(t, []int{10, 10})
		_, err := s.CompleteBetOrRaiseTo(1)
		require.NoError(t, err)

		assert.False(t, s.CanCompleteBetOrRaiseTo())
		amount, err := s.CheckOrCallAmount()
		require.NoError(t, err)
		assert.Equal(t, 1, amount)
	})
}

func TestSevenCardStudHand(t *testing.T) {
	t.Parallel()

	// Door cards 4s and 5s: the four brings it in. Player 0 pairs the
	// door on fourth street, player 1 makes nines on fifth, and the
	// buried aces win at the end.
	deck := card.MustParseCards(
		"As Ks Ad Kd 4s 5s" + "6h 4h 9c" + "6s Th 9d" + "6d Js 2c" + "6c 3c 7h")

	s := play(t, SevenCardStud(4, 8),
		table.WithStartingStacks([]int{200, 200}),
		table.WithBringIn(2),
		table.WithAutomations(table.AutomateAll()...),
		table.WithDeck(deck),
	)

	actor, ok := s.ActorIndex()
	require.True(t, ok)
	assert.Equal(t, 0, actor, "the low door card opens third street")
	_, err := s.PostBringIn()
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(4)
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)

	require.Equal(t, 1, s.StreetIndex())
	actor, _ = s.ActorIndex()
	assert.Equal(t, 0, actor, "the paired door opens fourth street")
	checkDown(t, s)

	require.True(t, s.Done())
	assert.Equal(t, []int{204, 196}, s.Stacks())
}

func TestSevenCardStudBigBetStreets(t *testing.T) {
	t.Parallel()

	deck := card.MustParseCards(
		"As Ks Ad Kd 4s 5s" + "6h 4h 9c" + "6s Th 9d" + "6d Js 2c" + "6c 3c 7h")

	s := play(t, SevenCardStud(4, 8),
		table.WithStartingStacks([]int{200, 200}),
		table.WithBringIn(2),
		table.WithAutomations(table.AutomateAll()...),
		table.WithDeck(deck),
	)

	_, err := s.PostBringIn()
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(4)
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)

	// Fourth street stays at the small bet.
	_, err = s.CheckOrCall()
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)

	// Fifth street: the open nines act first and bet big.
	require.Equal(t, 2, s.StreetIndex())
	actor, _ := s.ActorIndex()
	assert.Equal(t, 1, actor)
	min, err := s.MinCompletionBetOrRaiseTo()
	require.NoError(t, err)
	assert.Equal(t, 8, min, "fifth street takes the big bet")
	_, err = s.CompleteBetOrRaiseTo(8)
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)

	// Sixth checks through, seventh bets big again.
	_, err = s.CheckOrCall()
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)
	require.Equal(t, 4, s.StreetIndex())
	_, err = s.CompleteBetOrRaiseTo(8)
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)

	require.True(t, s.Done())
	assert.Equal(t, []int{220, 180}, s.Stacks())

	// Both hands ran to seven cards.
	for i := 0; i < 2; i++ {
		held, err := s.HoleCards(i)
		require.NoError(t, err)
		assert.Len(t, held, 7)
	}
}

func TestRazzLowHandWins(t *testing.T) {
	t.Parallel()

	// The king brings it in. Player 1's middling board opens every later
	// street, but player 0 rivers a wheel.
	deck := card.MustParseCards(
		"2c 4d 3c 5d Ks 6h" + "9s Ah 7s" + "9c 4h 8d" + "9d 5h Th" + "9h 6s Jc")

	s := play(t, Razz(4, 8),
		table.WithStartingStacks([]int{200, 200}),
		table.WithBringIn(2),
		table.WithAutomations(table.AutomateAll()...),
		table.WithDeck(deck),
	)

	actor, ok := s.ActorIndex()
	require.True(t, ok)
	assert.Equal(t, 0, actor, "the high door card brings it in")
	_, err := s.PostBringIn()
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(4)
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)

	require.Equal(t, 1, s.StreetIndex())
	actor, _ = s.ActorIndex()
	assert.Equal(t, 1, actor, "the best low board opens fourth street")
	checkDown(t, s)

	require.True(t, s.Done())
	assert.Equal(t, []int{204, 196}, s.Stacks())
}

func TestBadugiTieSplitsPot(t *testing.T) {
	t.Parallel()

	// Both players draw one and end on ace-to-four badugis.
	deck := card.MustParseCards("As Ac 2d 2h 3c 3s Kh Kd" + "9s 4h 4d" + "9c" + "9d")

	s := play(t, FixedLimitBadugi(2, 4),
		table.WithStartingStacks([]int{100, 100}),
		table.WithBlindsOrStraddles([]int{1, 2}),
		table.WithAutomations(table.AutomateAll()...),
		table.WithDeck(deck),
	)

	_, err := s.CheckOrCall()
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)

	// First draw: both players throw away their king.
	require.Equal(t, []int{0, 1}, s.PendingDrawers())
	_, err = s.StandPatOrDiscard(card.MustParseCards("Kh")...)
	require.NoError(t, err)
	_, err = s.StandPatOrDiscard(card.MustParseCards("Kd")...)
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)

	// Second draw: both pat, player 0 bets the big bet.
	_, err = s.StandPatOrDiscard()
	require.NoError(t, err)
	_, err = s.StandPatOrDiscard()
	require.NoError(t, err)
	_, err = s.CompleteBetOrRaiseTo(4)
	require.NoError(t, err)
	_, err = s.CheckOrCall()
	require.NoError(t, err)

	// Third draw: both pat again and check it down.
	_, err = s.StandPatOrDiscard()
	require.NoError(t, err)
	_, err = s.StandPatOrDiscard()
	require.NoError(t, err)
	checkDown(t, s)

	require.True(t, s.Done())
	assert.Equal(t, []int{100, 100}, s.Stacks(), "identical badugis split the pot")
}

func TestOmahaUsesExactlyTwoHoleCards(t *testing.T) {
	t.Parallel()

	// Player 0 holds the bare ace of spades on a four-spade board and
	// never makes a flush; player 1's two small spades do.
	deck := card.MustParseCards(
		"As 6s Kd 7s Qc 8d Jh 9c" + "6h 2s 5s 9s" + "6d Ts" + "6c 3c")

	s := play(t, PotLimitOmahaHoldem(2),
		table.WithStartingStacks([]int{100, 100}),
		table.WithBlindsOrStraddles([]int{1, 2}),
		table.WithAutomations(table.AutomateAll()...),
		table.WithDeck(deck),
	)
	checkDown(t, s)

	require.True(t, s.Done())
	assert.Equal(t, []int{98, 102}, s.Stacks())
}

func TestShortDeckAnteGame(t *testing.T) {
	t.Parallel()

	// Six-plus: everyone antes and the button posts the lone blind, so
	// the first seat opens the action.
	s := play(t, NoLimitShortDeckHoldem(8),
		table.WithStartingStacks([]int{200, 200, 200}),
		table.WithUniformAnte(4),
		table.WithBlindsOrStraddles([]int{0, 0, 8}),
		table.WithAutomations(table.AutomateAll()...),
	)

	assert.Equal(t, 12, s.TotalPot(), "antes are collected up front")
	assert.Equal(t, []int{0, 0, 8}, s.Bets())
	actor, ok := s.ActorIndex()
	require.True(t, ok)
	assert.Equal(t, 0, actor)

	_, err := s.Fold()
	require.NoError(t, err)
	_, err = s.Fold()
	require.NoError(t, err)

	require.True(t, s.Done())
	assert.Equal(t, []int{196, 196, 208}, s.Stacks(), "the blind takes the antes back uncalled")
}
