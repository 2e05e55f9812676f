package hand

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/felt/card"
	"github.com/lox/felt/internal/randutil"
)

var oracleSuits = map[card.Suit]poker.Suit{
	card.Clubs:    poker.Club,
	card.Diamonds: poker.Diamond,
	card.Hearts:   poker.Heart,
	card.Spades:   poker.Spade,
}

func oracleCard(t *testing.T, c card.Card) poker.Card {
	t.Helper()
	rank := int(c.Rank)
	if c.Rank == card.Ace {
		rank = 1
	}
	pc, err := poker.MakeCard(oracleSuits[c.Suit], poker.Rank(rank))
	require.NoError(t, err)
	return pc
}

// TestStandardAgainstEval7 cross-checks seven card evaluation against an
// independent evaluator over seeded random deals.
func TestStandardAgainstEval7(t *testing.T) {
	t.Parallel()

	rng := randutil.New(7)
	deck := card.StandardDeck()
	for i := 0; i < 500; i++ {
		shuffled := randutil.Shuffled(rng, deck)
		a, b := shuffled[:7], shuffled[7:14]

		handA, ok := StandardHigh.Best(a, nil)
		require.True(t, ok)
		handB, ok := StandardHigh.Best(b, nil)
		require.True(t, ok)

		var oa, ob [7]poker.Card
		for j := 0; j < 7; j++ {
			oa[j] = oracleCard(t, a[j])
			ob[j] = oracleCard(t, b[j])
		}
		scoreA, scoreB := poker.Eval7(&oa), poker.Eval7(&ob)

		want := 0
		switch {
		case scoreA > scoreB:
			want = 1
		case scoreA < scoreB:
			want = -1
		}
		require.Equal(t, want, Compare(handA, handB),
			"%v vs %v disagree with the reference evaluator", card.Join(a), card.Join(b))
	}
}

// TestStandardAgainstEval5 checks that the five cards picked from a seven
// card pool score exactly as high as the best reference score over every
// five card combination.
func TestStandardAgainstEval5(t *testing.T) {
	t.Parallel()

	rng := randutil.New(11)
	deck := card.StandardDeck()
	for i := 0; i < 200; i++ {
		shuffled := randutil.Shuffled(rng, deck)
		pool := shuffled[:7]

		h, ok := StandardHigh.Best(pool, nil)
		require.True(t, ok)
		var chosen [5]poker.Card
		for j, c := range h.Cards {
			chosen[j] = oracleCard(t, c)
		}

		best := int16(-1)
		for _, combo := range combinations(7, 5) {
			var five [5]poker.Card
			for j, ci := range combo {
				five[j] = oracleCard(t, pool[ci])
			}
			if s := poker.Eval5(&five); s > best {
				best = s
			}
		}
		require.Equal(t, best, poker.Eval5(&chosen),
			"picked %v from %v", card.Join(h.Cards), card.Join(pool))
	}
}

// TestLowballAgainstEval5 checks the deuce to seven pick is the worst
// scoring five card hand under the reference evaluator.
func TestLowballAgainstEval5(t *testing.T) {
	t.Parallel()

	rng := randutil.New(13)
	deck := card.StandardDeck()
	for i := 0; i < 200; i++ {
		shuffled := randutil.Shuffled(rng, deck)
		pool := shuffled[:7]

		h, ok := StandardLow.Best(pool, nil)
		require.True(t, ok)
		var chosen [5]poker.Card
		for j, c := range h.Cards {
			chosen[j] = oracleCard(t, c)
		}

		worst := int16(-1)
		for _, combo := range combinations(7, 5) {
			var five [5]poker.Card
			for j, ci := range combo {
				five[j] = oracleCard(t, pool[ci])
			}
			if s := poker.Eval5(&five); worst < 0 || s < worst {
				worst = s
			}
		}
		require.Equal(t, worst, poker.Eval5(&chosen),
			"picked %v from %v", card.Join(h.Cards), card.Join(pool))
	}
}
