package hand

import (
	"testing"

	"github.com/lox/felt/card"
)

func best(t *testing.T, ht Type, cards string) Hand {
	t.Helper()
	h, ok := ht.Best(card.MustParseCards(cards), nil)
	if !ok {
		t.Fatalf("no %s hand in %q", ht, cards)
	}
	return h
}

func TestStandardOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weaker   string
		stronger string
	}{
		{"kicker decides", "KhQd9s5c2h", "KhQd9s6c2h"},
		{"pair beats high card", "AhKdQsJc9h", "2h2d3s4c5h"},
		{"two pair beats pair", "AhAdKsQcJh", "2h2d3s3c4h"},
		{"trips beat two pair", "AhAdKsKcQh", "2h2d2s4c5h"},
		{"wheel beats trips", "AhAdAs4c5h", "As2h3d4c5s"},
		{"six high beats wheel", "As2h3d4c5s", "2h3d4c5s6h"},
		{"flush beats broadway", "AhKdQsJcTh", "2h5h7h9hJh"},
		{"full house beats flush", "AhKhQhJh9h", "2h2d2s3c3h"},
		{"quads beat full house", "AhAdAsKcKh", "2h2d2s2c3h"},
		{"straight flush beats quads", "AhAdAsAc2h", "2h3h4h5h6h"},
		{"royal flush beats king high straight flush", "9sTsJsQsKs", "ThJhQhKhAh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			weaker := best(t, StandardHigh, tt.weaker)
			stronger := best(t, StandardHigh, tt.stronger)
			if got := Compare(stronger, weaker); got <= 0 {
				t.Errorf("Compare(%s, %s) = %d, want > 0", stronger, weaker, got)
			}
		})
	}
}

func TestStandardLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  Label
	}{
		{"AhKdQsJc9h", LabelHighCard},
		{"AhAdQsJc9h", LabelOnePair},
		{"AhAdQsQc9h", LabelTwoPair},
		{"AhAdAsJc9h", LabelThreeOfAKind},
		{"As2h3d4c5s", LabelStraight},
		{"AhKhQhJh9h", LabelFlush},
		{"AhAdAsJcJh", LabelFullHouse},
		{"AhAdAsAc9h", LabelFourOfAKind},
		{"Ah2h3h4h5h", LabelStraightFlush},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			t.Parallel()
			h := best(t, StandardHigh, tt.cards)
			if h.Entry.Label != tt.want {
				t.Errorf("label of %q = %s, want %s", tt.cards, h.Entry.Label, tt.want)
			}
		})
	}
}

func TestShortDeckOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weaker   string
		stronger string
	}{
		{"nine high wheel is a straight", "AhAdAs8c9h", "Ah6s7d8c9h"},
		{"ten high beats wheel", "Ah6s7d8c9h", "6h7s8d9cTh"},
		{"flush beats full house", "6h6d6s7c7h", "6s7s8s9sJs"},
		{"quads beat flush", "6s7s8s9sJs", "6h6d6s6c7h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			weaker := best(t, ShortDeckHigh, tt.weaker)
			stronger := best(t, ShortDeckHigh, tt.stronger)
			if got := Compare(stronger, weaker); got <= 0 {
				t.Errorf("Compare(%s, %s) = %d, want > 0", stronger, weaker, got)
			}
		})
	}
}

func TestEightOrBetterQualification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cards     string
		qualifies bool
	}{
		{"wheel", "Ah2d3s4c5h", true},
		{"eight high", "8h7d6s4cAh", true},
		{"nine high", "9h7d6s4cAh", false},
		{"paired", "Ah2d2s4c5h", false},
		{"suited still qualifies", "Ah2h3h4h5h", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok := EightOrBetterLow.Best(card.MustParseCards(tt.cards), nil)
			if ok != tt.qualifies {
				t.Errorf("EightOrBetterLow.Best(%q) ok = %v, want %v", tt.cards, ok, tt.qualifies)
			}
		})
	}
}

func TestLowOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ht     Type
		weaker string
		better string
	}{
		{"smoother eight wins", EightOrBetterLow, "8h7d6s5cAh", "8h7d6s4cAh"},
		{"wheel is best eight or better", EightOrBetterLow, "8h7d6s4cAh", "Ah2d3s4c5h"},
		{"ace to five ignores straights", RegularLow, "Ah2d3s4c6h", "Ah2d3s4c5h"},
		{"no pair beats a pair", RegularLow, "AhAd2s3c4h", "KhQdJsTc9h"},
		{"deuce to seven counts straights", StandardLow, "2h3d4s5c6h", "2h3d4s5c7h"},
		{"seven five is best deuce to seven", StandardLow, "7h6d5s4c2h", "7h5d4s3c2h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			weaker := best(t, tt.ht, tt.weaker)
			better := best(t, tt.ht, tt.better)
			if got := Compare(better, weaker); got <= 0 {
				t.Errorf("Compare(%s, %s) = %d, want > 0", better, weaker, got)
			}
		})
	}
}

func TestLookupSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lookup *Lookup
		want   int
	}{
		{"standard", standardLookup, 7462},
		{"short deck", shortDeckLookup, 1404},
		{"eight or better", eightOrBetterLookup, 56},
		{"regular", regularLookup, 6175},
		{"badugi", badugiLookup, 1092},
		{"kuhn", kuhnLookup, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			distinct := map[int]bool{}
			maxIndex := -1
			for _, e := range tt.lookup.entries {
				distinct[e.Index] = true
				if e.Index > maxIndex {
					maxIndex = e.Index
				}
			}
			if len(distinct) != tt.want {
				t.Errorf("distinct entries = %d, want %d", len(distinct), tt.want)
			}
			if maxIndex != tt.want-1 {
				t.Errorf("max index = %d, want %d", maxIndex, tt.want-1)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for ht, name := range typeNames {
		got, err := ParseType(name)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", name, err)
		}
		if got != ht {
			t.Errorf("ParseType(%q) = %v, want %v", name, got, ht)
		}
	}
	if _, err := ParseType("texas"); err == nil {
		t.Error("ParseType accepted an unknown name")
	}
}
