package card

import (
	"reflect"
	"testing"
)

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "ten alias",
			input: "10h10d",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Ten},
			},
		},
		{
			name:  "spaces between cards",
			input: "5h 4d 3c",
			expected: []Card{
				{Suit: Hearts, Rank: Five},
				{Suit: Diamonds, Rank: Four},
				{Suit: Clubs, Rank: Three},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "missing suit",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card   Card
		want   string
		symbol string
	}{
		{Card{Suit: Spades, Rank: Ace}, "As", "A♠"},
		{Card{Suit: Hearts, Rank: Ten}, "Th", "T♥"},
		{Card{Suit: Diamonds, Rank: Two}, "2d", "2♦"},
		{Card{Suit: Clubs, Rank: Queen}, "Qc", "Q♣"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.card.Symbol(); got != tt.symbol {
			t.Errorf("Symbol() = %q, want %q", got, tt.symbol)
		}
	}
}

func TestDecks(t *testing.T) {
	t.Parallel()

	if got := len(StandardDeck()); got != 52 {
		t.Errorf("StandardDeck() has %d cards, want 52", got)
	}
	if got := len(ShortDeck()); got != 36 {
		t.Errorf("ShortDeck() has %d cards, want 36", got)
	}
	for _, c := range ShortDeck() {
		if c.Rank < Six {
			t.Errorf("ShortDeck() contains %v below six", c)
		}
	}
	if got := len(KuhnDeck()); got != 3 {
		t.Errorf("KuhnDeck() has %d cards, want 3", got)
	}

	seen := map[Card]bool{}
	for _, c := range StandardDeck() {
		if seen[c] {
			t.Fatalf("StandardDeck() contains %v twice", c)
		}
		seen[c] = true
	}
}

func TestRankOrderPosition(t *testing.T) {
	t.Parallel()

	if got := RegularOrder.Position(Ace); got != 0 {
		t.Errorf("RegularOrder.Position(Ace) = %d, want 0", got)
	}
	if got := StandardOrder.Position(Ace); got != 12 {
		t.Errorf("StandardOrder.Position(Ace) = %d, want 12", got)
	}
	if got := EightOrBetterOrder.Position(Nine); got != -1 {
		t.Errorf("EightOrBetterOrder.Position(Nine) = %d, want -1", got)
	}
}

func TestSuitedAndRainbow(t *testing.T) {
	t.Parallel()

	if !AllSuited(MustParseCards("AsKsQs")) {
		t.Error("AsKsQs should be suited")
	}
	if AllSuited(MustParseCards("AsKh")) {
		t.Error("AsKh should not be suited")
	}
	if AllSuited(nil) {
		t.Error("empty set should not be suited")
	}
	if !AllRainbow(MustParseCards("AsKhQdJc")) {
		t.Error("AsKhQdJc should be rainbow")
	}
	if AllRainbow(MustParseCards("AsKs")) {
		t.Error("AsKs should not be rainbow")
	}
}
