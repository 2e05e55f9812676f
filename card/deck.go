package card

// StandardDeck returns all 52 cards, unshuffled.
func StandardDeck() []Card {
	cards := make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// ShortDeck returns the 36-card short deck (sixes and above), unshuffled.
func ShortDeck() []Card {
	cards := make([]Card, 0, 36)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Six; rank <= Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// KuhnDeck returns the three-card Kuhn poker deck.
func KuhnDeck() []Card {
	return []Card{
		{Suit: Spades, Rank: Jack},
		{Suit: Spades, Rank: Queen},
		{Suit: Spades, Rank: King},
	}
}
