package card

// RankOrder is a variant's rank ordering, weakest first. Orderings drive
// both hand-strength table construction and face-up card comparisons in
// games that open by card.
type RankOrder []Rank

// Position returns the index of r within the order, or -1 when the rank
// is not part of it (e.g. a nine in an eight-or-better low).
func (o RankOrder) Position(r Rank) int {
	for i, rank := range o {
		if rank == r {
			return i
		}
	}
	return -1
}

var (
	// StandardOrder ranks deuce low through ace high.
	StandardOrder = RankOrder{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

	// ShortDeckOrder is the standard order with fives and below removed.
	ShortDeckOrder = RankOrder{Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

	// RegularOrder ranks ace low through king high, used by ace-to-five
	// low games and badugi.
	RegularOrder = RankOrder{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	// EightOrBetterOrder covers only the ranks a qualifying low may use.
	EightOrBetterOrder = RankOrder{Ace, Two, Three, Four, Five, Six, Seven, Eight}

	// KuhnOrder is the three-card Kuhn poker order.
	KuhnOrder = RankOrder{Jack, Queen, King}
)
