// Package hand ranks poker hands. Strength tables are built once at init by
// hashing rank multisets into prime products, so evaluating a hand is a map
// probe keyed on (rank product, suitedness). Separate tables cover standard
// high, short-deck, ace-to-five low, eight-or-better low, badugi and Kuhn
// poker orderings.
package hand

import (
	"slices"

	"github.com/lox/felt/card"
)

// Label classifies a hand within its lookup.
type Label int

const (
	LabelHighCard Label = iota
	LabelOnePair
	LabelTwoPair
	LabelThreeOfAKind
	LabelStraight
	LabelFlush
	LabelFullHouse
	LabelFourOfAKind
	LabelStraightFlush
)

// String returns the display name of the label.
func (l Label) String() string {
	switch l {
	case LabelHighCard:
		return "High card"
	case LabelOnePair:
		return "One pair"
	case LabelTwoPair:
		return "Two pair"
	case LabelThreeOfAKind:
		return "Three of a kind"
	case LabelStraight:
		return "Straight"
	case LabelFlush:
		return "Flush"
	case LabelFullHouse:
		return "Full house"
	case LabelFourOfAKind:
		return "Four of a kind"
	case LabelStraightFlush:
		return "Straight flush"
	default:
		return "Unknown"
	}
}

// Entry is a hand's position within one lookup. A greater index is a
// stronger hand under that lookup's ordering; low game types invert the
// comparison, not the index.
type Entry struct {
	Index int
	Label Label
}

type lookupKey struct {
	product uint64
	suited  bool
}

// Lookup maps rank products to strength entries under one rank ordering.
type Lookup struct {
	order   card.RankOrder
	entries map[lookupKey]Entry
	rainbow bool
}

// Order returns the rank ordering the lookup was built over.
func (l *Lookup) Order() card.RankOrder {
	return l.order
}

// Entry returns the strength entry for the given cards, or false when the
// cards do not form a ranked hand under this lookup (wrong count, paired
// ranks where none are allowed, non-qualifying low, or a non-rainbow
// badugi).
func (l *Lookup) Entry(cards []card.Card) (Entry, bool) {
	if len(cards) == 0 {
		return Entry{}, false
	}
	if l.rainbow && !card.AllRainbow(cards) {
		return Entry{}, false
	}
	key := lookupKey{product: rankProduct(cards), suited: card.AllSuited(cards)}
	e, ok := l.entries[key]
	return e, ok
}

// rankPrime maps each rank to a distinct prime. Products of up to five
// primes stay far below the uint64 ceiling, so a product identifies a rank
// multiset exactly.
func rankPrime(r card.Rank) uint64 {
	switch r {
	case card.Ace:
		return 2
	case card.Two:
		return 3
	case card.Three:
		return 5
	case card.Four:
		return 7
	case card.Five:
		return 11
	case card.Six:
		return 13
	case card.Seven:
		return 17
	case card.Eight:
		return 19
	case card.Nine:
		return 23
	case card.Ten:
		return 29
	case card.Jack:
		return 31
	case card.Queen:
		return 37
	case card.King:
		return 41
	default:
		return 1
	}
}

func rankProduct(cards []card.Card) uint64 {
	product := uint64(1)
	for _, c := range cards {
		product *= rankPrime(c.Rank)
	}
	return product
}

func ranksProduct(ranks []card.Rank) uint64 {
	product := uint64(1)
	for _, r := range ranks {
		product *= rankPrime(r)
	}
	return product
}

func pow(base uint64, exp int) uint64 {
	out := uint64(1)
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

// multiplicityCount describes one part of a rank multiset: count ranks
// each repeated multiplicity times. A full house is {3,1},{2,1}; one pair
// is {2,1},{1,3}.
type multiplicityCount struct {
	multiplicity int
	count        int
}

// multisetHashes returns the prime products of every multiset matching the
// shape, strongest hand first. Parts must be ordered by multiplicity
// descending; samples are drawn high rank first so the emitted order is the
// hand-strength order.
func multisetHashes(order card.RankOrder, parts []multiplicityCount) []uint64 {
	if len(parts) == 0 {
		return []uint64{1}
	}
	part := parts[0]
	rest := parts[1:]

	desc := make([]card.Rank, len(order))
	for i, r := range order {
		desc[len(order)-1-i] = r
	}

	var out []uint64
	for _, combo := range combinations(len(desc), part.count) {
		sample := make([]card.Rank, part.count)
		for i, ci := range combo {
			sample[i] = desc[ci]
		}
		head := pow(ranksProduct(sample), part.multiplicity)

		var remaining card.RankOrder
		for _, r := range order {
			if !containsRank(sample, r) {
				remaining = append(remaining, r)
			}
		}
		for _, tail := range multisetHashes(remaining, rest) {
			out = append(out, head*tail)
		}
	}
	return out
}

func containsRank(ranks []card.Rank, r card.Rank) bool {
	for _, x := range ranks {
		if x == r {
			return true
		}
	}
	return false
}

// combinations returns all k-subsets of [0, n) in lexicographic order.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	for {
		out = append(out, append([]int(nil), idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

var (
	offsuitOnly = []bool{false}
	suitedOnly  = []bool{true}
	anySuits    = []bool{false, true}
)

type lookupBuilder struct {
	entries map[lookupKey]Entry
	next    int
}

func newLookupBuilder() *lookupBuilder {
	return &lookupBuilder{entries: map[lookupKey]Entry{}}
}

func (b *lookupBuilder) add(product uint64, suitednesses []bool, label Label) {
	e := Entry{Index: b.next, Label: label}
	b.next++
	for _, suited := range suitednesses {
		b.entries[lookupKey{product: product, suited: suited}] = e
	}
}

// addMultisets registers every hand of the given multiset shape, weakest
// first so indexes ascend with strength.
func (b *lookupBuilder) addMultisets(order card.RankOrder, parts []multiplicityCount, suitednesses []bool, label Label) {
	hashes := multisetHashes(order, parts)
	for i := len(hashes) - 1; i >= 0; i-- {
		b.add(hashes[i], suitednesses, label)
	}
}

// addStraights registers the wheel first, then each straight ascending.
// Straight keys overwrite the high-card (or flush) entries sharing the
// same rank product, promoting them.
func (b *lookupBuilder) addStraights(order card.RankOrder, count int, suitednesses []bool, label Label) {
	wheel := make([]card.Rank, 0, count)
	wheel = append(wheel, order[len(order)-1])
	wheel = append(wheel, order[:count-1]...)
	b.add(ranksProduct(wheel), suitednesses, label)

	for i := 0; i+count <= len(order); i++ {
		b.add(ranksProduct(order[i:i+count]), suitednesses, label)
	}
}

// build re-indexes the surviving entries contiguously. Entries clobbered by
// later straight promotion leave gaps that are squeezed out here.
func (b *lookupBuilder) build() map[lookupKey]Entry {
	present := map[int]bool{}
	for _, e := range b.entries {
		present[e.Index] = true
	}
	sorted := make([]int, 0, len(present))
	for i := range present {
		sorted = append(sorted, i)
	}
	slices.Sort(sorted)

	remap := make(map[int]int, len(sorted))
	for i, old := range sorted {
		remap[old] = i
	}
	for k, e := range b.entries {
		e.Index = remap[e.Index]
		b.entries[k] = e
	}
	return b.entries
}

var standardLookup = func() *Lookup {
	b := newLookupBuilder()
	b.addMultisets(card.StandardOrder, []multiplicityCount{{1, 5}}, offsuitOnly, LabelHighCard)
	b.addMultisets(card.StandardOrder, []multiplicityCount{{2, 1}, {1, 3}}, offsuitOnly, LabelOnePair)
	b.addMultisets(card.StandardOrder, []multiplicityCount{{2, 2}, {1, 1}}, offsuitOnly, LabelTwoPair)
	b.addMultisets(card.StandardOrder, []multiplicityCount{{3, 1}, {1, 2}}, offsuitOnly, LabelThreeOfAKind)
	b.addStraights(card.StandardOrder, 5, offsuitOnly, LabelStraight)
	b.addMultisets(card.StandardOrder, []multiplicityCount{{1, 5}}, suitedOnly, LabelFlush)
	b.addMultisets(card.StandardOrder, []multiplicityCount{{3, 1}, {2, 1}}, offsuitOnly, LabelFullHouse)
	b.addMultisets(card.StandardOrder, []multiplicityCount{{4, 1}, {1, 1}}, offsuitOnly, LabelFourOfAKind)
	b.addStraights(card.StandardOrder, 5, suitedOnly, LabelStraightFlush)
	return &Lookup{order: card.StandardOrder, entries: b.build()}
}()

// Short-deck ranking promotes the flush above the full house.
var shortDeckLookup = func() *Lookup {
	b := newLookupBuilder()
	b.addMultisets(card.ShortDeckOrder, []multiplicityCount{{1, 5}}, offsuitOnly, LabelHighCard)
	b.addMultisets(card.ShortDeckOrder, []multiplicityCount{{2, 1}, {1, 3}}, offsuitOnly, LabelOnePair)
	b.addMultisets(card.ShortDeckOrder, []multiplicityCount{{2, 2}, {1, 1}}, offsuitOnly, LabelTwoPair)
	b.addMultisets(card.ShortDeckOrder, []multiplicityCount{{3, 1}, {1, 2}}, offsuitOnly, LabelThreeOfAKind)
	b.addStraights(card.ShortDeckOrder, 5, offsuitOnly, LabelStraight)
	b.addMultisets(card.ShortDeckOrder, []multiplicityCount{{3, 1}, {2, 1}}, offsuitOnly, LabelFullHouse)
	b.addMultisets(card.ShortDeckOrder, []multiplicityCount{{1, 5}}, suitedOnly, LabelFlush)
	b.addMultisets(card.ShortDeckOrder, []multiplicityCount{{4, 1}, {1, 1}}, offsuitOnly, LabelFourOfAKind)
	b.addStraights(card.ShortDeckOrder, 5, suitedOnly, LabelStraightFlush)
	return &Lookup{order: card.ShortDeckOrder, entries: b.build()}
}()

// Eight-or-better lows rank only unpaired hands of eights and below, flushes
// and straights notwithstanding.
var eightOrBetterLookup = func() *Lookup {
	b := newLookupBuilder()
	b.addMultisets(card.EightOrBetterOrder, []multiplicityCount{{1, 5}}, anySuits, LabelHighCard)
	return &Lookup{order: card.EightOrBetterOrder, entries: b.build()}
}()

// Ace-to-five lows ignore straights and flushes but pairs still count.
var regularLookup = func() *Lookup {
	b := newLookupBuilder()
	b.addMultisets(card.RegularOrder, []multiplicityCount{{1, 5}}, anySuits, LabelHighCard)
	b.addMultisets(card.RegularOrder, []multiplicityCount{{2, 1}, {1, 3}}, offsuitOnly, LabelOnePair)
	b.addMultisets(card.RegularOrder, []multiplicityCount{{2, 2}, {1, 1}}, offsuitOnly, LabelTwoPair)
	b.addMultisets(card.RegularOrder, []multiplicityCount{{3, 1}, {1, 2}}, offsuitOnly, LabelThreeOfAKind)
	b.addMultisets(card.RegularOrder, []multiplicityCount{{3, 1}, {2, 1}}, offsuitOnly, LabelFullHouse)
	b.addMultisets(card.RegularOrder, []multiplicityCount{{4, 1}, {1, 1}}, offsuitOnly, LabelFourOfAKind)
	return &Lookup{order: card.RegularOrder, entries: b.build()}
}()

func badugiEntries(order card.RankOrder) map[lookupKey]Entry {
	b := newLookupBuilder()
	for i := 4; i >= 1; i-- {
		b.addMultisets(order, []multiplicityCount{{1, i}}, []bool{i == 1}, LabelHighCard)
	}
	return b.build()
}

// Badugi hands are rainbow subsets; a four-card badugi always beats three,
// three beats two, and so on. Ace plays low.
var badugiLookup = &Lookup{order: card.RegularOrder, entries: badugiEntries(card.RegularOrder), rainbow: true}

// Standard badugi is the same game with aces high.
var standardBadugiLookup = &Lookup{order: card.StandardOrder, entries: badugiEntries(card.StandardOrder), rainbow: true}

var kuhnLookup = func() *Lookup {
	b := newLookupBuilder()
	b.addMultisets(card.KuhnOrder, []multiplicityCount{{1, 1}}, suitedOnly, LabelHighCard)
	return &Lookup{order: card.KuhnOrder, entries: b.build()}
}()

// Opening lookups rank partial stud boards of one to four face-up cards so
// streets that open by best (or worst) hand showing can pick an opener.
// Boards of differing sizes are never compared against each other.
func openingEntries(order card.RankOrder) map[lookupKey]Entry {
	b := newLookupBuilder()
	b.addMultisets(order, []multiplicityCount{{1, 1}}, anySuits, LabelHighCard)
	b.addMultisets(order, []multiplicityCount{{1, 2}}, anySuits, LabelHighCard)
	b.addMultisets(order, []multiplicityCount{{2, 1}}, anySuits, LabelOnePair)
	b.addMultisets(order, []multiplicityCount{{1, 3}}, anySuits, LabelHighCard)
	b.addMultisets(order, []multiplicityCount{{2, 1}, {1, 1}}, anySuits, LabelOnePair)
	b.addMultisets(order, []multiplicityCount{{3, 1}}, anySuits, LabelThreeOfAKind)
	b.addMultisets(order, []multiplicityCount{{1, 4}}, anySuits, LabelHighCard)
	b.addMultisets(order, []multiplicityCount{{2, 1}, {1, 2}}, anySuits, LabelOnePair)
	b.addMultisets(order, []multiplicityCount{{2, 2}}, anySuits, LabelTwoPair)
	b.addMultisets(order, []multiplicityCount{{3, 1}, {1, 1}}, anySuits, LabelThreeOfAKind)
	b.addMultisets(order, []multiplicityCount{{4, 1}}, anySuits, LabelFourOfAKind)
	return b.build()
}

var openingHighLookup = &Lookup{order: card.StandardOrder, entries: openingEntries(card.StandardOrder)}

var openingLowLookup = &Lookup{order: card.RegularOrder, entries: openingEntries(card.RegularOrder)}
