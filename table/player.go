package table

import "github.com/lox/felt/card"

// Status is a player's standing within the hand.
type Status int

const (
	// StatusActive players still hold a live hand and chips behind.
	StatusActive Status = iota
	// StatusAllIn players hold a live hand with no chips behind.
	StatusAllIn
	// StatusFolded players are out of the hand.
	StatusFolded
)

func (s Status) String() string {
	return [...]string{"active", "all-in", "folded"}[s]
}

// Visibility tracks what the table knows about one hole card.
type Visibility int

const (
	// Concealed cards are face down and known only to their holder.
	Concealed Visibility = iota
	// Revealed cards are face up for everyone.
	Revealed
	// Mucked cards are dead and out of play.
	Mucked
)

func (v Visibility) String() string {
	return [...]string{"concealed", "revealed", "mucked"}[v]
}

// HoleCard is a dealt hole card and its visibility.
type HoleCard struct {
	Card       card.Card
	Visibility Visibility
}

// Player is one seat's chips and cards. Index 0 sits immediately left of
// the dealer and posts the small blind where one is due.
type Player struct {
	Index int
	// Stack is the chips behind, not yet wagered.
	Stack int
	// Bet is the chips in front for the current street, not yet swept
	// into the pot. Won chips also land here until pulled in.
	Bet int
	// Committed is every chip moved from the stack this hand, collected
	// or not. Refunded uncalled bets are subtracted back out.
	Committed int
	Status    Status
	HoleCards []HoleCard
}

// liveCards returns the hole cards still in play.
func (p *Player) liveCards() []card.Card {
	cards := make([]card.Card, 0, len(p.HoleCards))
	for _, hc := range p.HoleCards {
		if hc.Visibility != Mucked {
			cards = append(cards, hc.Card)
		}
	}
	return cards
}

// upCards returns the face-up hole cards.
func (p *Player) upCards() []card.Card {
	cards := make([]card.Card, 0, len(p.HoleCards))
	for _, hc := range p.HoleCards {
		if hc.Visibility == Revealed {
			cards = append(cards, hc.Card)
		}
	}
	return cards
}

// shown reports whether the whole hand is face up.
func (p *Player) shown() bool {
	if p.Status == StatusFolded || len(p.HoleCards) == 0 {
		return false
	}
	for _, hc := range p.HoleCards {
		if hc.Visibility != Revealed {
			return false
		}
	}
	return true
}

// mucked reports whether the hand has hit the muck.
func (p *Player) mucked() bool {
	for _, hc := range p.HoleCards {
		if hc.Visibility == Mucked {
			return true
		}
	}
	return false
}

func (p *Player) muckCards() {
	for i := range p.HoleCards {
		p.HoleCards[i].Visibility = Mucked
	}
}

func (p *Player) revealCards() {
	for i := range p.HoleCards {
		if p.HoleCards[i].Visibility == Concealed {
			p.HoleCards[i].Visibility = Revealed
		}
	}
}

// pay moves chips from the stack to the player's bet, flipping the player
// all in when the stack empties.
func (p *Player) pay(amount int) {
	p.Stack -= amount
	p.Bet += amount
	p.Committed += amount
	if p.Stack == 0 && p.Status == StatusActive {
		p.Status = StatusAllIn
	}
}
