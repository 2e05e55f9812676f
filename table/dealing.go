package table

import (
	"fmt"

	"github.com/lox/felt/card"
)

// holeDealee picks the player owed the most hole cards, lowest index on
// ties, so cards go around the table one at a time.
func (s *State) holeDealee() int {
	dealee := -1
	for i, pending := range s.holePending {
		if len(pending) == 0 {
			continue
		}
		if dealee < 0 || len(pending) > len(s.holePending[dealee]) {
			dealee = i
		}
	}
	return dealee
}

// BurnCard sets the top card aside before the street deals.
func (s *State) BurnCard() (*CardBurning, error) {
	if err := s.verifyPending(PhaseDealing); err != nil {
		return nil, err
	}
	if !s.burnPending {
		return nil, fmt.Errorf("%w: no card to burn", ErrIllegalAction)
	}
	op, err := s.applyCardBurning()
	if err != nil {
		return nil, err
	}
	s.pump()
	return op, nil
}

func (s *State) applyCardBurning() (*CardBurning, error) {
	c, err := s.drawCard()
	if err != nil {
		return nil, err
	}
	s.burned = append(s.burned, c)
	s.burnPending = false
	op := &CardBurning{Card: c}
	s.log(op)
	return op, nil
}

// DealHole deals the next hole card. The dealee is chosen by the state;
// stand-pat and discard decisions must all be in before draw replacements
// deal.
func (s *State) DealHole() (*HoleDealing, error) {
	if err := s.verifyPending(PhaseDealing); err != nil {
		return nil, err
	}
	if s.burnPending {
		return nil, fmt.Errorf("%w: the burn comes first", ErrIllegalAction)
	}
	if len(s.drawPending) > 0 {
		return nil, fmt.Errorf("%w: players are still to discard", ErrIllegalAction)
	}
	if s.holeDealee() < 0 {
		return nil, fmt.Errorf("%w: no hole cards to deal", ErrIllegalAction)
	}
	op, err := s.applyHoleDealing()
	if err != nil {
		return nil, err
	}
	s.pump()
	return op, nil
}

func (s *State) applyHoleDealing() (*HoleDealing, error) {
	dealee := s.holeDealee()
	c, err := s.drawCard()
	if err != nil {
		return nil, err
	}
	faceUp := s.holePending[dealee][0]
	s.holePending[dealee] = s.holePending[dealee][1:]

	visibility := Concealed
	if faceUp {
		visibility = Revealed
	}
	p := s.players[dealee]
	p.HoleCards = append(p.HoleCards, HoleCard{Card: c, Visibility: visibility})

	op := &HoleDealing{
		PlayerIndex: dealee,
		Cards:       []card.Card{c},
		Statuses:    []bool{faceUp},
	}
	s.log(op)
	return op, nil
}

// DealBoard deals the street's community cards.
func (s *State) DealBoard() (*BoardDealing, error) {
	if err := s.verifyPending(PhaseDealing); err != nil {
		return nil, err
	}
	if s.burnPending {
		return nil, fmt.Errorf("%w: the burn comes first", ErrIllegalAction)
	}
	if s.boardPending == 0 {
		return nil, fmt.Errorf("%w: no board cards to deal", ErrIllegalAction)
	}
	op, err := s.applyBoardDealing()
	if err != nil {
		return nil, err
	}
	s.pump()
	return op, nil
}

func (s *State) applyBoardDealing() (*BoardDealing, error) {
	count := s.boardPending
	cards := make([]card.Card, 0, count)
	for i := 0; i < count; i++ {
		c, err := s.drawCard()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	s.board = append(s.board, cards...)
	s.boardPending = 0
	op := &BoardDealing{Cards: cards}
	s.log(op)
	return op, nil
}

// StandPatOrDiscard records the current drawer's decision: no cards stands
// pat, otherwise the named cards leave the hand for replacement.
// Replacements are dealt face down once every player has decided.
func (s *State) StandPatOrDiscard(discards ...card.Card) (*StandingPatOrDiscarding, error) {
	if s.failure != nil {
		return nil, s.failure
	}
	if s.phase != PhaseDealing || len(s.drawPending) == 0 {
		return nil, fmt.Errorf("%w: no draw decision is pending", ErrIllegalAction)
	}
	if s.burnPending {
		return nil, fmt.Errorf("%w: the burn comes first", ErrIllegalAction)
	}
	drawer := s.drawPending[0]
	p := s.players[drawer]

	for _, c := range discards {
		if !holdsLiveCard(p, c) {
			return nil, fmt.Errorf("%w: player %d does not hold %s", ErrIllegalAction, drawer, c)
		}
	}
	if dup := firstDuplicate(discards); dup != nil {
		return nil, fmt.Errorf("%w: %s discarded twice", ErrIllegalAction, *dup)
	}

	for _, c := range discards {
		removeHoleCard(p, c)
		s.discards = append(s.discards, c)
	}
	for range discards {
		s.holePending[drawer] = append(s.holePending[drawer], false)
	}
	s.drawPending = s.drawPending[1:]

	op := &StandingPatOrDiscarding{
		PlayerIndex: drawer,
		Cards:       append([]card.Card(nil), discards...),
	}
	s.log(op)
	s.pump()
	return op, nil
}

func holdsLiveCard(p *Player, c card.Card) bool {
	for _, hc := range p.HoleCards {
		if hc.Card == c && hc.Visibility != Mucked {
			return true
		}
	}
	return false
}

func firstDuplicate(cards []card.Card) *card.Card {
	seen := map[card.Card]bool{}
	for _, c := range cards {
		if seen[c] {
			return &c
		}
		seen[c] = true
	}
	return nil
}

func removeHoleCard(p *Player, c card.Card) {
	for i, hc := range p.HoleCards {
		if hc.Card == c {
			p.HoleCards = append(p.HoleCards[:i], p.HoleCards[i+1:]...)
			return
		}
	}
}
