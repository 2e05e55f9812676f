package table

import "fmt"

// verifyActor confirms the player opening an operation is the one the
// betting round is waiting on.
func (s *State) verifyActor() (int, error) {
	if s.failure != nil {
		return 0, s.failure
	}
	if s.phase != PhaseBetting || len(s.actorQueue) == 0 {
		return 0, fmt.Errorf("%w: no betting decision is pending", ErrIllegalAction)
	}
	return s.actorQueue[0], nil
}

// popActor removes the current actor from the queue.
func (s *State) popActor() {
	s.actorQueue = s.actorQueue[1:]
}

// PostBringIn posts the forced bring-in that opens the street.
func (s *State) PostBringIn() (*BringInPosting, error) {
	actor, err := s.verifyActor()
	if err != nil {
		return nil, err
	}
	if s.bringInPoster != actor || s.bringInPosted {
		return nil, fmt.Errorf("%w: no bring-in is due", ErrIllegalAction)
	}

	p := s.players[actor]
	amount := s.bringIn
	if amount > p.Stack {
		amount = p.Stack
	}
	p.pay(amount)
	s.bringInPosted = true

	// The bring-in is forced, so the poster keeps the option to raise
	// when the action returns.
	s.actorQueue = append(s.actorQueue[1:], actor)

	op := &BringInPosting{PlayerIndex: actor, Amount: amount}
	s.log(op)
	s.pump()
	return op, nil
}

// CanPostBringIn reports whether a bring-in is due from the current actor.
func (s *State) CanPostBringIn() bool {
	actor, err := s.verifyActor()
	return err == nil && s.bringInPoster == actor && !s.bringInPosted
}

// bringInDue reports whether the opener still owes a forced open. It
// blocks checking and folding; the opener may post the bring-in or
// complete to a full bet instead.
func (s *State) bringInDue(actor int) bool {
	return s.bringInPoster == actor && !s.bringInPosted
}

// VerifyFold reports whether the current actor may fold. Folding is only
// legal when there is a bet to fold to.
func (s *State) VerifyFold() error {
	actor, err := s.verifyActor()
	if err != nil {
		return err
	}
	if s.bringInDue(actor) {
		return fmt.Errorf("%w: the bring-in must be posted first", ErrIllegalAction)
	}
	if s.players[actor].Bet >= s.highBet() {
		return fmt.Errorf("%w: no bet to fold to", ErrIllegalAction)
	}
	return nil
}

// CanFold reports whether folding is legal for the current actor.
func (s *State) CanFold() bool {
	return s.VerifyFold() == nil
}

// Fold throws the current actor's hand away.
func (s *State) Fold() (*Folding, error) {
	if err := s.VerifyFold(); err != nil {
		return nil, err
	}
	actor := s.actorQueue[0]
	p := s.players[actor]
	p.Status = StatusFolded
	p.muckCards()
	s.popActor()
	if s.lastAggressor == actor {
		s.lastAggressor = -1
	}

	// With one player left the hand is over; the round ends regardless
	// of who was still to act.
	if s.unfoldedCount() <= 1 {
		s.actorQueue = nil
	}

	op := &Folding{PlayerIndex: actor}
	s.log(op)
	s.pump()
	return op, nil
}

// CheckOrCallAmount returns the chips a check or call would put in: zero
// for a check, up to the actor's whole stack for a short call.
func (s *State) CheckOrCallAmount() (int, error) {
	actor, err := s.verifyActor()
	if err != nil {
		return 0, err
	}
	if s.bringInDue(actor) {
		return 0, fmt.Errorf("%w: the bring-in must be posted first", ErrIllegalAction)
	}
	p := s.players[actor]
	amount := s.highBet() - p.Bet
	if amount > p.Stack {
		amount = p.Stack
	}
	return amount, nil
}

// CanCheckOrCall reports whether checking or calling is legal for the
// current actor.
func (s *State) CanCheckOrCall() bool {
	_, err := s.CheckOrCallAmount()
	return err == nil
}

// CheckOrCall checks when nothing is owed, otherwise calls for as much of
// the outstanding amount as the actor's stack covers.
func (s *State) CheckOrCall() (*CheckingOrCalling, error) {
	amount, err := s.CheckOrCallAmount()
	if err != nil {
		return nil, err
	}
	actor := s.actorQueue[0]
	s.players[actor].pay(amount)
	s.actedSinceFullRaise[actor] = true
	s.popActor()

	op := &CheckingOrCalling{PlayerIndex: actor, Amount: amount}
	s.log(op)
	s.pump()
	return op, nil
}

// MinCompletionBetOrRaiseTo returns the smallest legal completion, bet or
// raise target for the current actor.
func (s *State) MinCompletionBetOrRaiseTo() (int, error) {
	if _, err := s.verifyActor(); err != nil {
		return 0, err
	}
	street := s.street()
	high := s.highBet()
	if high == 0 {
		return street.MinBet, nil
	}
	if s.bringInPosted && s.raiseCount == 0 {
		return street.MinBet, nil
	}
	increment := s.lastFullRaise
	if increment < street.MinBet {
		increment = street.MinBet
	}
	return high + increment, nil
}

// MaxCompletionBetOrRaiseTo returns the largest legal completion, bet or
// raise target for the current actor under the variant's betting
// structure.
func (s *State) MaxCompletionBetOrRaiseTo() (int, error) {
	actor, err := s.verifyActor()
	if err != nil {
		return 0, err
	}
	p := s.players[actor]
	allIn := p.Bet + p.Stack

	switch s.variant.BettingStructure {
	case FixedLimit:
		minTo, err := s.MinCompletionBetOrRaiseTo()
		if err != nil {
			return 0, err
		}
		if minTo > allIn {
			return allIn, nil
		}
		return minTo, nil

	case PotLimit:
		high := s.highBet()
		call := high - p.Bet
		potAfterCall := s.TotalPot() + s.betsTotal() + call
		maxTo := high + potAfterCall
		if maxTo > allIn {
			return allIn, nil
		}
		return maxTo, nil

	default:
		return allIn, nil
	}
}

func (s *State) betsTotal() int {
	total := 0
	for _, p := range s.players {
		total += p.Bet
	}
	return total
}

// VerifyCompletionBetOrRaiseTo reports whether the current actor may bring
// the street bet to the given amount.
func (s *State) VerifyCompletionBetOrRaiseTo(amount int) error {
	actor, err := s.verifyActor()
	if err != nil {
		return err
	}
	street := s.street()
	if street.MaxRaises > 0 && s.raiseCount >= street.MaxRaises {
		return fmt.Errorf("%w: the street is capped at %d bets", ErrIllegalAction, street.MaxRaises)
	}
	if s.actedSinceFullRaise[actor] {
		return fmt.Errorf("%w: a short all-in does not reopen the betting", ErrIllegalAction)
	}

	responder := false
	for i, other := range s.players {
		if i != actor && other.Status == StatusActive && other.Stack > 0 {
			responder = true
			break
		}
	}
	if !responder {
		return fmt.Errorf("%w: no opponent can respond to a raise", ErrIllegalAction)
	}

	p := s.players[actor]
	allIn := p.Bet + p.Stack
	if amount > allIn {
		return fmt.Errorf("%w: %d with %d behind", ErrInsufficientChips, amount, allIn)
	}
	if amount <= s.highBet() {
		return fmt.Errorf("%w: %d does not exceed the current bet of %d", ErrIllegalAction, amount, s.highBet())
	}
	maxTo, err := s.MaxCompletionBetOrRaiseTo()
	if err != nil {
		return err
	}
	if amount > maxTo {
		return fmt.Errorf("%w: %d exceeds the limit of %d", ErrIllegalAction, amount, maxTo)
	}
	minTo, err := s.MinCompletionBetOrRaiseTo()
	if err != nil {
		return err
	}
	if amount < minTo && amount != allIn {
		return fmt.Errorf("%w: %d is below the minimum of %d", ErrIllegalAction, amount, minTo)
	}
	return nil
}

// CanCompleteBetOrRaiseTo reports whether some completion, bet or raise is
// legal for the current actor.
func (s *State) CanCompleteBetOrRaiseTo() bool {
	minTo, err := s.MinCompletionBetOrRaiseTo()
	if err != nil {
		return false
	}
	if s.VerifyCompletionBetOrRaiseTo(minTo) == nil {
		return true
	}
	actor, err := s.verifyActor()
	if err != nil {
		return false
	}
	p := s.players[actor]
	return s.VerifyCompletionBetOrRaiseTo(p.Bet+p.Stack) == nil
}

// CompleteBetOrRaiseTo brings the current actor's street bet to the given
// total. A raise below the minimum is legal only as an all-in, and such a
// short raise does not reopen the betting for players who already acted.
func (s *State) CompleteBetOrRaiseTo(amount int) (*CompletionBettingOrRaisingTo, error) {
	if err := s.VerifyCompletionBetOrRaiseTo(amount); err != nil {
		return nil, err
	}
	actor := s.actorQueue[0]
	p := s.players[actor]

	minTo, err := s.MinCompletionBetOrRaiseTo()
	if err != nil {
		return nil, err
	}
	full := amount >= minTo
	prevHigh := s.highBet()

	// Completing instead of posting the bring-in discharges it.
	if s.bringInDue(actor) {
		s.bringInPoster = -1
	}

	p.pay(amount - p.Bet)
	s.lastAggressor = actor
	if full {
		s.lastFullRaise = amount - prevHigh
		s.raiseCount++
		for i := range s.actedSinceFullRaise {
			s.actedSinceFullRaise[i] = false
		}
	}
	s.actedSinceFullRaise[actor] = true

	// Everyone else still in gets to respond.
	s.actorQueue = nil
	for off := 1; off < len(s.players); off++ {
		i := (actor + off) % len(s.players)
		other := s.players[i]
		if other.Status == StatusActive && other.Stack > 0 {
			s.actorQueue = append(s.actorQueue, i)
		}
	}

	op := &CompletionBettingOrRaisingTo{PlayerIndex: actor, Amount: amount}
	s.log(op)
	s.pump()
	return op, nil
}
