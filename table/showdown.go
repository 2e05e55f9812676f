package table

import (
	"fmt"
	"slices"

	"github.com/lox/felt/hand"
)

// ShowOrMuckHoleCards resolves the pending showdown decision. With no
// argument the hand is shown only while it still beats or ties everything
// shown before it; pass an explicit status to override.
func (s *State) ShowOrMuckHoleCards(show ...bool) (*HoleCardsShowingOrMucking, error) {
	if s.failure != nil {
		return nil, s.failure
	}
	if s.phase != PhaseShowdown || len(s.showdownQueue) == 0 {
		return nil, fmt.Errorf("%w: no showdown decision is pending", ErrIllegalAction)
	}
	if len(show) > 1 {
		return nil, fmt.Errorf("%w: at most one showing status", ErrIllegalAction)
	}
	actor := s.showdownQueue[0]
	var choice *bool
	if len(show) == 1 {
		choice = &show[0]
		if !show[0] && s.lastLiveHand(actor) {
			return nil, fmt.Errorf("%w: the last live hand cannot muck", ErrIllegalAction)
		}
	}
	op := s.applyShowOrMuck(actor, choice)
	s.pump()
	return op, nil
}

func (s *State) applyShowOrMuck(playerIndex int, show *bool) *HoleCardsShowingOrMucking {
	removePending(&s.showdownQueue, playerIndex)
	p := s.players[playerIndex]
	showing := s.canWinNow(playerIndex)
	if show != nil {
		showing = *show
	}
	op := &HoleCardsShowingOrMucking{PlayerIndex: playerIndex}
	if showing {
		p.revealCards()
		op.Cards = p.liveCards()
	} else {
		p.muckCards()
	}
	s.log(op)
	return op
}

// lastLiveHand reports whether every other unfolded hand is already mucked.
func (s *State) lastLiveHand(playerIndex int) bool {
	for i, p := range s.players {
		if i == playerIndex || p.Status == StatusFolded {
			continue
		}
		if !p.mucked() {
			return false
		}
	}
	return true
}

// canWinNow reports whether the player beats or ties every hand shown so
// far for some pot they are eligible for.
func (s *State) canWinNow(playerIndex int) bool {
	pots := s.potsNow()
	for _, ht := range s.variant.HandTypes {
		h, ok := ht.Best(s.players[playerIndex].liveCards(), s.board)
		if !ok {
			continue
		}
		for _, pot := range pots {
			if !slices.Contains(pot.Eligible, playerIndex) {
				continue
			}
			beaten := false
			for _, j := range pot.Eligible {
				if j == playerIndex || !s.players[j].shown() {
					continue
				}
				other, ok := ht.Best(s.players[j].liveCards(), s.board)
				if ok && hand.Compare(other, h) > 0 {
					beaten = true
					break
				}
			}
			if !beaten {
				return true
			}
		}
	}
	return false
}

// winsAnyPot reports whether the player takes at least a share of some pot.
func (s *State) winsAnyPot(playerIndex int) bool {
	for _, pot := range s.potsNow() {
		for _, ht := range s.variant.HandTypes {
			if slices.Contains(s.potWinners(pot, ht), playerIndex) {
				return true
			}
		}
	}
	return false
}

// potWinners returns the players splitting the pot under the given ranking,
// ascending seat order. Players without a qualifying hand are passed over.
func (s *State) potWinners(pot Pot, ht hand.Type) []int {
	var winners []int
	var best hand.Hand
	for _, i := range pot.Eligible {
		h, ok := ht.Best(s.players[i].liveCards(), s.board)
		if !ok {
			continue
		}
		if len(winners) == 0 {
			winners, best = []int{i}, h
			continue
		}
		switch cmp := hand.Compare(h, best); {
		case cmp > 0:
			winners, best = []int{i}, h
		case cmp == 0:
			winners = append(winners, i)
		}
	}
	return winners
}

// KillHand mucks a losing hand left face up after the showdown.
func (s *State) KillHand(playerIndex int) (*HandKilling, error) {
	if err := s.verifyPlayerIndex(playerIndex); err != nil {
		return nil, err
	}
	if err := s.verifyPending(PhaseHandKilling); err != nil {
		return nil, err
	}
	if !slices.Contains(s.killQueue, playerIndex) {
		return nil, fmt.Errorf("%w: player %d has no hand to kill", ErrOutOfTurn, playerIndex)
	}
	op := s.applyHandKilling(playerIndex)
	s.pump()
	return op, nil
}

func (s *State) applyHandKilling(playerIndex int) *HandKilling {
	removePending(&s.killQueue, playerIndex)
	s.players[playerIndex].muckCards()
	op := &HandKilling{PlayerIndex: playerIndex}
	s.log(op)
	return op
}

// PushChips pays out the next pot, side pots before the main pot. A pot
// with both a high and a low ranking splits between them, any odd chip
// going to the high side; ties within a side split evenly with odd chips
// going to the earliest seats.
func (s *State) PushChips() (*ChipsPushing, error) {
	if err := s.verifyPending(PhaseChipsPushing); err != nil {
		return nil, err
	}
	op := s.applyChipsPushing()
	s.pump()
	return op, nil
}

func (s *State) applyChipsPushing() *ChipsPushing {
	potIndex := len(s.settledPots) - 1 - s.pushedPots
	pot := s.settledPots[potIndex]
	amounts := make([]int, len(s.players))

	if len(pot.Eligible) == 1 {
		amounts[pot.Eligible[0]] = pot.Amount
	} else {
		var splits [][]int
		for _, ht := range s.variant.HandTypes {
			if winners := s.potWinners(pot, ht); len(winners) > 0 {
				splits = append(splits, winners)
			}
		}
		if len(splits) == 0 {
			splits = [][]int{pot.Eligible}
		}
		share := pot.Amount / len(splits)
		remainder := pot.Amount % len(splits)
		for si, winners := range splits {
			amount := share
			if si == 0 {
				amount += remainder
			}
			divideChips(amount, winners, amounts)
		}
	}

	for i, amount := range amounts {
		if amount > 0 {
			s.players[i].Bet += amount
		}
	}
	s.pushedPots++
	op := &ChipsPushing{Amounts: amounts, PotIndex: potIndex}
	s.log(op)
	return op
}

// divideChips splits an amount across winners listed in seat order, one
// extra chip to each of the earliest until the remainder runs out.
func divideChips(amount int, winners []int, amounts []int) {
	share := amount / len(winners)
	remainder := amount % len(winners)
	for _, i := range winners {
		amounts[i] += share
		if remainder > 0 {
			amounts[i]++
			remainder--
		}
	}
}

// PullChips moves the chips pushed in front of a winner into their stack.
func (s *State) PullChips(playerIndex int) (*ChipsPulling, error) {
	if err := s.verifyPlayerIndex(playerIndex); err != nil {
		return nil, err
	}
	if err := s.verifyPending(PhaseChipsPulling); err != nil {
		return nil, err
	}
	if !slices.Contains(s.pullQueue, playerIndex) {
		return nil, fmt.Errorf("%w: player %d has no chips to pull", ErrOutOfTurn, playerIndex)
	}
	op := s.applyChipsPulling(playerIndex)
	s.pump()
	return op, nil
}

func (s *State) applyChipsPulling(playerIndex int) *ChipsPulling {
	removePending(&s.pullQueue, playerIndex)
	p := s.players[playerIndex]
	amount := p.Bet
	p.Bet = 0
	p.Stack += amount
	op := &ChipsPulling{PlayerIndex: playerIndex, Amount: amount}
	s.log(op)
	return op
}
