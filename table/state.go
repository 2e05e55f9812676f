// Package table runs poker hands as state machines. A State is created
// from a Variant describing the dealing and betting plan, then driven by
// operations: forced bets post, cards deal, betting rounds run, pots are
// awarded. Operation classes can be automated so callers only supply the
// decisions they care about; everything else happens as soon as it becomes
// pending. Every mutation appends to an operation log from which the hand
// can be replayed.
package table

import (
	"fmt"
	"time"

	"github.com/lox/felt/card"
	"github.com/lox/felt/hand"
	"github.com/lox/felt/internal/randutil"
)

// State is a single hand in play. It is not safe for concurrent use;
// callers drive it from one goroutine and read results between operations.
type State struct {
	variant        Variant
	mode           Mode
	players        []*Player
	startingStacks []int
	antes          []int
	blinds         []int
	bringIn        int
	automations    [automationCount]bool

	deck     []card.Card
	burned   []card.Card
	board    []card.Card
	discards []card.Card

	phase       Phase
	streetIndex int

	antePosters       []int
	blindPosters      []int
	collectionPending bool

	burnPending  bool
	holePending  [][]bool
	boardPending int
	drawPending  []int

	actorQueue          []int
	lastFullRaise       int
	raiseCount          int
	lastAggressor       int
	finalAggressor      int
	bringInPoster       int
	bringInPosted       bool
	actedSinceFullRaise []bool

	showdownQueue []int
	killQueue     []int
	settledPots   []Pot
	pushedPots    int
	pullQueue     []int

	operations []Operation
	failure    error
}

const automationCount = int(AutomateChipsPulling) + 1

// New deals a fresh hand of the given variant. The configuration must
// resolve to a playable game or ErrMalformedConfiguration is returned.
func New(variant Variant, opts ...Option) (*State, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.playerCount == 0 {
		cfg.playerCount = len(cfg.startingStacks)
	}
	if cfg.startingStacks == nil && cfg.playerCount > 0 && len(variant.Streets) > 0 {
		stacks := make([]int, cfg.playerCount)
		for i := range stacks {
			stacks[i] = 200 * variant.Streets[0].MinBet
		}
		cfg.startingStacks = stacks
	}
	if err := cfg.validate(variant); err != nil {
		return nil, err
	}

	antes := make([]int, cfg.playerCount)
	copy(antes, cfg.antes)
	if cfg.uniformAnte > 0 {
		for i := range antes {
			antes[i] = cfg.uniformAnte
		}
	}
	blinds := make([]int, cfg.playerCount)
	for i, b := range cfg.blinds {
		if b < 0 {
			b = -b
		}
		blinds[i] = b
	}
	// Heads up, the dealer posts the small blind and acts first before
	// the flop, so the forced bet schedules swap seats.
	if cfg.playerCount == 2 {
		antes[0], antes[1] = antes[1], antes[0]
		blinds[0], blinds[1] = blinds[1], blinds[0]
	}

	deck := cfg.deck
	if deck == nil {
		rng := cfg.rng
		if rng == nil {
			rng = randutil.New(time.Now().UnixNano())
		}
		deck = randutil.Shuffled(rng, variant.Deck())
	}

	s := &State{
		variant:        variant,
		mode:           cfg.mode,
		startingStacks: append([]int(nil), cfg.startingStacks...),
		antes:          antes,
		blinds:         blinds,
		bringIn:        cfg.bringIn,
		deck:           append([]card.Card(nil), deck...),
		streetIndex:    -1,
		lastAggressor:  -1,
		finalAggressor: -1,
		bringInPoster:  -1,
	}
	for _, a := range cfg.automations {
		s.automations[a] = true
	}
	s.players = make([]*Player, cfg.playerCount)
	for i := range s.players {
		s.players[i] = &Player{Index: i, Stack: cfg.startingStacks[i]}
	}
	s.actedSinceFullRaise = make([]bool, cfg.playerCount)

	s.beginAntePosting()
	s.pump()
	return s, nil
}

// pump advances the hand through every operation that is automated or
// implicit, stopping at the first pending operation that needs a caller.
func (s *State) pump() {
	for s.failure == nil {
		switch s.phase {
		case PhaseAntePosting:
			if len(s.antePosters) == 0 {
				s.beginBetCollection()
				continue
			}
			if !s.automations[AutomateAntePosting] {
				return
			}
			s.applyAntePosting(s.antePosters[0])

		case PhaseBetCollection:
			if !s.collectionPending {
				s.afterBetCollection()
				continue
			}
			if !s.automations[AutomateBetCollection] {
				return
			}
			s.applyBetCollection()

		case PhaseBlindOrStraddlePosting:
			if len(s.blindPosters) == 0 {
				s.streetIndex = 0
				s.beginDealing()
				continue
			}
			if !s.automations[AutomateBlindOrStraddlePosting] {
				return
			}
			s.applyBlindOrStraddlePosting(s.blindPosters[0])

		case PhaseDealing:
			if s.burnPending {
				if !s.automations[AutomateCardBurning] {
					return
				}
				s.applyCardBurning()
				continue
			}
			if len(s.drawPending) > 0 {
				// Stand pat or discard is always the player's call.
				return
			}
			if s.holeDealee() >= 0 {
				if !s.automations[AutomateHoleDealing] {
					return
				}
				s.applyHoleDealing()
				continue
			}
			if s.boardPending > 0 {
				if !s.automations[AutomateBoardDealing] {
					return
				}
				s.applyBoardDealing()
				continue
			}
			s.beginBetting()

		case PhaseBetting:
			if len(s.actorQueue) == 0 {
				s.endBetting()
				continue
			}
			return

		case PhaseShowdown:
			if len(s.showdownQueue) == 0 {
				s.beginHandKilling()
				continue
			}
			if !s.automations[AutomateHoleCardsShowingOrMucking] {
				return
			}
			s.applyShowOrMuck(s.showdownQueue[0], nil)

		case PhaseHandKilling:
			if len(s.killQueue) == 0 {
				s.beginChipsPushing()
				continue
			}
			if !s.automations[AutomateHandKilling] {
				return
			}
			s.applyHandKilling(s.killQueue[0])

		case PhaseChipsPushing:
			if s.pushedPots == len(s.settledPots) {
				s.beginChipsPulling()
				continue
			}
			if !s.automations[AutomateChipsPushing] {
				return
			}
			s.applyChipsPushing()

		case PhaseChipsPulling:
			if len(s.pullQueue) == 0 {
				s.phase = PhaseDone
				continue
			}
			if !s.automations[AutomateChipsPulling] {
				return
			}
			s.applyChipsPulling(s.pullQueue[0])

		case PhaseDone:
			return
		}
	}
}

// Phase transitions.

func (s *State) beginAntePosting() {
	s.phase = PhaseAntePosting
	for i, p := range s.players {
		if s.effectiveAnte(i) > 0 && p.Stack > 0 {
			s.antePosters = append(s.antePosters, i)
		}
	}
}

func (s *State) beginBetCollection() {
	s.phase = PhaseBetCollection
	s.collectionPending = false
	for _, p := range s.players {
		if p.Bet > 0 {
			s.collectionPending = true
			break
		}
	}
}

func (s *State) afterBetCollection() {
	switch {
	case s.streetIndex == -1:
		s.beginBlindOrStraddlePosting()
	case s.unfoldedCount() <= 1:
		s.beginChipsPushing()
	case s.streetIndex == len(s.variant.Streets)-1:
		s.beginShowdown()
	default:
		s.streetIndex++
		s.beginDealing()
	}
}

func (s *State) beginBlindOrStraddlePosting() {
	s.phase = PhaseBlindOrStraddlePosting
	for i, p := range s.players {
		if s.effectiveBlind(i) > 0 && p.Stack > 0 {
			s.blindPosters = append(s.blindPosters, i)
		}
	}
}

func (s *State) beginDealing() {
	street := s.street()
	s.phase = PhaseDealing
	s.burnPending = street.Burn
	s.boardPending = street.BoardDeal
	s.holePending = make([][]bool, len(s.players))
	if len(street.HoleDeal) > 0 {
		for i, p := range s.players {
			if p.Status != StatusFolded {
				s.holePending[i] = append([]bool(nil), street.HoleDeal...)
			}
		}
	}
	if street.Draw {
		for i, p := range s.players {
			if p.Status != StatusFolded {
				s.drawPending = append(s.drawPending, i)
			}
		}
	}
}

func (s *State) beginBetting() {
	street := s.street()
	s.phase = PhaseBetting
	s.lastFullRaise = 0
	s.raiseCount = 0
	s.lastAggressor = -1
	s.bringInPoster = -1
	s.bringInPosted = false
	for i := range s.actedSinceFullRaise {
		s.actedSinceFullRaise[i] = false
	}

	opener := s.opener(street.Opening)
	s.actorQueue = nil
	for off := 0; off < len(s.players); off++ {
		i := (opener + off) % len(s.players)
		p := s.players[i]
		if p.Status == StatusActive && p.Stack > 0 {
			s.actorQueue = append(s.actorQueue, i)
		}
	}

	// A lone player facing no unmatched bet has nothing to decide.
	if s.bringInPoster < 0 && len(s.actorQueue) == 1 {
		i := s.actorQueue[0]
		if s.players[i].Bet == s.highBet() {
			s.actorQueue = nil
		}
	}
}

// opener picks the first player to act on the current street.
func (s *State) opener(opening Opening) int {
	switch opening {
	case OpeningLowCard, OpeningHighCard:
		poster := s.bringInCandidate(opening == OpeningLowCard)
		if poster >= 0 && s.players[poster].Stack > 0 {
			s.bringInPoster = poster
		}
		if poster >= 0 {
			return poster
		}
		return 0

	case OpeningLowHand, OpeningHighHand:
		low := opening == OpeningLowHand
		best := -1
		var bestEntry hand.Entry
		for i, p := range s.players {
			if p.Status == StatusFolded {
				continue
			}
			entry, ok := hand.BestShowing(p.upCards(), low)
			if !ok {
				continue
			}
			if best < 0 || hand.CompareShowing(entry, bestEntry, low) > 0 {
				best = i
				bestEntry = entry
			}
		}
		if best >= 0 {
			return best
		}
		return 0

	default:
		if s.streetIndex == 0 {
			if blind := s.largestBlindIndex(); blind >= 0 {
				return (blind + 1) % len(s.players)
			}
		}
		return 0
	}
}

// bringInCandidate finds the player forced to open by their exposed card:
// ties break by suit in clubs, diamonds, hearts, spades order.
func (s *State) bringInCandidate(low bool) int {
	order := s.variant.HandTypes[0].Order()
	best := -1
	var bestCard card.Card
	for i, p := range s.players {
		if p.Status == StatusFolded {
			continue
		}
		up := p.upCards()
		if len(up) == 0 {
			continue
		}
		c := up[len(up)-1]
		if best < 0 || cardBelow(c, bestCard, order) == low {
			best = i
			bestCard = c
		}
	}
	return best
}

// cardBelow orders cards by rank position and then suit.
func cardBelow(a, b card.Card, order card.RankOrder) bool {
	ap, bp := order.Position(a.Rank), order.Position(b.Rank)
	if ap != bp {
		return ap < bp
	}
	return a.Suit < b.Suit
}

func (s *State) largestBlindIndex() int {
	best, bestAmount := -1, 0
	for i, b := range s.blinds {
		if b >= bestAmount && b > 0 {
			best, bestAmount = i, b
		}
	}
	return best
}

// endBetting closes the street. The street's aggressor, if any, will open
// the showdown; a street that closed without a bet resets the order to the
// first seat past the dealer.
func (s *State) endBetting() {
	s.finalAggressor = s.lastAggressor
	s.beginBetCollection()
}

func (s *State) beginShowdown() {
	s.phase = PhaseShowdown
	start := 0
	if s.finalAggressor >= 0 {
		start = s.finalAggressor
	}
	for off := 0; off < len(s.players); off++ {
		i := (start + off) % len(s.players)
		if s.players[i].Status != StatusFolded {
			s.showdownQueue = append(s.showdownQueue, i)
		}
	}
}

func (s *State) beginHandKilling() {
	s.phase = PhaseHandKilling
	for i, p := range s.players {
		if p.Status == StatusFolded || p.mucked() || !p.shown() {
			continue
		}
		if !s.winsAnyPot(i) {
			s.killQueue = append(s.killQueue, i)
		}
	}
}

func (s *State) beginChipsPushing() {
	s.phase = PhaseChipsPushing
	s.settledPots = s.potsNow()
	s.pushedPots = 0
}

func (s *State) beginChipsPulling() {
	s.phase = PhaseChipsPulling
	for i, p := range s.players {
		if p.Bet > 0 {
			s.pullQueue = append(s.pullQueue, i)
		}
	}
	if len(s.pullQueue) == 0 {
		s.phase = PhaseDone
	}
}

// Forced bet operations.

// PostAnte posts the pending ante for the given player.
func (s *State) PostAnte(playerIndex int) (*AntePosting, error) {
	if err := s.verifyPlayerIndex(playerIndex); err != nil {
		return nil, err
	}
	if err := s.verifyPending(PhaseAntePosting); err != nil {
		return nil, err
	}
	if !removePending(&s.antePosters, playerIndex) {
		return nil, fmt.Errorf("%w: player %d has no ante to post", ErrOutOfTurn, playerIndex)
	}
	op := s.recordAntePosting(playerIndex)
	s.pump()
	return op, nil
}

func (s *State) applyAntePosting(playerIndex int) {
	removePending(&s.antePosters, playerIndex)
	s.recordAntePosting(playerIndex)
}

func (s *State) recordAntePosting(playerIndex int) *AntePosting {
	amount := s.effectiveAnte(playerIndex)
	s.players[playerIndex].pay(amount)
	op := &AntePosting{PlayerIndex: playerIndex, Amount: amount}
	s.log(op)
	return op
}

// CollectBets sweeps the outstanding bets into the pot. The uncalled
// portion of an unmatched bet is returned to its owner first.
func (s *State) CollectBets() (*BetCollection, error) {
	if err := s.verifyPending(PhaseBetCollection); err != nil {
		return nil, err
	}
	if !s.collectionPending {
		return nil, fmt.Errorf("%w: no bets to collect", ErrIllegalAction)
	}
	op := s.applyBetCollection()
	s.pump()
	return op, nil
}

func (s *State) applyBetCollection() *BetCollection {
	s.refundUncalledBet()
	bets := make([]int, len(s.players))
	for i, p := range s.players {
		bets[i] = p.Bet
		p.Bet = 0
	}
	s.collectionPending = false
	op := &BetCollection{Bets: bets}
	s.log(op)
	return op
}

// refundUncalledBet returns the excess of a bet nobody matched.
func (s *State) refundUncalledBet() {
	highIndex, high, second := -1, 0, 0
	for i, p := range s.players {
		if p.Bet > high {
			highIndex, second, high = i, high, p.Bet
		} else if p.Bet > second {
			second = p.Bet
		}
	}
	if highIndex < 0 || high == second {
		return
	}
	p := s.players[highIndex]
	refund := high - second
	p.Bet -= refund
	p.Stack += refund
	p.Committed -= refund
	if p.Status == StatusAllIn && p.Stack > 0 {
		p.Status = StatusActive
	}
}

// PostBlindOrStraddle posts the pending forced bet for the given player.
func (s *State) PostBlindOrStraddle(playerIndex int) (*BlindOrStraddlePosting, error) {
	if err := s.verifyPlayerIndex(playerIndex); err != nil {
		return nil, err
	}
	if err := s.verifyPending(PhaseBlindOrStraddlePosting); err != nil {
		return nil, err
	}
	if !removePending(&s.blindPosters, playerIndex) {
		return nil, fmt.Errorf("%w: player %d has no blind or straddle to post", ErrOutOfTurn, playerIndex)
	}
	op := s.recordBlindOrStraddlePosting(playerIndex)
	s.pump()
	return op, nil
}

func (s *State) applyBlindOrStraddlePosting(playerIndex int) {
	removePending(&s.blindPosters, playerIndex)
	s.recordBlindOrStraddlePosting(playerIndex)
}

func (s *State) recordBlindOrStraddlePosting(playerIndex int) *BlindOrStraddlePosting {
	amount := s.effectiveBlind(playerIndex)
	s.players[playerIndex].pay(amount)
	op := &BlindOrStraddlePosting{PlayerIndex: playerIndex, Amount: amount}
	s.log(op)
	return op
}

// NoOperate appends a log entry that changes nothing, carrying free-text
// commentary between actions.
func (s *State) NoOperate(commentary string) *NoOperation {
	op := &NoOperation{Commentary: commentary}
	s.log(op)
	return op
}

// Helpers.

func (s *State) street() Street {
	return s.variant.Streets[s.streetIndex]
}

func (s *State) effectiveAnte(playerIndex int) int {
	ante := s.antes[playerIndex]
	if stack := s.players[playerIndex].Stack; ante > stack {
		ante = stack
	}
	return ante
}

func (s *State) effectiveBlind(playerIndex int) int {
	blind := s.blinds[playerIndex]
	if stack := s.players[playerIndex].Stack; blind > stack {
		blind = stack
	}
	return blind
}

func (s *State) highBet() int {
	high := 0
	for _, p := range s.players {
		if p.Bet > high {
			high = p.Bet
		}
	}
	return high
}

func (s *State) unfoldedCount() int {
	count := 0
	for _, p := range s.players {
		if p.Status != StatusFolded {
			count++
		}
	}
	return count
}

func (s *State) log(op Operation) {
	s.operations = append(s.operations, op)
}

func (s *State) verifyPlayerIndex(playerIndex int) error {
	if s.failure != nil {
		return s.failure
	}
	if playerIndex < 0 || playerIndex >= len(s.players) {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, playerIndex)
	}
	return nil
}

func (s *State) verifyPending(phase Phase) error {
	if s.failure != nil {
		return s.failure
	}
	if s.phase != phase {
		return fmt.Errorf("%w: %s is not pending in the %s phase", ErrIllegalAction, phase, s.phase)
	}
	return nil
}

func removePending(queue *[]int, playerIndex int) bool {
	for qi, i := range *queue {
		if i == playerIndex {
			*queue = append((*queue)[:qi], (*queue)[qi+1:]...)
			return true
		}
	}
	return false
}

// drawCard takes the next card from the supply, failing the hand for good
// when the deck is out.
func (s *State) drawCard() (card.Card, error) {
	if len(s.deck) == 0 {
		s.failure = ErrCardSupplyExhausted
		return card.Card{}, s.failure
	}
	c := s.deck[0]
	s.deck = s.deck[1:]
	return c, nil
}

// potsNow derives the pot ladder from collected contributions. Players
// whose hands hit the muck at showdown keep their chips in the amounts but
// lose eligibility, like folded players.
func (s *State) potsNow() []Pot {
	contributions := make([]int, len(s.players))
	folded := make([]bool, len(s.players))
	for i, p := range s.players {
		contributions[i] = p.Committed - p.Bet
		folded[i] = p.Status == StatusFolded || p.mucked()
	}
	return potLadder(contributions, folded)
}

// Queries. All are read-only and stable between operations.

// Variant returns the variant the hand is played under.
func (s *State) Variant() Variant {
	return s.variant
}

// Mode returns the configured play mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Phase returns the current lifecycle phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Done reports whether the hand has finished.
func (s *State) Done() bool {
	return s.phase == PhaseDone
}

// Err returns the error that permanently failed the hand, if any.
func (s *State) Err() error {
	return s.failure
}

// PlayerCount returns the number of seats.
func (s *State) PlayerCount() int {
	return len(s.players)
}

// Stacks returns each player's chips behind.
func (s *State) Stacks() []int {
	stacks := make([]int, len(s.players))
	for i, p := range s.players {
		stacks[i] = p.Stack
	}
	return stacks
}

// Bets returns each player's chips in front for the current street.
func (s *State) Bets() []int {
	bets := make([]int, len(s.players))
	for i, p := range s.players {
		bets[i] = p.Bet
	}
	return bets
}

// StartingStacks returns the stacks the hand began with.
func (s *State) StartingStacks() []int {
	return append([]int(nil), s.startingStacks...)
}

// Antes returns each seat's configured ante.
func (s *State) Antes() []int {
	return append([]int(nil), s.antes...)
}

// BlindsOrStraddles returns each seat's forced blind or straddle.
func (s *State) BlindsOrStraddles() []int {
	return append([]int(nil), s.blinds...)
}

// BringIn returns the bring-in amount, zero when the variant posts none.
func (s *State) BringIn() int {
	return s.bringIn
}

// Statuses returns each player's standing.
func (s *State) Statuses() []Status {
	statuses := make([]Status, len(s.players))
	for i, p := range s.players {
		statuses[i] = p.Status
	}
	return statuses
}

// Pots returns the pot ladder: the main pot first, side pots after. Before
// settlement it reflects collected bets; during payout it holds the pots
// not yet pushed.
func (s *State) Pots() []Pot {
	if s.phase >= PhaseChipsPushing {
		remaining := s.settledPots[:len(s.settledPots)-s.pushedPots]
		out := make([]Pot, len(remaining))
		copy(out, remaining)
		return out
	}
	return s.potsNow()
}

// TotalPot returns the chips collected and not yet pushed.
func (s *State) TotalPot() int {
	total := 0
	for _, pot := range s.Pots() {
		total += pot.Amount
	}
	return total
}

// Board returns the community cards dealt so far.
func (s *State) Board() []card.Card {
	return append([]card.Card(nil), s.board...)
}

// HoleCards returns the hole cards of the given player.
func (s *State) HoleCards(playerIndex int) ([]HoleCard, error) {
	if err := s.verifyPlayerIndex(playerIndex); err != nil {
		return nil, err
	}
	return append([]HoleCard(nil), s.players[playerIndex].HoleCards...), nil
}

// StreetIndex returns the index of the current street, or -1 before the
// first deal.
func (s *State) StreetIndex() int {
	return s.streetIndex
}

// ActorIndex returns the player whose betting decision is pending.
func (s *State) ActorIndex() (int, bool) {
	if s.phase != PhaseBetting || len(s.actorQueue) == 0 {
		return 0, false
	}
	return s.actorQueue[0], true
}

// LegalActions lists the operations the state accepts right now. During
// betting the list reflects the current actor's options.
func (s *State) LegalActions() []Action {
	if s.failure != nil {
		return nil
	}
	switch s.phase {
	case PhaseAntePosting:
		return []Action{ActionPostAnte}
	case PhaseBetCollection:
		return []Action{ActionCollectBets}
	case PhaseBlindOrStraddlePosting:
		return []Action{ActionPostBlindOrStraddle}
	case PhaseDealing:
		if s.burnPending {
			return []Action{ActionBurnCard}
		}
		if len(s.drawPending) > 0 {
			return []Action{ActionStandPatOrDiscard}
		}
		var actions []Action
		if s.holeDealee() >= 0 {
			actions = append(actions, ActionDealHole)
		}
		if s.boardPending > 0 {
			actions = append(actions, ActionDealBoard)
		}
		return actions
	case PhaseBetting:
		var actions []Action
		if s.CanPostBringIn() {
			actions = append(actions, ActionPostBringIn)
		}
		if s.CanFold() {
			actions = append(actions, ActionFold)
		}
		if s.CanCheckOrCall() {
			actions = append(actions, ActionCheckOrCall)
		}
		if s.CanCompleteBetOrRaiseTo() {
			actions = append(actions, ActionCompleteBetOrRaiseTo)
		}
		return actions
	case PhaseShowdown:
		return []Action{ActionShowOrMuckHoleCards}
	case PhaseHandKilling:
		return []Action{ActionKillHand}
	case PhaseChipsPushing:
		return []Action{ActionPushChips}
	case PhaseChipsPulling:
		return []Action{ActionPullChips}
	}
	return nil
}

// PendingAntePosters returns the players still owing an ante.
func (s *State) PendingAntePosters() []int {
	return append([]int(nil), s.antePosters...)
}

// PendingBlindPosters returns the players still owing a blind or straddle.
func (s *State) PendingBlindPosters() []int {
	return append([]int(nil), s.blindPosters...)
}

// PendingDrawers returns the players yet to stand pat or discard.
func (s *State) PendingDrawers() []int {
	return append([]int(nil), s.drawPending...)
}

// ShowdownIndex returns the player whose showdown decision is pending.
func (s *State) ShowdownIndex() (int, bool) {
	if s.phase != PhaseShowdown || len(s.showdownQueue) == 0 {
		return 0, false
	}
	return s.showdownQueue[0], true
}

// PendingHandKills returns the players whose shown hands await killing.
func (s *State) PendingHandKills() []int {
	return append([]int(nil), s.killQueue...)
}

// PendingChipsPulls returns the winners yet to pull their chips in.
func (s *State) PendingChipsPulls() []int {
	return append([]int(nil), s.pullQueue...)
}

// Operations returns the hand's operation log.
func (s *State) Operations() []Operation {
	return append([]Operation(nil), s.operations...)
}
