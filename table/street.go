package table

import (
	"github.com/lox/felt/card"
	"github.com/lox/felt/hand"
)

// Opening decides which player acts first on a street.
type Opening int

const (
	// OpeningPosition opens by seat: after the largest blind before any
	// cards, otherwise the first player left of the button.
	OpeningPosition Opening = iota
	// OpeningLowCard opens on the lowest face-up card and forces a
	// bring-in, as on third street in seven card stud.
	OpeningLowCard
	// OpeningHighCard opens on the highest face-up card and forces a
	// bring-in, as in razz.
	OpeningHighCard
	// OpeningLowHand opens on the worst partial hand showing.
	OpeningLowHand
	// OpeningHighHand opens on the best partial hand showing.
	OpeningHighHand
)

func (o Opening) String() string {
	return [...]string{"position", "low card", "high card", "low hand", "high hand"}[o]
}

// BettingStructure limits bet and raise sizes.
type BettingStructure int

const (
	FixedLimit BettingStructure = iota
	PotLimit
	NoLimit
)

func (b BettingStructure) String() string {
	return [...]string{"fixed-limit", "pot-limit", "no-limit"}[b]
}

// Street describes one dealing and betting round.
type Street struct {
	// Burn discards the top card before dealing.
	Burn bool
	// HoleDeal lists the hole cards dealt to each player in this street;
	// true deals the card face up.
	HoleDeal []bool
	// BoardDeal is the number of community cards dealt.
	BoardDeal int
	// Draw lets players discard and replace hole cards before betting.
	Draw bool
	// Opening decides who acts first.
	Opening Opening
	// MinBet is the minimum opening bet, the completion amount on
	// bring-in streets and the fixed bet size under fixed-limit play.
	MinBet int
	// MaxRaises caps bets and raises in the street; zero means no cap.
	MaxRaises int
}

// Variant is the data-driven description of a poker game: how cards are
// dealt, how betting runs and how finished hands are ranked.
type Variant struct {
	// Name is the display name, e.g. "No-limit Texas hold'em".
	Name string
	// Code is the short hand-history code, e.g. "NT".
	Code string
	// HandTypes ranks finished hands. Two entries split the pot between
	// a high half and a low half.
	HandTypes []hand.Type
	// Streets run in order.
	Streets []Street
	// BettingStructure applies to every street.
	BettingStructure BettingStructure
	// Deck builds the unshuffled card supply for one hand.
	Deck func() []card.Card
}

// holeCardCount is the number of hole cards a player holds after every
// non-draw street has dealt.
func (v Variant) holeCardCount() int {
	count := 0
	for _, street := range v.Streets {
		count += len(street.HoleDeal)
	}
	return count
}

// bringIn reports whether any street opens with a forced bring-in.
func (v Variant) bringIn() bool {
	for _, street := range v.Streets {
		if street.Opening == OpeningLowCard || street.Opening == OpeningHighCard {
			return true
		}
	}
	return false
}

// Phase is the position of a hand within its lifecycle. Phases advance
// automatically as their pending operations complete.
type Phase int

const (
	PhaseAntePosting Phase = iota
	PhaseBetCollection
	PhaseBlindOrStraddlePosting
	PhaseDealing
	PhaseBetting
	PhaseShowdown
	PhaseHandKilling
	PhaseChipsPushing
	PhaseChipsPulling
	PhaseDone
)

func (p Phase) String() string {
	return [...]string{
		"ante posting",
		"bet collection",
		"blind or straddle posting",
		"dealing",
		"betting",
		"showdown",
		"hand killing",
		"chips pushing",
		"chips pulling",
		"done",
	}[p]
}

// Automation marks an operation class the state performs itself as soon as
// it becomes pending. Anything not automated waits for an explicit call.
type Automation int

const (
	AutomateAntePosting Automation = iota
	AutomateBetCollection
	AutomateBlindOrStraddlePosting
	AutomateCardBurning
	AutomateHoleDealing
	AutomateBoardDealing
	AutomateHoleCardsShowingOrMucking
	AutomateHandKilling
	AutomateChipsPushing
	AutomateChipsPulling
)

// AutomateAll returns every automation, leaving only the betting decisions
// and draw elections to the caller.
func AutomateAll() []Automation {
	return []Automation{
		AutomateAntePosting,
		AutomateBetCollection,
		AutomateBlindOrStraddlePosting,
		AutomateCardBurning,
		AutomateHoleDealing,
		AutomateBoardDealing,
		AutomateHoleCardsShowingOrMucking,
		AutomateHandKilling,
		AutomateChipsPushing,
		AutomateChipsPulling,
	}
}

// Action identifies one operation a caller may invoke, as reported by
// State.LegalActions.
type Action int

const (
	ActionPostAnte Action = iota
	ActionCollectBets
	ActionPostBlindOrStraddle
	ActionBurnCard
	ActionDealHole
	ActionDealBoard
	ActionStandPatOrDiscard
	ActionPostBringIn
	ActionFold
	ActionCheckOrCall
	ActionCompleteBetOrRaiseTo
	ActionShowOrMuckHoleCards
	ActionKillHand
	ActionPushChips
	ActionPullChips
)

func (a Action) String() string {
	return [...]string{
		"post ante",
		"collect bets",
		"post blind or straddle",
		"burn card",
		"deal hole",
		"deal board",
		"stand pat or discard",
		"post bring-in",
		"fold",
		"check or call",
		"complete bet or raise to",
		"show or muck hole cards",
		"kill hand",
		"push chips",
		"pull chips",
	}[a]
}
