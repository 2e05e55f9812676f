package table

import "github.com/lox/felt/card"

// OperationType identifies an entry in the operation log.
type OperationType string

const (
	OpAntePosting                  OperationType = "ante_posting"
	OpBetCollection                OperationType = "bet_collection"
	OpBlindOrStraddlePosting       OperationType = "blind_or_straddle_posting"
	OpCardBurning                  OperationType = "card_burning"
	OpHoleDealing                  OperationType = "hole_dealing"
	OpBoardDealing                 OperationType = "board_dealing"
	OpStandingPatOrDiscarding      OperationType = "standing_pat_or_discarding"
	OpBringInPosting               OperationType = "bring_in_posting"
	OpFolding                      OperationType = "folding"
	OpCheckingOrCalling            OperationType = "checking_or_calling"
	OpCompletionBettingOrRaisingTo OperationType = "completion_betting_or_raising_to"
	OpHoleCardsShowingOrMucking    OperationType = "hole_cards_showing_or_mucking"
	OpHandKilling                  OperationType = "hand_killing"
	OpChipsPushing                 OperationType = "chips_pushing"
	OpChipsPulling                 OperationType = "chips_pulling"
	OpNoOperation                  OperationType = "no_operation"
)

func (ot OperationType) String() string {
	return string(ot)
}

// Operation is one entry in a hand's operation log. Every state mutation
// appends exactly one record, automated or not, so the log replays the
// hand.
type Operation interface {
	OperationType() OperationType
}

// AntePosting records a posted ante.
type AntePosting struct {
	PlayerIndex int
	Amount      int
}

func (*AntePosting) OperationType() OperationType { return OpAntePosting }

// BetCollection records the sweep of outstanding bets into the pot. Bets
// holds the amount taken from each seat; uncalled chips have already been
// returned and do not appear.
type BetCollection struct {
	Bets []int
}

func (*BetCollection) OperationType() OperationType { return OpBetCollection }

// BlindOrStraddlePosting records a posted blind or straddle.
type BlindOrStraddlePosting struct {
	PlayerIndex int
	Amount      int
}

func (*BlindOrStraddlePosting) OperationType() OperationType { return OpBlindOrStraddlePosting }

// CardBurning records the card set aside before dealing.
type CardBurning struct {
	Card card.Card
}

func (*CardBurning) OperationType() OperationType { return OpCardBurning }

// HoleDealing records cards dealt to one player. Statuses mirrors Cards;
// true marks a card dealt face up.
type HoleDealing struct {
	PlayerIndex int
	Cards       []card.Card
	Statuses    []bool
}

func (*HoleDealing) OperationType() OperationType { return OpHoleDealing }

// BoardDealing records community cards dealt.
type BoardDealing struct {
	Cards []card.Card
}

func (*BoardDealing) OperationType() OperationType { return OpBoardDealing }

// StandingPatOrDiscarding records a draw decision. No cards means the
// player stood pat.
type StandingPatOrDiscarding struct {
	PlayerIndex int
	Cards       []card.Card
}

func (*StandingPatOrDiscarding) OperationType() OperationType { return OpStandingPatOrDiscarding }

// BringInPosting records the forced bring-in that opens the first betting
// round of stud games.
type BringInPosting struct {
	PlayerIndex int
	Amount      int
}

func (*BringInPosting) OperationType() OperationType { return OpBringInPosting }

// Folding records a fold.
type Folding struct {
	PlayerIndex int
}

func (*Folding) OperationType() OperationType { return OpFolding }

// CheckingOrCalling records a check (Amount zero) or call.
type CheckingOrCalling struct {
	PlayerIndex int
	Amount      int
}

func (*CheckingOrCalling) OperationType() OperationType { return OpCheckingOrCalling }

// CompletionBettingOrRaisingTo records a completion, bet or raise. Amount
// is the total the street bet was brought to, not the increment.
type CompletionBettingOrRaisingTo struct {
	PlayerIndex int
	Amount      int
}

func (*CompletionBettingOrRaisingTo) OperationType() OperationType {
	return OpCompletionBettingOrRaisingTo
}

// HoleCardsShowingOrMucking records a showdown decision. Cards holds the
// revealed hand; an empty slice means the hand was mucked.
type HoleCardsShowingOrMucking struct {
	PlayerIndex int
	Cards       []card.Card
}

func (*HoleCardsShowingOrMucking) OperationType() OperationType { return OpHoleCardsShowingOrMucking }

// HandKilling records a shown hand sent to the muck after losing every pot
// it was eligible for.
type HandKilling struct {
	PlayerIndex int
}

func (*HandKilling) OperationType() OperationType { return OpHandKilling }

// ChipsPushing records one pot paid out. Amounts holds each seat's share.
type ChipsPushing struct {
	Amounts  []int
	PotIndex int
}

func (*ChipsPushing) OperationType() OperationType { return OpChipsPushing }

// ChipsPulling records a winner taking pushed chips into their stack.
type ChipsPulling struct {
	PlayerIndex int
	Amount      int
}

func (*ChipsPulling) OperationType() OperationType { return OpChipsPulling }

// NoOperation is a log entry that changes nothing. It exists to carry
// commentary between actions.
type NoOperation struct {
	Commentary string
}

func (*NoOperation) OperationType() OperationType { return OpNoOperation }
