package table

import "errors"

// Sentinel errors returned by state operations. Operations wrap these with
// detail; callers match with errors.Is.
var (
	// ErrOutOfTurn is returned when the operation belongs to a different
	// player than the one attempting it.
	ErrOutOfTurn = errors.New("table: out of turn")

	// ErrIllegalAction is returned when the operation is not available in
	// the current phase or with the given arguments.
	ErrIllegalAction = errors.New("table: illegal action")

	// ErrInsufficientChips is returned when a bet or raise exceeds the
	// player's stack.
	ErrInsufficientChips = errors.New("table: insufficient chips")

	// ErrInvalidPlayerIndex is returned for player indexes outside the
	// table.
	ErrInvalidPlayerIndex = errors.New("table: invalid player index")

	// ErrCardSupplyExhausted is returned when the deck runs out of cards.
	// The hand cannot continue; every subsequent operation fails with the
	// same error.
	ErrCardSupplyExhausted = errors.New("table: card supply exhausted")

	// ErrMalformedConfiguration is returned by New for configurations
	// that cannot form a playable hand.
	ErrMalformedConfiguration = errors.New("table: malformed configuration")
)
