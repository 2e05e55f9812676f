package table

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/felt/card"
)

// Mode records the convention a hand is dealt under. A single hand plays
// identically in both; hosts that run consecutive hands read it to decide
// whether stacks carry over.
type Mode int

const (
	CashGame Mode = iota
	Tournament
)

func (m Mode) String() string {
	return [...]string{"cash game", "tournament"}[m]
}

// Option configures a hand during creation.
type Option func(*config)

type config struct {
	playerCount    int
	startingStacks []int
	antes          []int
	uniformAnte    int
	blinds         []int
	bringIn        int
	automations    []Automation
	deck           []card.Card
	rng            *rand.Rand
	mode           Mode
}

// WithPlayerCount seats the given number of players. Required unless
// WithStartingStacks fixes the count.
func WithPlayerCount(count int) Option {
	return func(c *config) {
		c.playerCount = count
	}
}

// WithStartingStacks sets each seat's starting stack, implying the player
// count. Default is 200 big bets per seat.
func WithStartingStacks(stacks []int) Option {
	return func(c *config) {
		c.startingStacks = stacks
	}
}

// WithAntes sets a per-seat ante schedule. Index 0 is the seat left of the
// dealer. A single nonzero entry expresses a big blind ante.
func WithAntes(antes []int) Option {
	return func(c *config) {
		c.antes = antes
		c.uniformAnte = 0
	}
}

// WithUniformAnte makes every seat ante the same amount.
func WithUniformAnte(ante int) Option {
	return func(c *config) {
		c.uniformAnte = ante
		c.antes = nil
	}
}

// WithBlindsOrStraddles sets the forced bets by seat: small blind at index
// 0, big blind at index 1, straddles beyond. Negative amounts post at
// their absolute value.
func WithBlindsOrStraddles(blinds []int) Option {
	return func(c *config) {
		c.blinds = blinds
	}
}

// WithBringIn sets the forced bring-in for stud games.
func WithBringIn(bringIn int) Option {
	return func(c *config) {
		c.bringIn = bringIn
	}
}

// WithAutomations performs the listed operation classes automatically as
// they become pending.
func WithAutomations(automations ...Automation) Option {
	return func(c *config) {
		c.automations = automations
	}
}

// WithDeck fixes the dealing order instead of shuffling: cards leave from
// the front of the slice. Intended for tests and replays.
func WithDeck(cards []card.Card) Option {
	return func(c *config) {
		c.deck = cards
	}
}

// WithRNG shuffles the deck with the given generator, making hands
// reproducible from a seed.
func WithRNG(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithMode tags the hand as cash-game or tournament play.
func WithMode(mode Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// validate checks a resolved configuration against the variant.
func (c *config) validate(v Variant) error {
	if len(v.Streets) == 0 {
		return fmt.Errorf("%w: variant has no streets", ErrMalformedConfiguration)
	}
	for _, street := range v.Streets {
		if street.MinBet <= 0 {
			return fmt.Errorf("%w: street min bet %d", ErrMalformedConfiguration, street.MinBet)
		}
	}
	if v.holeCardCount() == 0 {
		return fmt.Errorf("%w: variant deals no hole cards", ErrMalformedConfiguration)
	}
	if c.playerCount < 2 {
		return fmt.Errorf("%w: %d players, need at least 2", ErrMalformedConfiguration, c.playerCount)
	}
	if len(c.startingStacks) != c.playerCount {
		return fmt.Errorf("%w: %d starting stacks for %d players",
			ErrMalformedConfiguration, len(c.startingStacks), c.playerCount)
	}
	for i, stack := range c.startingStacks {
		if stack <= 0 {
			return fmt.Errorf("%w: player %d starting stack %d", ErrMalformedConfiguration, i, stack)
		}
	}
	if len(c.antes) > c.playerCount {
		return fmt.Errorf("%w: %d antes for %d players", ErrMalformedConfiguration, len(c.antes), c.playerCount)
	}
	for i, ante := range c.antes {
		if ante < 0 {
			return fmt.Errorf("%w: player %d ante %d", ErrMalformedConfiguration, i, ante)
		}
	}
	if c.uniformAnte < 0 {
		return fmt.Errorf("%w: uniform ante %d", ErrMalformedConfiguration, c.uniformAnte)
	}
	if len(c.blinds) > c.playerCount {
		return fmt.Errorf("%w: %d blinds for %d players", ErrMalformedConfiguration, len(c.blinds), c.playerCount)
	}
	if v.bringIn() {
		if len(c.blinds) != 0 {
			return fmt.Errorf("%w: blinds and a bring-in cannot both be configured", ErrMalformedConfiguration)
		}
		if c.bringIn <= 0 {
			return fmt.Errorf("%w: bring-in %d", ErrMalformedConfiguration, c.bringIn)
		}
		if c.bringIn >= v.Streets[0].MinBet {
			return fmt.Errorf("%w: bring-in %d must stay below the opening bet %d",
				ErrMalformedConfiguration, c.bringIn, v.Streets[0].MinBet)
		}
	} else if c.bringIn != 0 {
		return fmt.Errorf("%w: %s takes no bring-in", ErrMalformedConfiguration, v.Name)
	}
	if c.deck != nil {
		if err := validateDeck(c.deck); err != nil {
			return err
		}
	}
	return nil
}

// validateDeck rejects supplies with duplicate cards.
func validateDeck(cards []card.Card) error {
	seen := map[card.Card]bool{}
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s in deck", ErrMalformedConfiguration, c)
		}
		seen[c] = true
	}
	return nil
}
