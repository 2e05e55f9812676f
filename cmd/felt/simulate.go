package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lox/felt/internal/simulator"
)

// SimulateCmd deals hands in bulk with the random policy and reports pot
// statistics. A fixed seed reproduces the run exactly, whatever the
// worker count.
type SimulateCmd struct {
	gameFlags
	Hands   int  `kong:"default='1000',help='Hands to deal'"`
	Workers int  `kong:"default='0',help='Worker goroutines (0 means one per CPU)'"`
	Debug   bool `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	v, err := c.resolveVariant()
	if err != nil {
		return err
	}
	seed := c.resolveSeed()
	logger := setupLogger(c.Debug)

	cfg := simulator.Config{
		Variant: v,
		Hands:   c.Hands,
		Workers: c.Workers,
		Seats:   c.Seats,
		Seed:    seed,
		BringIn: c.BringIn,
		Logger:  logger,
	}
	if c.Ante > 0 {
		antes := make([]int, c.Seats)
		for i := range antes {
			antes[i] = c.Ante
		}
		cfg.Antes = antes
	}
	sb, bb := blindDefaults(v, c.Ante, c.Bet)
	if c.SB != nil {
		sb = *c.SB
	}
	if c.BB != nil {
		bb = *c.BB
	}
	if sb > 0 || bb > 0 {
		blinds := make([]int, c.Seats)
		blinds[0], blinds[1] = sb, bb
		cfg.Blinds = blinds
	}
	if c.Stack > 0 {
		stacks := make([]int, c.Seats)
		for i := range stacks {
			stacks[i] = c.Stack
		}
		cfg.StartingStacks = stacks
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		cfg.Progress = os.Stderr
	}

	ctx, cancel := signalContext()
	defer cancel()

	logger.Info("simulating", "variant", v.Name, "hands", c.Hands, "seats", c.Seats, "seed", seed)
	stats, err := simulator.New(cfg).Run(ctx)
	if err != nil {
		return err
	}

	low, high := stats.ConfidenceInterval95()
	fmt.Printf("hands          %d\n", stats.Hands)
	fmt.Printf("mean pot       %.2f (95%% CI %.2f..%.2f)\n", stats.Mean(), low, high)
	fmt.Printf("pot stddev     %.2f\n", stats.StdDev())
	fmt.Printf("max pot        %d\n", stats.MaxPot)
	fmt.Printf("showdown rate  %.1f%%\n", 100*stats.ShowdownRate())
	fmt.Printf("split pots     %d\n", stats.SplitPots)
	fmt.Printf("actions/hand   %.1f\n", stats.ActionsPerHand())
	return nil
}
