package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/felt/table"
	"github.com/lox/felt/variant"
)

// gameFlags are the table setup flags shared by play, deal and simulate.
type gameFlags struct {
	Variant string `kong:"default='NT',help='Variant code, run the variants command for the list'"`
	Config  string `kong:"type='existingfile',help='HCL variant file searched before the built-in catalog'"`
	Seats   int    `kong:"default='2',help='Seats at the table'"`
	Stack   int    `kong:"default='0',help='Starting stack per seat (0 means 200 times the bet)'"`
	Bet     int    `kong:"default='2',help='Small bet, the minimum bet of the variant'"`
	BigBet  int    `kong:"default='0',help='Big bet on later fixed-limit streets (0 means twice the bet)'"`
	SB      *int   `kong:"name='sb',help='Small blind (default half the bet, none for ante and bring-in games)'"`
	BB      *int   `kong:"name='bb',help='Big blind (default the bet)'"`
	Ante    int    `kong:"default='0',help='Uniform ante'"`
	BringIn int    `kong:"default='0',help='Forced bring-in for stud games'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed'"`
}

// resolveSeed picks the configured seed or derives one from the clock.
func (f gameFlags) resolveSeed() int64 {
	if f.Seed != nil {
		return *f.Seed
	}
	return time.Now().UnixNano()
}

// resolveVariant finds the variant by code, searching the HCL config file
// first when one is given and the built-in catalog otherwise.
func (f gameFlags) resolveVariant() (table.Variant, error) {
	if f.Config != "" {
		variants, err := variant.LoadHCL(f.Config)
		if err != nil {
			return table.Variant{}, err
		}
		for _, v := range variants {
			if strings.EqualFold(v.Code, f.Variant) {
				return v, nil
			}
		}
	}
	bigBet := f.BigBet
	if bigBet <= 0 {
		bigBet = 2 * f.Bet
	}
	for _, preset := range variant.Catalog() {
		if strings.EqualFold(preset.Code, f.Variant) {
			return preset.Build(f.Bet, bigBet), nil
		}
	}
	return table.Variant{}, fmt.Errorf("unknown variant %q, run 'felt variants' for the list", f.Variant)
}

// tableOptions turns the flags into table options. Automations are left
// to the caller: play keeps every operation manual, deal automates the
// dealer work.
func (f gameFlags) tableOptions(rng *rand.Rand) ([]table.Option, table.Variant, error) {
	v, err := f.resolveVariant()
	if err != nil {
		return nil, table.Variant{}, err
	}
	if f.Seats < 2 {
		return nil, table.Variant{}, fmt.Errorf("need at least 2 seats, got %d", f.Seats)
	}

	opts := []table.Option{table.WithRNG(rng)}
	if f.Stack > 0 {
		stacks := make([]int, f.Seats)
		for i := range stacks {
			stacks[i] = f.Stack
		}
		opts = append(opts, table.WithStartingStacks(stacks))
	} else {
		opts = append(opts, table.WithPlayerCount(f.Seats))
	}
	if f.Ante > 0 {
		opts = append(opts, table.WithUniformAnte(f.Ante))
	}

	sb, bb := blindDefaults(v, f.Ante, f.Bet)
	if f.SB != nil {
		sb = *f.SB
	}
	if f.BB != nil {
		bb = *f.BB
	}
	if sb > 0 || bb > 0 {
		blinds := make([]int, f.Seats)
		blinds[0], blinds[1] = sb, bb
		opts = append(opts, table.WithBlindsOrStraddles(blinds))
	}
	if f.BringIn > 0 {
		opts = append(opts, table.WithBringIn(f.BringIn))
	}
	return opts, v, nil
}

// blindDefaults derives conventional blinds from the small bet. Ante-only
// and bring-in games default to no blinds.
func blindDefaults(v table.Variant, ante, smallBet int) (int, int) {
	if ante > 0 || opensWithBringIn(v) {
		return 0, 0
	}
	sb := smallBet / 2
	if sb < 1 {
		sb = 1
	}
	return sb, smallBet
}

// opensWithBringIn reports whether the variant's first street is opened by
// a forced bring-in instead of position.
func opensWithBringIn(v table.Variant) bool {
	if len(v.Streets) == 0 {
		return false
	}
	opening := v.Streets[0].Opening
	return opening == table.OpeningLowCard || opening == table.OpeningHighCard
}

// setupLogger builds the CLI logger on stderr.
func setupLogger(debug bool) *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}
	if debug {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, opts)
}

// signalContext is cancelled on interrupt so long runs can stop cleanly.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
