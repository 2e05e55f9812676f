// Package simulator deals large batches of hands with random but legal
// action, aggregating pot statistics and checking chip conservation along
// the way. It doubles as a stress harness for the table state machine:
// any latched failure surfaces with the seed that reproduces it.
package simulator

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/lox/felt/card"
	"github.com/lox/felt/internal/randutil"
	"github.com/lox/felt/internal/statistics"
	"github.com/lox/felt/table"
)

// Config holds the parameters of one simulation run.
type Config struct {
	Variant table.Variant
	Hands   int
	Workers int // 0 means one per CPU
	Seats   int
	Seed    int64

	// Forced bets, passed through to the table.
	Antes          []int
	Blinds         []int
	BringIn        int
	StartingStacks []int

	// Progress receives a progress bar during the run. Nil disables it.
	Progress io.Writer
	Logger   *log.Logger
}

// Simulator runs batches of randomly played hands.
type Simulator struct {
	config Config
}

// New creates a simulator. A nil logger is replaced with a silent one.
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Seats == 0 {
		config.Seats = len(config.StartingStacks)
	}
	return &Simulator{config: config}
}

// Run deals the configured number of hands and returns the aggregated
// statistics. Hands are numbered from zero and hand i always plays with
// seed Seed+i, so results do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.config
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("simulator: hands must be positive, got %d", cfg.Hands)
	}
	if cfg.Seats < 2 {
		return nil, fmt.Errorf("simulator: need at least two seats, got %d", cfg.Seats)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Hands {
		workers = cfg.Hands
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress != nil {
		bar = progressbar.NewOptions(cfg.Hands,
			progressbar.OptionSetWriter(cfg.Progress),
			progressbar.OptionSetDescription("dealing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, workers)

	for w := 0; w < workers; w++ {
		first := w
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for hand := first; hand < cfg.Hands; hand += workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				seed := cfg.Seed + int64(hand)
				result, err := s.playHand(seed)
				if err != nil {
					return fmt.Errorf("hand %d (seed %d): %w", hand, seed, err)
				}
				stats.Add(result)
				if bar != nil {
					bar.Add(1)
				}
			}

			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		g.Wait()
	}()

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if bar != nil {
		bar.Finish()
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}
	cfg.Logger.Info("simulation complete",
		"hands", total.Hands,
		"mean_pot", total.Mean(),
		"showdown_rate", total.ShowdownRate(),
		"max_pot", total.MaxPot)
	return total, nil
}

// playHand deals one hand to completion under the random policy.
func (s *Simulator) playHand(seed int64) (statistics.HandResult, error) {
	cfg := s.config
	rng := randutil.New(seed)

	opts := []table.Option{
		table.WithPlayerCount(cfg.Seats),
		table.WithAutomations(table.AutomateAll()...),
		table.WithRNG(rng),
	}
	if cfg.StartingStacks != nil {
		opts = append(opts, table.WithStartingStacks(cfg.StartingStacks))
	}
	if cfg.Antes != nil {
		opts = append(opts, table.WithAntes(cfg.Antes))
	}
	if cfg.Blinds != nil {
		opts = append(opts, table.WithBlindsOrStraddles(cfg.Blinds))
	}
	if cfg.BringIn > 0 {
		opts = append(opts, table.WithBringIn(cfg.BringIn))
	}

	st, err := table.New(cfg.Variant, opts...)
	if err != nil {
		return statistics.HandResult{}, err
	}

	buyIn := sum(st.StartingStacks())
	result := statistics.HandResult{Seed: seed}

	for !st.Done() {
		if err := st.Err(); err != nil {
			return result, err
		}
		if err := Act(st, rng); err != nil {
			return result, err
		}
		result.Actions++
	}
	if err := st.Err(); err != nil {
		return result, err
	}

	if got := sum(st.Stacks()); got != buyIn {
		return result, fmt.Errorf("chips not conserved: %d in, %d out", buyIn, got)
	}

	summarize(st, &result)
	return result, nil
}

// Act performs one uniformly chosen legal action, standing in for
// whichever player or dealer task is due.
func Act(st *table.State, rng *rand.Rand) error {
	actions := st.LegalActions()
	if len(actions) == 0 {
		return fmt.Errorf("no legal action in phase %v", st.Phase())
	}

	switch action := actions[rng.IntN(len(actions))]; action {
	case table.ActionPostBringIn:
		_, err := st.PostBringIn()
		return err
	case table.ActionFold:
		_, err := st.Fold()
		return err
	case table.ActionCheckOrCall:
		_, err := st.CheckOrCall()
		return err
	case table.ActionCompleteBetOrRaiseTo:
		return raiseRandom(st, rng)
	case table.ActionStandPatOrDiscard:
		return discardRandom(st, rng)
	default:
		return fmt.Errorf("unexpected manual action %v", action)
	}
}

// raiseRandom bets or raises to a uniform amount between the limits.
func raiseRandom(st *table.State, rng *rand.Rand) error {
	low, err := st.MinCompletionBetOrRaiseTo()
	if err != nil {
		return err
	}
	high, err := st.MaxCompletionBetOrRaiseTo()
	if err != nil {
		return err
	}

	amount := low
	if high > low {
		amount += rng.IntN(high - low + 1)
	}
	_, err = st.CompleteBetOrRaiseTo(amount)
	return err
}

// discardRandom throws away each hole card with probability one third.
func discardRandom(st *table.State, rng *rand.Rand) error {
	drawers := st.PendingDrawers()
	if len(drawers) == 0 {
		return fmt.Errorf("no pending drawer")
	}

	hole, err := st.HoleCards(drawers[0])
	if err != nil {
		return err
	}
	var discards []card.Card
	for _, hc := range hole {
		if rng.IntN(3) == 0 {
			discards = append(discards, hc.Card)
		}
	}
	_, err = st.StandPatOrDiscard(discards...)
	return err
}

// summarize reads pots and showdowns out of the finished hand's log.
func summarize(st *table.State, result *statistics.HandResult) {
	won := make([]bool, st.PlayerCount())
	for _, op := range st.Operations() {
		switch o := op.(type) {
		case *table.ChipsPushing:
			for i, amount := range o.Amounts {
				if amount > 0 {
					won[i] = true
				}
				result.Pot += amount
			}
		case *table.HoleCardsShowingOrMucking:
			result.Showdown = true
		}
	}
	for _, w := range won {
		if w {
			result.Winners++
		}
	}
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}
