package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/felt/card"
	"github.com/lox/felt/internal/randutil"
	"github.com/lox/felt/internal/simulator"
	"github.com/lox/felt/phh"
	"github.com/lox/felt/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	potStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
)

// DealCmd deals one hand, resolving every decision with a seeded random
// policy, and prints what happened.
type DealCmd struct {
	gameFlags
	History string `kong:"type='path',help='Write the finished hand as PHH to this file'"`
	Table   string `kong:"help='Table label recorded in the hand history'"`
}

func (c *DealCmd) Run() error {
	seed := c.resolveSeed()
	rng := randutil.New(seed)
	opts, v, err := c.tableOptions(rng)
	if err != nil {
		return err
	}
	opts = append(opts, table.WithAutomations(table.AutomateAll()...))

	st, err := table.New(v, opts...)
	if err != nil {
		return err
	}
	for !st.Done() {
		if err := st.Err(); err != nil {
			return fmt.Errorf("hand failed (seed %d): %w", seed, err)
		}
		if err := simulator.Act(st, rng); err != nil {
			return fmt.Errorf("hand stalled (seed %d): %w", seed, err)
		}
	}

	fmt.Println(titleStyle.Render(" " + v.Name + " "))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("seed %d", seed)))
	narrate(os.Stdout, st)

	if c.History != "" {
		hh, err := phh.FromState(st, phh.Meta{Table: c.Table, Played: time.Now()})
		if err != nil {
			return err
		}
		if err := phh.WriteFile(c.History, hh); err != nil {
			return err
		}
		fmt.Println(mutedStyle.Render("hand history written to " + c.History))
	}
	return nil
}

// narrate replays the operation log as dealer talk.
func narrate(w io.Writer, st *table.State) {
	seat := func(i int) string { return fmt.Sprintf("p%d", i+1) }
	pot := 0
	var board []card.Card

	for _, op := range st.Operations() {
		switch op := op.(type) {
		case *table.AntePosting:
			fmt.Fprintf(w, "%s posts ante %d\n", seat(op.PlayerIndex), op.Amount)
		case *table.BetCollection:
			for _, bet := range op.Bets {
				pot += bet
			}
			fmt.Fprintln(w, potStyle.Render(fmt.Sprintf("pot is %d", pot)))
		case *table.BlindOrStraddlePosting:
			fmt.Fprintf(w, "%s posts blind %d\n", seat(op.PlayerIndex), op.Amount)
		case *table.CardBurning:
			fmt.Fprintln(w, mutedStyle.Render("dealer burns a card"))
		case *table.HoleDealing:
			fmt.Fprintf(w, "%s is dealt %s\n", seat(op.PlayerIndex), renderDeal(op.Cards, op.Statuses))
		case *table.BoardDealing:
			board = append(board, op.Cards...)
			fmt.Fprintf(w, "board: %s\n", renderCards(board))
		case *table.StandingPatOrDiscarding:
			if len(op.Cards) == 0 {
				fmt.Fprintf(w, "%s stands pat\n", seat(op.PlayerIndex))
			} else {
				fmt.Fprintf(w, "%s discards %s\n", seat(op.PlayerIndex), renderCards(op.Cards))
			}
		case *table.BringInPosting:
			fmt.Fprintf(w, "%s posts the bring-in %d\n", seat(op.PlayerIndex), op.Amount)
		case *table.Folding:
			fmt.Fprintf(w, "%s folds\n", seat(op.PlayerIndex))
		case *table.CheckingOrCalling:
			if op.Amount == 0 {
				fmt.Fprintf(w, "%s checks\n", seat(op.PlayerIndex))
			} else {
				fmt.Fprintf(w, "%s calls %d\n", seat(op.PlayerIndex), op.Amount)
			}
		case *table.CompletionBettingOrRaisingTo:
			fmt.Fprintf(w, "%s makes it %d\n", seat(op.PlayerIndex), op.Amount)
		case *table.HoleCardsShowingOrMucking:
			if len(op.Cards) == 0 {
				fmt.Fprintf(w, "%s mucks\n", seat(op.PlayerIndex))
			} else {
				fmt.Fprintf(w, "%s shows %s\n", seat(op.PlayerIndex), renderCards(op.Cards))
			}
		case *table.HandKilling:
			fmt.Fprintf(w, "%s's hand is killed\n", seat(op.PlayerIndex))
		case *table.ChipsPushing:
			for i, amount := range op.Amounts {
				if amount > 0 {
					fmt.Fprintln(w, potStyle.Render(fmt.Sprintf("%s wins %d", seat(i), amount)))
				}
			}
		case *table.NoOperation:
			if op.Commentary != "" {
				fmt.Fprintln(w, mutedStyle.Render(op.Commentary))
			}
		}
	}

	stacks := st.Stacks()
	parts := make([]string, len(stacks))
	for i, stack := range stacks {
		parts[i] = fmt.Sprintf("%s %d", seat(i), stack)
	}
	fmt.Fprintf(w, "stacks: %s\n", strings.Join(parts, "  "))
}

func styleCard(c card.Card) string {
	if c.IsRed() {
		return redStyle.Render(c.String())
	}
	return blackStyle.Render(c.String())
}

func renderCards(cs []card.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = styleCard(c)
	}
	return strings.Join(parts, " ")
}

// renderDeal brackets face-down cards and leaves face-up cards bare.
func renderDeal(cs []card.Card, faceUp []bool) string {
	var down, up []string
	for i, c := range cs {
		if i < len(faceUp) && faceUp[i] {
			up = append(up, styleCard(c))
		} else {
			down = append(down, styleCard(c))
		}
	}
	out := ""
	if len(down) > 0 {
		out = "[" + strings.Join(down, " ") + "]"
	}
	if len(up) > 0 {
		if out != "" {
			out += " "
		}
		out += strings.Join(up, " ")
	}
	return out
}
