// Package tui plays one hand interactively in the terminal. Whoever is
// due to act types the action, so a single keyboard drives every seat.
// Dealer work (antes, burns, deals, payouts) advances on a clock tick,
// which keeps the hand unfolding at a watchable pace.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/felt/card"
	"github.com/lox/felt/table"
)

// tickMsg asks the model to perform the next piece of dealer work.
type tickMsg struct{}

// Model is the Bubble Tea model for one hand.
type Model struct {
	state  *table.State
	names  []string
	clock  quartz.Clock
	pace   time.Duration
	logger *log.Logger
	styles Styles

	viewport viewport.Model
	input    textinput.Model

	lines    []string
	width    int
	height   int
	quitting bool
}

// Option configures the model.
type Option func(*Model)

// WithClock substitutes the clock that paces dealer work.
func WithClock(clock quartz.Clock) Option {
	return func(m *Model) { m.clock = clock }
}

// WithPace sets the delay between automatic dealer operations.
func WithPace(pace time.Duration) Option {
	return func(m *Model) { m.pace = pace }
}

// WithPlayerNames labels the seats. Seats beyond the slice fall back to
// p1, p2 and so on.
func WithPlayerNames(names []string) Option {
	return func(m *Model) { m.names = names }
}

// WithLogger routes diagnostics somewhere other than the screen.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithStyles overrides the adaptive default palette.
func WithStyles(styles Styles) Option {
	return func(m *Model) { m.styles = styles }
}

// New builds the model for one hand. The state must have been created
// without automations: the model performs the dealer operations itself,
// one tick at a time.
func New(st *table.State, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "check, call, bet 10, raise to 40, fold ..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	m := &Model{
		state:    st,
		clock:    quartz.NewReal(),
		pace:     600 * time.Millisecond,
		logger:   log.New(io.Discard),
		styles:   DefaultStyles(),
		viewport: viewport.New(60, 10),
		input:    ti,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.addEntry(m.styles.Street.Render("new hand: " + st.Variant().Name))
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

// tick waits one pace interval on the injected clock and then asks for
// the next dealer step.
func (m *Model) tick() tea.Cmd {
	return func() tea.Msg {
		fired := make(chan struct{})
		timer := m.clock.AfterFunc(m.pace, func() { close(fired) })
		defer timer.Stop()
		<-fired
		return tickMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		m.stepDealer()
		if !m.state.Done() && m.state.Err() == nil && !m.quitting {
			cmds = append(cmds, m.tick())
		}

	case tea.WindowSizeMsg:
		m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-5, 3)
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line != "" && m.execute(line) {
				m.quitting = true
				return m, tea.Sequence(tea.ClearScreen, tea.Quit)
			}
		case "pgup":
			m.viewport.HalfPageUp()
		case "pgdown":
			m.viewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// stepDealer performs at most one pending non-interactive operation and
// narrates it. Betting, draw and showdown decisions are left for the
// command prompt.
func (m *Model) stepDealer() bool {
	st := m.state
	if st.Done() || st.Err() != nil {
		return false
	}
	actions := st.LegalActions()
	if len(actions) == 0 {
		return false
	}

	switch actions[0] {
	case table.ActionPostAnte:
		posters := st.PendingAntePosters()
		op, err := st.PostAnte(posters[0])
		if err != nil {
			return m.fail(err)
		}
		m.addEntry(fmt.Sprintf("%s posts ante %d", m.name(op.PlayerIndex), op.Amount))

	case table.ActionCollectBets:
		if _, err := st.CollectBets(); err != nil {
			return m.fail(err)
		}
		m.addEntry(m.styles.Pot.Render(fmt.Sprintf("pot is %d", st.TotalPot())))

	case table.ActionPostBlindOrStraddle:
		posters := st.PendingBlindPosters()
		op, err := st.PostBlindOrStraddle(posters[0])
		if err != nil {
			return m.fail(err)
		}
		m.addEntry(fmt.Sprintf("%s posts blind %d", m.name(op.PlayerIndex), op.Amount))

	case table.ActionBurnCard:
		if _, err := st.BurnCard(); err != nil {
			return m.fail(err)
		}
		m.addEntry(m.styles.Muted.Render("dealer burns a card"))

	case table.ActionDealHole:
		op, err := st.DealHole()
		if err != nil {
			return m.fail(err)
		}
		m.addEntry(fmt.Sprintf("%s is dealt %s", m.name(op.PlayerIndex), m.dealtCards(op.Cards, op.Statuses)))

	case table.ActionDealBoard:
		if _, err := st.DealBoard(); err != nil {
			return m.fail(err)
		}
		m.addEntry(m.styles.Street.Render("board: ") + m.cards(st.Board()))

	case table.ActionKillHand:
		kills := st.PendingHandKills()
		op, err := st.KillHand(kills[0])
		if err != nil {
			return m.fail(err)
		}
		m.addEntry(fmt.Sprintf("%s's hand is killed", m.name(op.PlayerIndex)))

	case table.ActionPushChips:
		op, err := st.PushChips()
		if err != nil {
			return m.fail(err)
		}
		for i, amount := range op.Amounts {
			if amount > 0 {
				m.addEntry(m.styles.Pot.Render(fmt.Sprintf("%s wins %d", m.name(i), amount)))
			}
		}

	case table.ActionPullChips:
		pulls := st.PendingChipsPulls()
		if _, err := st.PullChips(pulls[0]); err != nil {
			return m.fail(err)
		}

	default:
		// Someone has a decision to make; wait for the prompt.
		return false
	}

	if st.Done() {
		m.finish()
	}
	m.refresh()
	return true
}

// execute runs one typed command. It reports whether the user asked to
// leave the table.
func (m *Model) execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	verb := strings.ToLower(fields[0])
	m.logger.Debug("command", "verb", verb, "line", line)

	st := m.state
	var err error
	switch verb {
	case "quit", "q", "exit":
		return true

	case "help", "?":
		m.addHelp()

	case "fold", "f":
		var op *table.Folding
		if op, err = st.Fold(); err == nil {
			m.addEntry(fmt.Sprintf("%s folds", m.name(op.PlayerIndex)))
		}

	case "check", "call", "c":
		var op *table.CheckingOrCalling
		if op, err = st.CheckOrCall(); err == nil {
			if op.Amount == 0 {
				m.addEntry(fmt.Sprintf("%s checks", m.name(op.PlayerIndex)))
			} else {
				m.addEntry(fmt.Sprintf("%s calls %d", m.name(op.PlayerIndex), op.Amount))
			}
		}

	case "bet", "b", "raise", "r":
		args := fields[1:]
		if len(args) > 0 && strings.EqualFold(args[0], "to") {
			args = args[1:]
		}
		if len(args) == 0 {
			m.addEntry(m.styles.Error.Render("amount missing, e.g. 'raise to 40'"))
			break
		}
		amount, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			m.addEntry(m.styles.Error.Render("bad amount " + args[0]))
			break
		}
		unopened := false
		if toCall, callErr := st.CheckOrCallAmount(); callErr == nil && toCall == 0 {
			unopened = true
		}
		var op *table.CompletionBettingOrRaisingTo
		if op, err = st.CompleteBetOrRaiseTo(amount); err == nil {
			if unopened {
				m.addEntry(fmt.Sprintf("%s bets %d", m.name(op.PlayerIndex), op.Amount))
			} else {
				m.addEntry(fmt.Sprintf("%s raises to %d", m.name(op.PlayerIndex), op.Amount))
			}
		}

	case "bringin", "bring":
		var op *table.BringInPosting
		if op, err = st.PostBringIn(); err == nil {
			m.addEntry(fmt.Sprintf("%s posts the bring-in %d", m.name(op.PlayerIndex), op.Amount))
		}

	case "pat", "stand":
		var op *table.StandingPatOrDiscarding
		if op, err = st.StandPatOrDiscard(); err == nil {
			m.addEntry(fmt.Sprintf("%s stands pat", m.name(op.PlayerIndex)))
		}

	case "discard", "draw", "d":
		var discards []card.Card
		if discards, err = card.ParseCards(strings.Join(fields[1:], " ")); err != nil {
			break
		}
		var op *table.StandingPatOrDiscarding
		if op, err = st.StandPatOrDiscard(discards...); err == nil {
			if len(op.Cards) == 0 {
				m.addEntry(fmt.Sprintf("%s stands pat", m.name(op.PlayerIndex)))
			} else {
				m.addEntry(fmt.Sprintf("%s discards %s", m.name(op.PlayerIndex), m.cards(op.Cards)))
			}
		}

	case "show", "s":
		var op *table.HoleCardsShowingOrMucking
		if op, err = st.ShowOrMuckHoleCards(true); err == nil {
			m.addEntry(fmt.Sprintf("%s shows %s", m.name(op.PlayerIndex), m.cards(op.Cards)))
		}

	case "muck", "m":
		var op *table.HoleCardsShowingOrMucking
		if op, err = st.ShowOrMuckHoleCards(false); err == nil {
			m.addEntry(fmt.Sprintf("%s mucks", m.name(op.PlayerIndex)))
		}

	default:
		m.addEntry(m.styles.Error.Render(fmt.Sprintf("unknown command %q, try 'help'", verb)))
	}

	if err != nil {
		m.addEntry(m.styles.Error.Render(err.Error()))
	}
	if st.Done() {
		m.finish()
	}
	m.refresh()
	return false
}

func (m *Model) addHelp() {
	for _, line := range []string{
		"commands:",
		"  check / call        match the current bet",
		"  bet N, raise to N   wager N in total for the street",
		"  bringin             post the forced bring-in",
		"  fold                give up the hand",
		"  pat, discard <cc>   draw decision, e.g. 'discard Ah 2c'",
		"  show / muck         showdown decision",
		"  quit                leave the table",
	} {
		m.addEntry(m.styles.Muted.Render(line))
	}
}

func (m *Model) finish() {
	m.addEntry("")
	m.addEntry(m.styles.Title.Render(" hand complete "))
	for i, stack := range m.state.Stacks() {
		m.addEntry(fmt.Sprintf("%s: %d", m.name(i), stack))
	}
	m.addEntry(m.styles.Muted.Render("press ctrl+c to leave"))
}

func (m *Model) fail(err error) bool {
	m.logger.Error("dealer operation failed", "error", err)
	m.addEntry(m.styles.Error.Render(err.Error()))
	m.refresh()
	return false
}

func (m *Model) addEntry(line string) {
	m.lines = append(m.lines, line)
}

func (m *Model) refresh() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) name(playerIndex int) string {
	if playerIndex < len(m.names) && m.names[playerIndex] != "" {
		return m.names[playerIndex]
	}
	return fmt.Sprintf("p%d", playerIndex+1)
}

func (m *Model) cardStyle(c card.Card) lipgloss.Style {
	if c.IsRed() {
		return m.styles.RedCard
	}
	return m.styles.BlackCard
}

func (m *Model) cards(cs []card.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = m.cardStyle(c).Render(c.String())
	}
	return strings.Join(parts, " ")
}

// dealtCards renders one deal, face-down cards bracketed and face-up
// cards bare, the way stud hands are usually written.
func (m *Model) dealtCards(cs []card.Card, faceUp []bool) string {
	var down, up []string
	for i, c := range cs {
		rendered := m.cardStyle(c).Render(c.String())
		if i < len(faceUp) && faceUp[i] {
			up = append(up, rendered)
		} else {
			down = append(down, rendered)
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

// holeString renders a seat's current hole cards for the prompt line.
func (m *Model) holeString(playerIndex int) string {
	hole, err := m.state.HoleCards(playerIndex)
	if err != nil || len(hole) == 0 {
		return ""
	}
	cs := make([]card.Card, 0, len(hole))
	faceUp := make([]bool, 0, len(hole))
	for _, hc := range hole {
		if hc.Visibility == table.Mucked {
			continue
		}
		cs = append(cs, hc.Card)
		faceUp = append(faceUp, hc.Visibility == table.Revealed)
	}
	return m.dealtCards(cs, faceUp)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.styles.Title.Render(" " + m.state.Variant().Name + " ")
	help := m.styles.Muted.Render("enter to act, 'help' for commands, ctrl+c to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.viewport.View(),
		m.statusLine(),
		m.promptLine(),
		m.input.View(),
		help,
	)
}

func (m *Model) statusLine() string {
	st := m.state
	pot := st.TotalPot()
	for _, bet := range st.Bets() {
		pot += bet
	}
	parts := []string{m.styles.Pot.Render(fmt.Sprintf("pot %d", pot))}
	if idx := st.StreetIndex(); idx >= 0 {
		parts = append(parts, fmt.Sprintf("street %d/%d", idx+1, len(st.Variant().Streets)))
	}
	stacks := st.Stacks()
	for i, stack := range stacks {
		parts = append(parts, fmt.Sprintf("%s %d", m.name(i), stack))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) promptLine() string {
	st := m.state
	if err := st.Err(); err != nil {
		return m.styles.Error.Render("hand failed: " + err.Error())
	}
	if st.Done() {
		return m.styles.Prompt.Render("hand complete")
	}
	if i, ok := st.ActorIndex(); ok {
		prompt := m.name(i)
		if hole := m.holeString(i); hole != "" {
			prompt += " " + hole
		}
		return m.styles.Prompt.Render(prompt+" to act ") + m.choices()
	}
	if drawers := st.PendingDrawers(); len(drawers) > 0 {
		prompt := m.name(drawers[0])
		if hole := m.holeString(drawers[0]); hole != "" {
			prompt += " " + hole
		}
		return m.styles.Prompt.Render(prompt + " to draw ") + m.styles.Muted.Render("('pat' or 'discard <cards>')")
	}
	if i, ok := st.ShowdownIndex(); ok {
		prompt := m.name(i)
		if hole := m.holeString(i); hole != "" {
			prompt += " " + hole
		}
		return m.styles.Prompt.Render(prompt + " at showdown ") + m.styles.Muted.Render("('show' or 'muck')")
	}
	return m.styles.Muted.Render("dealer is working")
}

// choices summarises the legal betting actions with their amounts.
func (m *Model) choices() string {
	st := m.state
	var parts []string
	if st.CanPostBringIn() {
		parts = append(parts, "bringin")
	}
	if st.CanCheckOrCall() {
		if amount, err := st.CheckOrCallAmount(); err == nil {
			if amount == 0 {
				parts = append(parts, "check")
			} else {
				parts = append(parts, fmt.Sprintf("call %d", amount))
			}
		}
	}
	if st.CanCompleteBetOrRaiseTo() {
		low, lowErr := st.MinCompletionBetOrRaiseTo()
		high, highErr := st.MaxCompletionBetOrRaiseTo()
		if lowErr == nil && highErr == nil {
			if low == high {
				parts = append(parts, fmt.Sprintf("raise to %d", low))
			} else {
				parts = append(parts, fmt.Sprintf("raise to %d..%d", low, high))
			}
		}
	}
	if st.CanFold() {
		parts = append(parts, "fold")
	}
	return m.styles.Muted.Render("(" + strings.Join(parts, ", ") + ")")
}
