package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/poker"
)

const replHelp = `commands:
  go <spot> [games] [threads]   simulate a spot, e.g. go 2P AhAd KsKd 200000 4
  bench [threads]               run the reference benchmark
  show <card> ...               accumulate cards and show the hand grids
  help                          this text
  quit                          leave`

// outputMsg carries a finished command's output back into the model.
type outputMsg string

// ReplModel is the interactive front end: a viewport of scrollback above a
// single command line.
type ReplModel struct {
	viewport viewport.Model
	input    textinput.Model
	lines    []string

	defaultGames   int
	defaultThreads int

	busy     bool
	quitting bool
	width    int
	height   int
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	paneStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// NewRepl builds the REPL with the given simulation defaults.
func NewRepl(games, threads int) *ReplModel {
	vp := viewport.New(100, 24)

	ti := textinput.New()
	ti.Placeholder = "go 2P AhAd KsKd"
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 120
	ti.Focus()

	m := &ReplModel{
		viewport:       vp,
		input:          ti,
		defaultGames:   games,
		defaultThreads: threads,
	}
	m.appendLines(replHelp)
	return m
}

// Init implements tea.Model.
func (m *ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 5
		m.input.Width = msg.Width - 8
		m.refresh()

	case outputMsg:
		m.busy = false
		m.appendLines(string(msg))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			m.appendLines("> " + line)
			if fields := strings.Fields(line); fields[0] == "quit" || fields[0] == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.busy = true
			return m, m.runCommand(line)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *ReplModel) View() string {
	if m.quitting {
		return ""
	}
	input := m.input.View()
	if m.busy {
		input = "running..."
	}
	return paneStyle.Render(m.viewport.View()) + "\n" + input + "\n"
}

func (m *ReplModel) appendLines(block string) {
	m.lines = append(m.lines, strings.Split(block, "\n")...)
	m.refresh()
}

func (m *ReplModel) refresh() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// runCommand executes one REPL line off the UI loop.
func (m *ReplModel) runCommand(line string) tea.Cmd {
	games, threads := m.defaultGames, m.defaultThreads
	return func() tea.Msg {
		fields := strings.Fields(line)
		switch fields[0] {
		case "go":
			return outputMsg(goCommand(fields[1:], games, threads))
		case "bench":
			return outputMsg(benchCommand(fields[1:], threads))
		case "show":
			return outputMsg(showCommand(fields[1:]))
		case "help":
			return outputMsg(replHelp)
		default:
			return outputMsg(errStyle.Render(fmt.Sprintf("unknown command %q, try help", fields[0])))
		}
	}
}

// SplitTrailingInts peels up to two trailing integer arguments off a spot
// line, so "go 2P AhAd 200000 4" parses without delimiters.
func SplitTrailingInts(args []string) (spot []string, nums []int) {
	spot = args
	for len(spot) > 0 && len(nums) < 2 {
		n, err := strconv.Atoi(spot[len(spot)-1])
		if err != nil {
			break
		}
		nums = append([]int{n}, nums...)
		spot = spot[:len(spot)-1]
	}
	return spot, nums
}

func goCommand(args []string, games, threads int) string {
	spotFields, nums := SplitTrailingInts(args)
	if len(nums) > 0 {
		games = nums[0]
	}
	if len(nums) > 1 {
		threads = nums[1]
	}
	games = (&poker.Pool{Threads: threads}).Games(games)

	s, err := poker.NewSpot(strings.Join(spotFields, " "))
	if err != nil {
		return errStyle.Render(err.Error())
	}

	start := time.Now()
	results := poker.Run(s, games, threads)
	elapsed := time.Since(start).Truncate(time.Millisecond)

	return ResultTable(results, games) +
		fmt.Sprintf("%d games in %v on %d threads", games, elapsed, threads)
}

func benchCommand(args []string, threads int) string {
	if _, nums := SplitTrailingInts(args); len(nums) > 0 {
		threads = nums[0]
	}

	var sb strings.Builder
	stats, err := bench.Run(bench.Options{
		Threads: threads,
		OnSpot: func(i int, r bench.SpotResult) {
			fmt.Fprintf(&sb, "position %d: %s\n%s\n", i+1, r.Spot, ResultTable(r.Results, r.Games))
		},
	})
	if err != nil {
		return errStyle.Render(err.Error())
	}

	verdict := "FAIL"
	if stats.OK {
		verdict = "OK"
	}
	fmt.Fprintf(&sb, "total time (ms): %d\nspots played (M): %d\ncards/second: %d\nspots/second: %d\nsignature: %d (%s)",
		stats.Elapsed.Milliseconds(), stats.Spots/1_000_000,
		stats.CardsPerSecond(), stats.SpotsPerSecond(), stats.Signature, verdict)
	return sb.String()
}

func showCommand(args []string) string {
	var h poker.Hand
	var all poker.Card64
	for _, tok := range args {
		c, err := poker.ParseCard(tok)
		if err != nil {
			return errStyle.Render(err.Error())
		}
		if !h.Add(c, all) {
			return errStyle.Render(fmt.Sprintf("duplicate card %s", tok))
		}
		all |= c.Bit()
	}
	if h.Count() == 0 {
		return errStyle.Render("show needs at least one card")
	}

	out := "hand:" + Grid(uint64(h.Colors), true)
	if h.Count() >= 5 {
		h.Eval()
		out += fmt.Sprintf("\n%s, score:%s", Category(h.Flags), Grid(h.Score, false))
	}
	return out
}
