// Package display renders simulation results for terminals: the per-player
// equity table, the bit-grid pretty printer and the interactive REPL.
package display

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-equity/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	seatStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	equityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	potStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// ResultTable renders the per-player outcome of games simulations: equity,
// win and tie percentages, then the raw pot tallies.
func ResultTable(results []poker.Result, games int) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("equity"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("pots won"),
		headerStyle.Render("pots tied"))

	for i, r := range results {
		winPct := float64(r.Wins) * 100 / float64(games)
		tiePct := float64(r.Ties) * 100 / float64(poker.TieUnit) / float64(games)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			seatStyle.Render(fmt.Sprintf("P%d:", i+1)),
			equityStyle.Render(fmt.Sprintf("%6.2f%%", r.Equity(games)*100)),
			equityStyle.Render(fmt.Sprintf("%6.2f%%", winPct)),
			tieStyle.Render(fmt.Sprintf("%6.2f%%", tiePct)),
			potStyle.Render(fmt.Sprintf("%9d", r.Wins)),
			potStyle.Render(fmt.Sprintf("%9.2f", float64(r.Ties)/float64(poker.TieUnit))))
	}

	w.Flush()
	return sb.String()
}

// Category names the strongest combination in an evaluated hand's flags.
func Category(flags uint32) string {
	switch {
	case flags&poker.FlagStraightFlush != 0:
		return "straight flush"
	case flags&poker.FlagQuad != 0:
		return "four of a kind"
	case flags&poker.FlagFullHouse != 0:
		return "full house"
	case flags&poker.FlagFlush != 0:
		return "flush"
	case flags&poker.FlagStraight != 0:
		return "straight"
	case flags&poker.FlagSet != 0:
		return "three of a kind"
	case flags&poker.FlagDoublePair != 0:
		return "two pair"
	case flags&poker.FlagPair != 0:
		return "pair"
	default:
		return "high card"
	}
}
