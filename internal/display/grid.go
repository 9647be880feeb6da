package display

import "strings"

// Grid renders a 64-bit row/rank word as an X-marked table, one 16-bit row
// per line. With headers on, the rows are labelled with the suit letters and
// only the 13 rank columns are drawn, which suits a colors word; without
// headers all 16 columns appear, which suits a score word where the upper
// bits carry the combination flags.
func Grid(b uint64, headers bool) string {
	var sb strings.Builder
	rule := "    +---+---+---+---+---+---+---+---+---+---+---+---+---+"
	tail := "---+---+---+\n"
	if headers {
		tail = "\n"
	}

	sb.WriteByte('\n')
	if headers {
		sb.WriteString("    | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9 | T | J | Q | K | A \n")
	}
	sb.WriteString(rule + tail)

	for r := 3; r >= 0; r-- {
		if headers {
			sb.WriteString("   ")
			sb.WriteByte("dhcs"[r])
		} else {
			sb.WriteString("    ")
		}

		cols := 16
		if headers {
			cols = 13
		}
		for f := 0; f < cols; f++ {
			if b&(1<<(r*16+f)) != 0 {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}

		sb.WriteString("|\n")
		sb.WriteString(rule + tail)
	}

	return sb.String()
}
