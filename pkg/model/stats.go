package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"
	te "github.com/muesli/termenv"
)

// statsView renders the aggregate counters for the current screen as a row
// of cards with a blended accent strip underneath.
func (b *browserModel) statsView() string {
	if b.statsErr != nil {
		return indent(redFg(fmt.Sprintf("stats unavailable: %v", b.statsErr)), 2)
	}
	if len(b.stats) == 0 {
		return indent(grayFg("Loading stats..."), 2)
	}

	keys := make([]string, 0, len(b.stats))
	for k := range b.stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cards := make([]string, 0, len(keys))
	for _, k := range keys {
		label := statLabelStyle.Render(strings.ReplaceAll(k, "_", " "))
		value := statValueStyle.Render(statValue(b.stats[k]))
		cards = append(cards, statCardStyle.Render(value+"\n"+label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return indent(row+"\n"+accentStrip(ansiWidth(row)), 2)
}

// statValue formats one counter. JSON numbers decode as float64; integral
// values render with thousands separators, everything else as-is.
func statValue(v interface{}) string {
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return humanize.Comma(int64(n))
		}
		return humanize.CommafWithDigits(n, 2)
	case string:
		return n
	default:
		return fmt.Sprintf("%v", v)
	}
}

func accentStrip(width int) string {
	if width < 2 {
		return ""
	}
	grid := colorGrid(width/2, 1)

	var s strings.Builder
	for _, hex := range grid[0] {
		s.WriteString(te.String("▔▔").Foreground(te.ColorProfile().Color(hex)).String())
	}
	return s.String()
}

func ansiWidth(block string) int {
	w := 0
	for _, line := range strings.Split(block, "\n") {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w
}
