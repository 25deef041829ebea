package ui

import (
	lib "github.com/charmbracelet/charm/ui/common"
	te "github.com/muesli/termenv"
)

type StyleFunc func(string) string

const (
	DarkGrayHex = "#333333"
)

var (
	NormalFg    = NewFgStyle(lib.NewColorPair("#dddddd", "#1a1a1a"))
	DimNormalFg = NewFgStyle(lib.NewColorPair("#777777", "#A49FA5"))

	BrightGrayFg    = NewFgStyle(lib.NewColorPair("#979797", "#847A85"))
	DimBrightGrayFg = NewFgStyle(lib.NewColorPair("#4D4D4D", "#C2B8C2"))

	GrayFg     = NewFgStyle(lib.NewColorPair("#626262", "#909090"))
	MidGrayFg  = NewFgStyle(lib.NewColorPair("#4A4A4A", "#B2B2B2"))
	DarkGrayFg = NewFgStyle(lib.NewColorPair("#3C3C3C", "#DDDADA"))

	GreenFg        = NewFgStyle(lib.NewColorPair("#04B575", "#04B575"))
	SemiDimGreenFg = NewFgStyle(lib.NewColorPair("#036B46", "#35D79C"))
	DimGreenFg     = NewFgStyle(lib.NewColorPair("#0B5137", "#72D2B0"))

	FuchsiaFg    = NewFgStyle(lib.Fuschia)
	DimFuchsiaFg = NewFgStyle(lib.NewColorPair("#99519E", "#F1A8FF"))

	DullFuchsiaFg    = NewFgStyle(lib.NewColorPair("#AD58B4", "#F793FF"))
	DimDullFuchsiaFg = NewFgStyle(lib.NewColorPair("#6B3A6F", "#F6C9FF"))

	IndigoFg    = NewFgStyle(lib.Indigo)
	DimIndigoFg = NewFgStyle(lib.NewColorPair("#494690", "#9498FF"))

	YellowFg     = NewFgStyle(lib.YellowGreen) // renders light green on light backgrounds
	DullYellowFg = NewFgStyle(lib.NewColorPair("#9BA92F", "#6BCB94"))
	RedFg        = NewFgStyle(lib.Red)
	FaintRedFg   = NewFgStyle(lib.FaintRed)
)

// StatusFg colors the conventional lifecycle statuses the platform uses.
func StatusFg(status string) StyleFunc {
	switch status {
	case "ACTIVE", "COMPLETED", "APPROVED", "OPEN":
		return GreenFg
	case "PENDING", "APPEALED":
		return YellowFg
	case "FAILED", "REJECTED", "INACTIVE", "CLOSED", "RETIRED":
		return FaintRedFg
	default:
		return BrightGrayFg
	}
}

// Returns a termenv style with foreground and background options.
func NewStyle(fg, bg lib.ColorPair, bold bool) func(string) string {
	s := te.Style{}.Foreground(fg.Color()).Background(bg.Color())
	if bold {
		s = s.Bold()
	}
	return s.Styled
}

// Returns a new termenv style with background options only.
func NewFgStyle(c lib.ColorPair) StyleFunc {
	return te.Style{}.Foreground(c.Color()).Styled
}
