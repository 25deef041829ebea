package model

import (
	lib "github.com/charmbracelet/charm/ui/common"
	te "github.com/muesli/termenv"
)

type styleFunc func(string) string

var (
	normalFg    = newFgStyle(lib.NewColorPair("#dddddd", "#1a1a1a"))
	dimNormalFg = newFgStyle(lib.NewColorPair("#777777", "#A49FA5"))

	brightGrayFg    = newFgStyle(lib.NewColorPair("#979797", "#847A85"))
	dimBrightGrayFg = newFgStyle(lib.NewColorPair("#4D4D4D", "#C2B8C2"))

	grayFg     = newFgStyle(lib.NewColorPair("#626262", "#909090"))
	darkGrayFg = newFgStyle(lib.NewColorPair("#3C3C3C", "#DDDADA"))

	greenFg        = newFgStyle(lib.NewColorPair("#04B575", "#04B575"))
	semiDimGreenFg = newFgStyle(lib.NewColorPair("#036B46", "#35D79C"))
	dimGreenFg     = newFgStyle(lib.NewColorPair("#0B5137", "#72D2B0"))

	fuchsiaFg     = newFgStyle(lib.Fuschia)
	dullFuchsiaFg = newFgStyle(lib.NewColorPair("#AD58B4", "#F793FF"))

	yellowFg     = newFgStyle(lib.YellowGreen) // renders light green on light backgrounds
	dullYellowFg = newFgStyle(lib.NewColorPair("#9BA92F", "#6BCB94"))
	redFg        = newFgStyle(lib.Red)
	faintRedFg   = newFgStyle(lib.FaintRed)

	tabColor         = newFgStyle(lib.NewColorPair("#962fbf", "#962fbf"))
	selectedTabColor = newFgStyle(lib.NewColorPair("#d62976", "#d62976"))
)

// Returns a new termenv style with foreground options only.
func newFgStyle(c lib.ColorPair) styleFunc {
	return te.Style{}.Foreground(c.Color()).Styled
}
