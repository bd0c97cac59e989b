package greet

import "github.com/gdamore/tcell/v2"

// ColorPair is a foreground/background combination drawn on one variant row.
type ColorPair struct {
	Fg tcell.Color
	Bg tcell.Color
}

// Variant pair table, in draw order. tcell follows W3C color naming, so the
// ANSI base palette maps red to ColorMaroon, yellow to ColorOlive, blue to
// ColorNavy, magenta to ColorPurple, cyan to ColorTeal and white to
// ColorSilver.
var colorPairs = [13]ColorPair{
	{tcell.ColorMaroon, tcell.ColorBlack},  // red on black
	{tcell.ColorGreen, tcell.ColorBlack},   // green on black
	{tcell.ColorOlive, tcell.ColorBlack},   // yellow on black
	{tcell.ColorNavy, tcell.ColorBlack},    // blue on black
	{tcell.ColorPurple, tcell.ColorBlack},  // magenta on black
	{tcell.ColorTeal, tcell.ColorBlack},    // cyan on black
	{tcell.ColorNavy, tcell.ColorSilver},   // blue on white
	{tcell.ColorSilver, tcell.ColorMaroon}, // white on red
	{tcell.ColorBlack, tcell.ColorGreen},   // black on green
	{tcell.ColorNavy, tcell.ColorOlive},    // blue on yellow
	{tcell.ColorSilver, tcell.ColorNavy},   // white on blue
	{tcell.ColorSilver, tcell.ColorPurple}, // white on magenta
	{tcell.ColorBlack, tcell.ColorTeal},    // black on cyan
}

// ColorPairs returns a copy of the variant pair table in draw order.
func ColorPairs() []ColorPair {
	pairs := make([]ColorPair, len(colorPairs))
	copy(pairs, colorPairs[:])
	return pairs
}

// Style converts the pair to a tcell style on the default base.
func (p ColorPair) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(p.Fg).Background(p.Bg)
}
