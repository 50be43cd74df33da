package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/seedbed/namesprout/flower"
)

// blossomStyle colors the anchor letter and its glyph.
func blossomStyle(f flower.Flower) tcell.Style {
	return tcell.StyleDefault.Foreground(hexColor(f.Blossom)).Bold(true)
}

func stalkStyle(f flower.Flower) tcell.Style {
	return tcell.StyleDefault.Foreground(hexColor(f.Stem)).Dim(true)
}

// letterStyle shades letter i of n. The anchor gets the blossom color; the
// rest blend from the stem color toward a paler tint along the row.
func letterStyle(f flower.Flower, i, n int) tcell.Style {
	if i == 0 {
		return blossomStyle(f)
	}
	base, err := colorful.Hex(f.Stem)
	if err != nil {
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	pale, _ := colorful.Hex("#d9f99d")
	t := 0.0
	if n > 2 {
		t = float64(i-1) / float64(n-2)
	}
	c := base.BlendLuv(pale, t*0.6).Clamped()
	cr, cg, cb := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
}

func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorGreen
	}
	cr, cg, cb := c.RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}
