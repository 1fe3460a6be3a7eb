package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var textOp = &text.DrawOptions{}

// drawText draws s with its top anchored at y and aligned horizontally
// around x.
func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	drawTextScaled(screen, s, face, x, y, 1, clr, align)
}

func drawTextScaled(screen *ebiten.Image, s string, face text.Face, x, y, scale float64, clr color.Color, align text.Align) {
	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	textOp.GeoM.Scale(scale, scale)
	textOp.GeoM.Translate(x, y)
	textOp.ColorScale.ScaleWithColor(clr)
	textOp.PrimaryAlign = align
	textOp.SecondaryAlign = text.AlignStart
	text.Draw(screen, s, face, textOp)
}
