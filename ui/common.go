package ui

import (
	"image/color"

	"github.com/automoto/crab-arena/fonts"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	textColor     = color.RGBA{255, 255, 255, 255}
	textHover     = color.RGBA{255, 255, 200, 255}
	textPressed   = color.RGBA{200, 200, 200, 255}
	textDisabled  = color.RGBA{110, 110, 110, 255}
	panelColor    = color.RGBA{20, 28, 48, 220}
	buttonBase    = color.RGBA{60, 60, 80, 255}
	startBase     = color.RGBA{40, 120, 60, 255}
	selectedColor = color.RGBA{255, 215, 0, 255}
)

// faceSet holds the fonts a screen uses. ebitenui takes faces by pointer,
// so they live in addressable fields.
type faceSet struct {
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func loadFaces() faceSet {
	return faceSet{
		titleFace:  fonts.Title.Face(),
		normalFace: fonts.Bold.Face(),
		smallFace:  fonts.Small.Face(),
	}
}

// shade blends c toward white (amount > 0) or black (amount < 0) in Lab
// space.
func shade(c color.RGBA, amount float64) color.RGBA {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	target := colorful.Color{R: 1, G: 1, B: 1}
	if amount < 0 {
		target = colorful.Color{}
		amount = -amount
	}
	r, g, b := col.BlendLab(target, amount).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func buttonImage(base color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(base),
		Hover:    image.NewNineSliceColor(shade(base, 0.2)),
		Pressed:  image.NewNineSliceColor(shade(base, -0.25)),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func newButton(label string, face *text.Face, base color.RGBA, minW, minH int, onClick func(), opts ...widget.WidgetOpt) *widget.Button {
	opts = append([]widget.WidgetOpt{widget.WidgetOpts.MinSize(minW, minH)}, opts...)
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(opts...),
		widget.ButtonOpts.Image(buttonImage(base)),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     textColor,
			Hover:    textHover,
			Pressed:  textPressed,
			Disabled: textDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newLabel(label string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, face, &widget.LabelColor{
			Idle: clr,
		}),
	)
}

// newRoot creates a transparent full-screen container with a vertical
// column centered in it. Children go into the returned column.
func newRoot(vertical widget.AnchorLayoutPosition) (root, column *widget.Container) {
	root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	column = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   vertical,
			}),
		),
	)
	root.AddChild(column)
	return root, column
}

func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})
}

func setButtonLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if t := b.Text(); t != nil {
		t.Label = label
	}
}
