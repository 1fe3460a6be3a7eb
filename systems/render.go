package systems

import (
	"image/color"

	"github.com/automoto/crab-arena/assets"
	"github.com/automoto/crab-arena/battle"
	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/fonts"
	"github.com/automoto/crab-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Crab sprite canvas. The crab is drawn facing right with its feet at
// (crabW/2, crabH) and mirrored when facing left.
const (
	crabW = 160
	crabH = 120

	// Distance from a fighter's ground Y down to the sand line
	crabFootOffset = 40
)

var (
	drawOp       = &ebiten.DrawImageOptions{}
	shaderOp     = &ebiten.DrawRectShaderOptions{}
	crabCanvases = map[int]*ebiten.Image{}
)

// NewDrawArena creates the renderer for the selected arena's backdrop.
func NewDrawArena(ctrl *battle.Controller) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		DrawArenaBackdrop(screen, ctrl.Arena())
	}
}

// DrawArenaBackdrop paints sky, sand and accent waves for an arena.
func DrawArenaBackdrop(screen *ebiten.Image, arena cfg.ArenaDef) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	groundY := float32(arena.GroundY + crabFootOffset)

	screen.Fill(arena.Sky)
	vector.FillRect(screen, 0, groundY, w, h-groundY, arena.Ground, false)

	accent := arena.Accent
	accent.A = 120
	for x := float32(0); x < w; x += 40 {
		vector.StrokeLine(screen, x, groundY, x+20, groundY-6, 3, accent, true)
		vector.StrokeLine(screen, x+20, groundY-6, x+40, groundY, 3, accent, true)
	}

	// Arena bounds markers
	for _, x := range []float64{arena.MinX, arena.MaxX} {
		vector.StrokeLine(screen, float32(x), groundY, float32(x), groundY+12, 2, accent, false)
	}
}

// DrawFighters renders both crabs. Hit fighters flash white and shake.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		drawFighter(screen, entry)
	})
}

func drawFighter(screen *ebiten.Image, entry *donburi.Entry) {
	f := components.Fighter.Get(entry)
	flags := components.AnimFlags.Get(entry)

	canvas := crabCanvases[f.Slot]
	if canvas == nil {
		canvas = ebiten.NewImage(crabW, crabH)
		crabCanvases[f.Slot] = canvas
	}
	canvas.Clear()
	paintCrab(canvas, f, flags.IsAttacking())

	x := f.X
	if flags.IsHit() && flags.HitFrames%4 < 2 {
		x += 3
	}

	geo := ebiten.GeoM{}
	geo.Translate(-crabW/2, -crabH)
	geo.Scale(f.Facing.Sign(), 1)
	geo.Translate(x, f.Y+crabFootOffset)

	if flags.IsHit() && assets.FlashShader != nil {
		shaderOp.GeoM = geo
		shaderOp.Images[0] = canvas
		shaderOp.Uniforms = map[string]any{
			"Flash": float32(0.65),
			"Tint":  []float32{1, 1, 1},
		}
		screen.DrawRectShader(crabW, crabH, assets.FlashShader, shaderOp)
	} else {
		drawOp.GeoM = geo
		drawOp.ColorScale.Reset()
		screen.DrawImage(canvas, drawOp)
	}

	drawText(screen, f.Name, fonts.Small.Face(), f.X, f.Y+crabFootOffset+6, cfg.White, text.AlignCenter)
}

// paintCrab draws a right-facing crab onto dst.
func paintCrab(dst *ebiten.Image, f *components.FighterData, attacking bool) {
	const cx, cy = crabW / 2, crabH - 38

	// Legs
	for i := float32(0); i < 3; i++ {
		y := float32(cy) + 8 + i*7
		vector.StrokeLine(dst, cx-20, y, cx-44, y+14, 4, f.ShellColor, true)
		vector.StrokeLine(dst, cx+20, y, cx+44, y+14, 4, f.ShellColor, true)
	}

	// Back claw
	vector.StrokeLine(dst, cx-24, cy-4, cx-42, cy-18, 5, f.Color, true)
	vector.FillCircle(dst, cx-46, cy-22, 10, f.Color, true)

	// Body and shell
	vector.FillCircle(dst, cx, cy, 30, f.Color, true)
	vector.FillCircle(dst, cx, cy-8, 20, f.ShellColor, true)

	// Front claw, thrust forward while attacking
	reach := float32(40)
	if attacking {
		reach = 62
	}
	vector.StrokeLine(dst, cx+24, cy-4, cx+reach-8, cy-16, 6, f.Color, true)
	vector.FillCircle(dst, cx+reach, cy-20, 13, f.Color, true)
	vector.StrokeLine(dst, cx+reach, cy-20, cx+reach+12, cy-26, 3, f.ShellColor, true)

	// Eyes on stalks, pupils looking ahead
	for _, ex := range []float32{cx - 8, cx + 10} {
		vector.StrokeLine(dst, ex, cy-24, ex+2, cy-42, 3, f.Color, true)
		vector.FillCircle(dst, ex+2, cy-46, 7, color.RGBA{R: 255, G: 255, B: 255, A: 255}, true)
		vector.FillCircle(dst, ex+4, cy-46, 3.5, f.EyeColor, true)
	}
}

var (
	previewCanvas *ebiten.Image
	previewOp     = &ebiten.DrawImageOptions{}
)

// DrawCrabPreview paints a roster template standing with its feet at
// (x, footY), outside of any match.
func DrawCrabPreview(screen *ebiten.Image, t cfg.CharacterTemplate, facing cfg.Facing, x, footY float64) {
	if previewCanvas == nil {
		previewCanvas = ebiten.NewImage(crabW, crabH)
	}
	previewCanvas.Clear()
	paintCrab(previewCanvas, &components.FighterData{
		Color:      t.Color,
		ShellColor: t.ShellColor,
		EyeColor:   t.EyeColor,
	}, false)

	previewOp.GeoM.Reset()
	previewOp.GeoM.Translate(-crabW/2, -crabH)
	previewOp.GeoM.Scale(facing.Sign(), 1)
	previewOp.GeoM.Translate(x, footY)
	screen.DrawImage(previewCanvas, previewOp)
}

// DrawEffects renders hit markers and bubbles.
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	components.Effect.Each(e.World, func(entry *donburi.Entry) {
		fx := components.Effect.Get(entry)
		alpha := effectAlpha(fx)

		switch fx.Kind {
		case components.EffectHit:
			c := fx.Color
			c.A = uint8(255 * alpha)
			drawTextScaled(screen, "POW!", fonts.Bold.Face(), fx.X, fx.Y, float64(fx.Scale), premultiply(c), text.AlignCenter)
		case components.EffectBubble:
			c := cfg.Cyan
			c.A = uint8(160 * alpha)
			r := 4 + float32(fx.Age%8)/2
			vector.StrokeCircle(screen, float32(fx.X), float32(fx.Y), r, 1.5, premultiply(c), true)
		}
	})
}

// premultiply converts a straight-alpha color into the premultiplied form
// ebiten expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
