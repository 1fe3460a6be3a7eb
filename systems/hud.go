package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/crab-arena/battle"
	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// HealthBarColor picks the bar color for a health percentage.
func HealthBarColor(percent float64) color.RGBA {
	switch {
	case percent > cfg.HealthBar.HighThreshold:
		return cfg.HealthBar.HighColor
	case percent > cfg.HealthBar.LowThreshold:
		return cfg.HealthBar.MidColor
	default:
		return cfg.HealthBar.LowColor
	}
}

// ComboLabel returns the combo banner text, or false while the combo is
// too small to show.
func ComboLabel(combo int) (string, bool) {
	if combo <= cfg.Combat.ComboLabelMin {
		return "", false
	}
	return fmt.Sprintf("%d HIT COMBO!", combo), true
}

// NewDrawHUD creates the renderer for both health panels and the combo
// label.
func NewDrawHUD(ctrl *battle.Controller) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		m := cfg.HealthBar.Margin

		for slot := 1; slot <= 2; slot++ {
			entry := ctrl.Fighter(slot)
			if entry == nil {
				continue
			}
			x := m
			align := text.AlignStart
			if slot == 2 {
				x = width - m - cfg.HealthBar.Width
				align = text.AlignEnd
			}
			drawHealthPanel(screen, components.Fighter.Get(entry), components.Health.Get(entry), x, align)
		}

		drawText(screen, "VS", fonts.Bold.Face(), width/2, m, cfg.Gold, text.AlignCenter)
		if label, ok := ComboLabel(ctrl.Combo()); ok {
			drawText(screen, label, fonts.Bold.Face(), width/2, m+32, cfg.Orange, text.AlignCenter)
		}
	}
}

func drawHealthPanel(screen *ebiten.Image, f *components.FighterData, hp *components.HealthData, x float64, align text.Align) {
	hb := cfg.HealthBar
	y := hb.Margin

	labelX := x
	if align == text.AlignEnd {
		labelX = x + hb.Width
	}
	drawText(screen, f.Name, fonts.Regular.Face(), labelX, y, f.Color, align)

	barY := y + 22
	vector.FillRect(screen, float32(x), float32(barY), float32(hb.Width), float32(hb.Height), hb.BgColor, false)

	ratio := hp.Percent() / 100
	fillW := hb.Width * ratio
	fillX := x
	if align == text.AlignEnd {
		// Player 2's bar drains toward the screen edge
		fillX = x + hb.Width - fillW
	}
	vector.FillRect(screen, float32(fillX), float32(barY), float32(fillW), float32(hb.Height), HealthBarColor(hp.Percent()), false)
	vector.StrokeRect(screen, float32(x), float32(barY), float32(hb.Width), float32(hb.Height), 1, cfg.White, false)

	drawText(screen, fmt.Sprintf("%d/%d", hp.Current, hp.Max), fonts.Small.Face(), labelX, barY+hb.Height+4, cfg.White, align)
}

// DrawControlsHint lists both players' keys along the bottom edge.
func DrawControlsHint(e *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	y := float64(screen.Bounds().Dy()) - 24
	drawText(screen, "P1: A/D move, SPACE or W attack", fonts.Small.Face(), 16, y, cfg.White, text.AlignStart)
	drawText(screen, "P2: arrows move, ENTER or UP attack", fonts.Small.Face(), w-16, y, cfg.White, text.AlignEnd)
}
