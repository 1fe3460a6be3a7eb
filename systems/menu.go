package systems

import (
	"github.com/automoto/crab-arena/battle"
	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// NewUpdateMenu creates the title screen keyboard shortcuts: Enter or
// Space starts, Escape quits.
func NewUpdateMenu(ctrl *battle.Controller, sceneChanger SceneChanger) ecs.System {
	return func(e *ecs.ECS) {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			sceneChanger.Quit()
			return
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if ctrl.Start() {
				PlaySFX(cfg.SoundMenuSelect)
			}
		}
	}
}

// NewDrawMenu creates the title screen renderer: backdrop, title and the
// first two crabs of the roster squaring off.
func NewDrawMenu(ctrl *battle.Controller) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		screen.Fill(cfg.Menu.BackgroundColor)
		drawText(screen, cfg.Menu.Title, fonts.Title.Face(), width/2, 70, cfg.Menu.TitleColor, text.AlignCenter)
		drawText(screen, cfg.Menu.Subtitle, fonts.Bold.Face(), width/2, 135, cfg.Menu.TextColor, text.AlignCenter)

		roster := ctrl.Roster()
		for i := 0; i < 2 && i < len(roster); i++ {
			facing := cfg.FacingRight
			if i == 1 {
				facing = cfg.FacingLeft
			}
			DrawCrabPreview(screen, roster[i], facing, width/2+float64(2*i-1)*170, height-60)
		}

		drawText(screen, "ENTER to start, ESC to quit", fonts.Small.Face(), width/2, height-30, cfg.Menu.TextColor, text.AlignCenter)
	}
}

// NewDrawSelectPreview creates the renderer showing each player's pick in
// the bottom corners of the select screens.
func NewDrawSelectPreview(ctrl *battle.Controller) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		for slot := 1; slot <= 2; slot++ {
			idx := ctrl.Selection(slot)
			if idx == components.NoSelection {
				continue
			}
			facing := cfg.FacingRight
			x := 90.0
			if slot == 2 {
				facing = cfg.FacingLeft
				x = width - 90
			}
			DrawCrabPreview(screen, ctrl.Roster()[idx], facing, x, height-10)
		}
	}
}

// DrawMenuBackdrop fills the screen with the menu background.
func DrawMenuBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
}
