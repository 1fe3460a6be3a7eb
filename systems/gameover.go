package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/crab-arena/battle"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// WinnerBanner formats the result title.
func WinnerBanner(name string) string {
	return strings.ToUpper(name) + " WINS!"
}

// NewDrawGameOver creates the renderer that dims the arena and announces
// the winner once the match is decided.
func NewDrawGameOver(ctrl *battle.Controller) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if ctrl.State() != cfg.MatchStateGameOver {
			return
		}
		_, name := ctrl.Winner()

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.OverlayColor, false)
		drawText(screen, WinnerBanner(name), fonts.Title.Face(), width/2, height/2-120, cfg.GameOver.TitleColor, text.AlignCenter)
		drawText(screen, fmt.Sprintf("Total hits: %d", ctrl.Combo()), fonts.Regular.Face(), width/2, height/2-50, cfg.White, text.AlignCenter)
	}
}
