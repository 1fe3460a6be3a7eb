package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/crab-arena/battle"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/systems"
	"github.com/automoto/crab-arena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// BattleScene runs the fight and, once a crab is knocked out, the winner
// overlay with its rematch button.
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ctrl         *battle.Controller
	gameOverUI   *ui.GameOverUI
	once         sync.Once
}

// NewBattleScene creates a new battle scene
func NewBattleScene(sc SceneChanger, ctrl *battle.Controller) *BattleScene {
	return &BattleScene{sceneChanger: sc, ctrl: ctrl}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
	bs.gameOverUI.Update()

	follow(bs.sceneChanger, bs.ctrl, cfg.MatchStatePlaying, cfg.MatchStateGameOver)
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	bs.ecs = ecs.NewECS(bs.ctrl.World())
	bs.gameOverUI = ui.NewGameOverUI(bs.ctrl)

	// Input is queued before the match ticks so a press acts this frame
	bs.ecs.AddSystem(systems.UpdateInput)
	bs.ecs.AddSystem(systems.NewUpdateMatch(bs.ctrl))
	bs.ecs.AddSystem(systems.UpdateEffects)
	bs.ecs.AddSystem(systems.UpdateAudio)

	bs.ecs.AddRenderer(layerDefault, systems.NewDrawArena(bs.ctrl))
	bs.ecs.AddRenderer(layerDefault, systems.DrawFighters)
	bs.ecs.AddRenderer(layerDefault, systems.DrawEffects)
	bs.ecs.AddRenderer(layerDefault, systems.NewDrawHUD(bs.ctrl))
	bs.ecs.AddRenderer(layerDefault, systems.DrawControlsHint)
	bs.ecs.AddRenderer(layerDefault, systems.NewDrawGameOver(bs.ctrl))
	bs.ecs.AddRenderer(layerOverlay, func(e *ecs.ECS, screen *ebiten.Image) {
		bs.gameOverUI.Draw(screen)
	})
}
