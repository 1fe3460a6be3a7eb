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

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ctrl         *battle.Controller
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, ctrl *battle.Controller) *MenuScene {
	return &MenuScene{sceneChanger: sc, ctrl: ctrl}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	follow(ms.sceneChanger, ms.ctrl, cfg.MatchStateMenu)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(ms.ctrl.World())
	ms.menuUI = ui.NewMenuUI(ms.ctrl)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMatch(ms.ctrl))
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.ctrl, ms.sceneChanger))
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddRenderer(layerDefault, systems.NewDrawMenu(ms.ctrl))
	ms.ecs.AddRenderer(layerOverlay, func(e *ecs.ECS, screen *ebiten.Image) {
		ms.menuUI.Draw(screen)
	})
}
