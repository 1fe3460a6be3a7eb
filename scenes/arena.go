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

// ArenaScene lets the players pick where to fight. The chosen arena is
// previewed behind the menu.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ctrl         *battle.Controller
	arenaUI      *ui.ArenaUI
	once         sync.Once
}

// NewArenaScene creates a new arena select scene
func NewArenaScene(sc SceneChanger, ctrl *battle.Controller) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, ctrl: ctrl}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
	as.arenaUI.Update()

	follow(as.sceneChanger, as.ctrl, cfg.MatchStateArenaSelect)
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(as.ctrl.World())
	as.arenaUI = ui.NewArenaUI(as.ctrl)

	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.NewUpdateMatch(as.ctrl))
	as.ecs.AddSystem(systems.UpdateAudio)

	as.ecs.AddRenderer(layerDefault, systems.NewDrawArena(as.ctrl))
	as.ecs.AddRenderer(layerDefault, systems.NewDrawSelectPreview(as.ctrl))
	as.ecs.AddRenderer(layerOverlay, func(e *ecs.ECS, screen *ebiten.Image) {
		as.arenaUI.Draw(screen)
	})
}
