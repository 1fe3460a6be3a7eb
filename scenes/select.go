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

// SelectScene lets both players pick a crab
type SelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ctrl         *battle.Controller
	selectUI     *ui.SelectUI
	once         sync.Once
}

// NewSelectScene creates a new character select scene
func NewSelectScene(sc SceneChanger, ctrl *battle.Controller) *SelectScene {
	return &SelectScene{sceneChanger: sc, ctrl: ctrl}
}

func (ss *SelectScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
	ss.selectUI.Update()

	follow(ss.sceneChanger, ss.ctrl, cfg.MatchStateSelect)
}

func (ss *SelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SelectScene) configure() {
	ss.ecs = ecs.NewECS(ss.ctrl.World())
	ss.selectUI = ui.NewSelectUI(ss.ctrl)

	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateMatch(ss.ctrl))
	ss.ecs.AddSystem(systems.UpdateAudio)

	ss.ecs.AddRenderer(layerDefault, systems.DrawMenuBackdrop)
	ss.ecs.AddRenderer(layerDefault, systems.NewDrawSelectPreview(ss.ctrl))
	ss.ecs.AddRenderer(layerOverlay, func(e *ecs.ECS, screen *ebiten.Image) {
		ss.selectUI.Draw(screen)
	})
}
