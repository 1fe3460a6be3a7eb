package scenes

import (
	"github.com/automoto/crab-arena/battle"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order
const (
	layerDefault ecs.LayerID = iota
	layerOverlay
)

// Scene is a screen of the game
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// ForState returns the scene that presents the controller's current state.
func ForState(sc SceneChanger, ctrl *battle.Controller) Scene {
	switch ctrl.State() {
	case cfg.MatchStateSelect:
		return NewSelectScene(sc, ctrl)
	case cfg.MatchStateArenaSelect:
		return NewArenaScene(sc, ctrl)
	case cfg.MatchStatePlaying, cfg.MatchStateGameOver:
		return NewBattleScene(sc, ctrl)
	default:
		return NewMenuScene(sc, ctrl)
	}
}

// follow switches to the scene for the controller's state once it leaves
// the states the current scene presents. It reports whether it switched.
func follow(sc SceneChanger, ctrl *battle.Controller, states ...cfg.MatchStateID) bool {
	current := ctrl.State()
	for _, s := range states {
		if s == current {
			return false
		}
	}
	sc.ChangeScene(ForState(sc, ctrl))
	return true
}
