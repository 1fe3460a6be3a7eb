package systems

import (
	"github.com/automoto/crab-arena/battle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMatch creates the system that feeds buffered keys to the
// controller and runs one simulation tick. Keys are dropped when the window
// loses focus so nothing stays held.
func NewUpdateMatch(ctrl *battle.Controller) ecs.System {
	return func(e *ecs.ECS) {
		if !ebiten.IsFocused() {
			ctrl.ReleaseAll()
		}
		ctrl.Update()
	}
}
