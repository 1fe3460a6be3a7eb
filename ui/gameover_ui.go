package ui

import (
	"github.com/automoto/crab-arena/battle"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverUI holds the REMATCH! button shown over the finished battle.
type GameOverUI struct {
	UI   *ebitenui.UI
	ctrl *battle.Controller

	faceSet
}

// NewGameOverUI creates the rematch UI
func NewGameOverUI(ctrl *battle.Controller) *GameOverUI {
	gui := &GameOverUI{ctrl: ctrl, faceSet: loadFaces()}

	root, column := newRoot(widget.AnchorLayoutPositionCenter)
	// Leave room for the winner banner drawn above
	column.AddChild(newLabel(" ", &gui.titleFace, textColor))
	column.AddChild(newButton("REMATCH!", &gui.titleFace, startBase, 240, 56, func() {
		if gui.ctrl.Rematch() {
			systems.PlaySFX(cfg.SoundMenuSelect)
		}
	}, centered()))

	gui.UI = &ebitenui.UI{Container: root}
	return gui
}

// Update processes mouse input. Clicks are ignored until the match is over.
func (gui *GameOverUI) Update() {
	if gui.ctrl.State() != cfg.MatchStateGameOver {
		return
	}
	gui.UI.Update()
}

// Draw renders the rematch button once the match is over
func (gui *GameOverUI) Draw(screen *ebiten.Image) {
	if gui.ctrl.State() != cfg.MatchStateGameOver {
		return
	}
	gui.UI.Draw(screen)
}
