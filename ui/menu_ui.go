package ui

import (
	"github.com/automoto/crab-arena/battle"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuUI is the title screen's START BATTLE button.
type MenuUI struct {
	UI   *ebitenui.UI
	ctrl *battle.Controller

	faceSet
}

// NewMenuUI creates the title screen UI
func NewMenuUI(ctrl *battle.Controller) *MenuUI {
	mui := &MenuUI{ctrl: ctrl, faceSet: loadFaces()}

	root, column := newRoot(widget.AnchorLayoutPositionCenter)
	start := newButton("START BATTLE", &mui.normalFace, startBase, 220, 44, func() {
		if mui.ctrl.Start() {
			systems.PlaySFX(cfg.SoundMenuSelect)
		}
	}, centered())
	column.AddChild(start)

	mui.UI = &ebitenui.UI{Container: root}
	return mui
}

// Update processes mouse input for the menu
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

// Draw renders the menu widgets
func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
