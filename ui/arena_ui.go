package ui

import (
	"github.com/automoto/crab-arena/battle"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// ArenaLabel is the button text for an arena.
func ArenaLabel(a cfg.ArenaDef, selected bool) string {
	label := a.Name
	if a.Underwater {
		label += " (underwater)"
	}
	if selected {
		return "> " + label + " <"
	}
	return label
}

// ArenaUI is the arena select screen.
type ArenaUI struct {
	UI   *ebitenui.UI
	ctrl *battle.Controller

	faceSet

	arenaButtons []*widget.Button
	fightButton  *widget.Button
	initialized  bool
}

// NewArenaUI creates the arena select UI
func NewArenaUI(ctrl *battle.Controller) *ArenaUI {
	aui := &ArenaUI{ctrl: ctrl, faceSet: loadFaces()}

	root, column := newRoot(widget.AnchorLayoutPositionCenter)
	column.AddChild(newLabel("CHOOSE ARENA", &aui.titleFace, cfg.Gold))

	for i, a := range ctrl.Arenas() {
		arenaIndex := i
		btn := newButton(ArenaLabel(a, false), &aui.normalFace, shade(a.Sky, -0.3), 320, 36, func() {
			if aui.ctrl.SelectArena(arenaIndex) {
				systems.PlaySFX(cfg.SoundMenuSelect)
			}
			aui.UpdateUI()
		}, centered())
		aui.arenaButtons = append(aui.arenaButtons, btn)
		column.AddChild(btn)
	}

	aui.fightButton = newButton("FIGHT!", &aui.titleFace, cfg.Red, 220, 56, func() {
		if aui.ctrl.Fight() {
			systems.PlaySFX(cfg.SoundMenuSelect)
		}
	}, centered())
	column.AddChild(aui.fightButton)

	aui.UI = &ebitenui.UI{Container: root}
	return aui
}

// UpdateUI marks the chosen arena
func (aui *ArenaUI) UpdateUI() {
	arenas := aui.ctrl.Arenas()
	for i, btn := range aui.arenaButtons {
		setButtonLabel(btn, ArenaLabel(arenas[i], i == aui.ctrl.ArenaIndex()))
	}
}

// Update processes mouse input for the arena list
func (aui *ArenaUI) Update() {
	aui.UI.Update()
	if !aui.initialized {
		aui.initialized = true
		aui.UpdateUI()
	}
}

// Draw renders the arena widgets
func (aui *ArenaUI) Draw(screen *ebiten.Image) {
	aui.UI.Draw(screen)
}
