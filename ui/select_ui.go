package ui

import (
	"fmt"

	"github.com/automoto/crab-arena/battle"
	"github.com/automoto/crab-arena/components"
	cfg "github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

var playerHints = [2]string{"A/D move, SPACE/W attack", "arrows move, ENTER/UP attack"}

// CharacterLabel is the button text for a roster entry.
func CharacterLabel(t cfg.CharacterTemplate, selected bool) string {
	label := fmt.Sprintf("%s  SPD %g  DMG %d", t.Name, t.Speed, t.Damage)
	if selected {
		return "> " + label + " <"
	}
	return label
}

// PickInfo describes a player's current pick, or prompts for one.
func PickInfo(roster []cfg.CharacterTemplate, index int) string {
	if index == components.NoSelection || index >= len(roster) {
		return "Pick a crab"
	}
	t := roster[index]
	return fmt.Sprintf("%s: %s, %s", t.Name, t.Weapon, t.Ability)
}

// SelectUI is the character select screen: a column of roster buttons per
// player and the SELECT ARENA button.
type SelectUI struct {
	UI   *ebitenui.UI
	ctrl *battle.Controller

	faceSet

	charButtons [2][]*widget.Button
	pickLabels  [2]*widget.Label
	arenaButton *widget.Button
	rosterGen   int
	initialized bool
}

// NewSelectUI creates the character select UI for the controller's
// current roster.
func NewSelectUI(ctrl *battle.Controller) *SelectUI {
	sui := &SelectUI{ctrl: ctrl, faceSet: loadFaces()}
	sui.buildUI()
	return sui
}

func (sui *SelectUI) buildUI() {
	sui.rosterGen = sui.ctrl.RosterGeneration()
	sui.initialized = false

	root, column := newRoot(widget.AnchorLayoutPositionStart)
	column.AddChild(newLabel("CHOOSE YOUR CRABS", &sui.titleFace, cfg.Gold))

	players := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(centered()),
	)
	for slot := 1; slot <= 2; slot++ {
		players.AddChild(sui.buildPlayerColumn(slot))
	}
	column.AddChild(players)

	sui.arenaButton = newButton("SELECT ARENA", &sui.normalFace, startBase, 220, 40, func() {
		if sui.ctrl.ConfirmCharacters() {
			systems.PlaySFX(cfg.SoundMenuSelect)
		}
		sui.UpdateUI()
	}, centered())
	column.AddChild(sui.arenaButton)

	sui.UI = &ebitenui.UI{Container: root}
}

func (sui *SelectUI) buildPlayerColumn(slot int) *widget.Container {
	idx := slot - 1
	col := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	col.AddChild(newLabel(fmt.Sprintf("PLAYER %d", slot), &sui.normalFace, textColor))
	col.AddChild(newLabel(playerHints[idx], &sui.smallFace, textPressed))

	roster := sui.ctrl.Roster()
	sui.charButtons[idx] = make([]*widget.Button, len(roster))
	for i, t := range roster {
		charIndex := i
		btn := newButton(CharacterLabel(t, false), &sui.smallFace, shade(t.Color, -0.35), 300, 26, func() {
			if sui.ctrl.SelectCharacter(slot, charIndex) {
				systems.PlaySFX(cfg.SoundMenuSelect)
			}
			sui.UpdateUI()
		})
		sui.charButtons[idx][i] = btn
		col.AddChild(btn)
	}

	sui.pickLabels[idx] = newLabel(PickInfo(roster, components.NoSelection), &sui.smallFace, selectedColor)
	col.AddChild(sui.pickLabels[idx])
	return col
}

// UpdateUI syncs button labels and the SELECT ARENA button with the
// controller's picks.
func (sui *SelectUI) UpdateUI() {
	roster := sui.ctrl.Roster()
	for idx := 0; idx < 2; idx++ {
		pick := sui.ctrl.Selection(idx + 1)
		for i, btn := range sui.charButtons[idx] {
			if i < len(roster) {
				setButtonLabel(btn, CharacterLabel(roster[i], i == pick))
			}
		}
		if sui.pickLabels[idx] != nil {
			sui.pickLabels[idx].Label = PickInfo(roster, pick)
		}
	}
	if sui.arenaButton != nil {
		sui.arenaButton.GetWidget().Disabled = !sui.ctrl.CanConfirmCharacters()
	}
}

// Update processes mouse input. The widgets are rebuilt when the roster
// was reloaded.
func (sui *SelectUI) Update() {
	if sui.ctrl.RosterGeneration() != sui.rosterGen {
		sui.buildUI()
	}
	sui.UI.Update()
	// Widgets are validated after their first update
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}

// Draw renders the select widgets
func (sui *SelectUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}
