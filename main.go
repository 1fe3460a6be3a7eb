package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/crab-arena/assets"
	"github.com/automoto/crab-arena/battle"
	"github.com/automoto/crab-arena/config"
	"github.com/automoto/crab-arena/fonts"
	"github.com/automoto/crab-arena/scenes"
	"github.com/automoto/crab-arena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds  image.Rectangle
	scene   scenes.Scene
	ctrl    *battle.Controller
	watcher *config.RosterWatcher
	quit    bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(rosterPath string) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: hit flash disabled: %v", err)
	}
	systems.PreloadAllSFX()

	roster := config.Roster
	if rosterPath != "" {
		r, err := config.LoadRosterFile(rosterPath)
		if err != nil {
			return nil, err
		}
		roster = r
	}

	ctrl, err := battle.NewController(roster, config.Arenas)
	if err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
		ctrl:   ctrl,
	}

	if rosterPath != "" {
		w, err := config.NewRosterWatcher(rosterPath)
		if err != nil {
			log.Printf("Warning: roster hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if config.Debug.SkipMenu {
		ctrl.Start()
	}
	g.scene = scenes.ForState(g, ctrl)

	return g, nil
}

// pollRoster applies reloaded rosters without blocking the frame.
func (g *Game) pollRoster() {
	if g.watcher == nil {
		return
	}
	select {
	case roster, ok := <-g.watcher.Updates:
		if ok && g.ctrl.SetRoster(roster) {
			log.Printf("Roster reloaded: %d characters", len(roster))
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Roster reload failed, keeping previous roster: %v", err)
		}
	default:
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollRoster()
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Warning: closing roster watcher: %v", err)
		}
	}
}

func main() {
	rosterPath := flag.String("roster", "", "load the character roster from a YAML file and reload it on change")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start directly in character select")
	flag.BoolVar(&config.Debug.Mute, "mute", false, "disable sound effects")
	volume := flag.Float64("volume", config.Audio.DefaultSFXVol, "sound effect volume, 0 to 1")
	flag.Parse()

	systems.SetSFXVolume(min(1, max(0, *volume)))

	g, err := NewGame(*rosterPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game exited with error: %v", err)
	}
}
