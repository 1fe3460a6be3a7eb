package config

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed arenas/*.tmx
var arenaFS embed.FS

// ArenaDef is the read-only description of a battle arena, parsed from a
// Tiled map. The "Arena" object group carries a "theme" object (colors and
// flags as properties), a "bounds" rectangle and two "spawn" points.
type ArenaDef struct {
	Name       string
	Sky        color.RGBA
	Ground     color.RGBA
	Accent     color.RGBA
	Underwater bool // spawns ambient bubbles

	MinX, MaxX float64
	GroundY    float64
	StartX     [2]float64
}

// Arenas is the built-in arena list, ordered by file name
var Arenas []ArenaDef

func init() {
	arenas, err := LoadArenas(arenaFS, "arenas")
	if err != nil {
		panic(fmt.Sprintf("embedded arenas: %v", err))
	}
	Arenas = arenas
}

// LoadArenas loads every .tmx file in dir, sorted by file name.
func LoadArenas(fsys fs.FS, dir string) ([]ArenaDef, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	arenas := make([]ArenaDef, 0, len(matches))
	for _, path := range matches {
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, err
		}
		arenas = append(arenas, a)
	}
	return arenas, nil
}

// LoadArena parses a single arena map. Missing bounds or spawns fall back
// to the defaults in Arena.
func LoadArena(fsys fs.FS, tmxPath string) (ArenaDef, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return ArenaDef{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	def := ArenaDef{
		MinX:    Arena.MinX,
		MaxX:    Arena.MaxX,
		GroundY: Arena.GroundY,
		StartX:  Arena.StartX,
	}

	var haveTheme bool
	for _, og := range arenaMap.ObjectGroups {
		if og.Name != "Arena" {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "theme":
				haveTheme = true
				def.Name = o.Properties.GetString("title")
				def.Underwater = o.Properties.GetBool("underwater")
				if def.Sky, err = ParseHexColor(o.Properties.GetString("sky")); err != nil {
					return ArenaDef{}, fmt.Errorf("%s: sky: %w", tmxPath, err)
				}
				if def.Ground, err = ParseHexColor(o.Properties.GetString("ground")); err != nil {
					return ArenaDef{}, fmt.Errorf("%s: ground: %w", tmxPath, err)
				}
				if def.Accent, err = ParseHexColor(o.Properties.GetString("accent")); err != nil {
					return ArenaDef{}, fmt.Errorf("%s: accent: %w", tmxPath, err)
				}
			case "bounds":
				def.MinX = o.X
				def.MaxX = o.X + o.Width
				def.GroundY = o.Y + o.Height
			case "spawn":
				idx := o.Properties.GetInt("spawnIndex")
				if idx < 0 || idx > 1 {
					return ArenaDef{}, fmt.Errorf("%s: spawnIndex %d out of range", tmxPath, idx)
				}
				def.StartX[idx] = o.X
			}
		}
	}

	if !haveTheme {
		return ArenaDef{}, fmt.Errorf("%s: missing theme object", tmxPath)
	}
	if err := def.validate(); err != nil {
		return ArenaDef{}, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return def, nil
}

func (a ArenaDef) validate() error {
	if a.Name == "" {
		return errors.New("arena has no title")
	}
	if a.MinX >= a.MaxX {
		return fmt.Errorf("empty bounds [%v, %v]", a.MinX, a.MaxX)
	}
	for i, x := range a.StartX {
		if x < a.MinX || x > a.MaxX {
			return fmt.Errorf("spawn %d at %v outside bounds [%v, %v]", i, x, a.MinX, a.MaxX)
		}
	}
	if a.StartX[0] >= a.StartX[1] {
		return fmt.Errorf("spawn 0 at %v must be left of spawn 1 at %v", a.StartX[0], a.StartX[1])
	}
	return nil
}

// ClampX limits a horizontal position to the arena bounds.
func (a ArenaDef) ClampX(x float64) float64 {
	if x < a.MinX {
		return a.MinX
	}
	if x > a.MaxX {
		return a.MaxX
	}
	return x
}
