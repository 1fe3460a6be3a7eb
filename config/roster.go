package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var rosterYAML []byte

// CharacterTemplate is the read-only description of a selectable fighter.
type CharacterTemplate struct {
	Name       string
	Color      color.RGBA
	ShellColor color.RGBA
	EyeColor   color.RGBA
	Weapon     string
	Ability    string
	Speed      float64
	Damage     int
}

type rosterFileSpec struct {
	Characters []characterSpec `yaml:"characters"`
}

type characterSpec struct {
	Name       string  `yaml:"name"`
	Color      string  `yaml:"color"`
	ShellColor string  `yaml:"shell_color"`
	EyeColor   string  `yaml:"eye_color"`
	Weapon     string  `yaml:"weapon"`
	Ability    string  `yaml:"ability"`
	Speed      float64 `yaml:"speed"`
	Damage     int     `yaml:"damage"`
}

// Roster is the built-in character roster
var Roster []CharacterTemplate

func init() {
	roster, err := LoadRoster(bytes.NewReader(rosterYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded roster: %v", err))
	}
	Roster = roster
}

// LoadRosterFile reads a roster YAML file from disk.
func LoadRosterFile(path string) ([]CharacterTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster %s: %w", path, err)
	}
	defer f.Close()

	roster, err := LoadRoster(f)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return roster, nil
}

// LoadRoster decodes and validates a roster document.
func LoadRoster(r io.Reader) ([]CharacterTemplate, error) {
	var spec rosterFileSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if len(spec.Characters) == 0 {
		return nil, errors.New("roster has no characters")
	}

	roster := make([]CharacterTemplate, 0, len(spec.Characters))
	for i, cs := range spec.Characters {
		tmpl, err := cs.template()
		if err != nil {
			return nil, fmt.Errorf("character %d (%q): %w", i, cs.Name, err)
		}
		roster = append(roster, tmpl)
	}
	return roster, nil
}

func (cs characterSpec) template() (CharacterTemplate, error) {
	if cs.Name == "" {
		return CharacterTemplate{}, errors.New("missing name")
	}
	if cs.Speed <= 0 {
		return CharacterTemplate{}, fmt.Errorf("speed must be positive, got %v", cs.Speed)
	}
	if cs.Damage <= 0 {
		return CharacterTemplate{}, fmt.Errorf("damage must be positive, got %d", cs.Damage)
	}

	body, err := ParseHexColor(cs.Color)
	if err != nil {
		return CharacterTemplate{}, fmt.Errorf("color: %w", err)
	}
	shell, err := ParseHexColor(cs.ShellColor)
	if err != nil {
		return CharacterTemplate{}, fmt.Errorf("shell_color: %w", err)
	}
	eye, err := ParseHexColor(cs.EyeColor)
	if err != nil {
		return CharacterTemplate{}, fmt.Errorf("eye_color: %w", err)
	}

	return CharacterTemplate{
		Name:       cs.Name,
		Color:      body,
		ShellColor: shell,
		EyeColor:   eye,
		Weapon:     cs.Weapon,
		Ability:    cs.Ability,
		Speed:      cs.Speed,
		Damage:     cs.Damage,
	}, nil
}

// ParseHexColor parses "#RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
