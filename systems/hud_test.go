package systems

import (
	"image/color"
	"testing"

	cfg "github.com/automoto/crab-arena/config"
)

func TestHealthBarColor(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100, "green"},
		{61, "green"},
		{60, "yellow"},
		{31, "yellow"},
		{30, "red"},
		{0, "red"},
	}
	colors := map[string]color.RGBA{
		"green":  cfg.HealthBar.HighColor,
		"yellow": cfg.HealthBar.MidColor,
		"red":    cfg.HealthBar.LowColor,
	}

	for _, tt := range tests {
		if got := HealthBarColor(tt.percent); got != colors[tt.want] {
			t.Errorf("HealthBarColor(%v) = %v, want %s", tt.percent, got, tt.want)
		}
	}
}

func TestComboLabel(t *testing.T) {
	tests := []struct {
		combo  int
		want   string
		wantOK bool
	}{
		{0, "", false},
		{2, "", false},
		{3, "3 HIT COMBO!", true},
		{12, "12 HIT COMBO!", true},
	}

	for _, tt := range tests {
		got, ok := ComboLabel(tt.combo)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ComboLabel(%d) = %q, %v; want %q, %v", tt.combo, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestWinnerBanner(t *testing.T) {
	if got := WinnerBanner("Coral Queen"); got != "CORAL QUEEN WINS!" {
		t.Errorf("WinnerBanner = %q", got)
	}
}

func TestPremultiply(t *testing.T) {
	c := premultiply(cfg.Orange)
	if c != cfg.Orange {
		t.Errorf("opaque color changed: %v", c)
	}
	half := cfg.White
	half.A = 128
	if got := premultiply(half); got.R != 128 || got.A != 128 {
		t.Errorf("premultiply(half white) = %v", got)
	}
}
