package entity

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"six digits", "2d6a4f", Color{R: 0x2d, G: 0x6a, B: 0x4f}, false},
		{"six digits with hash", "#2d6a4f", Color{R: 0x2d, G: 0x6a, B: 0x4f}, false},
		{"uppercase", "#AABBCC", Color{R: 0xaa, G: 0xbb, B: 0xcc}, false},
		{"three digits expand", "#fa0", Color{R: 0xff, G: 0xaa, B: 0x00}, false},
		{"surrounding whitespace", "  #336699  ", Color{R: 0x33, G: 0x66, B: 0x99}, false},
		{"black", "#000000", Color{}, false},
		{"wrong length", "#12345", Color{}, true},
		{"empty", "", Color{}, true},
		{"non-hex digits", "#zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := Color{R: 0x2d, G: 0x6a, B: 0x4f}
	parsed, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", c.Hex(), err)
	}
	if parsed != c {
		t.Errorf("round trip changed color: %v -> %v", c, parsed)
	}
}

func TestColorCSS(t *testing.T) {
	c := Color{R: 45, G: 106, B: 79}
	if got, want := c.CSS(), "rgb(45,106,79)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestIsDefault(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if (Color{R: 1}).IsDefault() {
		t.Error("non-black color should not be default")
	}
}

func TestLuminosityFor(t *testing.T) {
	if LuminosityFor(true) != LuminosityDark {
		t.Error("dark theme should map to dark luminosity")
	}
	if LuminosityFor(false) != LuminosityLight {
		t.Error("light theme should map to light luminosity")
	}
}

func TestCleanProjectPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing slash", "/work/app/", "/work/app"},
		{"dot segments", "/work/./app/../app", "/work/app"},
		{"surrounding whitespace", "  /work/app ", "/work/app"},
		{"already clean", "/work/app", "/work/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanProjectPath(tt.input); got != tt.want {
				t.Errorf("CleanProjectPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
