package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Lattice
	Gap    = 20
	XScale = 0.015
	YScale = 0.02

	// Noise time axis advance per frame
	TimeStep = 0.01

	// Circle fill alpha shared by both variants
	FillAlpha = 150

	DefaultCursorRange = 200
	DefaultVariant     = "pattern"
	DefaultFile        = "dotgrid.yaml"
)

var (
	ErrInvalidCursorRange = errors.New("cursor range must be a positive number")
	ErrInvalidSize        = errors.New("window size must not be negative")
	ErrUnknownVariant     = errors.New("unknown grid variant")
)

// Variants maps accepted variant names to their canonical name.
var Variants = map[string]string{
	"pattern": "pattern",
	"a":       "pattern",
	"A":       "pattern",
	"cursor":  "cursor",
	"b":       "cursor",
	"B":       "cursor",
}

// File is the optional YAML config file.
type File struct {
	Variant     string  `yaml:"variant"`
	CursorRange float64 `yaml:"cursor_range"`
	Seed        int64   `yaml:"seed"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
}

// Settings are the resolved values the rest of the program runs with.
type Settings struct {
	Variant     string
	CursorRange float64
	Seed        int64
	Width       int
	Height      int
}

// Load reads a config file. A missing file yields an empty File.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return f, err
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}

	return f, nil
}

// Resolve layers the command line over the file over the defaults.
// Zero values count as unset.
func Resolve(cli File, file File) (Settings, error) {
	s := Settings{
		Variant:     DefaultVariant,
		CursorRange: DefaultCursorRange,
		Width:       WindowWidth,
		Height:      WindowHeight,
	}

	for _, src := range []File{file, cli} {
		if src.Variant != "" {
			s.Variant = src.Variant
		}
		if src.CursorRange != 0 {
			s.CursorRange = src.CursorRange
		}
		if src.Seed != 0 {
			s.Seed = src.Seed
		}
		if src.Width != 0 {
			s.Width = src.Width
		}
		if src.Height != 0 {
			s.Height = src.Height
		}
	}

	return s, s.Validate()
}

func (s Settings) Validate() error {
	if _, ok := Variants[s.Variant]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, s.Variant)
	}
	if s.CursorRange <= 0 || math.IsNaN(s.CursorRange) || math.IsInf(s.CursorRange, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidCursorRange, s.CursorRange)
	}
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	return nil
}
