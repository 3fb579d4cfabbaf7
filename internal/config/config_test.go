package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if f != (File{}) {
		t.Errorf("Expected empty file, got %+v", f)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotgrid.yaml")
	data := "variant: cursor\ncursor_range: 320\nseed: 42\nwidth: 800\nheight: 600\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := File{Variant: "cursor", CursorRange: 320, Seed: 42, Width: 800, Height: 600}
	if f != want {
		t.Errorf("Expected %+v, got %+v", want, f)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("variant: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name string
		cli  File
		file File
		want Settings
	}{
		{
			name: "defaults",
			want: Settings{Variant: DefaultVariant, CursorRange: DefaultCursorRange, Width: WindowWidth, Height: WindowHeight},
		},
		{
			name: "file only",
			file: File{Variant: "cursor", CursorRange: 150, Seed: 7},
			want: Settings{Variant: "cursor", CursorRange: 150, Seed: 7, Width: WindowWidth, Height: WindowHeight},
		},
		{
			name: "cli wins",
			cli:  File{CursorRange: 90, Width: 300},
			file: File{Variant: "cursor", CursorRange: 150, Width: 500, Height: 400},
			want: Settings{Variant: "cursor", CursorRange: 90, Width: 300, Height: 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.cli, tt.file)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	base := Settings{Variant: "cursor", CursorRange: 200, Width: 10, Height: 10}

	bad := base
	bad.CursorRange = -1
	if err := bad.Validate(); !errors.Is(err, ErrInvalidCursorRange) {
		t.Errorf("Expected ErrInvalidCursorRange, got %v", err)
	}

	bad = base
	bad.CursorRange = math.Inf(1)
	if err := bad.Validate(); !errors.Is(err, ErrInvalidCursorRange) {
		t.Errorf("Expected ErrInvalidCursorRange for +Inf, got %v", err)
	}

	bad = base
	bad.Height = -5
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}

	bad = base
	bad.Variant = "spiral"
	if err := bad.Validate(); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}

	if err := base.Validate(); err != nil {
		t.Errorf("Expected valid settings, got %v", err)
	}
}

func TestResolveRejectsUnknownVariant(t *testing.T) {
	if _, err := Resolve(File{}, File{Variant: "spiral"}); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant from file, got %v", err)
	}
	if _, err := Resolve(File{Variant: "B"}, File{}); err != nil {
		t.Errorf("Expected alias B to be accepted, got %v", err)
	}
}
