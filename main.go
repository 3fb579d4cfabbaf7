package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/iburimskiy/dot-grid/internal/build"
	"github.com/iburimskiy/dot-grid/internal/cli"
	"github.com/iburimskiy/dot-grid/internal/config"
	"github.com/iburimskiy/dot-grid/internal/export"
	"github.com/iburimskiy/dot-grid/internal/game"
	"github.com/iburimskiy/dot-grid/internal/grid"
	"github.com/iburimskiy/dot-grid/internal/noise"
	"github.com/joho/godotenv"
	"github.com/ncruces/zenity"
	"github.com/phsym/console-slog"
)

func main() {
	godotenv.Load()

	// runs on the main goroutine, which ebiten requires
	err := cli.Run(os.Args[1:], func(options *cli.Options) error {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		if err := run(options); err != nil {
			if options.Snapshot == "" {
				zenity.Error(err.Error(), zenity.Title("Dot Grid"))
			}
			return err
		}
		return nil
	})
	if err != nil {
		slog.Error("Failed to run", "error", err)
		os.Exit(1)
	}
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func run(options *cli.Options) error {
	settings, err := loadSettings(options)
	if err != nil {
		return err
	}

	params, err := grid.Lookup(settings.Variant, settings.CursorRange)
	if err != nil {
		return err
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Info("Starting",
		"version", build.Current.Version,
		"commit", build.Current.Commit,
		"built", build.Current.Date,
		"variant", params.Name,
		"seed", seed)
	field := noise.NewPerlin(seed)

	if options.Snapshot != "" {
		_, err := export.Snapshot(options.Snapshot, options.Frames, params, field, settings.Width, settings.Height)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return game.Run(ctx, settings, params, field)
}

func loadSettings(options *cli.Options) (config.Settings, error) {
	var file config.File
	if options.Config != "" {
		path, err := filepath.Abs(options.Config)
		if err != nil {
			return config.Settings{}, err
		}
		if file, err = config.Load(path); err != nil {
			return config.Settings{}, err
		}
	}

	return config.Resolve(config.File{
		Variant:     options.Variant,
		CursorRange: float64(options.CursorRange),
		Seed:        int64(options.Seed),
		Width:       options.Width,
		Height:      options.Height,
	}, file)
}
