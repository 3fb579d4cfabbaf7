// Package cli parses the command line. The program runs on the goroutine
// that called Run, never inside humacli's hooks: ebiten needs the main thread.
package cli

import (
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/iburimskiy/dot-grid/internal/build"
)

type Options struct {
	Debug       bool   `doc:"enable debug logging"`
	Config      string `doc:"config file" default:"dotgrid.yaml"`
	Variant     string `doc:"grid variant: pattern or cursor"`
	CursorRange int    `doc:"pointer influence radius in pixels for the cursor variant"`
	Seed        int    `doc:"noise seed, 0 picks one at startup"`
	Width       int    `doc:"initial window or snapshot width"`
	Height      int    `doc:"initial window or snapshot height"`
	Snapshot    string `doc:"render headless to a .png or .svg file and exit"`
	Frames      int    `doc:"frames to advance before a headless snapshot" default:"1"`
}

// Run parses args and then calls fn with the options on the calling
// goroutine. fn is not called for --help or --version.
func Run(args []string, fn func(*Options) error) error {
	var (
		parsed  *Options
		started bool
	)

	c := humacli.New(func(hooks humacli.Hooks, options *Options) {
		parsed = options
		// humacli starts hooks on their own goroutine; only record that we got here
		hooks.OnStart(func() {
			started = true
		})
	})

	c.Root().Use = "dotgrid"
	c.Root().Version = build.Current.Version
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	c.Root().SetArgs(args)

	c.Run()

	if !started || parsed == nil {
		return nil
	}
	return fn(parsed)
}
