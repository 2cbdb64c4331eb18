package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/tilecut/audio"
	"github.com/lixenwraith/tilecut/config"
	"github.com/lixenwraith/tilecut/engine"
	"github.com/lixenwraith/tilecut/grid"
	"github.com/lixenwraith/tilecut/input"
	"github.com/lixenwraith/tilecut/observability"
	"github.com/lixenwraith/tilecut/partition"
	"github.com/lixenwraith/tilecut/render"
)

// Version is set at build time:
// go build -ldflags "-X main.Version=1.0.0" ./cmd/tilecut
var Version = "dev"

// eventBuffer absorbs mouse-motion bursts while a frame is drawn
const eventBuffer = 64

// screenFactory is swapped in tests
type screenFactory func() (tcell.Screen, error)

// NewRootCommand builds a fresh command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(tcell.NewScreen)
}

func newRootCommand(newScreen screenFactory) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "tilecut",
		Short:         "Split a terminal canvas into grid-aligned regions",
		Long:          "tilecut is an interactive editor for gapless rectangular tilings.\nPoint at a region and split it vertically or horizontally, or remove an\nedge to merge two regions back together.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, newScreen)
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./tilecut.yaml)")
	config.RegisterFlags(cmd.Flags())
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tilecut %s\n", Version)
		},
	}
}

// run owns the terminal for the lifetime of one editing session
func run(ctx context.Context, cfg *config.Config, newScreen screenFactory) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := observability.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = observability.Sync(logger) }()

	keys, err := input.LoadKeyTable(cfg.Keys)
	if err != nil {
		return err
	}

	g, err := grid.New(cfg.Grid.EffectiveRows(), cfg.Grid.EffectiveCols(), grid.WithMinGap(cfg.Grid.MinGap))
	if err != nil {
		return err
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	// Restore the terminal before a panic is reported
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			logger.Error("editor crashed", zap.Any("panic", r), zap.Stack("stack"))
			_ = observability.Sync(logger)
			panic(r)
		}
	}()
	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, g, cfg.Render.ShowGrid)
	space := partition.New(g,
		partition.WithRenderer(renderer),
		partition.WithLogger(logger),
		partition.WithSnap(cfg.Grid.Snap),
	)
	handler := input.NewHandler(renderer.Mapper(), keys)

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithValidation(cfg.Debug.Validate),
	}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(audio.WithLogger(logger), audio.WithVolume(cfg.Audio.Volume))
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sm.Cleanup()
			opts = append(opts, engine.WithSound(sm))
		}
	}

	editor := engine.NewEditor(space, renderer, handler, opts...)

	stop := make(chan struct{})
	defer close(stop)
	events := pumpEvents(screen, stop)

	if err := editor.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// pumpEvents forwards screen events until the screen is finalized or stop
// is closed. The returned channel is closed when the pump exits.
func pumpEvents(screen tcell.Screen, stop <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, eventBuffer)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()
	return events
}
