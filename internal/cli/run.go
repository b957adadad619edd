package cli

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/tcwidgets/internal/app"
	"github.com/baaaaaaaka/tcwidgets/internal/config"
	"github.com/baaaaaaaka/tcwidgets/internal/layout"
	"github.com/baaaaaaaka/tcwidgets/internal/logger"
	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

//go:embed demo.yaml
var demoLayout []byte

// openTerminal is replaced in tests with a simulation screen.
var openTerminal = term.Open

func loadLayout(path string) (*layout.Document, error) {
	if path == "" {
		return layout.Parse(demoLayout)
	}
	return layout.Load(path)
}

func runLayout(cmd *cobra.Command, opts *rootOptions) error {
	store, err := config.NewStore(opts.configPath)
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	if err := initLogging(cfg, opts); err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	doc, err := loadLayout(opts.layoutPath)
	if err != nil {
		return err
	}
	appOpts, err := appOptions(cfg)
	if err != nil {
		return err
	}
	palette, err := cfg.TermPalette()
	if err != nil {
		return err
	}

	t, err := openTerminal()
	if err != nil {
		return err
	}
	defer t.Close()
	t.SetPalette(palette)

	a, err := doc.Build(t, appOpts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Get()
	log.Info("running layout", "title", doc.Title, "widgets", len(doc.Widgets))
	err = a.Run(ctx, t)
	if errors.Is(err, context.Canceled) {
		log.Info("interrupted")
		return nil
	}
	if err != nil {
		log.Error("run failed", "err", err)
	}
	return err
}

func initLogging(cfg config.Config, opts *rootOptions) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if opts.debug {
		level = slog.LevelDebug
	}
	path := cfg.LogPath
	if opts.logPath != "" {
		path = opts.logPath
	}
	return logger.Init(path, level)
}

func appOptions(cfg config.Config) ([]app.Option, error) {
	key, err := cfg.Key()
	if err != nil {
		return nil, err
	}
	poll, err := cfg.Poll()
	if err != nil {
		return nil, err
	}
	return []app.Option{app.WithFocusKey(key), app.WithResizePoll(poll)}, nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [layout]",
		Short: "Validate a layout file without opening the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := loadLayout(path)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d menu items, %d widgets\n", describe(path), len(doc.Menu), len(doc.Widgets))
			return nil
		},
	}
}

func describe(path string) string {
	if path == "" {
		return "built-in demo"
	}
	return path
}
