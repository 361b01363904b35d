package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/akyairhashvil/tminus/internal/config"
	"github.com/akyairhashvil/tminus/internal/headless"
	"github.com/akyairhashvil/tminus/internal/input"
	"github.com/akyairhashvil/tminus/internal/tui"
	"github.com/akyairhashvil/tminus/internal/util"
	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	if err := newApp(runCountdown).Run(os.Args); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// settings is the file config with flags applied on top.
type settings struct {
	params    input.Params
	refresh   string
	theme     string
	autoStart bool
	headless  bool
	logLevel  string
	logFile   string
}

func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "hours",
			Usage:   "initial hours; non-numeric values count as 0",
			EnvVars: []string{"TMINUS_HOURS"},
		},
		&cli.StringFlag{
			Name:    "minutes",
			Usage:   "initial minutes; non-numeric values count as 0",
			EnvVars: []string{"TMINUS_MINUTES"},
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "URL or query string carrying hours and minutes parameters",
		},
		&cli.StringFlag{
			Name:  "refresh",
			Usage: "display refresh cadence: interval or frame",
		},
		&cli.StringFlag{
			Name:  "theme",
			Usage: "color theme: default or dracula",
		},
		&cli.BoolFlag{
			Name:  "autostart",
			Usage: "start counting down immediately",
		},
		&cli.BoolFlag{
			Name:  "headless",
			Usage: "print the clock as plain lines instead of drawing the UI",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to config file (default $XDG_CONFIG_HOME/tminus/config.toml)",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "path to log file",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (error, warn, info, debug)",
			EnvVars: []string{"TMINUS_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
}

func newApp(action func(context.Context, settings) error) *cli.App {
	tui.AppVersion = appVersion()
	return &cli.App{
		Name:    config.AppName,
		Usage:   "countdown timer for the terminal",
		Version: tui.AppVersion,
		Flags:   newFlags(),
		Action: func(cctx *cli.Context) error {
			s, err := loadSettings(cctx)
			if err != nil {
				return err
			}
			return action(cctx.Context, s)
		},
	}
}

func appVersion() string {
	if tui.AppVersion != "dev" {
		return tui.AppVersion
	}
	return versioninfo.Short()
}

func loadSettings(cctx *cli.Context) (settings, error) {
	cfgPath := cctx.String("config")
	if cfgPath == "" {
		cfgPath = filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return settings{}, err
	}
	s := settings{
		refresh:   cfg.Refresh,
		theme:     cfg.Theme,
		autoStart: cfg.AutoStart,
		logLevel:  cfg.Log.Level,
		logFile:   cfg.Log.File,
	}
	if cctx.IsSet("refresh") {
		s.refresh = cctx.String("refresh")
		if s.refresh != config.RefreshInterval && s.refresh != config.RefreshFrame {
			return settings{}, fmt.Errorf("unknown refresh %q", s.refresh)
		}
	}
	if cctx.IsSet("theme") {
		s.theme = cctx.String("theme")
	}
	if cctx.IsSet("autostart") {
		s.autoStart = cctx.Bool("autostart")
	}
	if cctx.IsSet("log-level") {
		s.logLevel = cctx.String("log-level")
	}
	if cctx.IsSet("log-file") {
		s.logFile = cctx.String("log-file")
	}
	if s.logFile == "" {
		s.logFile = filepath.Join(util.StateDir(config.AppName), config.LogFileName)
	}
	s.headless = cctx.Bool("headless")
	s.params = input.Params{
		Hours:   cctx.String("hours"),
		Minutes: cctx.String("minutes"),
	}.Merge(input.ParamsFromURL(cctx.String("url")))
	return s, nil
}

func runCountdown(ctx context.Context, s settings) error {
	logFile, err := util.OpenLogFile(s.logFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	prevLogger := slog.Default()
	defer func() {
		slog.SetDefault(prevLogger)
		_ = logFile.Close()
	}()
	util.ConfigLogger(s.logLevel, logFile)
	slog.Info("starting", "version", tui.AppVersion, "refresh", s.refresh, "headless", s.headless)

	if s.headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		err := headless.Run(ctx, os.Stdout, s.params.Seconds(), headless.Options{
			Period: config.RefreshPeriod(s.refresh),
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	model := tui.NewModel(tui.Options{
		Refresh:   s.refresh,
		Theme:     s.theme,
		Initial:   s.params,
		AutoStart: s.autoStart,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Dispose()
	} else {
		model.Dispose()
	}
	return err
}
