package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dungeon-crawl/config"
	"dungeon-crawl/devtools"
	"dungeon-crawl/engine"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "dungeon.toml", "path to the TOML config file")
	mapDump := flag.Bool("mapdump", false, "print a generated map to stdout and exit")
	seed := flag.Int64("seed", 0, "override generation.seed")
	kind := flag.String("kind", "", "override generation.kind (random, rooms, bsp, cellular)")
	flag.Parse()

	cfg, found, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *seed != 0 {
		cfg.Generation.Seed = *seed
	}
	if *kind != "" {
		cfg.Generation.Kind = *kind
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if !found {
		log.Warn("config file not found, using defaults", zap.String("path", *cfgPath))
	}

	if *mapDump {
		return dumpMap(cfg, log)
	}

	game, err := NewGame(cfg, log)
	if err != nil {
		return err
	}
	w, h := config.GetScreenDimensions()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func dumpMap(cfg *config.Config, log *zap.Logger) error {
	seed := engine.ResolveSeed(cfg)
	level, err := engine.GenerateLevel(cfg, seed, log)
	if err != nil {
		return fmt.Errorf("mapdump: %w", err)
	}
	return devtools.Dump(os.Stdout, level, seed, devtools.TerminalOptions(os.Stdout))
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
