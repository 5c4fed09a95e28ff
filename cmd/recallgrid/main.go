//go:build ebiten

package main

import (
	"errors"
	"flag"
	"time"

	"recallgrid/internal/app"
	"recallgrid/internal/bci"
	"recallgrid/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	registry := bci.NewRegistry()
	device := bci.NewConnector(bci.PlaceholderDevice{}, logger)
	defer device.Close()

	gui := app.New(cfg, logger)
	session, err := game.NewSession(cfg.GameConfig(), gui, registry, logger)
	if err != nil {
		logger.Fatal("configuration rejected", zap.Error(err))
	}
	gui.Attach(session, cfg.Tile)

	device.Start()
	session.Start(time.Now())

	w, h := gui.ScreenSize()
	ebiten.SetWindowTitle("recallgrid")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(gui); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
