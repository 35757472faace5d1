package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/aptmara/JHEWProject/internal/app"
	"github.com/aptmara/JHEWProject/internal/config"
	"github.com/aptmara/JHEWProject/internal/logging"
)

func main() {
	cli := kingpin.New("jhew", "Rotating triangle demo whose parameters live-sync with an INI settings file")
	settingsPath := cli.Flag("settings", "Path to the INI settings file").Default(config.DefaultSettingsFile).String()
	width := cli.Flag("width", "Initial window width").Default(strconv.Itoa(config.WindowWidth)).Int()
	height := cli.Flag("height", "Initial window height").Default(strconv.Itoa(config.WindowHeight)).Int()
	debug := cli.Flag("debug", "Enable debug logging").Bool()
	kingpin.MustParse(cli.Parse(os.Args[1:]))

	logger, err := logging.New(*debug)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("JHEW - Triangle + INI Sync")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	a := app.New(logger, *settingsPath, *width, *height)
	logger.Info("starting", zap.String("settings", *settingsPath))

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run failed", zap.Error(err))
	}
}
