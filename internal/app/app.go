// Package app drives the render loop: per-frame timing, the settings panel,
// and the bidirectional sync between runtime parameters and the settings file.
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/aptmara/JHEWProject/internal/settings"
)

// App implements ebiten.Game. It owns the settings store exclusively; every
// read and write of the store happens on the game loop goroutine.
type App struct {
	log   *zap.Logger
	store *settings.Store

	params Params
	// dirty is set by any UI edit and cleared by a successful save.
	dirty   bool
	lastErr error

	rotation  float64
	lastCheck time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool

	// slider currently being dragged, "" when none
	activeSlider string

	width  int
	height int
}

// New loads the settings file (a missing file is tolerated, defaults apply)
// and returns an App ready for ebiten.RunGame.
func New(log *zap.Logger, settingsPath string, width, height int) *App {
	a := &App{
		log:       log,
		store:     settings.New(),
		prevKey:   map[ebiten.Key]bool{},
		width:     width,
		height:    height,
		lastCheck: time.Now(),
	}
	if err := a.store.Load(settingsPath); err != nil {
		log.Warn("settings file not loaded, using defaults",
			zap.String("path", settingsPath), zap.Error(err))
	}
	a.applyParams(paramsFrom(a.store))
	return a
}

// applyParams installs a freshly derived snapshot and pushes the parts that
// live outside this struct (vsync) to ebiten.
func (a *App) applyParams(p Params) {
	a.params = p
	ebiten.SetVsyncEnabled(p.VSync)
}

// maybeReload runs one change-detection check if the reload interval has
// elapsed or force is set. The check clock is reset whether or not a reload
// actually happened, so stat frequency stays bounded by the interval.
func (a *App) maybeReload(force bool) {
	if !force && time.Since(a.lastCheck) < a.params.ReloadInterval {
		return
	}
	if a.store.ReloadIfChanged() {
		a.applyParams(paramsFrom(a.store))
		a.log.Info("settings reloaded", zap.String("path", a.store.Path()))
	}
	a.lastCheck = time.Now()
}

// reloadNow is the manual reload action: a full Load bypassing the mtime
// gate, then a wholesale re-derivation of the parameters.
func (a *App) reloadNow() {
	if err := a.store.Load(a.store.Path()); err != nil {
		a.lastErr = err
		a.log.Warn("manual reload failed", zap.String("path", a.store.Path()), zap.Error(err))
	} else {
		a.lastErr = nil
	}
	a.applyParams(paramsFrom(a.store))
}

// commit saves pending edits. A failed save keeps the dirty flag set so the
// next dirty frame retries.
func (a *App) commit() {
	if !a.dirty {
		return
	}
	if err := a.store.Save(); err != nil {
		a.lastErr = err
		a.log.Warn("settings save failed", zap.String("path", a.store.Path()), zap.Error(err))
		return
	}
	a.dirty = false
	a.lastErr = nil
	a.log.Debug("settings saved", zap.String("path", a.store.Path()))
}

func (a *App) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !a.prevKey[k]
		a.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyS) {
		a.dirty = true
	}

	a.maybeReload(justPressed(ebiten.KeyR))

	a.updatePanel()

	// Assuming 60 TPS, the ebiten default.
	a.rotation += a.params.RotationSpeed / 60.0

	a.commit()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{
		R: channelByte(a.params.ClearR),
		G: channelByte(a.params.ClearG),
		B: channelByte(a.params.ClearB),
		A: channelByte(a.params.ClearA),
	})

	a.drawTriangle(screen)
	a.drawPanel(screen)

	status := fmt.Sprintf("settings: %s", a.store.Path())
	if a.dirty {
		status += " (unsaved)"
	}
	if a.lastErr != nil {
		status += " | error: " + a.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, a.height-24)
}

// Layout adopts the new window dimensions. A minimized window reports a zero
// size; the previous dimensions are kept until a usable size shows up again.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.width = outsideWidth
		a.height = outsideHeight
	}
	return a.width, a.height
}

var _ ebiten.Game = (*App)(nil)
