package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/aptmara/JHEWProject/internal/config"
	"github.com/aptmara/JHEWProject/internal/settings"
)

// sliderSpec binds one panel slider to a parameter field and its settings
// key. Edits go through set, which must update both the live parameter and
// the store so the end-of-frame commit persists them.
type sliderSpec struct {
	label    string
	min, max float64
	format   string
	get      func(a *App) float64
	set      func(a *App, v float64)
}

var panelSliders = []sliderSpec{
	{
		label: "ReloadMs", min: config.ReloadIntervalMinMs, max: config.ReloadIntervalMaxMs, format: "%.0f",
		get: func(a *App) float64 { return float64(a.params.ReloadInterval / time.Millisecond) },
		set: func(a *App, v float64) {
			ms := int(v + 0.5)
			a.params.ReloadInterval = time.Duration(ms) * time.Millisecond
			a.store.SetInt("Render", "HotReloadIntervalMs", ms)
		},
	},
	{
		label: "Clear R", min: 0, max: 1, format: "%.2f",
		get: func(a *App) float64 { return a.params.ClearR },
		set: func(a *App, v float64) { a.params.ClearR = v; a.store.SetDouble("Clear", "R", v) },
	},
	{
		label: "Clear G", min: 0, max: 1, format: "%.2f",
		get: func(a *App) float64 { return a.params.ClearG },
		set: func(a *App, v float64) { a.params.ClearG = v; a.store.SetDouble("Clear", "G", v) },
	},
	{
		label: "Clear B", min: 0, max: 1, format: "%.2f",
		get: func(a *App) float64 { return a.params.ClearB },
		set: func(a *App, v float64) { a.params.ClearB = v; a.store.SetDouble("Clear", "B", v) },
	},
	{
		label: "Clear A", min: 0, max: 1, format: "%.2f",
		get: func(a *App) float64 { return a.params.ClearA },
		set: func(a *App, v float64) { a.params.ClearA = v; a.store.SetDouble("Clear", "A", v) },
	},
	{
		label: "Scale", min: config.ScaleMin, max: config.ScaleMax, format: "%.2f",
		get: func(a *App) float64 { return a.params.Scale },
		set: func(a *App, v float64) { a.params.Scale = v; a.store.SetDouble("Triangle", "Scale", v) },
	},
	{
		label: "RotSpeed", min: config.RotationSpeedMin, max: config.RotationSpeedMax, format: "%.2f",
		get: func(a *App) float64 { return a.params.RotationSpeed },
		set: func(a *App, v float64) { a.params.RotationSpeed = v; a.store.SetDouble("Triangle", "RotationSpeed", v) },
	},
	{
		label: "Tint R", min: 0, max: 1, format: "%.2f",
		get: func(a *App) float64 { return a.params.TintR },
		set: func(a *App, v float64) { a.params.TintR = v; a.store.SetDouble("Triangle", "TintR", v) },
	},
	{
		label: "Tint G", min: 0, max: 1, format: "%.2f",
		get: func(a *App) float64 { return a.params.TintG },
		set: func(a *App, v float64) { a.params.TintG = v; a.store.SetDouble("Triangle", "TintG", v) },
	},
	{
		label: "Tint B", min: 0, max: 1, format: "%.2f",
		get: func(a *App) float64 { return a.params.TintB },
		set: func(a *App, v float64) { a.params.TintB = v; a.store.SetDouble("Triangle", "TintB", v) },
	},
}

// Panel rows: row 0 is the VSync checkbox, rows 1..len(panelSliders) are the
// sliders, and the final row holds the buttons.

func rowY(i int) int {
	return config.PanelY + 30 + i*(config.RowHeight+config.RowPadding)
}

func panelHeight() int {
	// buttons row plus the key-hint line at the bottom
	return rowY(len(panelSliders)+2) - config.PanelY + 20
}

func checkboxRect() image.Rectangle {
	x := config.PanelX + config.LabelWidth
	y := rowY(0) + (config.RowHeight-16)/2
	return image.Rect(x, y, x+16, y+16)
}

// sliderTrackRect is the drawn track; sliderHitRect is the full-row grab area
// so a drag does not have to start on the thin track itself.
func sliderTrackRect(i int) image.Rectangle {
	x0 := config.PanelX + config.LabelWidth
	x1 := config.PanelX + config.PanelWidth - 56
	y := rowY(i+1) + (config.RowHeight-config.TrackHeight)/2
	return image.Rect(x0, y, x1, y+config.TrackHeight)
}

func sliderHitRect(i int) image.Rectangle {
	track := sliderTrackRect(i)
	y := rowY(i + 1)
	return image.Rect(track.Min.X-4, y, track.Max.X+4, y+config.RowHeight)
}

func buttonRect(i int) image.Rectangle {
	x := config.PanelX + 8 + i*(config.ButtonWidth+8)
	y := rowY(len(panelSliders) + 1)
	return image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
}

var buttonLabels = [3]string{"Save", "Reload", "Open..."}

// updatePanel processes one frame of mouse interaction with the panel. Every
// committed edit updates the live parameter immediately and routes the value
// into the store, leaving the dirty flag for the end-of-frame commit.
func (a *App) updatePanel() {
	mx, my := ebiten.CursorPosition()
	at := image.Pt(mx, my)
	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if !held {
		a.activeSlider = ""
	}

	if click && at.In(checkboxRect()) {
		v := !a.params.VSync
		a.params.VSync = v
		ebiten.SetVsyncEnabled(v)
		a.store.SetBool("Render", "VSync", v)
		a.dirty = true
	}

	for i := range panelSliders {
		s := &panelSliders[i]
		if click && at.In(sliderHitRect(i)) {
			a.activeSlider = s.label
		}
		if a.activeSlider != s.label || !held {
			continue
		}
		track := sliderTrackRect(i)
		t := float64(mx-track.Min.X) / float64(track.Dx())
		v := lerp(s.min, s.max, t)
		if v != s.get(a) {
			s.set(a, v)
			a.dirty = true
		}
	}

	if click {
		switch {
		case at.In(buttonRect(0)):
			a.dirty = true
		case at.In(buttonRect(1)):
			a.reloadNow()
		case at.In(buttonRect(2)):
			a.openSettingsDialog()
		}
	}
}

// openSettingsDialog lets the user point the app at a different settings
// file. The current store is kept if the new file cannot be loaded.
func (a *App) openSettingsDialog() {
	path, err := zenity.SelectFile(
		zenity.Title("Open Settings File"),
		zenity.FileFilters{{
			Name:     "INI settings",
			Patterns: []string{"*.ini"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		a.lastErr = err
		return
	}

	fresh := settings.New()
	if err := fresh.Load(path); err != nil {
		a.lastErr = err
		a.log.Warn("settings file not loaded", zap.String("path", path), zap.Error(err))
		return
	}
	a.store = fresh
	a.dirty = false
	a.lastErr = nil
	a.applyParams(paramsFrom(a.store))
	a.lastCheck = time.Now()
	a.log.Info("switched settings file", zap.String("path", path))
}

func (a *App) drawPanel(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	at := image.Pt(mx, my)

	// Panel background
	vector.DrawFilledRect(screen,
		float32(config.PanelX), float32(config.PanelY),
		float32(config.PanelWidth), float32(panelHeight()),
		color.RGBA{R: 20, G: 25, B: 35, A: 220}, false)
	vector.StrokeRect(screen,
		float32(config.PanelX), float32(config.PanelY),
		float32(config.PanelWidth), float32(panelHeight()),
		2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, "Settings (INI <-> GUI)", config.PanelX+8, config.PanelY+6)

	// VSync checkbox
	box := checkboxRect()
	ebitenutil.DebugPrintAt(screen, "VSync", config.PanelX+8, rowY(0)+6)
	vector.StrokeRect(screen,
		float32(box.Min.X), float32(box.Min.Y), 16, 16,
		2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)
	if a.params.VSync {
		vector.DrawFilledRect(screen,
			float32(box.Min.X+4), float32(box.Min.Y+4), 8, 8,
			color.RGBA{R: 120, G: 200, B: 160, A: 255}, false)
	}

	// Sliders
	for i := range panelSliders {
		s := &panelSliders[i]
		v := s.get(a)
		label := s.label + " " + fmt.Sprintf(s.format, v)
		ebitenutil.DebugPrintAt(screen, label, config.PanelX+8, rowY(i+1)+6)

		track := sliderTrackRect(i)
		vector.DrawFilledRect(screen,
			float32(track.Min.X), float32(track.Min.Y),
			float32(track.Dx()), float32(track.Dy()),
			color.RGBA{R: 40, G: 50, B: 65, A: 255}, false)

		t := unlerp(s.min, s.max, v)
		fillW := t * float64(track.Dx())
		if fillW > 0 {
			vector.DrawFilledRect(screen,
				float32(track.Min.X), float32(track.Min.Y),
				float32(fillW), float32(track.Dy()),
				color.RGBA{R: 100, G: 120, B: 160, A: 255}, false)
		}

		knobX := float64(track.Min.X) + t*float64(track.Dx())
		knobY := float64(track.Min.Y) + float64(track.Dy())/2
		knobColor := color.RGBA{R: 200, G: 210, B: 230, A: 255}
		if a.activeSlider == s.label {
			knobColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		vector.DrawFilledCircle(screen, float32(knobX), float32(knobY), 6, knobColor, false)
	}

	// Buttons
	for i, label := range buttonLabels {
		r := buttonRect(i)
		bg := color.RGBA{R: 100, G: 120, B: 160, A: 255}
		if at.In(r) {
			bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
		}
		vector.DrawFilledRect(screen,
			float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()), bg, false)
		vector.StrokeRect(screen,
			float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()),
			2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

		textWidth := len(label) * 6
		ebitenutil.DebugPrintAt(screen, label,
			r.Min.X+(r.Dx()-textWidth)/2, r.Min.Y+(r.Dy()-12)/2)
	}

	ebitenutil.DebugPrintAt(screen, "R: reload  S: save  Esc/Q: quit",
		config.PanelX+8, rowY(len(panelSliders)+1)+config.ButtonHeight+8)
}
