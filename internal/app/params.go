package app

import (
	"time"

	"github.com/aptmara/JHEWProject/internal/settings"
)

// Defaults applied whenever a key is missing or unparsable.
const (
	defaultVSync            = true
	defaultReloadIntervalMs = 500
	defaultClearR           = 0.05
	defaultClearG           = 0.10
	defaultClearB           = 0.20
	defaultClearA           = 1.0
	defaultScale            = 1.0
	defaultRotationSpeed    = 1.0
	defaultTint             = 1.0
)

// Params is the snapshot of render state derived from the settings store.
// It is rebuilt wholesale on every reload so a reload either updates every
// field or none.
type Params struct {
	VSync          bool
	ReloadInterval time.Duration

	ClearR, ClearG, ClearB, ClearA float64

	Scale         float64
	RotationSpeed float64 // radians per second
	TintR         float64
	TintG         float64
	TintB         float64
}

// paramsFrom derives a full Params snapshot from the store, falling back to
// the documented defaults for anything absent.
func paramsFrom(s *settings.Store) Params {
	return Params{
		VSync:          s.GetBool("Render", "VSync", defaultVSync),
		ReloadInterval: time.Duration(s.GetInt("Render", "HotReloadIntervalMs", defaultReloadIntervalMs)) * time.Millisecond,

		ClearR: s.GetDouble("Clear", "R", defaultClearR),
		ClearG: s.GetDouble("Clear", "G", defaultClearG),
		ClearB: s.GetDouble("Clear", "B", defaultClearB),
		ClearA: s.GetDouble("Clear", "A", defaultClearA),

		Scale:         s.GetDouble("Triangle", "Scale", defaultScale),
		RotationSpeed: s.GetDouble("Triangle", "RotationSpeed", defaultRotationSpeed),
		TintR:         s.GetDouble("Triangle", "TintR", defaultTint),
		TintG:         s.GetDouble("Triangle", "TintG", defaultTint),
		TintB:         s.GetDouble("Triangle", "TintB", defaultTint),
	}
}
