package config

const (
	WindowWidth  = 1280
	WindowHeight = 720

	DefaultSettingsFile = "settings.ini"

	// Settings panel layout
	PanelX      = 20
	PanelY      = 20
	PanelWidth  = 320
	RowHeight   = 26
	RowPadding  = 4
	LabelWidth  = 140
	TrackHeight = 8

	// Panel buttons
	ButtonWidth  = 88
	ButtonHeight = 24

	// Slider ranges
	ReloadIntervalMinMs = 100
	ReloadIntervalMaxMs = 2000
	ScaleMin            = 0.1
	ScaleMax            = 5.0
	RotationSpeedMin    = -10.0
	RotationSpeedMax    = 10.0
)
