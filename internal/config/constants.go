package config

import "time"

// Refresh cadences. They only change how often the display is recomputed.
const (
	RefreshInterval = "interval"
	RefreshFrame    = "frame"

	IntervalPeriod = time.Second
	FramePeriod    = time.Second / 60
)

// Input constraints.
const (
	// MaxFieldLength is the display limit of the hour and minute fields.
	MaxFieldLength = 2
)

// Application settings.
const (
	AppName        = "tminus"
	ConfigFileName = "config.toml"
	LogFileName    = "tminus.log"
	DefaultTheme   = "default"
	DefaultLevel   = "info"
)

// RefreshPeriod maps a refresh name to its trigger period. Unknown names get
// the one-second interval.
func RefreshPeriod(name string) time.Duration {
	if name == RefreshFrame {
		return FramePeriod
	}
	return IntervalPeriod
}
