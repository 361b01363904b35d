package tui

import (
	"fmt"

	"github.com/akyairhashvil/tminus/internal/countdown"
)

// FormatClock renders seconds as HH:MM:SS. Hours grow past two digits when
// needed; negative input renders as zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// PrimaryLabel names the commit button: "Set" while either field holds
// text, "Reset" otherwise.
func PrimaryLabel(hours, minutes string) string {
	if hours != "" || minutes != "" {
		return "Set"
	}
	return "Reset"
}

// SecondaryLabel names the start/pause button.
func SecondaryLabel(state countdown.RunState) string {
	if state == countdown.Running {
		return "Pause"
	}
	return "Start"
}

// ShowSecondary reports whether the start/pause button is rendered.
func ShowSecondary(remaining int) bool {
	return remaining != 0
}

// remainingFraction is the share of the total still left, for the bar.
func remainingFraction(remaining, total int) float64 {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	if remaining >= total {
		return 1
	}
	return float64(remaining) / float64(total)
}

func statusLabel(e *countdown.Engine) string {
	switch {
	case e.State() == countdown.Running:
		return "Running"
	case e.State() == countdown.Idle && e.Total() > 0 && e.Remaining() == 0:
		return "Time's up"
	case e.State() == countdown.Paused && e.Remaining() > 0:
		return "Paused"
	default:
		return "Ready"
	}
}
