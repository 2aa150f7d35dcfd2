package utils

import (
	"fmt"
	"time"
)

// ClockMinutes converte "HH:MM" em minutos desde a meia-noite.
func ClockMinutes(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q", clock)
	}
	return h*60 + m, nil
}

// FormatClock devolve o horário no formato HH:MM usado em toda a interface.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// MinuteOfDay devolve os minutos desde a meia-noite do instante.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// AbsMinutes devolve a diferença absoluta entre dois minutos do dia.
func AbsMinutes(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// FormatMinutes formata uma quantidade de minutos como HH:MM (saldo, extras).
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = -minutes
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
