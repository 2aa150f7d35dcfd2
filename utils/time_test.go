package utils

import (
	"testing"
	"time"
)

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"12:30", 750, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"08:60", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ClockMinutes(tt.clock)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ClockMinutes(%q) accepted invalid input", tt.clock)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ClockMinutes(%q) returned error: %v", tt.clock, err)
		}
		if got != tt.want {
			t.Fatalf("ClockMinutes(%q) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	at := time.Date(2026, time.March, 20, 8, 5, 59, 0, time.UTC)
	if got := FormatClock(at); got != "08:05" {
		t.Fatalf("FormatClock = %q, want %q", got, "08:05")
	}
}

func TestMinuteOfDay(t *testing.T) {
	at := time.Date(2026, time.March, 20, 13, 45, 0, 0, time.UTC)
	if got := MinuteOfDay(at); got != 825 {
		t.Fatalf("MinuteOfDay = %d, want 825", got)
	}
}

func TestAbsMinutes(t *testing.T) {
	if got := AbsMinutes(10, 3); got != 7 {
		t.Fatalf("AbsMinutes(10, 3) = %d, want 7", got)
	}
	if got := AbsMinutes(3, 10); got != 7 {
		t.Fatalf("AbsMinutes(3, 10) = %d, want 7", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{60, "01:00"},
		{485, "08:05"},
		{-60, "01:00"}, // sinal fica por conta de quem formata o saldo
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Fatalf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
