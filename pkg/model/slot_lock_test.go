package model

import (
	"testing"
	"time"
)

func TestSlotLockLive(t *testing.T) {
	const ttl = 300 * time.Second
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	lock := &SlotLock{ID: "2024-01-10_masina1_09:00", LockedAt: base}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"just locked", base, true},
		{"one second before expiry", base.Add(299 * time.Second), true},
		{"exactly at ttl", base.Add(300 * time.Second), false},
		{"long expired", base.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lock.Live(tt.now, ttl); got != tt.want {
				t.Errorf("Live(%s) = %v, want %v", tt.now.Sub(base), got, tt.want)
			}
		})
	}
}

func TestSlotKey(t *testing.T) {
	got := SlotKey("2024-01-10", "masina1", "09:00")
	if got != "2024-01-10_masina1_09:00" {
		t.Errorf("unexpected slot key: %q", got)
	}
}
