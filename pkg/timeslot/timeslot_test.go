package timeslot

import (
	"testing"
)

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-01-10", -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-01-09" {
		t.Errorf("got %q, want 2024-01-09", got)
	}

	got, err = AddDays("2024-02-28", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-02-29" {
		t.Errorf("got %q, want 2024-02-29 (leap year)", got)
	}

	if _, err := AddDays("10/01/2024", 1); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestHalfHourSlots(t *testing.T) {
	slots := HalfHourSlots(9, 11)
	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d = %q, want %q", i, slots[i], want[i])
		}
	}
}
