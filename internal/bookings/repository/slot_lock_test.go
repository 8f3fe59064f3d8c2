package repository

import (
	"errors"
	"testing"
	"time"

	bookingserrors "spalatorie/internal/bookings/errors"
	"spalatorie/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

func testLock(lockedAt time.Time) *model.SlotLock {
	return &model.SlotLock{
		ID:       model.SlotKey("2024-01-10", "masina1", "09:00"),
		Machine:  "masina1",
		Date:     "2024-01-10",
		Start:    "09:00",
		LockedAt: lockedAt,
	}
}

func TestClaimable_LiveLockBlocks(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	existing := testLock(now.Add(-LockTTL + time.Second))

	err := claimable(existing, nil, now)
	if !errors.Is(err, bookingserrors.ErrSlotLocked) {
		t.Errorf("expected ErrSlotLocked for a live lock, got %v", err)
	}
}

func TestClaimable_ExpiredLockDoesNotBlock(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	// Exactly at the TTL boundary and well past it.
	for _, age := range []time.Duration{LockTTL, LockTTL + time.Hour} {
		existing := testLock(now.Add(-age))
		if err := claimable(existing, nil, now); err != nil {
			t.Errorf("lock aged %s should be claimable, got %v", age, err)
		}
	}
}

func TestClaimable_MissingLockDoesNotBlock(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	if err := claimable(&model.SlotLock{}, mongo.ErrNoDocuments, now); err != nil {
		t.Errorf("missing lock should be claimable, got %v", err)
	}
}

func TestClaimable_ReadFailureAborts(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	readErr := errors.New("connection reset")

	err := claimable(&model.SlotLock{}, readErr, now)
	if err == nil {
		t.Fatal("expected error for a failed lock read")
	}
	if errors.Is(err, bookingserrors.ErrSlotLocked) {
		t.Error("read failure must not be reported as a held lock")
	}
	if !errors.Is(err, readErr) {
		t.Error("expected the read error to be wrapped")
	}
}
