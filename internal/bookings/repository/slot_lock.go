package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingserrors "spalatorie/internal/bookings/errors"
	"spalatorie/pkg/config"
	"spalatorie/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LockTTL is how long a slot lock is considered live. A lock older than
// this is a leftover from a failed booking and may be overwritten.
const LockTTL = 300 * time.Second

// SlotLockRepository provides advisory locks keyed by slot coordinates.
type SlotLockRepository interface {
	// TryAcquire claims the slot or returns ErrSlotLocked when a live lock
	// is already held. Expired locks are overwritten in place.
	TryAcquire(ctx context.Context, lock *model.SlotLock, now time.Time) error
	Release(ctx context.Context, lockID string) error
}

type mongoSlotLockRepository struct {
	collection *mongo.Collection
}

func NewSlotLockRepository(cfg *config.Config) SlotLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSlotLockRepository{
		collection: db.Collection("slot_locks"),
	}
}

// TryAcquire runs a read-then-upsert. Callers invoke it inside a session
// transaction, so two concurrent acquisitions of the same key cause a write
// conflict and only one commits.
func (r *mongoSlotLockRepository) TryAcquire(ctx context.Context, lock *model.SlotLock, now time.Time) error {
	var existing model.SlotLock
	findErr := r.collection.FindOne(ctx, bson.M{"_id": lock.ID}).Decode(&existing)
	if err := claimable(&existing, findErr, now); err != nil {
		return err
	}

	lock.LockedAt = now
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": lock.ID}, lock, opts); err != nil {
		return fmt.Errorf("failed to write slot lock: %w", err)
	}
	return nil
}

// claimable decides whether the slot may be claimed given the outcome of the
// lock read. A live lock blocks with ErrSlotLocked; an expired or missing
// lock does not. Any other read failure aborts the acquisition.
func claimable(existing *model.SlotLock, findErr error, now time.Time) error {
	if findErr == nil {
		if existing.Live(now, LockTTL) {
			return bookingserrors.ErrSlotLocked
		}
		return nil
	}
	if errors.Is(findErr, mongo.ErrNoDocuments) {
		return nil
	}
	return fmt.Errorf("failed to read slot lock: %w", findErr)
}

// Release removes the lock. Missing documents are not an error: cancellation
// releases locks best-effort and the lock may have already expired and been
// replaced.
func (r *mongoSlotLockRepository) Release(ctx context.Context, lockID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}
