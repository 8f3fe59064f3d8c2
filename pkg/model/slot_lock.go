package model

import "time"

// SlotLock marks a (date, machine, startTime) slot as claimed while its
// reservation is being committed. A lock is live only while
// now - LockedAt < the lock TTL; expired records are treated as absent and
// may be overwritten by the next booking.
type SlotLock struct {
	ID       string    `bson:"_id" json:"id"`
	LockedAt time.Time `bson:"lockedAt" json:"lockedAt"`
	Machine  string    `bson:"machine" json:"machine"`
	Date     string    `bson:"date" json:"date"`
	Start    string    `bson:"start" json:"start"`
}

// Live reports whether the lock still blocks its slot at the given instant.
// Expiry is a pure function of now - LockedAt; nothing else ages a lock.
func (l *SlotLock) Live(now time.Time, ttl time.Duration) bool {
	return now.Sub(l.LockedAt) < ttl
}
