package model

import (
	"fmt"
	"time"
)

// Reservation is a committed booking for one machine slot. The stored
// credential is either a bcrypt hash or, for records created before hashing
// was introduced, a 4-character plaintext PIN. It is never serialized in
// read responses.
type Reservation struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	UserName    string    `json:"userName" bson:"userName"`
	PhoneNumber string    `json:"phoneNumber" bson:"phoneNumber"`
	Code        string    `json:"-" bson:"code"`
	MachineType string    `json:"machineType" bson:"machineType"`
	Date        string    `json:"date" bson:"date"`
	StartTime   string    `json:"startTime" bson:"startTime"`
	Duration    int       `json:"duration" bson:"duration"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingRequest is the client payload for creating a reservation.
// Duration is accepted as-is, including non-positive values, to match the
// historical behavior of the booking API.
type BookingRequest struct {
	UserName    string `json:"userName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Pin         string `json:"pin" validate:"required,len=4"`
	MachineType string `json:"machineType" validate:"required,machine"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"startTime" validate:"required"`
	Duration    int    `json:"duration"`
}

// SlotKey builds the composite lock key for a (date, machine, startTime)
// slot. Reservations and their locks are joined by re-deriving this key,
// never by a stored reference.
func SlotKey(date, machine, startTime string) string {
	return fmt.Sprintf("%s_%s_%s", date, machine, startTime)
}
