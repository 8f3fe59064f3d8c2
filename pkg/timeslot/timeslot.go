// Package timeslot provides helpers for the HH:MM / YYYY-MM-DD string
// formats the booking API works in. Dates in this format sort
// lexicographically, which the range queries rely on.
package timeslot

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// AddDays shifts a YYYY-MM-DD date by the given number of days.
func AddDays(date string, days int) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.AddDate(0, 0, days).Format(DateLayout), nil
}

// HalfHourSlots lists the bookable start times between startHour (inclusive)
// and endHour (exclusive) on the half hour.
func HalfHourSlots(startHour, endHour int) []string {
	slots := make([]string, 0, (endHour-startHour)*2)
	for h := startHour; h < endHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
		slots = append(slots, fmt.Sprintf("%02d:30", h))
	}
	return slots
}
