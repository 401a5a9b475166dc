package domain

import "fmt"

// Slot represents a dated time instance of an experience with finite capacity
type Slot struct {
	ID           int64
	ExperienceID int64
	Date         string // date label, e.g. "2025-11-05"
	Time         string // time label, e.g. "09:00 AM"
	Available    int    // total capacity
	Booked       int
}

// NewSlot builds a slot and checks that booked never exceeds available
func NewSlot(id, experienceID int64, date, time string, available, booked int) (*Slot, error) {
	if available < 0 {
		return nil, fmt.Errorf("%w: available must not be negative", ErrInvalidSlot)
	}
	if booked < 0 {
		return nil, fmt.Errorf("%w: booked must not be negative", ErrInvalidSlot)
	}
	if booked > available {
		return nil, fmt.Errorf("%w: booked %d exceeds available %d", ErrInvalidSlot, booked, available)
	}

	return &Slot{
		ID:           id,
		ExperienceID: experienceID,
		Date:         date,
		Time:         time,
		Available:    available,
		Booked:       booked,
	}, nil
}

// IsFull returns true if the slot has no free spots left
func (s *Slot) IsFull() bool {
	return s.Booked >= s.Available
}

// RemainingSpots returns the number of spots that can still be booked
func (s *Slot) RemainingSpots() int {
	if s.IsFull() {
		return 0
	}
	return s.Available - s.Booked
}

// Reserve takes one spot. A full slot is left untouched.
func (s *Slot) Reserve() error {
	if s.IsFull() {
		return ErrSlotFullyBooked
	}
	s.Booked++
	return nil
}
