package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ReservationKind tags the three reservation variants. Each kind carries
// its own payload fields and business rules.
type ReservationKind string

const (
	KindClass    ReservationKind = "CLASS"
	KindPractice ReservationKind = "PRACTICE"
	KindEvent    ReservationKind = "EVENT"
)

var ReservationKinds = []ReservationKind{KindClass, KindPractice, KindEvent}

func ParseReservationKind(s string) (ReservationKind, bool) {
	k := ReservationKind(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range ReservationKinds {
		if k == valid {
			return k, true
		}
	}
	return "", false
}

type ReservationStatus string

const (
	StatusActive    ReservationStatus = "ACTIVE"
	StatusCancelled ReservationStatus = "CANCELLED"
)

type EventCategory string

const (
	EventConference EventCategory = "CONFERENCE"
	EventWorkshop   EventCategory = "WORKSHOP"
	EventMeeting    EventCategory = "MEETING"
)

var EventCategories = []EventCategory{EventConference, EventWorkshop, EventMeeting}

func ParseEventCategory(s string) (EventCategory, bool) {
	c := EventCategory(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range EventCategories {
		if c == valid {
			return c, true
		}
	}
	return "", false
}

// Maximum duration per reservation kind.
const (
	maxClassMinutes    = 3 * 60
	maxPracticeMinutes = 4 * 60
	maxEventMinutes    = 8 * 60
)

// Reservation is a time-bound booking of a room. The kind tag selects
// which of the variant fields are meaningful; the rest stay zero.
// Dates are YYYY-MM-DD, times HH:MM (24h).
type Reservation struct {
	ID          string            `json:"id"`
	RoomID      string            `json:"roomId"`
	Date        string            `json:"date"`
	StartTime   string            `json:"startTime"`
	EndTime     string            `json:"endTime"`
	Responsible string            `json:"responsible"`
	Status      ReservationStatus `json:"status"`
	Kind        ReservationKind   `json:"kind"`

	// CLASS
	Subject string `json:"subject,omitempty"`
	Group   string `json:"group,omitempty"`
	// PRACTICE
	Equipment string `json:"equipment,omitempty"`
	// EVENT
	EventCategory      EventCategory `json:"eventCategory,omitempty"`
	ExpectedAttendance int           `json:"expectedAttendance,omitempty"`
}

// MinuteOfDay parses an HH:MM time into minutes since midnight.
func MinuteOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// DurationMinutes is the booked window length. Callers must only use it
// on reservations whose times already passed validation.
func (r *Reservation) DurationMinutes() int {
	start, _ := MinuteOfDay(r.StartTime)
	end, _ := MinuteOfDay(r.EndTime)
	return end - start
}

func (r *Reservation) DurationHours() float64 {
	return float64(r.DurationMinutes()) / 60.0
}

// Overlaps reports whether two reservations book the same room on the
// same date with intersecting [start,end) windows. A reservation ending
// exactly when another starts does not overlap.
func (r *Reservation) Overlaps(other *Reservation) bool {
	if r.RoomID != other.RoomID || r.Date != other.Date {
		return false
	}
	start, _ := MinuteOfDay(r.StartTime)
	end, _ := MinuteOfDay(r.EndTime)
	oStart, _ := MinuteOfDay(other.StartTime)
	oEnd, _ := MinuteOfDay(other.EndTime)
	return start < oEnd && end > oStart
}

// Validate runs the shared window check followed by the rules of the
// reservation's kind against the referenced room.
func (r *Reservation) Validate(room Room) error {
	if err := r.validateWindow(); err != nil {
		return err
	}
	switch r.Kind {
	case KindClass:
		return r.validateClass(room)
	case KindPractice:
		return r.validatePractice(room)
	case KindEvent:
		return r.validateEvent(room)
	default:
		return fmt.Errorf("unknown reservation kind: %s", r.Kind)
	}
}

func (r *Reservation) validateWindow() error {
	start, err := MinuteOfDay(r.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time %q, use HH:MM", r.StartTime)
	}
	end, err := MinuteOfDay(r.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time %q, use HH:MM", r.EndTime)
	}
	if !ValidDate(r.Date) {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", r.Date)
	}
	if start >= end {
		return errors.New("start time must be before end time")
	}
	return nil
}

func (r *Reservation) validateClass(room Room) error {
	if room.Type == RoomAuditorium {
		return errors.New("class reservations are not allowed in AUDITORIUM rooms")
	}
	if r.DurationMinutes() > maxClassMinutes {
		return fmt.Errorf("class reservation exceeds the maximum duration of %d hours", maxClassMinutes/60)
	}
	return nil
}

func (r *Reservation) validatePractice(room Room) error {
	if room.Type != RoomLaboratory {
		return errors.New("practice reservations are only allowed in LABORATORY rooms")
	}
	if r.DurationMinutes() > maxPracticeMinutes {
		return fmt.Errorf("practice reservation exceeds the maximum duration of %d hours", maxPracticeMinutes/60)
	}
	return nil
}

func (r *Reservation) validateEvent(room Room) error {
	if r.EventCategory == EventWorkshop && room.Type != RoomLaboratory && room.Type != RoomLecture {
		return errors.New("WORKSHOP events are only allowed in LABORATORY or LECTURE rooms")
	}
	if r.DurationMinutes() > maxEventMinutes {
		return fmt.Errorf("event reservation exceeds the maximum duration of %d hours", maxEventMinutes/60)
	}
	if r.ExpectedAttendance > room.Capacity {
		return fmt.Errorf("expected attendance (%d) exceeds room capacity (%d)", r.ExpectedAttendance, room.Capacity)
	}
	return nil
}

// Detail is a short human-readable description of the variant payload,
// used in listings and exported reports.
func (r *Reservation) Detail() string {
	switch r.Kind {
	case KindClass:
		return fmt.Sprintf("Class: %s (%s)", r.Subject, r.Group)
	case KindPractice:
		return fmt.Sprintf("Practice (equipment: %s)", r.Equipment)
	case KindEvent:
		return fmt.Sprintf("Event: %s (attendance: %d)", r.EventCategory, r.ExpectedAttendance)
	}
	return string(r.Kind)
}

// Request body for POST /reservations. Variant fields beyond the common
// prefix are required only for the matching kind.
type ReservationRequest struct {
	Kind               string `json:"kind" validate:"required"`
	RoomID             string `json:"roomId" validate:"required"`
	Date               string `json:"date" validate:"required"`
	StartTime          string `json:"startTime" validate:"required"`
	EndTime            string `json:"endTime" validate:"required"`
	Responsible        string `json:"responsible" validate:"required"`
	Subject            string `json:"subject"`
	Group              string `json:"group"`
	Equipment          string `json:"equipment"`
	EventCategory      string `json:"eventCategory"`
	ExpectedAttendance int    `json:"expectedAttendance"`
}

// Request body for PUT /reservations/:id. Empty fields mean "no change".
type ReservationUpdateRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	RoomID    string `json:"roomId"`
}
