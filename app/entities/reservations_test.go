package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
)

func lab() entities.Room {
	return entities.Room{ID: "LAB-1", Name: "Lab 1", Capacity: 30, Type: entities.RoomLaboratory}
}

func lecture() entities.Room {
	return entities.Room{ID: "A-101", Name: "Room 101", Capacity: 40, Type: entities.RoomLecture}
}

func auditorium() entities.Room {
	return entities.Room{ID: "AUD-1", Name: "Main Hall", Capacity: 200, Type: entities.RoomAuditorium}
}

func newReservation(kind entities.ReservationKind, roomID, start, end string) *entities.Reservation {
	return &entities.Reservation{
		ID:          "RES-1",
		RoomID:      roomID,
		Date:        "2024-01-10",
		StartTime:   start,
		EndTime:     end,
		Responsible: "Garcia",
		Status:      entities.StatusActive,
		Kind:        kind,
	}
}

func TestValidateWindow(t *testing.T) {
	res := newReservation(entities.KindClass, "A-101", "10:00", "09:00")
	err := res.Validate(lecture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start time must be before end time")

	res = newReservation(entities.KindClass, "A-101", "10:00", "10:00")
	require.Error(t, res.Validate(lecture()))

	res = newReservation(entities.KindClass, "A-101", "25:00", "26:00")
	require.Error(t, res.Validate(lecture()))

	res = newReservation(entities.KindClass, "A-101", "09:00", "10:00")
	res.Date = "10/01/2024"
	require.Error(t, res.Validate(lecture()))
}

func TestValidateClass(t *testing.T) {
	res := newReservation(entities.KindClass, "A-101", "09:00", "12:00")
	require.NoError(t, res.Validate(lecture()))
	require.NoError(t, res.Validate(lab()))

	err := res.Validate(auditorium())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUDITORIUM")

	long := newReservation(entities.KindClass, "A-101", "09:00", "12:01")
	err = long.Validate(lecture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum duration of 3 hours")
}

func TestValidatePractice(t *testing.T) {
	res := newReservation(entities.KindPractice, "LAB-1", "09:00", "13:00")
	require.NoError(t, res.Validate(lab()))

	err := res.Validate(lecture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LABORATORY")

	long := newReservation(entities.KindPractice, "LAB-1", "08:00", "12:30")
	require.Error(t, long.Validate(lab()))
}

func TestValidateEvent(t *testing.T) {
	res := newReservation(entities.KindEvent, "AUD-1", "09:00", "17:00")
	res.EventCategory = entities.EventConference
	res.ExpectedAttendance = 150
	require.NoError(t, res.Validate(auditorium()))

	// workshops: laboratory or lecture rooms only
	workshop := newReservation(entities.KindEvent, "AUD-1", "09:00", "11:00")
	workshop.EventCategory = entities.EventWorkshop
	workshop.ExpectedAttendance = 20
	err := workshop.Validate(auditorium())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKSHOP")
	require.NoError(t, workshop.Validate(lab()))
	require.NoError(t, workshop.Validate(lecture()))

	long := newReservation(entities.KindEvent, "AUD-1", "08:00", "16:30")
	long.EventCategory = entities.EventMeeting
	require.Error(t, long.Validate(auditorium()))

	full := newReservation(entities.KindEvent, "LAB-1", "09:00", "11:00")
	full.EventCategory = entities.EventWorkshop
	full.ExpectedAttendance = 35
	err = full.Validate(lab())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected attendance (35) exceeds room capacity (30)")
}

func TestOverlapsIsHalfOpenAndSymmetric(t *testing.T) {
	a := newReservation(entities.KindClass, "A-101", "10:00", "11:00")
	b := newReservation(entities.KindClass, "A-101", "11:00", "12:00")
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))

	c := newReservation(entities.KindClass, "A-101", "10:00", "11:01")
	assert.True(t, c.Overlaps(b))
	assert.True(t, b.Overlaps(c))

	otherRoom := newReservation(entities.KindClass, "A-102", "10:00", "12:00")
	assert.False(t, a.Overlaps(otherRoom))

	otherDate := newReservation(entities.KindClass, "A-101", "10:00", "12:00")
	otherDate.Date = "2024-01-11"
	assert.False(t, a.Overlaps(otherDate))
}

func TestDurationHours(t *testing.T) {
	res := newReservation(entities.KindClass, "A-101", "09:00", "10:30")
	assert.Equal(t, 90, res.DurationMinutes())
	assert.InDelta(t, 1.5, res.DurationHours(), 1e-9)
}

func TestParseEnums(t *testing.T) {
	roomType, ok := entities.ParseRoomType(" laboratory ")
	require.True(t, ok)
	assert.Equal(t, entities.RoomLaboratory, roomType)
	_, ok = entities.ParseRoomType("GYM")
	assert.False(t, ok)

	kind, ok := entities.ParseReservationKind("class")
	require.True(t, ok)
	assert.Equal(t, entities.KindClass, kind)

	category, ok := entities.ParseEventCategory("Workshop")
	require.True(t, ok)
	assert.Equal(t, entities.EventWorkshop, category)
	_, ok = entities.ParseEventCategory("PARTY")
	assert.False(t, ok)
}
