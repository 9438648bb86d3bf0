package usecases_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
)

func TestRegisterRoom(t *testing.T) {
	f := newFixture()

	room, err := f.rooms.Register(entities.RoomRequest{
		ID: " lab-1 ", Name: "Electronics Lab", Capacity: 25, Type: "laboratory",
	})
	require.NoError(t, err)
	assert.Equal(t, "LAB-1", room.ID)
	assert.Equal(t, entities.RoomLaboratory, room.Type)

	// duplicate id, regardless of case
	_, err = f.rooms.Register(entities.RoomRequest{
		ID: "LAB-1", Name: "Other", Capacity: 10, Type: "LECTURE",
	})
	requireUseCaseError(t, err, http.StatusUnprocessableEntity)

	_, err = f.rooms.Register(entities.RoomRequest{
		ID: "LAB-2", Name: "Bad", Capacity: 0, Type: "LECTURE",
	})
	requireUseCaseError(t, err, http.StatusUnprocessableEntity)

	_, err = f.rooms.Register(entities.RoomRequest{
		ID: "LAB-2", Name: "Bad", Capacity: 10, Type: "GYM",
	})
	requireUseCaseError(t, err, http.StatusBadRequest)

	assert.Len(t, f.rooms.GetAll(), 1)
}

func TestGetAllKeepsInsertionOrder(t *testing.T) {
	f := newFixture()
	f.addRoom(t, "C1", 10, "LECTURE")
	f.addRoom(t, "A1", 10, "LECTURE")
	f.addRoom(t, "B1", 10, "LECTURE")

	rooms := f.rooms.GetAll()
	require.Len(t, rooms, 3)
	assert.Equal(t, "C1", rooms[0].ID)
	assert.Equal(t, "A1", rooms[1].ID)
	assert.Equal(t, "B1", rooms[2].ID)
}

func TestUpdateRoom(t *testing.T) {
	f := newFixture()
	f.addRoom(t, "A1", 30, "LECTURE")

	requireUseCaseError(t, f.rooms.Update("A9", entities.RoomUpdateRequest{Name: "x"}), http.StatusNotFound)

	// partial update: only provided fields change
	newCap := 45
	require.NoError(t, f.rooms.Update("a1", entities.RoomUpdateRequest{Capacity: &newCap}))
	room, err := f.rooms.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, 45, room.Capacity)
	assert.Equal(t, "Room A1", room.Name)
	assert.Equal(t, entities.RoomLecture, room.Type)

	require.NoError(t, f.rooms.Update("A1", entities.RoomUpdateRequest{Name: "Annex", Type: "auditorium"}))
	room, _ = f.rooms.GetByID("A1")
	assert.Equal(t, "Annex", room.Name)
	assert.Equal(t, entities.RoomAuditorium, room.Type)
	assert.Equal(t, 45, room.Capacity)

	zero := 0
	err = f.rooms.Update("A1", entities.RoomUpdateRequest{Capacity: &zero})
	requireUseCaseError(t, err, http.StatusUnprocessableEntity)
}

func TestUpdateRoomBlockedByActiveReservation(t *testing.T) {
	f := newFixture()
	f.addRoom(t, "A1", 30, "LABORATORY")

	res, err := f.reservations.Register(practiceRequest("A1", "2024-01-10", "09:00", "11:00"))
	require.NoError(t, err)

	newCap := 50
	err = f.rooms.Update("A1", entities.RoomUpdateRequest{Capacity: &newCap})
	ucErr := requireUseCaseError(t, err, http.StatusUnprocessableEntity)
	assert.Contains(t, ucErr.Message, "active reservations")

	// cancelling unblocks the update
	require.NoError(t, f.reservations.Cancel(res.ID))
	require.NoError(t, f.rooms.Update("A1", entities.RoomUpdateRequest{Capacity: &newCap}))
}

func TestDeleteRoomGuard(t *testing.T) {
	f := newFixture()
	f.addRoom(t, "A1", 30, "LABORATORY")
	f.addRoom(t, "A2", 30, "LABORATORY")

	res, err := f.reservations.Register(practiceRequest("A1", "2024-01-10", "09:00", "11:00"))
	require.NoError(t, err)
	require.NoError(t, f.reservations.Cancel(res.ID))

	// even a CANCELLED reservation blocks deletion
	requireUseCaseError(t, f.rooms.Delete("A1"), http.StatusUnprocessableEntity)

	require.NoError(t, f.reservations.Delete(res.ID))
	require.NoError(t, f.rooms.Delete("A1"))
	requireUseCaseError(t, f.rooms.Delete("A1"), http.StatusNotFound)

	require.NoError(t, f.rooms.Delete("A2"))
	assert.Empty(t, f.rooms.GetAll())
}

func TestGetRoomReservations(t *testing.T) {
	f := newFixture()
	f.addRoom(t, "A1", 30, "LABORATORY")
	f.addRoom(t, "A2", 30, "LABORATORY")

	_, err := f.reservations.Register(practiceRequest("A1", "2024-01-10", "09:00", "11:00"))
	require.NoError(t, err)
	cancelled, err := f.reservations.Register(practiceRequest("A1", "2024-01-11", "09:00", "11:00"))
	require.NoError(t, err)
	require.NoError(t, f.reservations.Cancel(cancelled.ID))

	all, err := f.rooms.GetRoomReservations("A1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	empty, err := f.rooms.GetRoomReservations("A2")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = f.rooms.GetRoomReservations("A9")
	requireUseCaseError(t, err, http.StatusNotFound)
}
