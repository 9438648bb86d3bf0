package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/pkg/csvstore"
)

func newStore(t *testing.T) (*csvstore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := csvstore.New(
		filepath.Join(dir, "aulas.csv"),
		filepath.Join(dir, "reservas.csv"),
		zap.NewNop(),
	)
	return store, dir
}

func allRoomsExist(string) bool { return true }

func TestMissingFilesMeanEmptyState(t *testing.T) {
	store, _ := newStore(t)

	rooms, err := store.LoadRooms()
	require.NoError(t, err)
	assert.Empty(t, rooms)

	reservations, err := store.LoadReservations(allRoomsExist)
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestRoomsRoundtrip(t *testing.T) {
	store, dir := newStore(t)

	in := []*entities.Room{
		{ID: "A1", Name: "Room 1", Capacity: 30, Type: entities.RoomLaboratory},
		{ID: "B2", Name: "Room 2", Capacity: 100, Type: entities.RoomAuditorium},
	}
	require.NoError(t, store.SaveRooms(in))

	// headerless, one record per line
	raw, err := os.ReadFile(filepath.Join(dir, "aulas.csv"))
	require.NoError(t, err)
	assert.Equal(t, "A1,Room 1,30,LABORATORY\nB2,Room 2,100,AUDITORIUM\n", string(raw))

	out, err := store.LoadRooms()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[1])
}

func TestReservationsRoundtrip(t *testing.T) {
	store, dir := newStore(t)

	in := []*entities.Reservation{
		{
			ID: "AAAA1111", RoomID: "A1", Date: "2024-01-10",
			StartTime: "09:00", EndTime: "11:00", Responsible: "Garcia",
			Status: entities.StatusActive, Kind: entities.KindClass,
			Subject: "Algebra", Group: "1A",
		},
		{
			ID: "BBBB2222", RoomID: "A1", Date: "2024-01-10",
			StartTime: "11:00", EndTime: "13:00", Responsible: "Lopez",
			Status: entities.StatusCancelled, Kind: entities.KindPractice,
			Equipment: "oscilloscopes",
		},
		{
			ID: "CCCC3333", RoomID: "B2", Date: "2024-01-11",
			StartTime: "09:00", EndTime: "17:00", Responsible: "Mendez",
			Status: entities.StatusActive, Kind: entities.KindEvent,
			EventCategory: entities.EventConference, ExpectedAttendance: 80,
		},
	}
	require.NoError(t, store.SaveReservations(in))

	raw, err := os.ReadFile(filepath.Join(dir, "reservas.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"CLASS,AAAA1111,A1,2024-01-10,09:00,11:00,Garcia,ACTIVE,Algebra,1A\n"+
			"PRACTICE,BBBB2222,A1,2024-01-10,11:00,13:00,Lopez,CANCELLED,oscilloscopes\n"+
			"EVENT,CCCC3333,B2,2024-01-11,09:00,17:00,Mendez,ACTIVE,CONFERENCE,80\n",
		string(raw))

	out, err := store.LoadReservations(allRoomsExist)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := range in {
		assert.Equal(t, in[i], out[i])
	}
}

func TestLoadReservationsSkipsBadRecords(t *testing.T) {
	store, dir := newStore(t)

	lines := "CLASS,AAAA1111,A1,2024-01-10,09:00,11:00,Garcia,ACTIVE,Algebra,1A\n" +
		"CLASS,BAD00001,GHOST,2024-01-10,09:00,11:00,Garcia,ACTIVE,Algebra,1A\n" + // unknown room
		"BANQUET,BAD00002,A1,2024-01-10,09:00,11:00,Garcia,ACTIVE\n" + // unknown kind
		"PRACTICE,BAD00003,A1,2024-01-10,09:00,11:00,Garcia,ACTIVE\n" + // missing equipment
		"EVENT,BAD00004,A1,2024-01-10,09:00,11:00,Garcia,ACTIVE,CONFERENCE,lots\n" + // bad attendance
		"PRACTICE,GOOD0001,A1,2024-01-10,12:00,13:00,Lopez,ACTIVE,microscopes\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reservas.csv"), []byte(lines), 0o644))

	roomExists := func(id string) bool { return id == "A1" }
	out, err := store.LoadReservations(roomExists)
	require.NoError(t, err, "bad records are skipped, never fatal")
	require.Len(t, out, 2)
	assert.Equal(t, "AAAA1111", out[0].ID)
	assert.Equal(t, "GOOD0001", out[1].ID)
}

func TestLoadRoomsSkipsInvalidRecords(t *testing.T) {
	store, dir := newStore(t)

	lines := "A1,Room 1,30,LABORATORY\n" +
		"B2,Room 2,0,LECTURE\n" + // bad capacity
		"C3,Room 3,20,GYM\n" + // bad type
		"d4,Room 4,15,lecture\n" // normalized on load
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aulas.csv"), []byte(lines), 0o644))

	out, err := store.LoadRooms()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "A1", out[0].ID)
	assert.Equal(t, "D4", out[1].ID)
	assert.Equal(t, entities.RoomLecture, out[1].Type)
}
