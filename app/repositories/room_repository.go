package repositories

import (
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
)

// RoomRepository stores the room catalog in memory, preserving insertion
// order for listings. It is not safe for concurrent use on its own: the
// usecase layer serializes access with a single lock shared with the
// reservation repository.
type RoomRepository interface {
	Insert(room *entities.Room)
	FindByID(id string) (*entities.Room, bool)
	All() []*entities.Room
	Remove(id string)
}

type memoryRoomRepository struct {
	rooms []*entities.Room
	byID  map[string]*entities.Room
}

func NewMemoryRoomRepository() RoomRepository {
	return &memoryRoomRepository{
		byID: make(map[string]*entities.Room),
	}
}

func (r *memoryRoomRepository) Insert(room *entities.Room) {
	r.rooms = append(r.rooms, room)
	r.byID[room.ID] = room
}

func (r *memoryRoomRepository) FindByID(id string) (*entities.Room, bool) {
	room, ok := r.byID[id]
	return room, ok
}

func (r *memoryRoomRepository) All() []*entities.Room {
	out := make([]*entities.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

func (r *memoryRoomRepository) Remove(id string) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, room := range r.rooms {
		if room.ID == id {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			break
		}
	}
}
