package repositories

import (
	"strings"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
)

// ReservationRepository stores every reservation, cancelled ones
// included, in insertion order. Like RoomRepository it relies on the
// usecase layer's lock for concurrent access.
type ReservationRepository interface {
	Insert(res *entities.Reservation)
	FindByID(id string) (*entities.Reservation, bool)
	FindActiveByID(id string) (*entities.Reservation, bool)
	All() []*entities.Reservation
	Remove(id string)
	ByRoom(roomID string) []*entities.Reservation
	ActiveByRoomDate(roomID, date string) []*entities.Reservation
	HasActiveByRoom(roomID string) bool
	HasAnyByRoom(roomID string) bool
	ByResponsible(text string) []*entities.Reservation
}

type memoryReservationRepository struct {
	reservations []*entities.Reservation
	byID         map[string]*entities.Reservation
}

func NewMemoryReservationRepository() ReservationRepository {
	return &memoryReservationRepository{
		byID: make(map[string]*entities.Reservation),
	}
}

func (r *memoryReservationRepository) Insert(res *entities.Reservation) {
	r.reservations = append(r.reservations, res)
	r.byID[res.ID] = res
}

func (r *memoryReservationRepository) FindByID(id string) (*entities.Reservation, bool) {
	res, ok := r.byID[id]
	return res, ok
}

func (r *memoryReservationRepository) FindActiveByID(id string) (*entities.Reservation, bool) {
	res, ok := r.byID[id]
	if !ok || res.Status != entities.StatusActive {
		return nil, false
	}
	return res, true
}

func (r *memoryReservationRepository) All() []*entities.Reservation {
	out := make([]*entities.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out
}

func (r *memoryReservationRepository) Remove(id string) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, res := range r.reservations {
		if res.ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			break
		}
	}
}

func (r *memoryReservationRepository) ByRoom(roomID string) []*entities.Reservation {
	var out []*entities.Reservation
	for _, res := range r.reservations {
		if res.RoomID == roomID {
			out = append(out, res)
		}
	}
	return out
}

func (r *memoryReservationRepository) ActiveByRoomDate(roomID, date string) []*entities.Reservation {
	var out []*entities.Reservation
	for _, res := range r.reservations {
		if res.Status == entities.StatusActive && res.RoomID == roomID && res.Date == date {
			out = append(out, res)
		}
	}
	return out
}

func (r *memoryReservationRepository) HasActiveByRoom(roomID string) bool {
	for _, res := range r.reservations {
		if res.Status == entities.StatusActive && res.RoomID == roomID {
			return true
		}
	}
	return false
}

func (r *memoryReservationRepository) HasAnyByRoom(roomID string) bool {
	for _, res := range r.reservations {
		if res.RoomID == roomID {
			return true
		}
	}
	return false
}

func (r *memoryReservationRepository) ByResponsible(text string) []*entities.Reservation {
	needle := strings.ToLower(text)
	var out []*entities.Reservation
	for _, res := range r.reservations {
		if strings.Contains(strings.ToLower(res.Responsible), needle) {
			out = append(out, res)
		}
	}
	return out
}
