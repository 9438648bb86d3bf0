package usecases

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/repositories"
)

type RoomUsecase interface {
	Register(req entities.RoomRequest) (*entities.Room, error)
	GetAll() []*entities.Room
	GetByID(id string) (*entities.Room, error)
	Update(id string, req entities.RoomUpdateRequest) error
	Delete(id string) error
	GetRoomReservations(id string) ([]*entities.Reservation, error)
}

type roomUsecase struct {
	mu       *sync.RWMutex
	roomRepo repositories.RoomRepository
	resRepo  repositories.ReservationRepository
}

// NewRoomUsecase builds the room catalog operations. mu is the single
// lock shared with the reservation usecases; every top-level operation
// runs entirely under it.
func NewRoomUsecase(mu *sync.RWMutex, roomRepo repositories.RoomRepository, resRepo repositories.ReservationRepository) RoomUsecase {
	return &roomUsecase{mu: mu, roomRepo: roomRepo, resRepo: resRepo}
}

func (u *roomUsecase) Register(req entities.RoomRequest) (*entities.Room, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := entities.NormalizeRoomID(req.ID)
	if id == "" {
		return nil, ErrBadRequest("room id is required")
	}
	if req.Capacity <= 0 {
		return nil, ErrBusinessRule("capacity must be greater than 0")
	}
	roomType, ok := entities.ParseRoomType(req.Type)
	if !ok {
		return nil, ErrBadRequest("invalid room type, use LECTURE, LABORATORY or AUDITORIUM")
	}
	if _, exists := u.roomRepo.FindByID(id); exists {
		return nil, ErrBusinessRule(fmt.Sprintf("room with ID %s already exists", id))
	}

	room := &entities.Room{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
		Type:     roomType,
	}
	u.roomRepo.Insert(room)
	return room, nil
}

func (u *roomUsecase) GetAll() []*entities.Room {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.roomRepo.All()
}

func (u *roomUsecase) GetByID(id string) (*entities.Room, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	room, ok := u.roomRepo.FindByID(entities.NormalizeRoomID(id))
	if !ok {
		return nil, ErrNotFound(fmt.Sprintf("room not found with ID: %s", entities.NormalizeRoomID(id)))
	}
	return room, nil
}

func (u *roomUsecase) Update(id string, req entities.RoomUpdateRequest) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	id = entities.NormalizeRoomID(id)
	room, ok := u.roomRepo.FindByID(id)
	if !ok {
		return ErrNotFound(fmt.Sprintf("room not found with ID: %s", id))
	}
	if u.resRepo.HasActiveByRoom(id) {
		return ErrBusinessRule(fmt.Sprintf("room %s cannot be updated because it has active reservations, cancel them first", id))
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return ErrBusinessRule("capacity must be greater than 0")
	}

	var newType entities.RoomType
	if strings.TrimSpace(req.Type) != "" {
		t, ok := entities.ParseRoomType(req.Type)
		if !ok {
			return ErrBadRequest("invalid room type, use LECTURE, LABORATORY or AUDITORIUM")
		}
		newType = t
	}

	// All checks passed, apply only the provided fields.
	if name := strings.TrimSpace(req.Name); name != "" {
		room.Name = name
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if newType != "" {
		room.Type = newType
	}
	return nil
}

func (u *roomUsecase) Delete(id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	id = entities.NormalizeRoomID(id)
	if _, ok := u.roomRepo.FindByID(id); !ok {
		return ErrNotFound(fmt.Sprintf("room not found with ID: %s", id))
	}
	if u.resRepo.HasAnyByRoom(id) {
		return ErrBusinessRule(fmt.Sprintf("room %s cannot be deleted because it has associated reservations, delete them first", id))
	}
	u.roomRepo.Remove(id)
	return nil
}

func (u *roomUsecase) GetRoomReservations(id string) ([]*entities.Reservation, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	id = entities.NormalizeRoomID(id)
	if _, ok := u.roomRepo.FindByID(id); !ok {
		return nil, ErrNotFound(fmt.Sprintf("room not found with ID: %s", id))
	}
	return u.resRepo.ByRoom(id), nil
}
