package usecases

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/repositories"
)

type ReservationUsecase interface {
	Register(req entities.ReservationRequest) (*entities.Reservation, error)
	List(sortBy string) []*entities.Reservation
	FindByRoom(roomID string) []*entities.Reservation
	SearchByResponsible(text string) ([]*entities.Reservation, error)
	Modify(id string, req entities.ReservationUpdateRequest) error
	Cancel(id string) error
	Delete(id string) error
}

type reservationUsecase struct {
	mu       *sync.RWMutex
	resRepo  repositories.ReservationRepository
	roomRepo repositories.RoomRepository
}

// NewReservationUsecase builds the reservation engine. It reads the room
// catalog for lookups and capacity checks but never mutates it. mu is
// the lock shared with the room usecases.
func NewReservationUsecase(mu *sync.RWMutex, resRepo repositories.ReservationRepository, roomRepo repositories.RoomRepository) ReservationUsecase {
	return &reservationUsecase{mu: mu, resRepo: resRepo, roomRepo: roomRepo}
}

// newReservationID mirrors the historical id scheme: the first 8 chars
// of a UUID, uppercased.
func newReservationID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// checkOverlap scans the ACTIVE reservations sharing the room and date,
// skipping excludeID so a modified reservation never conflicts with its
// own prior window.
func (u *reservationUsecase) checkOverlap(res *entities.Reservation, excludeID string) error {
	for _, other := range u.resRepo.ActiveByRoomDate(res.RoomID, res.Date) {
		if other.ID == excludeID || other.ID == res.ID {
			continue
		}
		if res.Overlaps(other) {
			return ErrScheduleConflict(fmt.Sprintf("schedule conflict with reservation %s from %s to %s",
				other.ID, other.StartTime, other.EndTime))
		}
	}
	return nil
}

func (u *reservationUsecase) Register(req entities.ReservationRequest) (*entities.Reservation, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	kind, ok := entities.ParseReservationKind(req.Kind)
	if !ok {
		return nil, ErrBadRequest("invalid reservation kind, use CLASS, PRACTICE or EVENT")
	}
	roomID := entities.NormalizeRoomID(req.RoomID)
	room, ok := u.roomRepo.FindByID(roomID)
	if !ok {
		return nil, ErrNotFound(fmt.Sprintf("room not found with ID: %s", roomID))
	}

	res := &entities.Reservation{
		ID:          newReservationID(),
		RoomID:      roomID,
		Date:        strings.TrimSpace(req.Date),
		StartTime:   strings.TrimSpace(req.StartTime),
		EndTime:     strings.TrimSpace(req.EndTime),
		Responsible: strings.TrimSpace(req.Responsible),
		Status:      entities.StatusActive,
		Kind:        kind,
	}
	switch kind {
	case entities.KindClass:
		res.Subject = strings.TrimSpace(req.Subject)
		res.Group = strings.TrimSpace(req.Group)
	case entities.KindPractice:
		res.Equipment = strings.TrimSpace(req.Equipment)
	case entities.KindEvent:
		category, ok := entities.ParseEventCategory(req.EventCategory)
		if !ok {
			return nil, ErrBadRequest("invalid event category, use CONFERENCE, WORKSHOP or MEETING")
		}
		res.EventCategory = category
		res.ExpectedAttendance = req.ExpectedAttendance
	}

	if err := res.Validate(*room); err != nil {
		return nil, ErrBusinessRule(err.Error())
	}
	if err := u.checkOverlap(res, ""); err != nil {
		return nil, err
	}

	u.resRepo.Insert(res)
	return res, nil
}

func (u *reservationUsecase) List(sortBy string) []*entities.Reservation {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := u.resRepo.All()
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "date":
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Date != out[j].Date {
				return out[i].Date < out[j].Date
			}
			return out[i].StartTime < out[j].StartTime
		})
	case "responsible":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Responsible < out[j].Responsible
		})
	case "room":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RoomID < out[j].RoomID
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID < out[j].ID
		})
	}
	return out
}

func (u *reservationUsecase) FindByRoom(roomID string) []*entities.Reservation {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.resRepo.ByRoom(entities.NormalizeRoomID(roomID))
}

func (u *reservationUsecase) SearchByResponsible(text string) ([]*entities.Reservation, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if strings.TrimSpace(text) == "" {
		return nil, ErrBadRequest("search text is required")
	}
	return u.resRepo.ByResponsible(strings.TrimSpace(text)), nil
}

func (u *reservationUsecase) Modify(id string, req entities.ReservationUpdateRequest) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	id = strings.ToUpper(strings.TrimSpace(id))
	res, ok := u.resRepo.FindActiveByID(id)
	if !ok {
		return ErrNotFound(fmt.Sprintf("ACTIVE reservation not found with ID: %s", id))
	}

	// Reject malformed inputs before touching the record.
	if req.Date != "" && !entities.ValidDate(req.Date) {
		return ErrBadRequest(fmt.Sprintf("invalid date %q, use YYYY-MM-DD", req.Date))
	}
	if req.StartTime != "" {
		if _, err := entities.MinuteOfDay(req.StartTime); err != nil {
			return ErrBadRequest(fmt.Sprintf("invalid start time %q, use HH:MM", req.StartTime))
		}
	}
	if req.EndTime != "" {
		if _, err := entities.MinuteOfDay(req.EndTime); err != nil {
			return ErrBadRequest(fmt.Sprintf("invalid end time %q, use HH:MM", req.EndTime))
		}
	}
	if req.RoomID != "" {
		newRoomID := entities.NormalizeRoomID(req.RoomID)
		if _, ok := u.roomRepo.FindByID(newRoomID); !ok {
			return ErrNotFound(fmt.Sprintf("room not found with ID: %s", newRoomID))
		}
	}

	// Snapshot the mutable fields, apply the changes to the live record,
	// re-validate, and restore the snapshot if anything fails.
	oldDate, oldStart, oldEnd, oldRoom := res.Date, res.StartTime, res.EndTime, res.RoomID

	if req.Date != "" {
		res.Date = strings.TrimSpace(req.Date)
	}
	if req.StartTime != "" {
		res.StartTime = strings.TrimSpace(req.StartTime)
	}
	if req.EndTime != "" {
		res.EndTime = strings.TrimSpace(req.EndTime)
	}
	if req.RoomID != "" {
		res.RoomID = entities.NormalizeRoomID(req.RoomID)
	}

	room, _ := u.roomRepo.FindByID(res.RoomID)
	err := res.Validate(*room)
	if err != nil {
		err = ErrBusinessRule(err.Error())
	} else {
		err = u.checkOverlap(res, id)
	}
	if err != nil {
		res.Date, res.StartTime, res.EndTime, res.RoomID = oldDate, oldStart, oldEnd, oldRoom
		return err
	}
	return nil
}

func (u *reservationUsecase) Cancel(id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	id = strings.ToUpper(strings.TrimSpace(id))
	res, ok := u.resRepo.FindActiveByID(id)
	if !ok {
		return ErrNotFound(fmt.Sprintf("ACTIVE reservation not found with ID: %s", id))
	}
	res.Status = entities.StatusCancelled
	return nil
}

func (u *reservationUsecase) Delete(id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	id = strings.ToUpper(strings.TrimSpace(id))
	if _, ok := u.resRepo.FindByID(id); !ok {
		return ErrNotFound(fmt.Sprintf("reservation not found with ID: %s", id))
	}
	u.resRepo.Remove(id)
	return nil
}
