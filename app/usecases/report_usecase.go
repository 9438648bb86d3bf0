package usecases

import (
	"sort"
	"sync"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/repositories"
)

type ReportUsecase interface {
	TopRoomsByHours(limit int) []entities.RoomHours
	HoursByRoomType() map[entities.RoomType]float64
	CountByKind() map[entities.ReservationKind]int
}

type reportUsecase struct {
	mu       *sync.RWMutex
	resRepo  repositories.ReservationRepository
	roomRepo repositories.RoomRepository
}

func NewReportUsecase(mu *sync.RWMutex, resRepo repositories.ReservationRepository, roomRepo repositories.RoomRepository) ReportUsecase {
	return &reportUsecase{mu: mu, resRepo: resRepo, roomRepo: roomRepo}
}

// TopRoomsByHours sums booked hours per room name over ACTIVE
// reservations, descending. Ties keep first-booked order; rooms beyond
// limit are cut.
func (u *reportUsecase) TopRoomsByHours(limit int) []entities.RoomHours {
	u.mu.RLock()
	defer u.mu.RUnlock()

	hours := make(map[string]float64)
	var order []string
	for _, res := range u.resRepo.All() {
		if res.Status != entities.StatusActive {
			continue
		}
		room, ok := u.roomRepo.FindByID(res.RoomID)
		if !ok {
			continue
		}
		if _, seen := hours[room.Name]; !seen {
			order = append(order, room.Name)
		}
		hours[room.Name] += res.DurationHours()
	}

	out := make([]entities.RoomHours, 0, len(order))
	for _, name := range order {
		out = append(out, entities.RoomHours{Room: name, Hours: hours[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Hours > out[j].Hours
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// HoursByRoomType sums booked hours per room type over ACTIVE reservations.
func (u *reportUsecase) HoursByRoomType() map[entities.RoomType]float64 {
	u.mu.RLock()
	defer u.mu.RUnlock()

	hours := make(map[entities.RoomType]float64)
	for _, res := range u.resRepo.All() {
		if res.Status != entities.StatusActive {
			continue
		}
		room, ok := u.roomRepo.FindByID(res.RoomID)
		if !ok {
			continue
		}
		hours[room.Type] += res.DurationHours()
	}
	return hours
}

// CountByKind counts reservations of every status grouped by kind.
func (u *reportUsecase) CountByKind() map[entities.ReservationKind]int {
	u.mu.RLock()
	defer u.mu.RUnlock()

	counts := make(map[entities.ReservationKind]int)
	for _, res := range u.resRepo.All() {
		counts[res.Kind]++
	}
	return counts
}
