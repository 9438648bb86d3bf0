package entities

import "strings"

// RoomType is the closed set of classroom types.
type RoomType string

const (
	RoomLecture    RoomType = "LECTURE"
	RoomLaboratory RoomType = "LABORATORY"
	RoomAuditorium RoomType = "AUDITORIUM"
)

// RoomTypes lists every valid type in a fixed order, used for reports
// and input validation.
var RoomTypes = []RoomType{RoomLecture, RoomLaboratory, RoomAuditorium}

func ParseRoomType(s string) (RoomType, bool) {
	t := RoomType(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range RoomTypes {
		if t == valid {
			return t, true
		}
	}
	return "", false
}

// Room is a bookable classroom. The catalog owns all Room values;
// reservations reference them by ID only.
type Room struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	Type     RoomType `json:"type"`
}

// Request body for POST /rooms
type RoomRequest struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	Type     string `json:"type" validate:"required"`
}

// Request body for PUT /rooms/:id. Absent fields mean "no change":
// empty strings for name/type, nil for capacity.
type RoomUpdateRequest struct {
	Name     string `json:"name"`
	Capacity *int   `json:"capacity"`
	Type     string `json:"type"`
}

// NormalizeRoomID is the canonical form of a room identifier.
func NormalizeRoomID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
