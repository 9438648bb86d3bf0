package entities

// RoomHours is one row of the top-rooms occupancy report.
type RoomHours struct {
	Room  string  `json:"room"`
	Hours float64 `json:"hours"`
}
