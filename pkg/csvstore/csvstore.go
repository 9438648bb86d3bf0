package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
)

// Store persists the room catalog and the reservation set as headerless
// CSV files. Records that cannot be decoded, or reservations pointing at
// an unknown room, are logged and skipped so one bad line never aborts a
// load. Missing files simply mean an empty starting state.
type Store struct {
	roomsFile        string
	reservationsFile string
	log              *zap.Logger
}

func New(roomsFile, reservationsFile string, log *zap.Logger) *Store {
	return &Store{
		roomsFile:        roomsFile,
		reservationsFile: reservationsFile,
		log:              log,
	}
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// Room record: id,name,capacity,type
type roomRow struct {
	ID       string `csv:"id"`
	Name     string `csv:"name"`
	Capacity int    `csv:"capacity"`
	Type     string `csv:"type"`
}

func (s *Store) LoadRooms() ([]*entities.Room, error) {
	file, err := os.Open(s.roomsFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("rooms file not found, starting empty", zap.String("file", s.roomsFile))
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil && info.Size() == 0 {
		return nil, nil
	}

	var rows []*roomRow
	if err := gocsv.UnmarshalWithoutHeaders(file, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.roomsFile, err)
	}

	var rooms []*entities.Room
	for _, row := range rows {
		roomType, ok := entities.ParseRoomType(row.Type)
		if !ok || row.ID == "" || row.Capacity <= 0 {
			s.log.Warn("skipping invalid room record",
				zap.String("id", row.ID), zap.String("type", row.Type))
			continue
		}
		rooms = append(rooms, &entities.Room{
			ID:       entities.NormalizeRoomID(row.ID),
			Name:     row.Name,
			Capacity: row.Capacity,
			Type:     roomType,
		})
	}
	return rooms, nil
}

func (s *Store) SaveRooms(rooms []*entities.Room) error {
	rows := make([]*roomRow, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, &roomRow{
			ID:       room.ID,
			Name:     room.Name,
			Capacity: room.Capacity,
			Type:     string(room.Type),
		})
	}

	file, err := createFile(s.roomsFile)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalWithoutHeaders(&rows, file)
}

// Reservation records share a common prefix and carry kind-specific
// trailing fields, so rows have different widths and are read with a
// plain csv.Reader instead of gocsv:
//
//	CLASS,id,roomId,date,start,end,responsible,status,subject,group
//	PRACTICE,id,roomId,date,start,end,responsible,status,equipment
//	EVENT,id,roomId,date,start,end,responsible,status,category,attendance
const commonFields = 8

// LoadReservations decodes the reservation file. roomExists guards the
// room reference of every record; orphans are reported and skipped.
func (s *Store) LoadReservations(roomExists func(id string) bool) ([]*entities.Reservation, error) {
	file, err := os.Open(s.reservationsFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("reservations file not found, starting empty", zap.String("file", s.reservationsFile))
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.reservationsFile, err)
	}

	var reservations []*entities.Reservation
	for i, record := range records {
		res, err := decodeReservation(record, roomExists)
		if err != nil {
			s.log.Warn("skipping invalid reservation record",
				zap.Int("line", i+1), zap.Error(err))
			continue
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func decodeReservation(record []string, roomExists func(id string) bool) (*entities.Reservation, error) {
	if len(record) < commonFields {
		return nil, fmt.Errorf("expected at least %d fields, got %d", commonFields, len(record))
	}

	kind, ok := entities.ParseReservationKind(record[0])
	if !ok {
		return nil, fmt.Errorf("unknown reservation kind %q", record[0])
	}

	res := &entities.Reservation{
		ID:          record[1],
		RoomID:      entities.NormalizeRoomID(record[2]),
		Date:        record[3],
		StartTime:   record[4],
		EndTime:     record[5],
		Responsible: record[6],
		Kind:        kind,
	}

	switch entities.ReservationStatus(record[7]) {
	case entities.StatusActive:
		res.Status = entities.StatusActive
	case entities.StatusCancelled:
		res.Status = entities.StatusCancelled
	default:
		return nil, fmt.Errorf("unknown status %q", record[7])
	}

	if !entities.ValidDate(res.Date) {
		return nil, fmt.Errorf("invalid date %q", res.Date)
	}
	if _, err := entities.MinuteOfDay(res.StartTime); err != nil {
		return nil, fmt.Errorf("invalid start time %q", res.StartTime)
	}
	if _, err := entities.MinuteOfDay(res.EndTime); err != nil {
		return nil, fmt.Errorf("invalid end time %q", res.EndTime)
	}
	if !roomExists(res.RoomID) {
		return nil, fmt.Errorf("room %s does not exist", res.RoomID)
	}

	switch kind {
	case entities.KindClass:
		if len(record) != commonFields+2 {
			return nil, errors.New("CLASS records need subject and group fields")
		}
		res.Subject = record[8]
		res.Group = record[9]
	case entities.KindPractice:
		if len(record) != commonFields+1 {
			return nil, errors.New("PRACTICE records need an equipment field")
		}
		res.Equipment = record[8]
	case entities.KindEvent:
		if len(record) != commonFields+2 {
			return nil, errors.New("EVENT records need category and attendance fields")
		}
		category, ok := entities.ParseEventCategory(record[8])
		if !ok {
			return nil, fmt.Errorf("unknown event category %q", record[8])
		}
		attendance, err := strconv.Atoi(record[9])
		if err != nil {
			return nil, fmt.Errorf("invalid attendance %q", record[9])
		}
		res.EventCategory = category
		res.ExpectedAttendance = attendance
	}
	return res, nil
}

func (s *Store) SaveReservations(reservations []*entities.Reservation) error {
	file, err := createFile(s.reservationsFile)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, res := range reservations {
		record := []string{
			string(res.Kind), res.ID, res.RoomID, res.Date,
			res.StartTime, res.EndTime, res.Responsible, string(res.Status),
		}
		switch res.Kind {
		case entities.KindClass:
			record = append(record, res.Subject, res.Group)
		case entities.KindPractice:
			record = append(record, res.Equipment)
		case entities.KindEvent:
			record = append(record, string(res.EventCategory), strconv.Itoa(res.ExpectedAttendance))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
