package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/usecases"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/utils"
)

// topRoomsLimit caps the occupancy ranking to the three busiest rooms.
const topRoomsLimit = 3

type ReportHandler struct {
	reportUsecase usecases.ReportUsecase
	reportsDir    string
}

func NewReportHandler(reportUsecase usecases.ReportUsecase, reportsDir string) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, reportsDir: reportsDir}
}

// GetTopRooms godoc
// @Summary Top rooms by reserved hours
// @Description The three rooms with the most ACTIVE reserved hours
// @Tags Report
// @Produce json
// @Param export query bool false "Also write the report to a text file"
// @Success 200 {object} map[string]interface{}
// @Router /reports/top-rooms [get]
func (h *ReportHandler) GetTopRooms(c echo.Context) error {
	rows := h.reportUsecase.TopRoomsByHours(topRoomsLimit)

	var lines []string
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("- %s: %.1f hours", row.Room, row.Hours))
	}
	return h.respond(c, "Top Rooms By Hours", strings.Join(lines, "\n"), rows)
}

// GetHoursByRoomType godoc
// @Summary Reserved hours per room type
// @Description Sum of ACTIVE reserved hours grouped by room type
// @Tags Report
// @Produce json
// @Param export query bool false "Also write the report to a text file"
// @Success 200 {object} map[string]interface{}
// @Router /reports/hours-by-type [get]
func (h *ReportHandler) GetHoursByRoomType(c echo.Context) error {
	hours := h.reportUsecase.HoursByRoomType()

	var lines []string
	for _, roomType := range entities.RoomTypes {
		if v, ok := hours[roomType]; ok {
			lines = append(lines, fmt.Sprintf("- %s: %.1f hours", roomType, v))
		}
	}
	return h.respond(c, "Occupancy By Room Type", strings.Join(lines, "\n"), hours)
}

// GetCountByKind godoc
// @Summary Reservation count per kind
// @Description Count of reservations of every status grouped by kind
// @Tags Report
// @Produce json
// @Param export query bool false "Also write the report to a text file"
// @Success 200 {object} map[string]interface{}
// @Router /reports/by-kind [get]
func (h *ReportHandler) GetCountByKind(c echo.Context) error {
	counts := h.reportUsecase.CountByKind()

	var lines []string
	for _, kind := range entities.ReservationKinds {
		if v, ok := counts[kind]; ok {
			lines = append(lines, fmt.Sprintf("- %s: %d reservations", kind, v))
		}
	}
	return h.respond(c, "Distribution By Reservation Kind", strings.Join(lines, "\n"), counts)
}

func (h *ReportHandler) respond(c echo.Context, name, body string, data interface{}) error {
	resp := echo.Map{"message": "success", "data": data}
	if c.QueryParam("export") == "true" {
		path, err := utils.ExportReport(h.reportsDir, name, body)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to export report"})
		}
		resp["exportedTo"] = path
	}
	return c.JSON(http.StatusOK, resp)
}
