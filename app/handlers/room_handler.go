package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/usecases"
)

type RoomHandler struct {
	roomUsecase usecases.RoomUsecase
}

func NewRoomHandler(roomUsecase usecases.RoomUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase}
}

// CreateRoom godoc
// @Summary Register a new room
// @Description Register a room with a unique ID, capacity and type
// @Tags Room
// @Accept json
// @Produce json
// @Param room body entities.RoomRequest true "Room details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req entities.RoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room data"})
	}

	room, err := h.roomUsecase.Register(req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "room registered successfully", "data": room})
}

// GetRooms godoc
// @Summary List all rooms
// @Description List every room in registration order
// @Tags Room
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /rooms [get]
func (h *RoomHandler) GetRooms(c echo.Context) error {
	rooms := h.roomUsecase.GetAll()
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"data":      rooms,
		"totalData": len(rooms),
	})
}

// GetRoomByID godoc
// @Summary Get a room by ID
// @Description Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoomByID(c echo.Context) error {
	room, err := h.roomUsecase.GetByID(c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": room})
}

// UpdateRoom godoc
// @Summary Update a room by ID
// @Description Update name, capacity and/or type; omitted fields are kept
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param room body entities.RoomUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	var req entities.RoomUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}

	if err := h.roomUsecase.Update(c.Param("id"), req); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "room updated successfully"})
}

// DeleteRoom godoc
// @Summary Delete a room by ID
// @Description Delete a room; blocked while any reservation references it
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	if err := h.roomUsecase.Delete(c.Param("id")); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "room deleted successfully"})
}

// GetRoomReservations godoc
// @Summary List reservations referencing a room
// @Description List every reservation (any status) bound to the room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/reservations [get]
func (h *RoomHandler) GetRoomReservations(c echo.Context) error {
	reservations, err := h.roomUsecase.GetRoomReservations(c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"data":      reservations,
		"totalData": len(reservations),
	})
}
