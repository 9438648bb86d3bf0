package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/entities"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/usecases"
)

type ReservationHandler struct {
	reservationUsecase usecases.ReservationUsecase
}

func NewReservationHandler(reservationUsecase usecases.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{reservationUsecase: reservationUsecase}
}

// CreateReservation godoc
// @Summary Register a new reservation
// @Description Register a CLASS, PRACTICE or EVENT reservation; rejected on rule violations or schedule conflicts
// @Tags Reservation
// @Accept json
// @Produce json
// @Param reservation body entities.ReservationRequest true "Reservation details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req entities.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid reservation data"})
	}

	res, err := h.reservationUsecase.Register(req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "reservation registered successfully", "data": res})
}

// GetReservations godoc
// @Summary List reservations
// @Description List every reservation sorted by id (default), date, responsible or room
// @Tags Reservation
// @Produce json
// @Param sort query string false "Sort key (id, date, responsible, room)"
// @Success 200 {object} map[string]interface{}
// @Router /reservations [get]
func (h *ReservationHandler) GetReservations(c echo.Context) error {
	reservations := h.reservationUsecase.List(c.QueryParam("sort"))
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"data":      reservations,
		"totalData": len(reservations),
	})
}

// SearchReservations godoc
// @Summary Search reservations by responsible party
// @Description Case-insensitive substring match on the responsible name
// @Tags Reservation
// @Produce json
// @Param responsible query string true "Text to search"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /reservations/search [get]
func (h *ReservationHandler) SearchReservations(c echo.Context) error {
	reservations, err := h.reservationUsecase.SearchByResponsible(c.QueryParam("responsible"))
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

// UpdateReservation godoc
// @Summary Modify an ACTIVE reservation
// @Description Change date, times and/or room; rolled back untouched if the new values break a rule
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param changes body entities.ReservationUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	var req entities.ReservationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request format"})
	}

	if err := h.reservationUsecase.Modify(c.Param("id"), req); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "reservation updated successfully"})
}

// CancelReservation godoc
// @Summary Cancel an ACTIVE reservation
// @Description Transition ACTIVE to CANCELLED; the record is kept for history
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	if err := h.reservationUsecase.Cancel(c.Param("id")); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "reservation cancelled successfully"})
}

// DeleteReservation godoc
// @Summary Delete a reservation
// @Description Physically remove a reservation of any status
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	if err := h.reservationUsecase.Delete(c.Param("id")); err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "reservation deleted successfully"})
}
