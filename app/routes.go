package app

import (
	"github.com/labstack/echo/v4"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/handlers"
)

func RegisterRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	roomHandler *handlers.RoomHandler,
	reservationHandler *handlers.ReservationHandler,
	reportHandler *handlers.ReportHandler,
	authMiddleware echo.MiddlewareFunc,
) {
	e.POST("/login", authHandler.Login)

	authGroup := e.Group("")
	authGroup.Use(authMiddleware)

	// Room routes
	authGroup.POST("/rooms", roomHandler.CreateRoom)
	authGroup.GET("/rooms", roomHandler.GetRooms)
	authGroup.GET("/rooms/:id", roomHandler.GetRoomByID)
	authGroup.PUT("/rooms/:id", roomHandler.UpdateRoom)
	authGroup.DELETE("/rooms/:id", roomHandler.DeleteRoom)
	authGroup.GET("/rooms/:id/reservations", roomHandler.GetRoomReservations)

	// Reservation routes
	authGroup.POST("/reservations", reservationHandler.CreateReservation)
	authGroup.GET("/reservations", reservationHandler.GetReservations)
	authGroup.GET("/reservations/search", reservationHandler.SearchReservations)
	authGroup.PUT("/reservations/:id", reservationHandler.UpdateReservation)
	authGroup.POST("/reservations/:id/cancel", reservationHandler.CancelReservation)
	authGroup.DELETE("/reservations/:id", reservationHandler.DeleteReservation)

	// Report routes
	authGroup.GET("/reports/top-rooms", reportHandler.GetTopRooms)
	authGroup.GET("/reports/hours-by-type", reportHandler.GetHoursByRoomType)
	authGroup.GET("/reports/by-kind", reportHandler.GetCountByKind)
}
