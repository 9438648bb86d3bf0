package server

import "github.com/labstack/echo/v4"

type Server interface {
	Start() error
	Shutdown() error
	GetEcho() *echo.Echo
}
