package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/handlers"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/repositories"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/app/usecases"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/config"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/middleware"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/pkg/csvstore"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/pkg/logger"
	"github.com/ozzyrux/ATIS-EXAMEN-PRAC/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using defaults")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Println("Failed to build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	// In-memory stores, populated from the CSV files on disk.
	roomRepo := repositories.NewMemoryRoomRepository()
	resRepo := repositories.NewMemoryReservationRepository()

	store := csvstore.New(cfg.Storage.RoomsFile, cfg.Storage.ReservationsFile, log)
	rooms, err := store.LoadRooms()
	if err != nil {
		log.Fatal("failed to load rooms", zap.Error(err))
	}
	for _, room := range rooms {
		roomRepo.Insert(room)
	}
	roomExists := func(id string) bool {
		_, ok := roomRepo.FindByID(id)
		return ok
	}
	reservations, err := store.LoadReservations(roomExists)
	if err != nil {
		log.Fatal("failed to load reservations", zap.Error(err))
	}
	for _, res := range reservations {
		resRepo.Insert(res)
	}
	log.Info("state loaded",
		zap.Int("rooms", len(rooms)),
		zap.Int("reservations", len(reservations)))

	// Single lock covering every catalog/engine operation: register and
	// modify are validate-then-write sequences that must not interleave.
	var mu sync.RWMutex
	roomUsecase := usecases.NewRoomUsecase(&mu, roomRepo, resRepo)
	reservationUsecase := usecases.NewReservationUsecase(&mu, resRepo, roomRepo)
	reportUsecase := usecases.NewReportUsecase(&mu, resRepo, roomRepo)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash admin password", zap.Error(err))
	}

	authHandler := handlers.NewAuthHandler(cfg.Auth.AdminUsername, passwordHash, []byte(cfg.JWT.Secret))
	roomHandler := handlers.NewRoomHandler(roomUsecase)
	reservationHandler := handlers.NewReservationHandler(reservationUsecase)
	reportHandler := handlers.NewReportHandler(reportUsecase, cfg.Storage.ReportsDir)

	srv := server.NewEchoServer(cfg)
	e := srv.GetEcho()
	e.Use(middleware.RequestLogger(log))
	app.RegisterRoutes(e, authHandler, roomHandler, reservationHandler, reportHandler, middleware.JWTAuth(cfg))

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info("server started", zap.Int("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}

	// Persist both collections before exit.
	mu.RLock()
	defer mu.RUnlock()
	if err := store.SaveRooms(roomRepo.All()); err != nil {
		log.Error("failed to save rooms", zap.Error(err))
	}
	if err := store.SaveReservations(resRepo.All()); err != nil {
		log.Error("failed to save reservations", zap.Error(err))
	}
	log.Info("state saved")
}
