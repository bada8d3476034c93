package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hotelfinder/hotelfinder-api/internal/config"
	"github.com/hotelfinder/hotelfinder-api/internal/domain/booking"
	"github.com/hotelfinder/hotelfinder-api/internal/domain/hotel"
	"github.com/hotelfinder/hotelfinder-api/internal/middleware"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/database"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/jwt"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/liteapi"
	"github.com/hotelfinder/hotelfinder-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Hotel Finder API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTTTL)

	inventoryClient := liteapi.NewClient(liteapi.Config{
		BaseURL: cfg.LiteAPIBaseURL,
		APIKey:  cfg.LiteAPIKey,
		Timeout: cfg.LiteAPITimeout,
	})

	// ---------- Repositories ----------
	bookingRepo := booking.NewRepository(db)

	// ---------- Services ----------
	bookingService := booking.NewService(bookingRepo)
	hotelService := hotel.NewService(inventoryClient, redis, cfg.HotelCacheTTL)

	// ---------- Handlers ----------
	bookingHandler := booking.NewHandler(bookingService)
	hotelHandler := hotel.NewHandler(hotelService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			response.Raw(w, http.StatusOK, map[string]string{
				"status":  "ok",
				"message": "Hotel Finder API is running",
			})
		})

		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
		r.Mount("/hotels", hotelHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
