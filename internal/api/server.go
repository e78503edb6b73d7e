package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MZidanFI/Bioskop-Project/internal/auth"
	"github.com/MZidanFI/Bioskop-Project/internal/cache"
	"github.com/MZidanFI/Bioskop-Project/internal/config"
	"github.com/MZidanFI/Bioskop-Project/internal/database"
	"github.com/MZidanFI/Bioskop-Project/internal/handlers"
	"github.com/MZidanFI/Bioskop-Project/internal/logger"
	"github.com/MZidanFI/Bioskop-Project/internal/messaging"
	"github.com/MZidanFI/Bioskop-Project/internal/metrics"
	"github.com/MZidanFI/Bioskop-Project/internal/middleware"
	"github.com/MZidanFI/Bioskop-Project/internal/repository"
	"github.com/MZidanFI/Bioskop-Project/internal/search"
	"github.com/MZidanFI/Bioskop-Project/internal/service"
)

// Server is the HTTP API server with all its backing connections.
type Server struct {
	router      *gin.Engine
	config      *config.Config
	db          *database.DB
	nats        *messaging.NATSClient
	cacheClient *cache.Client
	services    *service.Services
	tokens      *auth.TokenManager
}

// NewServer connects to every backing service and assembles the router.
// Redis and Elasticsearch are optional; when disabled or unreachable the
// server runs on the database alone.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.Seed(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	var cacheClient *cache.Client
	if cfg.Redis.Enabled {
		cacheClient, err = cache.NewClient(cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, running without cache", "error", err)
			cacheClient = nil
		}
	}

	var movieIndex *search.MovieIndex
	if cfg.Elasticsearch.Enabled {
		movieIndex, err = search.NewMovieIndex(cfg.Elasticsearch)
		if err != nil {
			slog.Warn("Elasticsearch unavailable, title search falls back to SQL", "error", err)
			movieIndex = nil
		}
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, tokens, natsClient, movieIndex)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(metrics.Middleware())

	server := &Server{
		router:      router,
		config:      cfg,
		db:          db,
		nats:        natsClient,
		cacheClient: cacheClient,
		services:    services,
		tokens:      tokens,
	}

	server.setupRoutes()

	return server, nil
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.cacheClient)

	api := s.router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", h.Register)
			authRoutes.POST("/login", h.Login)
		}

		authed := api.Group("")
		authed.Use(middleware.JWTAuth(s.tokens))
		{
			movies := authed.Group("/movies")
			{
				movies.GET("", h.ListMovies)
				movies.GET("/:id", h.GetMovie)
				movies.POST("/:id/rating", h.SubmitRating)
			}

			bookings := authed.Group("/bookings")
			{
				bookings.POST("", h.BookSeats)
				bookings.GET("/history", h.BookingHistory)
			}

			admin := authed.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/movies", h.CreateMovie)
				admin.PUT("/movies/:id", h.UpdateMovie)
				admin.DELETE("/movies/:id", h.DeleteMovie)
				admin.POST("/movies/:id/reset-seats", h.ResetSeats)
				admin.GET("/panel", h.AdminPanel)
				admin.GET("/report", h.DownloadReport)
			}
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", metrics.Handler())
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "bioskop-api",
		"version": "1.0.0",
	})
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes the backing connections.
func (s *Server) Cleanup() error {
	if s.cacheClient != nil {
		if err := s.cacheClient.Close(); err != nil {
			logger.Get().Error("Error closing Redis connection", "error", err)
		}
	}

	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			logger.Get().Error("Error closing NATS connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logger.Get().Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
