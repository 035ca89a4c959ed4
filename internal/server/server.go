package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/noshheaven/backend/config"
	"github.com/noshheaven/backend/internal/database"
	"github.com/noshheaven/backend/internal/router"
	"github.com/noshheaven/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
	db     *gorm.DB
	cfg    *config.Config
}

// New wires the database, services and routes into a runnable server
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		return nil, err
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	engine := router.New(db, authService, cfg)

	return &Server{
		engine: engine,
		db:     db,
		cfg:    cfg,
	}, nil
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
