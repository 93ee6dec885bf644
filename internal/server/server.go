package server

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/api"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/config"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/dataset"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/store"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/summary"
)

// Server HTTP server
type Server struct {
	router *gin.Engine
	store  *store.Store
	data   *dataset.Service
}

// NewServer builds the server with its storage and API wiring.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "swissdash.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	data := dataset.NewService(sqliteStore)
	summarizer := summary.New(
		cfg.Summary.Endpoint,
		cfg.Summary.Model,
		cfg.Summary.APIKey,
		time.Duration(cfg.Summary.TimeoutSeconds)*time.Second,
	)
	handler := api.NewHandler(data, summarizer, cfg.Admin.OverridePIN)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		data:   data,
	}

	s.setupRoutes(handler)

	return s
}

func (s *Server) setupRoutes(handler *api.Handler) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		handler.RegisterRoutes(apiGroup)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// SaveNow flushes the in-memory snapshot and closes the database.
func (s *Server) SaveNow() error {
	if err := s.data.PersistAll(); err != nil {
		return err
	}
	return s.store.Close()
}

// GetStore exposes the storage, for tests.
func (s *Server) GetStore() *store.Store {
	return s.store
}
