package ui

import (
	"net/http"

	"fieldops/app"
	"fieldops/internal/config"
	"fieldops/ports"

	"github.com/gin-gonic/gin"
)

// Server represents the fieldops API server
type Server struct {
	router     *gin.Engine
	imports    *app.ImportService
	priceStats *app.PriceStatsService
	stores     ports.StoreRepository
	prices     ports.PriceListRepository
	maxUpload  int64
}

// NewServer creates a new API server instance
func NewServer(cfg *config.Config, imports *app.ImportService, priceStats *app.PriceStatsService, stores ports.StoreRepository, prices ports.PriceListRepository) *Server {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	s := &Server{
		router:     gin.Default(),
		imports:    imports,
		priceStats: priceStats,
		stores:     stores,
		prices:     prices,
		maxUpload:  cfg.Import.MaxUploadBytes,
	}
	s.router.MaxMultipartMemory = cfg.Import.MaxUploadBytes

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/import/:target", s.handleImport)
		api.GET("/stores", s.handleListStores)
		api.GET("/price-items", s.handleListPriceItems)
		api.GET("/dashboard/price-summary", s.handlePriceSummary)
	}

	s.router.GET("/help/import", s.handleImportHelp)
}

// Router exposes the underlying engine, mainly for handler tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
