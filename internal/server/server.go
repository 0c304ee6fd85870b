package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shashankpendyala3549-commits/backend/internal/handler"
)

// Server wires the gin router to the API handler.
type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

// NewServer builds the router and registers all routes.
func NewServer(h *handler.Handler, logger *zap.Logger) *Server {
	router := gin.Default()
	h.RegisterRoutes(router)

	return &Server{
		router: router,
		logger: logger,
	}
}

// Run starts the HTTP server and blocks.
func (s *Server) Run(port string) {
	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.router.Run(":" + port); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
