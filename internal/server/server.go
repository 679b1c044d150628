package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HenricoTaiete/trabalho-Scar/internal/auth"
	"github.com/HenricoTaiete/trabalho-Scar/internal/handler"
	"github.com/HenricoTaiete/trabalho-Scar/internal/middleware"
	"github.com/HenricoTaiete/trabalho-Scar/internal/repository"
	"github.com/HenricoTaiete/trabalho-Scar/internal/service"
)

type Server struct {
	router *gin.Engine
	log    *zap.Logger
}

// NewServer wires repositories, services, and handlers onto a gin router.
// Repositories are injected so tests can swap in in-memory fakes.
func NewServer(users repository.UserRepository, tags repository.RFIDTagRepository, tokens *auth.TokenAuthority, log *zap.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		log:    log,
	}

	s.setupRoutes(users, tags, tokens)

	return s
}

func (s *Server) setupRoutes(users repository.UserRepository, tags repository.RFIDTagRepository, tokens *auth.TokenAuthority) {
	authService := service.NewAuthService(users, tokens, s.log)
	userService := service.NewUserService(users, s.log)
	tagService := service.NewRFIDTagService(tags, users, s.log)

	authHandler := handler.NewAuthHandler(authService, s.log)
	userHandler := handler.NewUserHandler(userService, s.log)
	tagHandler := handler.NewRFIDTagHandler(tagService, s.log)

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "RFID API is running"})
	})
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authGroup := s.router.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/verify", authHandler.Verify)

	authRequired := s.router.Group("/api")
	authRequired.Use(middleware.AuthMiddleware(authService, s.log))
	{
		authRequired.GET("/users/me", authHandler.Me)
		authRequired.GET("/users", userHandler.List)
		authRequired.GET("/users/:id", userHandler.Get)
		authRequired.PUT("/users/:id", userHandler.Update)
		authRequired.DELETE("/users/:id", userHandler.Delete)

		authRequired.POST("/tags", tagHandler.Create)
		authRequired.GET("/tags", tagHandler.List)
		authRequired.GET("/tags/:uid", tagHandler.Get)
		authRequired.DELETE("/tags/:id", tagHandler.Delete)
	}
}

// Router exposes the underlying handler, mainly for httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) {
	s.log.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.log.Fatal("Server failed to start", zap.Error(err))
	}
}
