package config

import (
	chatHandler "HorologeGolang/internal/api/chat/handler"
	chatService "HorologeGolang/internal/api/chat/service"
	configuratorHandler "HorologeGolang/internal/api/configurator/handler"
	configuratorService "HorologeGolang/internal/api/configurator/service"
	partsHandler "HorologeGolang/internal/api/parts/handler"
	partsService "HorologeGolang/internal/api/parts/service"
	"HorologeGolang/internal/middleware"
	"HorologeGolang/pkg/catalog"
	"HorologeGolang/pkg/redis"
	"HorologeGolang/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	catalog     *catalog.Catalog
	redisServer redis.IRedis
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.catalog == nil {
		return nil, fmt.Errorf("component catalog is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithCatalog(cat *catalog.Catalog) ServerOption {
	return func(s *Server) error {
		if err := cat.Validate(); err != nil {
			if s.log != nil {
				s.log.Errorf("Component catalog rejected: %v", err)
			}
			return fmt.Errorf("invalid component catalog: %w", err)
		}
		s.catalog = cat
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Parts Domain
	partsServices := partsService.NewPartsService(s.log, s.catalog)
	partsHandlers := partsHandler.New(s.log, s.validator, s.middleware, partsServices)

	// Chat Domain
	chatServices := chatService.NewChatService(s.log, s.catalog, s.utils)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	// Configurator Domain
	configuratorServices := configuratorService.NewConfiguratorService(s.log, s.catalog, s.redisServer, s.utils)
	configuratorHandlers := configuratorHandler.New(s.log, s.validator, s.middleware, configuratorServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, partsHandlers, chatHandlers, configuratorHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
