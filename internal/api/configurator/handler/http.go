package configuratorHandler

import (
	configuratorService "HorologeGolang/internal/api/configurator/service"
	"HorologeGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ConfiguratorHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	configuratorService configuratorService.IConfiguratorService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs configuratorService.IConfiguratorService,
) *ConfiguratorHandler {
	return &ConfiguratorHandler{
		log:                 log,
		validator:           validate,
		middleware:          middleware,
		configuratorService: cs,
	}
}

func (h *ConfiguratorHandler) Start(srv fiber.Router) {
	configurations := srv.Group("/configurations")

	configurations.Post("/compatibility", h.CheckCompatibility)
	configurations.Post("/price", h.Price)
	configurations.Post("/export", h.Export)
	configurations.Post("/share", h.middleware.NewRateLimiter, h.ShareConfiguration)
	configurations.Get("/share/:code", h.ResolveShare)
	configurations.Post("/", h.SaveConfiguration)
	configurations.Get("/:id", h.GetConfiguration)
}
