package partsHandler

import (
	partsService "HorologeGolang/internal/api/parts/service"
	"HorologeGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PartsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	partsService partsService.IPartsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps partsService.IPartsService,
) *PartsHandler {
	return &PartsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		partsService: ps,
	}
}

func (h *PartsHandler) Start(srv fiber.Router) {
	catalog := srv.Group("/catalog")

	catalog.Get("", h.GetCatalog)
	catalog.Get("/:type", h.GetBucket)
}
