package configurator

import (
	"time"

	"HorologeGolang/internal/entity"
	"HorologeGolang/pkg/catalog"
)

type SelectionRequest struct {
	ComponentIDs []string `json:"component_ids" validate:"omitempty,dive,max=64"`
}

type SaveConfigurationRequest struct {
	Name   string                    `json:"name" validate:"required,min=1,max=128"`
	Config entity.WatchConfiguration `json:"config" validate:"required"`
}

type SaveConfigurationResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type ShareConfigurationRequest struct {
	Name   string                    `json:"name" validate:"omitempty,max=128"`
	Config entity.WatchConfiguration `json:"config" validate:"required"`
}

type ShareConfigurationResponse struct {
	Code      string    `json:"code"`
	SharePath string    `json:"share_path"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ExportConfigurationRequest struct {
	Name   string                    `json:"name" validate:"omitempty,max=128"`
	Config entity.WatchConfiguration `json:"config" validate:"required"`
}

// ExportDocument is the self-contained summary a client downloads or
// attaches to an order: the resolved parts, the quote, the compatibility
// verdict and a token that reproduces the build.
type ExportDocument struct {
	Name          string                      `json:"name"`
	GeneratedAt   time.Time                   `json:"generated_at"`
	Components    []catalog.Component         `json:"components"`
	Price         catalog.PriceQuote          `json:"price"`
	Compatibility catalog.CompatibilityResult `json:"compatibility"`
	Token         string                      `json:"token"`
}
