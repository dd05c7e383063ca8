package configurator

import "HorologeGolang/pkg/response"

var (
	ErrConfigurationNotFound = response.NewError(404, "configuration not found")
	ErrShareNotFound         = response.NewError(404, "shared configuration not found")
	ErrInvalidConfiguration  = response.NewError(400, "invalid configuration data")
	ErrCreateShare           = response.NewError(500, "failed to share configuration")
)
