package configuratorService

import (
	"context"
	"errors"
	"time"

	"HorologeGolang/internal/api/configurator"
	"HorologeGolang/internal/entity"
	"HorologeGolang/pkg/catalog"
	contextPkg "HorologeGolang/pkg/context"
	"HorologeGolang/pkg/redis"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func (s *configuratorService) CheckCompatibility(componentIDs []string) catalog.CompatibilityResult {
	return catalog.CheckCompatibility(s.catalog, componentIDs)
}

func (s *configuratorService) Price(componentIDs []string) catalog.PriceQuote {
	return catalog.Quote(s.catalog, componentIDs)
}

// SaveConfiguration acknowledges the submission without storing it. There
// is no configuration database; the client keeps its own copy and the
// returned ID only makes the acknowledgement referenceable in logs.
func (s *configuratorService) SaveConfiguration(ctx context.Context, req configurator.SaveConfigurationRequest) (configurator.SaveConfigurationResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate configuration ULID")
		return configurator.SaveConfigurationResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"config_id":  id,
		"name":       req.Name,
	}).Info("Configuration acknowledged and discarded")

	return configurator.SaveConfigurationResponse{
		Message: "Configuration saved successfully",
		ID:      id,
	}, nil
}

// GetConfiguration reports not-found for every ID: nothing was stored.
func (s *configuratorService) GetConfiguration(ctx context.Context, id string) error {
	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"config_id":  id,
	}).Debug("Configuration lookup against the null store")

	return configurator.ErrConfigurationNotFound
}

func (s *configuratorService) ShareConfiguration(ctx context.Context, req configurator.ShareConfigurationRequest) (configurator.ShareConfigurationResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	shared := entity.SharedConfiguration{
		Name:     req.Name,
		Config:   req.Config,
		SharedAt: time.Now(),
	}

	payload, err := jsoniter.MarshalToString(shared)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal shared configuration")
		return configurator.ShareConfigurationResponse{}, configurator.ErrCreateShare
	}

	code, err := s.utils.NewShareCode()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate share code")
		return configurator.ShareConfigurationResponse{}, configurator.ErrCreateShare
	}

	if err := s.redisServer.SetSharedConfig(ctx, code, payload, shareTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store shared configuration")
		return configurator.ShareConfigurationResponse{}, configurator.ErrCreateShare
	}

	token, err := s.utils.EncodeConfigToken(req.Config)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to encode configuration token")
		return configurator.ShareConfigurationResponse{}, configurator.ErrCreateShare
	}

	return configurator.ShareConfigurationResponse{
		Code:      code,
		SharePath: "/api/v1/configurations/share/" + code,
		Token:     token,
		ExpiresAt: shared.SharedAt.Add(shareTTL),
	}, nil
}

func (s *configuratorService) ResolveShare(ctx context.Context, code string) (entity.SharedConfiguration, error) {
	requestID := contextPkg.GetRequestID(ctx)

	payload, err := s.redisServer.GetSharedConfig(ctx, code)
	if err != nil {
		if errors.Is(err, redis.ErrShareCodeNotFound) {
			return entity.SharedConfiguration{}, configurator.ErrShareNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"code":       code,
			"error":      err.Error(),
		}).Error("Failed to load shared configuration")
		return entity.SharedConfiguration{}, err
	}

	var shared entity.SharedConfiguration
	if err := jsoniter.UnmarshalFromString(payload, &shared); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"code":       code,
			"error":      err.Error(),
		}).Error("Stored shared configuration is unreadable")
		return entity.SharedConfiguration{}, configurator.ErrShareNotFound
	}

	return shared, nil
}

// Export assembles the order-ready summary for a configuration from the
// pure catalog operations. Unknown IDs degrade to a shorter parts list,
// mirroring the compatibility and pricing leniency.
func (s *configuratorService) Export(req configurator.ExportConfigurationRequest) (configurator.ExportDocument, error) {
	ids := req.Config.ComponentIDs()

	token, err := s.utils.EncodeConfigToken(req.Config)
	if err != nil {
		return configurator.ExportDocument{}, err
	}

	return configurator.ExportDocument{
		Name:          req.Name,
		GeneratedAt:   time.Now(),
		Components:    s.catalog.Resolve(ids),
		Price:         catalog.Quote(s.catalog, ids),
		Compatibility: catalog.CheckCompatibility(s.catalog, ids),
		Token:         token,
	}, nil
}
