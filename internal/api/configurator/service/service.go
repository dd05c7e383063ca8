package configuratorService

import (
	"context"
	"time"

	"HorologeGolang/internal/api/configurator"
	"HorologeGolang/internal/entity"
	"HorologeGolang/pkg/catalog"
	"HorologeGolang/pkg/redis"
	"HorologeGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IConfiguratorService interface {
	CheckCompatibility(componentIDs []string) catalog.CompatibilityResult
	Price(componentIDs []string) catalog.PriceQuote
	SaveConfiguration(ctx context.Context, req configurator.SaveConfigurationRequest) (configurator.SaveConfigurationResponse, error)
	GetConfiguration(ctx context.Context, id string) error
	ShareConfiguration(ctx context.Context, req configurator.ShareConfigurationRequest) (configurator.ShareConfigurationResponse, error)
	ResolveShare(ctx context.Context, code string) (entity.SharedConfiguration, error)
	Export(req configurator.ExportConfigurationRequest) (configurator.ExportDocument, error)
}

// shareTTL bounds how long a share code resolves. There is no durable
// configuration store behind it.
const shareTTL = 7 * 24 * time.Hour

type configuratorService struct {
	log         *logrus.Logger
	catalog     *catalog.Catalog
	redisServer redis.IRedis
	utils       utils.IUtils
}

func NewConfiguratorService(
	log *logrus.Logger,
	cat *catalog.Catalog,
	redisServer redis.IRedis,
	utilsPkg utils.IUtils,
) IConfiguratorService {
	return &configuratorService{
		log:         log,
		catalog:     cat,
		redisServer: redisServer,
		utils:       utilsPkg,
	}
}
