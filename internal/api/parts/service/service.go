package partsService

import (
	"HorologeGolang/internal/api/parts"
	"HorologeGolang/pkg/catalog"

	"github.com/sirupsen/logrus"
)

type IPartsService interface {
	Catalog() parts.CatalogResponse
	Bucket(componentType string) (parts.BucketResponse, error)
}

type partsService struct {
	log     *logrus.Logger
	catalog *catalog.Catalog
}

func NewPartsService(log *logrus.Logger, cat *catalog.Catalog) IPartsService {
	return &partsService{
		log:     log,
		catalog: cat,
	}
}

func (s *partsService) Catalog() parts.CatalogResponse {
	components := make(map[string][]catalog.Component, len(catalog.ComponentTypes))
	for _, componentType := range catalog.ComponentTypes {
		components[string(componentType)] = s.catalog.OfType(componentType)
	}

	return parts.CatalogResponse{
		Components: components,
		Total:      s.catalog.Len(),
	}
}

func (s *partsService) Bucket(componentType string) (parts.BucketResponse, error) {
	for _, known := range catalog.ComponentTypes {
		if componentType == string(known) {
			return parts.BucketResponse{
				Type:       componentType,
				Components: s.catalog.OfType(known),
			}, nil
		}
	}

	return parts.BucketResponse{}, parts.ErrUnknownComponentType
}
