package parts

import "HorologeGolang/pkg/catalog"

type CatalogResponse struct {
	Components map[string][]catalog.Component `json:"components"`
	Total      int                            `json:"total"`
}

type BucketResponse struct {
	Type       string              `json:"type"`
	Components []catalog.Component `json:"components"`
}
