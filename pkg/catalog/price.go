package catalog

type PriceLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type PriceQuote struct {
	Total     float64     `json:"total"`
	Breakdown []PriceLine `json:"breakdown"`
}

// Quote itemizes the selected components and sums their catalog prices.
// The breakdown keeps the order the IDs arrived in; unknown IDs are dropped.
// No rounding happens here, display formatting is the caller's concern.
func Quote(c *Catalog, componentIDs []string) PriceQuote {
	components := c.Resolve(componentIDs)

	breakdown := make([]PriceLine, 0, len(components))
	total := 0.0
	for _, component := range components {
		breakdown = append(breakdown, PriceLine{Name: component.Name, Price: component.Price})
		total += component.Price
	}

	return PriceQuote{Total: total, Breakdown: breakdown}
}
