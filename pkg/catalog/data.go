package catalog

// DefaultComponents is the stock parts catalog. Compatibility lists are
// authored one-directionally: a pairing declared on either side counts
// (see CheckCompatibility). Dials mostly rely on the case-side entries.
func DefaultComponents() []Component {
	return []Component{
		{
			ID:            "case_skx007",
			Name:          "SKX007 Classic Case",
			Type:          TypeCase,
			Price:         89.99,
			Compatibility: []string{"dial_black", "dial_blue", "dial_green", "dial_orange"},
			Material:      "Stainless Steel",
			Description:   "Classic diver's watch case with 42.5mm diameter and 200m water resistance",
		},
		{
			ID:            "case_sarb033",
			Name:          "SARB033 Case",
			Type:          TypeCase,
			Price:         119.99,
			Compatibility: []string{"dial_white", "dial_black", "dial_cream"},
			Material:      "Stainless Steel",
			Description:   "Elegant mid-size 38mm dress watch case with display caseback",
		},
		{
			ID:            "case_turtle",
			Name:          "Turtle Case",
			Type:          TypeCase,
			Price:         99.99,
			Compatibility: []string{"dial_black", "dial_blue", "dial_green"},
			Material:      "Stainless Steel",
			Description:   "Cushion-shaped 44mm case with iconic turtle profile and 200m water resistance",
		},
		{
			ID:            "case_presage",
			Name:          "Presage Case",
			Type:          TypeCase,
			Price:         129.99,
			Compatibility: []string{"dial_white", "dial_cream", "dial_blue"},
			Material:      "Stainless Steel with Gold PVD",
			Description:   "Refined 40.5mm case with elegant profile and 100m water resistance",
		},
		{
			ID:            "dial_black",
			Name:          "Black Sunburst Dial",
			Type:          TypeDial,
			Price:         49.99,
			Compatibility: []string{"case_skx007", "case_turtle"},
			Description:   "Classic black sunburst dial with applied indices",
		},
		{
			ID:            "dial_blue",
			Name:          "Blue Sunburst Dial",
			Type:          TypeDial,
			Price:         54.99,
			Compatibility: []string{},
			Description:   "Deep blue sunburst dial with luminous markers",
		},
		{
			ID:            "dial_green",
			Name:          "Green Sunburst Dial",
			Type:          TypeDial,
			Price:         54.99,
			Compatibility: []string{},
			Description:   "Emerald green sunburst dial with date window",
		},
		{
			ID:            "dial_white",
			Name:          "White Porcelain Dial",
			Type:          TypeDial,
			Price:         59.99,
			Compatibility: []string{},
			Description:   "Clean white porcelain dial with roman numerals",
		},
		{
			ID:            "dial_cream",
			Name:          "Cream Vintage Dial",
			Type:          TypeDial,
			Price:         64.99,
			Compatibility: []string{},
			Description:   "Vintage-style cream dial with patina indices",
		},
		{
			ID:            "dial_orange",
			Name:          "Orange Dive Dial",
			Type:          TypeDial,
			Price:         54.99,
			Compatibility: []string{},
			Description:   "Vibrant orange dive dial with black indices",
		},
		{
			ID:            "hands_standard",
			Name:          "Standard Polished Hands",
			Type:          TypeHands,
			Price:         29.99,
			Compatibility: []string{"case_skx007", "dial_black"},
			Material:      "Polished Steel",
			Description:   "Classic hour, minute and second hands with luminous coating",
		},
		{
			ID:            "hands_sword",
			Name:          "Sword Hands",
			Type:          TypeHands,
			Price:         34.99,
			Compatibility: []string{"case_skx007", "case_turtle"},
			Material:      "Brushed Steel",
			Description:   "Straight sword-style hands with luminous fill",
		},
		{
			ID:            "hands_cathedral",
			Name:          "Cathedral Hands",
			Type:          TypeHands,
			Price:         39.99,
			Compatibility: []string{"case_sarb033", "case_presage"},
			Material:      "Polished Steel",
			Description:   "Vintage cathedral-style hands with luminous fill",
		},
		{
			ID:            "hands_gold",
			Name:          "Gold Dauphine Hands",
			Type:          TypeHands,
			Price:         44.99,
			Compatibility: []string{"case_presage"},
			Material:      "Gold-Plated Brass",
			Description:   "Elegant dauphine-style hands in gold finish",
		},
		{
			ID:            "hands_snowflake",
			Name:          "Snowflake Hands",
			Type:          TypeHands,
			Price:         39.99,
			Compatibility: []string{"case_skx007", "case_turtle"},
			Material:      "Brushed Steel",
			Description:   "Distinctive snowflake-style hands with large luminous area",
		},
		{
			ID:            "bezel_steel",
			Name:          "Polished Steel Bezel",
			Type:          TypeBezel,
			Price:         39.99,
			Compatibility: []string{"case_skx007", "case_turtle", "case_sarb033"},
			Material:      "Polished Stainless Steel",
			Description:   "Classic polished steel fixed bezel",
		},
		{
			ID:            "bezel_dive",
			Name:          "Dive Timing Bezel",
			Type:          TypeBezel,
			Price:         49.99,
			Compatibility: []string{"case_skx007"},
			Material:      "Stainless Steel with Aluminum Insert",
			Description:   "120-click unidirectional rotating bezel for dive timing",
		},
		{
			ID:            "bezel_gmt",
			Name:          "GMT Bezel",
			Type:          TypeBezel,
			Price:         59.99,
			Compatibility: []string{"case_skx007", "case_turtle"},
			Material:      "Stainless Steel with Ceramic Insert",
			Description:   "24-hour GMT bezel for tracking multiple time zones",
		},
		{
			ID:            "bezel_fluted",
			Name:          "Fluted Bezel",
			Type:          TypeBezel,
			Price:         69.99,
			Compatibility: []string{"case_sarb033", "case_presage"},
			Material:      "Polished Stainless Steel",
			Description:   "Decorative fluted bezel with polished finish",
		},
		{
			ID:            "bezel_gold",
			Name:          "Gold Bezel",
			Type:          TypeBezel,
			Price:         79.99,
			Compatibility: []string{"case_presage"},
			Material:      "Gold PVD-Coated Stainless Steel",
			Description:   "Luxurious gold-tone fixed bezel",
		},
	}
}

// Default builds the stock catalog.
func Default() *Catalog {
	return New(DefaultComponents())
}
