package chatbot

// DefaultIntents is the stock knowledge base. Declaration order matters:
// the matcher keeps the first highest-scoring intent on ties.
func DefaultIntents() []Intent {
	return []Intent{
		{
			Category: "greeting",
			Patterns: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "start", "help"},
			Responses: []string{
				"Hello! Welcome to Horologe Watch Customizer! I'm here to help you build your perfect custom watch. What would you like to know?",
				"Hi there! I'm your watch customization assistant. I can help you with parts selection, compatibility, pricing, and building tips. How can I assist you today?",
				"Welcome! Ready to create something amazing? I can guide you through our 125+ premium components to build your dream watch. What interests you most?",
			},
			FollowUp: []string{
				"Browse our case collection",
				"Check dial options",
				"View complete parts catalog",
				"Get pricing information",
			},
		},
		{
			Category: "compatibility",
			Patterns: []string{
				"compatible", "compatibility", "will this work", "does this fit", "can i use",
				"match", "compatible with", "fits with", "works with", "combine",
			},
			Responses: []string{
				"Great question about compatibility! To check if parts work together, I need to know which specific components you're interested in. What case and dial are you considering?",
				"I can help you verify compatibility! Our parts are designed to work together, but some combinations work better than others. Which components would you like me to check?",
				"Compatibility is crucial for a successful build! Each part has specific compatibility requirements. Tell me your component choices and I'll verify they work together perfectly.",
			},
			FollowUp: []string{
				"SKX007 case compatibility",
				"SARB033 dial options",
				"Universal hand sets",
				"Bezel compatibility guide",
			},
		},
		{
			Category: "pricing",
			Patterns: []string{
				"price", "cost", "how much", "expensive", "cheap", "budget", "total cost",
				"pricing", "affordable", "payment", "money",
			},
			Responses: []string{
				"Our components range from $29.99 for basic hands to $129.99 for premium cases. A complete watch typically costs $200-400 depending on your choices. What's your target budget?",
				"Pricing varies by component quality and complexity. Cases: $89-129, Dials: $49-65, Hands: $29-45, Bezels: $39-89. I can help you build within any budget!",
				"We offer transparent pricing with no hidden fees! Basic builds start around $200, while premium configurations can reach $400+. Would you like me to estimate your specific build?",
			},
			FollowUp: []string{
				"Budget build recommendations",
				"Premium component selection",
				"Compare pricing options",
				"Calculate total cost",
			},
		},
		{
			Category: "cases",
			Patterns: []string{
				"case", "cases", "skx007", "sarb033", "turtle", "presage", "42mm", "38mm", "size",
				"stainless steel", "water resistance",
			},
			Responses: []string{
				"We offer authentic cases from iconic models! The SKX007 (42.5mm diver), SARB033 (38mm dress), Turtle (44mm cushion), and Presage (40.5mm elegant). Which style interests you?",
				"Our case collection features premium stainless steel construction with varying sizes and styles. Popular choices include the classic SKX007 for diving and SARB033 for dress occasions. What's your preference?",
				"Cases are the foundation of your build! We have diver cases (SKX007, Turtle), dress cases (SARB033, Presage), and sport cases. All feature excellent water resistance and quality finishing.",
			},
			Products: []string{"case_skx007"},
			FollowUp: []string{
				"SKX007 specifications",
				"Case size comparison",
				"Water resistance guide",
				"Compatible dials for cases",
			},
		},
		{
			Category: "dials",
			Patterns: []string{
				"dial", "dials", "black", "blue", "white", "green", "orange", "cream", "sunburst",
				"color", "face", "markers", "indices", "lume", "luminous",
			},
			Responses: []string{
				"Our dial collection features stunning sunburst finishes in black, blue, green, white, cream, and orange. Each has luminous markers for excellent readability. What color speaks to you?",
				"Dials are where personality shines! We offer classic black sunburst, deep navy blue, forest green, pure white porcelain, vintage cream, and vibrant orange. All feature quality luminous indices.",
				"Choose from 38 different dial options! Popular choices include black sunburst for versatility, blue for elegance, and orange for sport. Each dial is carefully crafted with applied markers.",
			},
			Products: []string{"dial_black"},
			FollowUp: []string{
				"Dial color options",
				"Sunburst vs matte finish",
				"Marker styles available",
				"Dial compatibility check",
			},
		},
		{
			Category: "hands",
			Patterns: []string{
				"hands", "hour hand", "minute hand", "second hand", "sword", "cathedral", "dauphine",
				"snowflake", "mercedes", "luminous", "lume", "polished", "brushed",
			},
			Responses: []string{
				"Hand sets complete your watch's character! We offer Standard polished, Sword style, Cathedral vintage, Gold dauphine, and Snowflake designs. All feature luminous coating for night visibility.",
				"Our hand collection includes 28 different styles from classic to contemporary. Popular options are Standard (versatile), Sword (elegant), Cathedral (vintage), and Mercedes (iconic). What style fits your vision?",
				"Quality hands make all the difference! Choose from polished steel, brushed finishes, or gold-plated options. Each set includes hour, minute, and second hands with premium luminous fill.",
			},
			Products: []string{"hands_standard"},
			FollowUp: []string{
				"Hand style comparison",
				"Luminous coating options",
				"Material choices",
				"Installation requirements",
			},
		},
		{
			Category: "bezels",
			Patterns: []string{
				"bezel", "bezels", "rotating", "fixed", "dive", "gmt", "fluted", "polished",
				"timing", "ceramic", "aluminum", "unidirectional",
			},
			Responses: []string{
				"Bezels add both function and style! We offer fixed polished steel, rotating dive bezels, GMT bezels, decorative fluted, and premium ceramic options. What functionality do you need?",
				"Our bezel selection includes 27 options from functional to decorative. Dive bezels for timing, GMT for multiple time zones, fluted for elegance, and ceramic for durability. Which appeals to you?",
				"Choose the perfect bezel for your build! Options include 120-click dive bezels, 24-hour GMT bezels, luxury fluted designs, and scratch-resistant ceramic. Each enhances both form and function.",
			},
			Products: []string{"bezel_dive"},
			FollowUp: []string{
				"Bezel functionality guide",
				"Rotating vs fixed bezels",
				"Material comparisons",
				"Color options available",
			},
		},
		{
			Category: "shipping",
			Patterns: []string{
				"shipping", "delivery", "how long", "when will", "arrive", "fast", "express",
				"international", "tracking", "free shipping",
			},
			Responses: []string{
				"We offer multiple shipping options! Standard delivery takes 5-7 business days, express 2-3 days, and overnight for urgent builds. International shipping available to most countries.",
				"Shipping times depend on your location and components. Most parts ship within 24-48 hours. Domestic delivery: 3-7 days, International: 7-14 days. Express options available!",
				"Fast and secure shipping worldwide! We use premium carriers with full tracking. Free standard shipping on orders over $200, express shipping available for faster delivery.",
			},
			FollowUp: []string{
				"Track my order",
				"Express shipping options",
				"International delivery",
				"Shipping costs",
			},
		},
		{
			Category: "assembly",
			Patterns: []string{
				"assembly", "install", "installation", "build", "put together", "tools",
				"how to", "instructions", "guide", "difficult", "professional",
			},
			Responses: []string{
				"We provide detailed assembly instructions with every order! Basic builds require standard watch tools. For complex modifications, we recommend professional installation or our assembly service.",
				"Assembly difficulty varies by component. Dial and hand swaps are intermediate level, while case work requires experience. We offer video guides and can recommend certified watchmakers in your area.",
				"Building your custom watch can be rewarding! We include step-by-step instructions, tool lists, and safety tips. For guaranteed results, consider our professional assembly service.",
			},
			FollowUp: []string{
				"Tool requirements",
				"Assembly service options",
				"Video tutorials",
				"Professional installation",
			},
		},
		{
			Category: "warranty",
			Patterns: []string{
				"warranty", "guarantee", "return", "exchange", "defective", "quality",
				"problem", "issue", "broken", "replacement",
			},
			Responses: []string{
				"All components come with our quality guarantee! 30-day returns for any reason, 1-year warranty against defects. We stand behind every part and will make it right if you're not satisfied.",
				"Your satisfaction is guaranteed! We offer hassle-free returns within 30 days and comprehensive warranty coverage. Defective parts are replaced immediately at no cost.",
				"Quality is our priority! Every component is thoroughly inspected before shipping. We provide full warranty coverage and responsive customer service to ensure your complete satisfaction.",
			},
			FollowUp: []string{
				"Return process",
				"Warranty terms",
				"Quality standards",
				"Customer service contact",
			},
		},
		{
			Category: "customization",
			Patterns: []string{
				"custom", "customize", "personalize", "unique", "special", "engrave",
				"modification", "special order", "bespoke", "one of a kind",
			},
			Responses: []string{
				"We love creating unique timepieces! Beyond our standard catalog, we offer custom engraving, special finishes, and bespoke modifications. What kind of personalization interests you?",
				"Make it truly yours! We provide custom dial printing, case engraving, special hand colors, and unique combinations. Our craftsmen can bring your vision to life with premium customization options.",
				"Personalization makes your watch special! Options include custom text engraving, special edition dials, unique hand combinations, and exclusive finishes. Let's discuss your ideas!",
			},
			FollowUp: []string{
				"Engraving options",
				"Custom dial design",
				"Special finishes",
				"Bespoke services",
			},
		},
	}
}
