package chatbot

import (
	"strings"

	"HorologeGolang/pkg/catalog"
)

// fallbackThreshold is the minimum confidence a pattern match must reach
// before its intent wins; anything below falls through to general help.
// Tuned value carried over from the original knowledge base, do not
// generalize it.
const fallbackThreshold = 0.3

const maxRelatedProducts = 3

type matcher struct {
	intents []Intent
	catalog *catalog.Catalog
	random  RandSource
}

// NewMatcher builds a matcher over a static intent table. The table is a
// slice, not a map: ties keep the first highest-scoring intent, so
// iteration order must be the declaration order.
func NewMatcher(intents []Intent, cat *catalog.Catalog, random RandSource) IMatcher {
	return &matcher{
		intents: intents,
		catalog: cat,
		random:  random,
	}
}

func (m *matcher) Match(input string) ChatResponse {
	lowered := strings.ToLower(input)

	var bestIntent Intent
	bestConfidence := 0.0

	for _, intent := range m.intents {
		for _, pattern := range intent.Patterns {
			if !strings.Contains(lowered, pattern) {
				continue
			}
			confidence := patternConfidence(lowered, pattern)
			if confidence > bestConfidence {
				bestConfidence = confidence
				bestIntent = intent
			}
		}
	}

	if bestConfidence < fallbackThreshold {
		return m.generalHelp()
	}

	response := ChatResponse{
		Message:     m.pick(bestIntent.Responses),
		Suggestions: bestIntent.FollowUp,
		Category:    bestIntent.Category,
		Confidence:  bestConfidence,
	}

	if len(bestIntent.Products) > 0 {
		response.RelatedProducts = m.relatedProducts(bestIntent.Products)
	}

	return response
}

// patternConfidence scores a (input, pattern) pair: 1.0 on exact equality,
// 0.8 on substring containment, otherwise the ratio of input words found in
// the pattern over the larger word count. The tiers are carried over
// unchanged from the original bot.
func patternConfidence(input, pattern string) float64 {
	if input == pattern {
		return 1.0
	}
	if strings.Contains(input, pattern) {
		return 0.8
	}

	inputWords := strings.Split(input, " ")
	patternWords := strings.Split(pattern, " ")

	matches := 0
	for _, word := range inputWords {
		for _, patternWord := range patternWords {
			if word == patternWord {
				matches++
				break
			}
		}
	}

	larger := len(inputWords)
	if len(patternWords) > larger {
		larger = len(patternWords)
	}

	return float64(matches) / float64(larger)
}

// relatedProducts resolves up to three declared product IDs against the
// catalog, keeping the declared order and dropping dangling IDs.
func (m *matcher) relatedProducts(productIDs []string) []catalog.Component {
	products := make([]catalog.Component, 0, maxRelatedProducts)
	for _, id := range productIDs {
		component, ok := m.catalog.ByID(id)
		if !ok {
			continue
		}
		products = append(products, component)
		if len(products) == maxRelatedProducts {
			break
		}
	}
	return products
}

func (m *matcher) generalHelp() ChatResponse {
	return ChatResponse{
		Message: m.pick(generalHelpResponses),
		Suggestions: []string{
			"Show me popular case options",
			"What dial colors are available?",
			"Help me check compatibility",
			"What's the price range?",
			"Guide me through my first build",
		},
		Category:   "general_help",
		Confidence: 0.5,
	}
}

func (m *matcher) pick(responses []string) string {
	return responses[m.random.Intn(len(responses))]
}

var generalHelpResponses = []string{
	"I'd be happy to help! I can assist with parts selection, compatibility questions, pricing, assembly guidance, and more. What specific aspect of watch customization interests you?",
	"I'm here to guide you through building your perfect custom watch! You can ask me about our 125+ components, compatibility, pricing, or get personalized recommendations. What would you like to explore?",
	"Let me help you create something amazing! I can answer questions about cases, dials, hands, bezels, compatibility, pricing, and assembly. What's on your mind?",
}
