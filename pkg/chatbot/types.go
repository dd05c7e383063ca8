package chatbot

import (
	"time"

	"HorologeGolang/pkg/catalog"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type ChatMessage struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Sender     Sender    `json:"sender"`
	Message    string    `json:"message"`
	Category   string    `json:"category,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
}

// Intent is one recognizable category of user question: trigger patterns
// (lowercase), candidate replies, optional follow-up suggestions and
// optional catalog product IDs the category is about.
type Intent struct {
	Category  string
	Patterns  []string
	Responses []string
	FollowUp  []string
	Products  []string
}

type ChatResponse struct {
	Message         string              `json:"message"`
	Suggestions     []string            `json:"suggestions,omitempty"`
	RelatedProducts []catalog.Component `json:"related_products,omitempty"`
	Category        string              `json:"category"`
	Confidence      float64             `json:"confidence"`
}

type IMatcher interface {
	Match(input string) ChatResponse
}

type ISession interface {
	Submit(input string) ChatResponse
	History() []ChatMessage
	Reset()
	Context() string
}

// RandSource abstracts response selection so tests can fix the seed.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// IDSource mints message IDs. Production wires a ULID generator.
type IDSource func() string
