package chat

import (
	"HorologeGolang/pkg/catalog"
	"HorologeGolang/pkg/chatbot"
)

type SendMessageRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
	Message   string `json:"message" validate:"required,max=2000"`
}

type SendMessageResponse struct {
	SessionID       string              `json:"session_id"`
	Message         string              `json:"message"`
	Suggestions     []string            `json:"suggestions,omitempty"`
	RelatedProducts []catalog.Component `json:"related_products,omitempty"`
	Category        string              `json:"category"`
	Confidence      float64             `json:"confidence"`
}

type HistoryResponse struct {
	SessionID string                `json:"session_id"`
	Messages  []chatbot.ChatMessage `json:"messages"`
}

type RecommendationsResponse struct {
	SessionID       string              `json:"session_id"`
	Context         string              `json:"context"`
	Recommendations []catalog.Component `json:"recommendations"`
}

// Websocket frames mirror the REST payloads so a client can switch
// transports without remapping fields.
type SocketMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type SocketResponse struct {
	Type            string              `json:"type"`
	SessionID       string              `json:"session_id"`
	Message         string              `json:"message,omitempty"`
	Suggestions     []string            `json:"suggestions,omitempty"`
	RelatedProducts []catalog.Component `json:"related_products,omitempty"`
	Category        string              `json:"category,omitempty"`
	Confidence      float64             `json:"confidence,omitempty"`
	Error           string              `json:"error,omitempty"`
}
