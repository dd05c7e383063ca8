package chatHandler

import (
	"HorologeGolang/internal/api/chat"
	"HorologeGolang/pkg/log"

	"github.com/gofiber/websocket/v2"
)

// ChatSocket runs the conversation loop over a websocket. Frames mirror
// the REST payloads; the connection owns one logical client, but the
// session ID in each frame decides which transcript the message lands in.
func (h *ChatHandler) ChatSocket(conn *websocket.Conn) {
	defer conn.Close()

	for {
		var frame chat.SocketMessage
		if err := conn.ReadJSON(&frame); err != nil {
			h.log.WithFields(log.Fields{
				"error": err.Error(),
			}).Debug("Chat socket closed")
			return
		}

		sessionID, response, err := h.chatService.SendMessage(frame.SessionID, frame.Message)
		if err != nil {
			if writeErr := conn.WriteJSON(chat.SocketResponse{
				Type:      "error",
				SessionID: frame.SessionID,
				Error:     err.Error(),
			}); writeErr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(chat.SocketResponse{
			Type:            "message",
			SessionID:       sessionID,
			Message:         response.Message,
			Suggestions:     response.Suggestions,
			RelatedProducts: response.RelatedProducts,
			Category:        response.Category,
			Confidence:      response.Confidence,
		}); err != nil {
			h.log.WithFields(log.Fields{
				"error": err.Error(),
			}).Debug("Failed to write chat socket frame")
			return
		}
	}
}
