package chatService

import (
	"strings"
	"time"

	"HorologeGolang/internal/api/chat"
	"HorologeGolang/pkg/catalog"
	"HorologeGolang/pkg/chatbot"

	"github.com/sirupsen/logrus"
)

// SendMessage routes the text to the session's chatbot, minting a new
// session when no ID is supplied. The returned session ID lets the client
// continue the conversation.
func (s *chatService) SendMessage(sessionID, message string) (string, chatbot.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return "", chatbot.ChatResponse{}, chat.ErrEmptyMessage
	}

	if sessionID == "" {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Failed to generate session ULID")
			return "", chatbot.ChatResponse{}, err
		}
		sessionID = id
	}

	entry, _ := s.sessions.acquire(sessionID, true)
	defer entry.release()

	response := entry.session.Submit(message)

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"category":   response.Category,
		"confidence": response.Confidence,
	}).Debug("Resolved chat message")

	return sessionID, response, nil
}

func (s *chatService) History(sessionID string) ([]chatbot.ChatMessage, error) {
	entry, ok := s.sessions.acquire(sessionID, false)
	if !ok {
		return nil, chat.ErrSessionNotFound
	}
	defer entry.release()

	return entry.session.History(), nil
}

// ResetSession clears the transcript. Resetting an unknown session is a
// no-op: the next message would start from a fresh greeting either way.
func (s *chatService) ResetSession(sessionID string) {
	entry, ok := s.sessions.acquire(sessionID, false)
	if !ok {
		return
	}
	defer entry.release()

	entry.session.Reset()
}

func (s *chatService) Recommendations(sessionID string) (string, []catalog.Component, error) {
	entry, ok := s.sessions.acquire(sessionID, false)
	if !ok {
		return "", nil, chat.ErrSessionNotFound
	}

	context := entry.session.Context()
	entry.release()

	return context, catalog.Recommend(s.catalog, context), nil
}
