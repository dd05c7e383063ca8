package chatbot

import "time"

const (
	welcomeMessage = "Hello! Welcome to Horologe Watch Customizer! I'm here to help you build your perfect custom watch. What would you like to know?"
	clearedMessage = "Conversation cleared! How can I help you with your watch customization today?"
)

// session owns one conversation transcript. It is single-threaded: the
// caller routes at most one request at a time to a given session.
type session struct {
	matcher        IMatcher
	newID          IDSource
	history        []ChatMessage
	currentContext string
}

// NewSession seeds the transcript with a greeting bot turn. The seed turn
// does not set the context; Context stays empty until the first Submit.
func NewSession(matcher IMatcher, newID IDSource) ISession {
	s := &session{
		matcher: matcher,
		newID:   newID,
	}
	s.appendBotMessage(welcomeMessage, "greeting", 0)
	return s
}

func (s *session) Submit(input string) ChatResponse {
	s.history = append(s.history, ChatMessage{
		ID:        s.newID(),
		Timestamp: time.Now(),
		Sender:    SenderUser,
		Message:   input,
	})

	response := s.matcher.Match(input)

	s.appendBotMessage(response.Message, response.Category, response.Confidence)
	s.currentContext = response.Category

	return response
}

// History returns a defensive copy the caller may not mutate through.
func (s *session) History() []ChatMessage {
	out := make([]ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// Reset truncates the transcript back to a single fresh greeting turn.
// Resetting an already-fresh session yields the same state again.
func (s *session) Reset() {
	s.history = s.history[:0]
	s.currentContext = ""
	s.appendBotMessage(clearedMessage, "greeting", 0)
}

func (s *session) Context() string {
	return s.currentContext
}

func (s *session) appendBotMessage(message, category string, confidence float64) {
	s.history = append(s.history, ChatMessage{
		ID:         s.newID(),
		Timestamp:  time.Now(),
		Sender:     SenderBot,
		Message:    message,
		Category:   category,
		Confidence: confidence,
	})
}
