package chatService

import (
	"errors"
	"io"
	"testing"

	"HorologeGolang/internal/api/chat"
	"HorologeGolang/pkg/catalog"
	"HorologeGolang/pkg/utils"

	"github.com/sirupsen/logrus"
)

func newTestChatService(t *testing.T) IChatService {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewChatService(logger, catalog.Default(), utils.New())
}

func TestSendMessageMintsSessionID(t *testing.T) {
	svc := newTestChatService(t)

	sessionID, resp, err := svc.SendMessage("", "hello")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a minted session ID")
	}
	if resp.Category != "greeting" {
		t.Errorf("category = %q, want greeting", resp.Category)
	}

	// A second message with the returned ID continues the same session.
	sameID, _, err := svc.SendMessage(sessionID, "show me dials")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if sameID != sessionID {
		t.Errorf("session ID changed from %q to %q", sessionID, sameID)
	}

	history, err := svc.History(sessionID)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	// Seed greeting plus two user/bot exchanges.
	if len(history) != 5 {
		t.Fatalf("expected 5 transcript entries, got %d", len(history))
	}
}

func TestSendMessageRejectsBlankMessage(t *testing.T) {
	svc := newTestChatService(t)

	if _, _, err := svc.SendMessage("", "   "); !errors.Is(err, chat.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestHistoryUnknownSession(t *testing.T) {
	svc := newTestChatService(t)

	if _, err := svc.History("no-such-session"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, _, err := svc.Recommendations("no-such-session"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRecommendationsFollowConversationContext(t *testing.T) {
	svc := newTestChatService(t)

	sessionID, resp, err := svc.SendMessage("", "tell me about dials")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if resp.Category != "dials" {
		t.Fatalf("category = %q, want dials", resp.Category)
	}

	context, components, err := svc.Recommendations(sessionID)
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if context != "dials" {
		t.Errorf("context = %q, want dials", context)
	}
	if len(components) != 2 {
		t.Fatalf("expected 2 dial picks, got %d", len(components))
	}
	for _, c := range components {
		if c.Type != catalog.TypeDial {
			t.Errorf("expected only dials, got %s", c.Type)
		}
	}
}

func TestResetSessionClearsTranscript(t *testing.T) {
	svc := newTestChatService(t)

	sessionID, _, err := svc.SendMessage("", "how much does a case cost")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	svc.ResetSession(sessionID)

	history, err := svc.History(sessionID)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected a single greeting after reset, got %d entries", len(history))
	}

	// Resetting a session that never existed is a no-op.
	svc.ResetSession("no-such-session")
}
