package chatbot

import (
	"fmt"
	"math/rand"
	"testing"

	"HorologeGolang/pkg/catalog"
)

func newTestSession() ISession {
	counter := 0
	ids := func() string {
		counter++
		return fmt.Sprintf("msg-%d", counter)
	}
	matcher := NewMatcher(DefaultIntents(), catalog.Default(), rand.New(rand.NewSource(1)))
	return NewSession(matcher, ids)
}

func TestSessionSeedsGreetingWithoutContext(t *testing.T) {
	s := newTestSession()

	history := s.History()
	if len(history) != 1 {
		t.Fatalf("fresh session should hold the seed greeting only, got %d messages", len(history))
	}
	if history[0].Sender != SenderBot || history[0].Category != "greeting" {
		t.Fatalf("seed turn should be a bot greeting, got %+v", history[0])
	}
	if s.Context() != "" {
		t.Fatalf("seed greeting must not set context, got %q", s.Context())
	}
}

func TestSessionSubmitAppendsTurnPairs(t *testing.T) {
	s := newTestSession()

	inputs := []string{"hello", "what cases do you have?", "how much is shipping"}
	for _, input := range inputs {
		s.Submit(input)
	}

	history := s.History()
	if want := 2*len(inputs) + 1; len(history) != want {
		t.Fatalf("expected %d messages after %d submits, got %d", want, len(inputs), len(history))
	}

	// Seed, then strictly alternating user/bot pairs in insertion order.
	for i := 1; i < len(history); i += 2 {
		if history[i].Sender != SenderUser {
			t.Fatalf("message %d should be a user turn, got %q", i, history[i].Sender)
		}
		if history[i+1].Sender != SenderBot {
			t.Fatalf("message %d should be a bot turn, got %q", i+1, history[i+1].Sender)
		}
	}
	if history[1].Message != "hello" {
		t.Fatalf("user turns keep the raw text, got %q", history[1].Message)
	}
}

func TestSessionTracksContext(t *testing.T) {
	s := newTestSession()

	s.Submit("what cases do you have?")
	if s.Context() != "cases" {
		t.Fatalf("expected context cases, got %q", s.Context())
	}

	s.Submit("show me some dials")
	if s.Context() != "dials" {
		t.Fatalf("context is overwritten on every bot turn, got %q", s.Context())
	}
}

func TestSessionHistoryIsDefensiveCopy(t *testing.T) {
	s := newTestSession()
	s.Submit("hello")

	history := s.History()
	history[0].Message = "tampered"

	if s.History()[0].Message == "tampered" {
		t.Fatalf("History must return a copy the caller cannot mutate through")
	}
}

func TestSessionResetIsIdempotent(t *testing.T) {
	s := newTestSession()
	s.Submit("hello")
	s.Submit("what about bezels?")

	s.Reset()
	first := s.History()
	if len(first) != 1 {
		t.Fatalf("reset should collapse history to the fresh greeting, got %d messages", len(first))
	}
	if s.Context() != "" {
		t.Fatalf("reset should clear context, got %q", s.Context())
	}

	s.Reset()
	second := s.History()
	if len(second) != 1 || second[0].Message != first[0].Message || second[0].Category != "greeting" {
		t.Fatalf("double reset should land in the same single-greeting state")
	}
}

func TestSessionBotTurnsCarryMatchMetadata(t *testing.T) {
	s := newTestSession()
	response := s.Submit("Is the SKX007 case compatible with a blue dial?")

	history := s.History()
	bot := history[len(history)-1]
	if bot.Category != response.Category || bot.Confidence != response.Confidence {
		t.Fatalf("bot turn metadata %q/%v diverges from response %q/%v",
			bot.Category, bot.Confidence, response.Category, response.Confidence)
	}
	if bot.Category != "compatibility" || bot.Confidence != 0.8 {
		t.Fatalf("scenario should resolve to compatibility at 0.8, got %q at %v", bot.Category, bot.Confidence)
	}
}

func TestSessionMessageIDsAreUnique(t *testing.T) {
	s := newTestSession()
	s.Submit("hello")
	s.Submit("hi again")

	seen := make(map[string]bool)
	for _, message := range s.History() {
		if seen[message.ID] {
			t.Fatalf("duplicate message ID %q", message.ID)
		}
		seen[message.ID] = true
	}
}
