package chatService

import (
	"HorologeGolang/pkg/catalog"
	"HorologeGolang/pkg/chatbot"
	"HorologeGolang/pkg/utils"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	SendMessage(sessionID, message string) (string, chatbot.ChatResponse, error)
	History(sessionID string) ([]chatbot.ChatMessage, error)
	ResetSession(sessionID string)
	Recommendations(sessionID string) (string, []catalog.Component, error)
}

type chatService struct {
	log      *logrus.Logger
	catalog  *catalog.Catalog
	sessions *sessionRegistry
	utils    utils.IUtils
}

func NewChatService(
	log *logrus.Logger,
	cat *catalog.Catalog,
	utilsPkg utils.IUtils,
) IChatService {
	ids := func() string {
		id, err := utilsPkg.NewULIDFromTimestamp(time.Now())
		if err != nil {
			log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Failed to generate message ULID")
			return "unknown"
		}
		return id
	}

	newSession := func() chatbot.ISession {
		matcher := chatbot.NewMatcher(chatbot.DefaultIntents(), cat, rand.New(rand.NewSource(time.Now().UnixNano())))
		return chatbot.NewSession(matcher, ids)
	}

	return &chatService{
		log:      log,
		catalog:  cat,
		sessions: newSessionRegistry(newSession, time.Hour),
		utils:    utilsPkg,
	}
}
