package chatHandler

import (
	chatService "HorologeGolang/internal/api/chat/service"
	"HorologeGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chats := srv.Group("/chat")

	chats.Post("/messages", h.middleware.NewRateLimiter, h.SendMessage)
	chats.Get("/sessions/:id/history", h.GetHistory)
	chats.Get("/sessions/:id/recommendations", h.GetRecommendations)
	chats.Delete("/sessions/:id", h.ResetSession)

	chats.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	chats.Get("/ws", websocket.New(h.ChatSocket))
}
