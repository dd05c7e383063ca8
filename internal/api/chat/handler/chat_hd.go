package chatHandler

import (
	"errors"
	"time"

	"HorologeGolang/internal/api/chat"
	contextPkg "HorologeGolang/pkg/context"
	"HorologeGolang/pkg/handlerUtil"
	"HorologeGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ChatHandler) SendMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat message request")

	var req chat.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("request body must be valid JSON"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	sessionID, response, err := h.chatService.SendMessage(req.SessionID, req.Message)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "send_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.SendMessageResponse{
			SessionID:       sessionID,
			Message:         response.Message,
			Suggestions:     response.Suggestions,
			RelatedProducts: response.RelatedProducts,
			Category:        response.Category,
			Confidence:      response.Confidence,
		})
	}
}

func (h *ChatHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	sessionID := ctx.Params("id")
	if sessionID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session ID is required"), ctx.Path())
	}

	messages, err := h.chatService.History(sessionID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.HistoryResponse{
		SessionID: sessionID,
		Messages:  messages,
	})
}

func (h *ChatHandler) GetRecommendations(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	sessionID := ctx.Params("id")
	if sessionID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session ID is required"), ctx.Path())
	}

	chatContext, recommendations, err := h.chatService.Recommendations(sessionID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_recommendations")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.RecommendationsResponse{
		SessionID:       sessionID,
		Context:         chatContext,
		Recommendations: recommendations,
	})
}

func (h *ChatHandler) ResetSession(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	sessionID := ctx.Params("id")
	if sessionID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session ID is required"), ctx.Path())
	}

	h.chatService.ResetSession(sessionID)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": sessionID,
	}).Debug("Chat session reset")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Conversation cleared",
	})
}
