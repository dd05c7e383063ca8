package configuratorHandler

import (
	"errors"
	"time"

	"HorologeGolang/internal/api/configurator"
	contextPkg "HorologeGolang/pkg/context"
	"HorologeGolang/pkg/handlerUtil"
	"HorologeGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ConfiguratorHandler) CheckCompatibility(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing compatibility check request")

	var req configurator.SelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("request body must be valid JSON"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK,
		h.configuratorService.CheckCompatibility(req.ComponentIDs))
}

func (h *ConfiguratorHandler) Price(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req configurator.SelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("request body must be valid JSON"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK,
		h.configuratorService.Price(req.ComponentIDs))
}

func (h *ConfiguratorHandler) SaveConfiguration(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req configurator.SaveConfigurationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("name and configuration are required"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.configuratorService.SaveConfiguration(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "save_configuration")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusCreated, result)
}

func (h *ConfiguratorHandler) GetConfiguration(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("configuration ID is required"), ctx.Path())
	}

	if err := h.configuratorService.GetConfiguration(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_configuration")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
}

func (h *ConfiguratorHandler) ShareConfiguration(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing share configuration request")

	var req configurator.ShareConfigurationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("configuration is required"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.configuratorService.ShareConfiguration(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "share_configuration")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, result)
	}
}

func (h *ConfiguratorHandler) ResolveShare(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	code := ctx.Params("code")
	if code == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("share code is required"), ctx.Path())
	}

	shared, err := h.configuratorService.ResolveShare(c, code)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "resolve_share")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, shared)
}

func (h *ConfiguratorHandler) Export(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req configurator.ExportConfigurationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("configuration is required"), ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	document, err := h.configuratorService.Export(req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_configuration")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, document)
}
