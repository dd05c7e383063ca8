package partsHandler

import (
	"errors"

	"HorologeGolang/pkg/handlerUtil"
	"HorologeGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *PartsHandler) GetCatalog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get catalog request")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.partsService.Catalog())
}

func (h *PartsHandler) GetBucket(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	componentType := ctx.Params("type")
	if componentType == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("component type is required"), ctx.Path())
	}

	bucket, err := h.partsService.Bucket(componentType)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_catalog_bucket")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, bucket)
}
