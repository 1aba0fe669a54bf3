package handlers

import (
	"errors"

	"github.com/GlobalPath/cms_service/internal/api/rest/middleware"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MediaHandler struct {
	svc  services.MediaService
	auth helper.Auth
}

func NewMediaHandler(svc services.MediaService, auth helper.Auth) *MediaHandler {
	return &MediaHandler{svc: svc, auth: auth}
}

func (h *MediaHandler) SetupRoutes(app *fiber.App) {
	media := app.Group("/api/admin/media",
		middleware.AuthMiddleware(h.auth), middleware.StaffOnly())
	media.Post("/", h.Upload)
	media.Get("/", h.List)
	media.Delete("/:id", h.Delete)
}

// Upload godoc
// @Summary Upload a file to the media library
// @Description form-data: file=<file>, folder=<library folder>
// @Tags media
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Router /api/admin/media [post]
func (h *MediaHandler) Upload(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseValidation(ctx, map[string]string{"file": "file is required"})
	}
	data, err := readMultipart(fh)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "cannot read uploaded file")
	}

	file, err := h.svc.Upload(ctx.Context(), uint(claims.UserID), ctx.FormValue("folder"), fh.Filename, data)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, file)
}

func (h *MediaHandler) List(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	files, err := h.svc.List(ctx.Query("folder"), limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, files)
}

func (h *MediaHandler) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid media id")
	}

	if err := h.svc.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "deleted")
}
