package handlers

import (
	"errors"

	"github.com/GlobalPath/cms_service/internal/api/rest/middleware"
	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	svc  services.NotificationService
	auth helper.Auth
}

func NewNotificationHandler(svc services.NotificationService, auth helper.Auth) *NotificationHandler {
	return &NotificationHandler{svc: svc, auth: auth}
}

func (h *NotificationHandler) SetupRoutes(app *fiber.App) {
	n := app.Group("/api/notifications", middleware.AuthMiddleware(h.auth))
	n.Get("/", h.List)
	n.Patch("/read-all", h.MarkAllRead)
	n.Patch("/:id/read", h.MarkRead)
	n.Delete("/:id", h.Remove)

	admin := app.Group("/api/admin/notifications",
		middleware.AuthMiddleware(h.auth), middleware.StaffOnly())
	admin.Get("/", h.ListAdmin)
	admin.Patch("/read-all", h.MarkAllReadAdmin)
}

// List godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Param category query string false "filter by category"
// @Param unread query bool false "unread only"
// @Security BearerAuth
// @Router /api/notifications [get]
func (h *NotificationHandler) List(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	limit, offset := pagination(ctx)
	out, err := h.svc.List(uint(claims.UserID), ctx.Query("category"),
		ctx.QueryBool("unread"), limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *NotificationHandler) ListAdmin(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	out, err := h.svc.ListAdmin(ctx.Query("category"), limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

// MarkRead is idempotent: re-marking an already-read notification succeeds
// without changing read_at.
func (h *NotificationHandler) MarkRead(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := h.svc.MarkRead(uint(claims.UserID), id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		case errors.Is(err, services.ErrNotificationForbidden):
			return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "marked read")
}

func (h *NotificationHandler) MarkAllRead(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	out, err := h.svc.MarkAllRead(uint(claims.UserID), false)
	if err != nil && out == nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	if err != nil {
		// partial failure: report what succeeded and what did not
		return ctx.Status(fiber.StatusMultiStatus).JSON(fiber.Map{"data": out})
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *NotificationHandler) MarkAllReadAdmin(ctx *fiber.Ctx) error {
	out, err := h.svc.MarkAllRead(0, true)
	if err != nil && out == nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	if err != nil {
		return ctx.Status(fiber.StatusMultiStatus).JSON(fiber.Map{"data": out})
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *NotificationHandler) Remove(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid notification id")
	}

	role, _ := ctx.Locals("role").(domain.Role)

	if err := h.svc.Remove(uint(claims.UserID), id, role.IsStaff()); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		case errors.Is(err, services.ErrNotificationForbidden):
			return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "deleted")
}
