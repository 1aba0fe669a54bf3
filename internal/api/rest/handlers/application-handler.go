package handlers

import (
	"github.com/GlobalPath/cms_service/internal/api/rest/middleware"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	svc  services.ApplicationService
	auth helper.Auth
}

func NewApplicationHandler(svc services.ApplicationService, auth helper.Auth) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, auth: auth}
}

func (h *ApplicationHandler) SetupRoutes(app *fiber.App) {
	apps := app.Group("/api/applications", middleware.AuthMiddleware(h.auth))
	apps.Post("/", h.Create)
	apps.Get("/mine", h.ListMine)

	admin := app.Group("/api/admin/applications",
		middleware.AuthMiddleware(h.auth), middleware.StaffOnly())
	admin.Get("/", h.List)
	admin.Patch("/:id/decision", h.Decide)
	admin.Patch("/:id/override", middleware.AdminOnly(), h.Override)
}

func (h *ApplicationHandler) Create(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var input dto.ApplicationCreateRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	application, err := h.svc.Create(uint(claims.UserID), input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, application)
}

func (h *ApplicationHandler) ListMine(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	limit, offset := pagination(ctx)
	apps, err := h.svc.ListMine(uint(claims.UserID), limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, apps)
}

func (h *ApplicationHandler) List(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	apps, err := h.svc.List(ctx.Query("status"), limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, apps)
}

// Decide godoc
// @Summary Move an application along the forward transition table
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "application id"
// @Param body body dto.ApplicationDecision true "decision"
// @Security BearerAuth
// @Router /api/admin/applications/{id}/decision [patch]
func (h *ApplicationHandler) Decide(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	var input dto.ApplicationDecision
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	application, err := h.svc.Decide(id, uint(claims.UserID), input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, application)
}

func (h *ApplicationHandler) Override(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	var input dto.ApplicationOverride
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	application, err := h.svc.Override(id, uint(claims.UserID), input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, application)
}
