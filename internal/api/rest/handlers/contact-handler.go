package handlers

import (
	"github.com/GlobalPath/cms_service/internal/api/rest/middleware"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	svc  services.ContactService
	auth helper.Auth
}

func NewContactHandler(svc services.ContactService, auth helper.Auth) *ContactHandler {
	return &ContactHandler{svc: svc, auth: auth}
}

func (h *ContactHandler) SetupRoutes(app *fiber.App) {
	// public lead-capture forms
	app.Post("/api/contact", h.SubmitContact)
	app.Post("/api/counselling", h.SubmitCounselling)

	admin := app.Group("/api/admin",
		middleware.AuthMiddleware(h.auth), middleware.StaffOnly())
	admin.Get("/contacts", h.ListContacts)
	admin.Get("/counselling", h.ListCounselling)
	admin.Patch("/counselling/:id/status", h.SetCounsellingStatus)
}

// SubmitContact godoc
// @Summary Submit the public contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param body body dto.ContactRequest true "message"
// @Router /api/contact [post]
func (h *ContactHandler) SubmitContact(ctx *fiber.Ctx) error {
	var input dto.ContactRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	msg, err := h.svc.SubmitContact(ctx.Context(), input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, msg)
}

func (h *ContactHandler) SubmitCounselling(ctx *fiber.Ctx) error {
	var input dto.CounsellingRequestInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	req, err := h.svc.SubmitCounselling(ctx.Context(), input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, req)
}

func (h *ContactHandler) ListContacts(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	out, err := h.svc.ListContacts(limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *ContactHandler) ListCounselling(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	out, err := h.svc.ListCounselling(ctx.Query("status"), limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *ContactHandler) SetCounsellingStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	var input dto.RegistrationStatusUpdate
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	req, err := h.svc.SetCounsellingStatus(id, input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, req)
}
