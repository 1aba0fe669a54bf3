package handlers

import (
	"fmt"
	"time"

	"github.com/GlobalPath/cms_service/internal/api/rest/middleware"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	svc  services.EventService
	auth helper.Auth
}

func NewEventHandler(svc services.EventService, auth helper.Auth) *EventHandler {
	return &EventHandler{svc: svc, auth: auth}
}

func (h *EventHandler) SetupRoutes(app *fiber.App) {
	// public registration on a published event
	app.Post("/api/events/:eventID/register", h.Register)

	admin := app.Group("/api/admin/events",
		middleware.AuthMiddleware(h.auth), middleware.StaffOnly())
	admin.Get("/:eventID/registrations", h.ListRegistrations)
	admin.Get("/:eventID/registrations/export", h.ExportCSV)
	admin.Patch("/registrations/:id/status", h.SetRegistrationStatus)
}

func (h *EventHandler) Register(ctx *fiber.Ctx) error {
	eventID, err := paramID(ctx, "eventID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid event id")
	}

	var input dto.EventRegistrationInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	reg, err := h.svc.Register(eventID, input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, reg)
}

func (h *EventHandler) ListRegistrations(ctx *fiber.Ctx) error {
	eventID, err := paramID(ctx, "eventID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid event id")
	}

	limit, offset := pagination(ctx)
	regs, err := h.svc.ListRegistrations(eventID, limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, regs)
}

// ExportCSV godoc
// @Summary Download an event's registrations as CSV
// @Tags admin
// @Produce text/csv
// @Param eventID path int true "event id"
// @Security BearerAuth
// @Router /api/admin/events/{eventID}/registrations/export [get]
func (h *EventHandler) ExportCSV(ctx *fiber.Ctx) error {
	eventID, err := paramID(ctx, "eventID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid event id")
	}

	csv, err := h.svc.ExportRegistrationsCSV(eventID)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	filename := fmt.Sprintf("event-%d-registrations-%s.csv", eventID, time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(csv)
}

func (h *EventHandler) SetRegistrationStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid registration id")
	}

	var input dto.RegistrationStatusUpdate
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	reg, err := h.svc.SetRegistrationStatus(id, input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, reg)
}
