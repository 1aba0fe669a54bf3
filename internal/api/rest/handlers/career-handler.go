package handlers

import (
	"github.com/GlobalPath/cms_service/internal/api/rest/middleware"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CareerHandler struct {
	svc  services.CareerService
	auth helper.Auth
}

func NewCareerHandler(svc services.CareerService, auth helper.Auth) *CareerHandler {
	return &CareerHandler{svc: svc, auth: auth}
}

func (h *CareerHandler) SetupRoutes(app *fiber.App) {
	// public: applying needs no account
	app.Post("/api/careers/apply", h.Apply)

	admin := app.Group("/api/admin/job-applications",
		middleware.AuthMiddleware(h.auth), middleware.StaffOnly())
	admin.Get("/", h.List)
	admin.Get("/career/:careerID", h.ListByCareer)
	admin.Patch("/:id/review", h.Review)
}

// Apply godoc
// @Summary Apply to a published career opening
// @Description form-data: cv=<pdf/doc/docx up to 5MB> plus the applicant fields
// @Tags careers
// @Accept mpfd
// @Produce json
// @Router /api/careers/apply [post]
func (h *CareerHandler) Apply(ctx *fiber.Ctx) error {
	var input dto.JobApplicationInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	fh, err := ctx.FormFile("cv")
	if err != nil {
		return utils.ResponseValidation(ctx, map[string]string{"cv": "cv file is required"})
	}
	if fields := helper.CVConstraint.ValidateFile(fh.Filename, fh.Size); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}
	cv, err := readMultipart(fh)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "cannot read uploaded file")
	}

	application, err := h.svc.Apply(ctx.Context(), input, fh.Filename, cv)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, application)
}

func (h *CareerHandler) List(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	apps, err := h.svc.ListApplications(ctx.Query("status"), limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, apps)
}

func (h *CareerHandler) ListByCareer(ctx *fiber.Ctx) error {
	careerID, err := paramID(ctx, "careerID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid career id")
	}

	limit, offset := pagination(ctx)
	apps, err := h.svc.ListByCareer(careerID, limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, apps)
}

func (h *CareerHandler) Review(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job application id")
	}

	var input dto.JobApplicationReview
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	application, err := h.svc.Review(id, input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, application)
}
