package handlers

import (
	"errors"
	"mime/multipart"

	"github.com/GlobalPath/cms_service/internal/api/rest/middleware"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/services"
	pkgutils "github.com/GlobalPath/cms_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// maxUploadBytes caps any single multipart read. Per-field constraints
// apply tighter limits afterwards.
const maxUploadBytes = 100 * 1024 * 1024

type StudentHandler struct {
	svc   services.StudentService
	media services.MediaService
	auth  helper.Auth
}

func NewStudentHandler(svc services.StudentService, media services.MediaService, auth helper.Auth) *StudentHandler {
	return &StudentHandler{svc: svc, media: media, auth: auth}
}

func (h *StudentHandler) SetupRoutes(app *fiber.App) {
	profile := app.Group("/api/student/profile", middleware.AuthMiddleware(h.auth))
	profile.Get("/", h.GetProfile)
	profile.Patch("/", h.SaveSections)
	profile.Get("/status", h.Status)
	profile.Post("/submit", h.Submit)
	profile.Post("/documents", h.UploadDocument)
}

func (h *StudentHandler) GetProfile(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	profile, err := h.svc.GetProfile(uint(claims.UserID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

// SaveSections godoc
// @Summary Save one or more profile sections
// @Description Partial save. Rejected with 409 once the profile is submitted.
// @Tags student
// @Accept json
// @Produce json
// @Param body body dto.ProfileSectionUpdate true "sections"
// @Security BearerAuth
// @Router /api/student/profile [patch]
func (h *StudentHandler) SaveSections(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var input dto.ProfileSectionUpdate
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := validateSections(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	profile, err := h.svc.SaveSections(uint(claims.UserID), input)
	if err != nil {
		if errors.Is(err, services.ErrProfileLocked) {
			return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *StudentHandler) Status(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	status, err := h.svc.Status(uint(claims.UserID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, status)
}

func (h *StudentHandler) Submit(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	status, err := h.svc.Submit(uint(claims.UserID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, status)
}

// UploadDocument stores a supporting document (passport scan, transcript,
// test report) and attaches it to the caller's profile.
func (h *StudentHandler) UploadDocument(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	docType := ctx.FormValue("doc_type")
	if docType == "" {
		return utils.ResponseValidation(ctx, map[string]string{"doc_type": "doc_type is required"})
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseValidation(ctx, map[string]string{"file": "file is required"})
	}
	data, err := readMultipart(fh)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "cannot read uploaded file")
	}

	file, err := h.media.Upload(ctx.Context(), uint(claims.UserID), "documents", fh.Filename, data)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.AttachDocument(uint(claims.UserID), docType, file.FileURL); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"doc_type": docType,
		"file_url": file.FileURL,
	})
}

// validateSections runs schema validation on each section the caller sent.
// Nil sections are skipped, matching the partial-save contract.
func validateSections(input dto.ProfileSectionUpdate) map[string]string {
	merge := func(dst, src map[string]string) map[string]string {
		if len(src) == 0 {
			return dst
		}
		if dst == nil {
			dst = map[string]string{}
		}
		for k, v := range src {
			dst[k] = v
		}
		return dst
	}

	var fields map[string]string
	if input.Personal != nil {
		fields = merge(fields, helper.ValidateStruct(*input.Personal))
	}
	if input.Contact != nil {
		fields = merge(fields, helper.ValidateStruct(*input.Contact))
	}
	if input.Passport != nil {
		fields = merge(fields, helper.ValidateStruct(*input.Passport))
	}
	for _, edu := range input.Education {
		fields = merge(fields, helper.ValidateStruct(edu))
	}
	if input.EnglishTest != nil {
		fields = merge(fields, helper.ValidateStruct(*input.EnglishTest))
	}
	if input.Preferences != nil {
		fields = merge(fields, helper.ValidateStruct(*input.Preferences))
	}
	if input.Sponsor != nil {
		fields = merge(fields, helper.ValidateStruct(*input.Sponsor))
	}
	if input.Emergency != nil {
		fields = merge(fields, helper.ValidateStruct(*input.Emergency))
	}
	return fields
}

// readMultipart drains an uploaded part with a hard byte ceiling, so a
// mislabelled Content-Length cannot balloon memory.
func readMultipart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pkgutils.ReadAllLimit(f, maxUploadBytes)
}
