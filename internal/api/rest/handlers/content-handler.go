package handlers

import (
	"errors"
	"time"

	"github.com/GlobalPath/cms_service/internal/api/rest/middleware"
	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	svc  services.ContentService
	auth helper.Auth
}

func NewContentHandler(svc services.ContentService, auth helper.Auth) *ContentHandler {
	return &ContentHandler{svc: svc, auth: auth}
}

func (h *ContentHandler) SetupRoutes(app *fiber.App) {
	// public catalog, published records only
	public := app.Group("/api/content/:entity")
	public.Get("/", h.PublicList)
	public.Get("/featured", h.FeaturedList)
	public.Get("/slug/:slug", h.PublicBySlug)

	// back office
	admin := app.Group("/api/admin/content/:entity",
		middleware.AuthMiddleware(h.auth), middleware.StaffOnly())
	admin.Get("/", h.AdminList)
	admin.Get("/:id", h.GetByID)
	admin.Post("/", h.Create)
	admin.Put("/:id", h.Update)
	admin.Delete("/:id", h.Delete)
	admin.Patch("/:id/publish", h.SetPublished)
	admin.Patch("/:id/feature", h.SetFeatured)
}

func (h *ContentHandler) entity(ctx *fiber.Ctx) (string, error) {
	entity := ctx.Params("entity")
	if !services.ValidEntity(entity) {
		return "", services.ErrUnknownEntity
	}
	return entity, nil
}

// PublicList godoc
// @Summary List published records of a catalog entity
// @Tags content
// @Produce json
// @Param entity path string true "courses|universities|destinations|blogs|scholarships|services|careers|events"
// @Router /api/content/{entity} [get]
func (h *ContentHandler) PublicList(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}

	limit, offset := pagination(ctx)
	out, err := h.svc.PublicList(entity, limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *ContentHandler) FeaturedList(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}

	limit, _ := pagination(ctx)
	out, err := h.svc.FeaturedList(entity, limit)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *ContentHandler) PublicBySlug(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}

	out, err := h.svc.PublicBySlug(entity, ctx.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *ContentHandler) AdminList(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}

	limit, offset := pagination(ctx)
	out, err := h.svc.AdminList(entity, limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *ContentHandler) GetByID(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	out, err := h.svc.GetByID(entity, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *ContentHandler) Create(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}

	rec, _ := services.NewRecord(entity)
	if fields, err := bindCatalogInput(ctx, entity, rec); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	} else if len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	if err := h.svc.Create(entity, rec); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, rec)
}

func (h *ContentHandler) Update(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	rec, err := h.svc.GetByID(entity, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	if fields, err := bindCatalogInput(ctx, entity, rec); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	} else if len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	if err := h.svc.Save(entity, rec); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rec)
}

func (h *ContentHandler) Delete(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(entity, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "deleted")
}

func (h *ContentHandler) SetPublished(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	var input dto.PublishToggle
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	if err := h.svc.SetPublished(entity, id, input.Published); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"published": input.Published})
}

func (h *ContentHandler) SetFeatured(ctx *fiber.Ctx) error {
	entity, err := h.entity(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid id")
	}

	var input dto.FeatureToggle
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	if err := h.svc.SetFeatured(entity, id, input.Featured); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"featured": input.Featured})
}

// bindCatalogInput parses and validates the entity's input schema, then
// copies it onto rec. A record with no slug yet (create path) gets one from
// its display title; updates keep the existing slug so public URLs stay
// stable.
func bindCatalogInput(ctx *fiber.Ctx, entity string, rec any) (map[string]string, error) {
	switch entity {
	case services.EntityCourses:
		var in dto.CourseInput
		if err := ctx.BodyParser(&in); err != nil {
			return nil, errors.New("please provide valid inputs")
		}
		if fields := helper.ValidateStruct(in); len(fields) > 0 {
			return fields, nil
		}
		c := rec.(*domain.Course)
		c.Title = in.Title
		c.Description = in.Description
		c.Level = in.Level
		c.DurationTerm = in.DurationTerm
		c.TuitionFee = in.TuitionFee
		c.UniversityID = in.UniversityID
		c.ImageURL = in.ImageURL
		ensureSlug(c, in.Title)

	case services.EntityUniversities:
		var in dto.UniversityInput
		if err := ctx.BodyParser(&in); err != nil {
			return nil, errors.New("please provide valid inputs")
		}
		if fields := helper.ValidateStruct(in); len(fields) > 0 {
			return fields, nil
		}
		u := rec.(*domain.University)
		u.Name = in.Name
		u.Country = in.Country
		u.City = in.City
		u.Ranking = in.Ranking
		u.Description = in.Description
		u.LogoURL = in.LogoURL
		u.WebsiteURL = in.WebsiteURL
		u.DestinationID = in.DestinationID
		ensureSlug(u, in.Name)

	case services.EntityDestinations:
		var in dto.DestinationInput
		if err := ctx.BodyParser(&in); err != nil {
			return nil, errors.New("please provide valid inputs")
		}
		if fields := helper.ValidateStruct(in); len(fields) > 0 {
			return fields, nil
		}
		d := rec.(*domain.Destination)
		d.Country = in.Country
		d.Description = in.Description
		d.ImageURL = in.ImageURL
		ensureSlug(d, in.Country)

	case services.EntityBlogs:
		var in dto.BlogInput
		if err := ctx.BodyParser(&in); err != nil {
			return nil, errors.New("please provide valid inputs")
		}
		if fields := helper.ValidateStruct(in); len(fields) > 0 {
			return fields, nil
		}
		b := rec.(*domain.Blog)
		b.Title = in.Title
		b.Excerpt = in.Excerpt
		b.Content = in.Content
		b.Author = in.Author
		b.ImageURL = in.ImageURL
		ensureSlug(b, in.Title)

	case services.EntityScholarships:
		var in dto.ScholarshipInput
		if err := ctx.BodyParser(&in); err != nil {
			return nil, errors.New("please provide valid inputs")
		}
		if fields := helper.ValidateStruct(in); len(fields) > 0 {
			return fields, nil
		}
		s := rec.(*domain.Scholarship)
		s.Title = in.Title
		s.Provider = in.Provider
		s.Amount = in.Amount
		s.Deadline = in.Deadline
		s.Description = in.Description
		ensureSlug(s, in.Title)

	case services.EntityServices:
		var in dto.ServicePageInput
		if err := ctx.BodyParser(&in); err != nil {
			return nil, errors.New("please provide valid inputs")
		}
		if fields := helper.ValidateStruct(in); len(fields) > 0 {
			return fields, nil
		}
		s := rec.(*domain.ServicePage)
		s.Title = in.Title
		s.Summary = in.Summary
		s.Content = in.Content
		s.IconURL = in.IconURL
		ensureSlug(s, in.Title)

	case services.EntityCareers:
		var in dto.CareerInput
		if err := ctx.BodyParser(&in); err != nil {
			return nil, errors.New("please provide valid inputs")
		}
		if fields := helper.ValidateStruct(in); len(fields) > 0 {
			return fields, nil
		}
		c := rec.(*domain.Career)
		c.Title = in.Title
		c.Department = in.Department
		c.Location = in.Location
		c.JobType = in.JobType
		c.Description = in.Description
		ensureSlug(c, in.Title)

	case services.EntityEvents:
		var in dto.EventInput
		if err := ctx.BodyParser(&in); err != nil {
			return nil, errors.New("please provide valid inputs")
		}
		if fields := helper.ValidateStruct(in); len(fields) > 0 {
			return fields, nil
		}
		e := rec.(*domain.Event)
		e.Title = in.Title
		e.Description = in.Description
		e.Venue = in.Venue
		e.ImageURL = in.ImageURL
		if in.StartsAt != "" {
			t, err := time.Parse(time.RFC3339, in.StartsAt)
			if err != nil {
				return map[string]string{"starts_at": "must be a valid RFC3339 timestamp"}, nil
			}
			e.StartsAt = &t
		}
		if in.EndsAt != "" {
			t, err := time.Parse(time.RFC3339, in.EndsAt)
			if err != nil {
				return map[string]string{"ends_at": "must be a valid RFC3339 timestamp"}, nil
			}
			e.EndsAt = &t
		}
		ensureSlug(e, in.Title)

	default:
		return nil, services.ErrUnknownEntity
	}
	return nil, nil
}

func ensureSlug(rec domain.Sluggable, title string) {
	if rec.GetSlug() == "" {
		rec.SetSlug(services.Slug(title))
	}
}
