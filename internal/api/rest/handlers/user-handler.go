package handlers

import (
	"strconv"

	"github.com/GlobalPath/cms_service/internal/api/rest/middleware"
	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/helper/utils"
	"github.com/GlobalPath/cms_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)

	me := api.Group("/auth", middleware.AuthMiddleware(h.auth))
	me.Get("/me", h.Me)
	me.Put("/me", h.UpdateProfile)

	admin := api.Group("/admin/users",
		middleware.AuthMiddleware(h.auth), middleware.AdminOnly())
	admin.Get("/", h.ListUsers)
	admin.Patch("/:userID/status", h.SetStatus)
	admin.Patch("/:userID/role", h.SetRole)
}

// Register godoc
// @Summary Register a public account (student or agent)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "account"
// @Success 201 {object} map[string]interface{}
// @Router /api/auth/register [post]
func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var input dto.RegisterRequest
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	user, err := h.svc.Register(input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, toUserResponse(user))
}

// Login godoc
// @Summary Sign in and receive a session token with the role claim
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.UserLogin true "credentials"
// @Success 200 {object} dto.LoginResponse
// @Router /api/auth/login [post]
func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var input dto.UserLogin
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}
	if fields := helper.ValidateStruct(input); len(fields) > 0 {
		return utils.ResponseValidation(ctx, fields)
	}

	token, user, err := h.svc.Login(input)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

func (h *UserHandler) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
	})
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "signed out")
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	user, err := h.svc.GetProfile(uint(claims.UserID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, toUserResponse(user))
}

func (h *UserHandler) UpdateProfile(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	var input struct {
		FullName string  `json:"full_name"`
		Phone    *string `json:"phone,omitempty"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	user, err := h.svc.UpdateProfile(uint(claims.UserID), input.FullName, input.Phone)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, toUserResponse(user))
}

func (h *UserHandler) ListUsers(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	users, err := h.svc.ListUsers(limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.UserProfileResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, out)
}

func (h *UserHandler) SetStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "userID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	if err := h.svc.SetStatus(id, input.Status); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "status updated")
}

func (h *UserHandler) SetRole(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "userID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	var input struct {
		Role string `json:"role"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	if err := h.svc.SetRole(id, domain.Role(input.Role)); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "role updated")
}

func toUserResponse(u *domain.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Role:     string(u.Role),
		Status:   u.Status,
	}
}

// pagination reads limit/offset query params with sane defaults.
func pagination(ctx *fiber.Ctx) (int, int) {
	limit, err := strconv.Atoi(ctx.Query("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(ctx.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func paramID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
