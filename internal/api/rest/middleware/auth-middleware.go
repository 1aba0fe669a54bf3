package middleware

import (
	"strings"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("userID", uint(user.UserID))
		ctx.Locals("role", domain.Role(user.Role))
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// RequireRole gates a route on the role claim carried in the verified token.
// No per-request role lookup is made.
func RequireRole(roles ...domain.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, ok := ctx.Locals("role").(domain.Role)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		for _, r := range roles {
			if role == r {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient role",
		})
	}
}

func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// StaffOnly admits every back-office role.
func StaffOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, ok := ctx.Locals("role").(domain.Role)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		if !role.IsStaff() {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "staff only",
			})
		}
		return ctx.Next()
	}
}
