package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

// RequireActiveStaff rejects callers whose account has not been activated or
// was deactivated after the token was issued.
func RequireActiveStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Staff == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !principal.Staff.IsActive {
			return apperrors.NewUnauthorized("Account not activated")
		}
		return c.Next()
	}
}
