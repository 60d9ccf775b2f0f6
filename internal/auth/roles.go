package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// Authorize checks a principal against an allow-list of roles. An empty
// allow-list admits any authenticated principal.
func Authorize(principal *domain.Principal, allowed ...domain.Role) error {
	if principal == nil {
		return apperrors.NewUnauthenticated("token ausente")
	}
	if len(allowed) == 0 {
		return nil
	}
	for _, role := range allowed {
		if principal.Role == role {
			return nil
		}
	}
	return apperrors.NewForbidden("permissão insuficiente")
}

// RequireRole ensures the principal has one of the allowed roles. It must
// be registered after Middleware.Handle so missing credentials surface as
// 401, never 403.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("token ausente")
		}
		if err := Authorize(principal, allowed...); err != nil {
			return err
		}
		return c.Next()
	}
}
