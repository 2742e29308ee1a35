package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/moim/internal/models"
	"github.com/example/moim/internal/services"
	"github.com/example/moim/internal/utils"
)

const memberContextKey = "currentMember"

// RefreshTokenHeader carries the refresh token on requests and responses.
const RefreshTokenHeader = "RefreshToken"

// SessionGuard fails closed unless the request carries both an access token
// and a refresh token and the pair resolves to a member. The member is bound
// to the request for downstream handlers.
func SessionGuard(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		refreshToken := c.Get(RefreshTokenHeader)
		if authHeader == "" || refreshToken == "" {
			return utils.Fail(c, fiber.StatusUnauthorized, "login required")
		}

		accessToken := stripBearer(authHeader)
		member, err := tokens.Authenticate(accessToken, refreshToken)
		if err != nil {
			return utils.Fail(c, fiber.StatusUnauthorized, "token is invalid")
		}

		c.Locals(memberContextKey, member)
		return c.Next()
	}
}

// CurrentMember extracts the authenticated member bound by SessionGuard.
func CurrentMember(c *fiber.Ctx) (*models.Member, bool) {
	value := c.Locals(memberContextKey)
	if value == nil {
		return nil, false
	}

	if member, ok := value.(*models.Member); ok {
		return member, true
	}

	return nil, false
}

func stripBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return header
}
