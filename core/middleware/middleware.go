package middleware

import (
	"strings"

	"collabtime-api/core/cache"
	"collabtime-api/core/constants"
	"collabtime-api/core/controller"
	"collabtime-api/core/errors"
	"collabtime-api/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the cross-cutting request middleware
type Middleware struct {
	cache cache.ICache
}

func NewMiddleware(c cache.ICache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the bearer token and stores its claims in the
// request context under constants.ContextTokenData
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "invalid authorization header format")
			}
			token := parts[1]

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err == nil && blacklisted {
					return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token is blacklisted")
				}
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(401, errors.ErrTokenExpired, "invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
