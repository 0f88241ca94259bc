package api

import (
	"context"
	"strings"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"
)

// AuthMiddleware resolves the session to (user, tenant) and stores both on
// the echo context. Handlers read the tenant from there and pass it down
// explicitly; nothing below the controller touches the session.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := bearerToken(ctx)
		if token == "" {
			if cookie, err := ctx.Cookie(constants.CookieKeyAuthToken); err == nil {
				token = cookie.Value
			}
		}

		userID, companyID, err := svc.authService.ResolveSession(ctx.Request().Context(), token)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, userID)
		ctx.Set(constants.CtxKeyCompanyID, companyID)

		return next(ctx)
	}
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, constants.HeaderAuthPrefix) {
		return strings.TrimPrefix(header, constants.HeaderAuthPrefix)
	}
	return ""
}

func requestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		rid := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if rid == "" {
			rid = random.String(16)
		}
		ctx.Response().Header().Set(echo.HeaderXRequestID, rid)

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(context.WithValue(req.Context(), constants.CtxKeyRequestID, rid)))

		return next(ctx)
	}
}
