package middleware

import (
	"context"
	"strings"

	"github.com/strandsapp/backend/pkg/errorx"
	"github.com/strandsapp/backend/pkg/router"
	"github.com/strandsapp/backend/pkg/xcontext"
)

// Authenticate verifies the Bearer access token and records the caller's
// user id on the context. Handlers behind it may trust
// xcontext.RequestUserID unconditionally.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := bearerToken(ctx)
		if token == "" {
			return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot verify access token: %v", err)
			return ctx, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}

func bearerToken(ctx context.Context) string {
	authorization := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if !found || auth != "Bearer" {
		return ""
	}

	return token
}
