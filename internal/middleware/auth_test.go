package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/strandsapp/backend/config"
	"github.com/strandsapp/backend/internal/model"
	"github.com/strandsapp/backend/pkg/authenticator"
	"github.com/strandsapp/backend/pkg/logger"
	"github.com/strandsapp/backend/pkg/router"
	"github.com/strandsapp/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type whoAmIRequest struct{}

type whoAmIResponse struct {
	UserID string `json:"user_id"`
}

func newAuthTestServer(t *testing.T) (http.Handler, config.Configs) {
	cfg := config.Configs{
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Secret:     "secret",
				Expiration: time.Minute,
			},
		},
	}

	r := router.New(nil, cfg, logger.NewLogger(logger.SILENCE))
	authRouter := r.Branch()
	authRouter.Before(Authenticate())
	router.GET(authRouter, "/whoami",
		func(ctx context.Context, req *whoAmIRequest) (*whoAmIResponse, error) {
			return &whoAmIResponse{UserID: xcontext.RequestUserID(ctx)}, nil
		})

	return r.Handler(), cfg
}

func serveAuth(t *testing.T, handler http.Handler, authorization string) (int, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func Test_Authenticate(t *testing.T) {
	handler, cfg := newAuthTestServer(t)

	// A request without a token is rejected with the envelope, not dropped.
	status, body := serveAuth(t, handler, "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, false, body["success"])
	require.Equal(t, "You need to authenticate before", body["error"])

	// A malformed token is rejected the same way.
	status, body = serveAuth(t, handler, "Bearer not-a-token")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Invalid access token", body["error"])

	// A valid token reaches the handler with the caller's user id.
	engine := authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken)
	token, err := engine.Generate("user1", model.AccessToken{ID: "user1", Username: "alice"})
	require.NoError(t, err)

	status, body = serveAuth(t, handler, "Bearer "+token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["success"])
	require.Equal(t, "user1", body["user_id"])
}
