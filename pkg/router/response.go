package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/strandsapp/backend/pkg/errorx"
	"github.com/strandsapp/backend/pkg/xcontext"
)

// The response envelope is flat: {"success": bool, "error": ..., payload
// fields of the handler response at top level}. Client errors carry their
// message in "error" with status 400; unexpected failures never leak
// internal detail.

func writeResponse(ctx context.Context) {
	if err := xcontext.Error(ctx); err != nil {
		writeError(ctx, err)
		return
	}

	envelope := map[string]any{"success": true}
	if resp := xcontext.Response(ctx); resp != nil {
		b, err := json.Marshal(resp)
		if err == nil {
			err = json.Unmarshal(b, &envelope)
		}
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot encode the response: %v", err)
			writeError(ctx, errorx.New(errorx.BadResponse, "Cannot write the response"))
			return
		}

		envelope["success"] = true
	}

	writeJSON(ctx, http.StatusOK, envelope)
}

func writeError(ctx context.Context, err error) {
	var errx errorx.Error
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	switch errx.Code {
	case errorx.BadRequest, errorx.NotFound, errorx.AlreadyExists:
		writeJSON(ctx, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   errx.Message,
		})
	case errorx.Unauthenticated:
		writeJSON(ctx, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   errx.Message,
		})
	case errorx.PermissionDenied:
		writeJSON(ctx, http.StatusForbidden, map[string]any{
			"success": false,
			"error":   errx.Message,
		})
	default:
		writeJSON(ctx, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Internal server error",
		})
	}
}

func writeJSON(ctx context.Context, status int, body any) {
	w := xcontext.HTTPWriter(ctx)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}
