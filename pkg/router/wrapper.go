package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/strandsapp/backend/pkg/errorx"
	"github.com/strandsapp/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	r *Router, handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		ctx := loadContext(r, ginCtx)

		var err error
		for _, before := range r.befores {
			var next context.Context
			next, err = before(ctx)
			// The error response still needs a usable context, so a
			// middleware returning nil keeps the previous one.
			if next != nil {
				ctx = next
			}
			if err != nil {
				break
			}
		}

		if err == nil {
			var req Request
			if err = bindRequest(ginCtx, &req); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot bind the request: %v", err)
				err = errorx.New(errorx.BadRequest, "Invalid request")
			} else {
				var resp *Response
				resp, err = handler(ctx, &req)
				if resp != nil {
					ctx = xcontext.WithResponse(ctx, resp)
				}
			}
		}

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
		}

		writeResponse(ctx)

		for _, closer := range r.closers {
			closer(ctx)
		}
	}
}

func loadContext(r *Router, ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.log)
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithTokenEngine(ctx, r.engine)
	ctx = xcontext.WithHTTPRequest(ctx, ginCtx.Request)
	ctx = xcontext.WithHTTPWriter(ctx, ginCtx.Writer)
	return ctx
}

func bindRequest(ginCtx *gin.Context, req any) error {
	if len(ginCtx.Params) > 0 {
		if err := ginCtx.ShouldBindUri(req); err != nil {
			return err
		}
	}

	switch ginCtx.Request.Method {
	case http.MethodGet:
		return ginCtx.ShouldBindQuery(req)
	default:
		// Bodyless POST/PUT requests are allowed.
		if ginCtx.Request.ContentLength > 0 {
			return ginCtx.ShouldBindJSON(req)
		}
	}

	return nil
}
