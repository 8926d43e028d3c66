package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/strandsapp/backend/config"
	"github.com/strandsapp/backend/internal/model"
	"github.com/strandsapp/backend/pkg/authenticator"
	"github.com/strandsapp/backend/pkg/logger"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It may derive a new context; a
// returned error aborts the request and is written as the response.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been written, for logging and
// other observability. It cannot change the response.
type CloserFunc func(ctx context.Context)

type Router struct {
	inner gin.IRouter
	root  *gin.Engine

	cfg    config.Configs
	log    logger.Logger
	db     *gorm.DB
	engine authenticator.TokenEngine[model.AccessToken]

	befores []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, log logger.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	return &Router{
		inner:  engine,
		root:   engine,
		cfg:    cfg,
		log:    log,
		db:     db,
		engine: authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken),
	}
}

// Branch creates a sub router sharing this router's route table but with an
// independent middleware chain.
func (r *Router) Branch() *Router {
	branch := *r
	branch.befores = append([]MiddlewareFunc{}, r.befores...)
	branch.closers = append([]CloserFunc{}, r.closers...)
	return &branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.GET(pattern, wrapHandler(r, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.POST(pattern, wrapHandler(r, handler))
}

func PUT[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.PUT(pattern, wrapHandler(r, handler))
}

func (r *Router) Handler() http.Handler {
	return r.root
}
