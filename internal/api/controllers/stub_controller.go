package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/cloudphoenix/phoenix-api/internal/api/response"
	"github.com/cloudphoenix/phoenix-api/internal/perrors"
)

// RegisterStubRoutes mounts the project, task and handoff resources. Their
// handlers are not implemented yet; the mounts exist, sit behind the auth
// gate, and answer 501 so the contract is explicit instead of a silent 404.
func RegisterStubRoutes(r *router.Router) {
	stubs := []string{
		"/api/projects",
		"/api/projects/{id}",
		"/api/tasks",
		"/api/tasks/{id}",
		"/api/handoffs",
		"/api/handoffs/{id}",
	}

	for _, path := range stubs {
		r.ANY(path, notImplemented)
	}
}

func notImplemented(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := requestContext(ctx)
	defer cancel()

	response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeNotImplemented, "Not implemented", errors.New("resource is not implemented")))
}
