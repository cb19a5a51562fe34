package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/cloudphoenix/phoenix-api/internal/api/controllers"
	"github.com/cloudphoenix/phoenix-api/internal/api/response"
	"github.com/cloudphoenix/phoenix-api/internal/perrors"
)

func (s *Server) initRoutes() fasthttp.RequestHandler {
	r := router.New()

	r.GET("/", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("Cloud Phoenix API is running...")
	})

	controllers.RegisterAuthRoutes(r, s.services, s.auth)
	controllers.RegisterAssetRoutes(r, s.services)
	controllers.RegisterStubRoutes(r)

	return s.withMiddlewares(r.Handler)
}

func (s *Server) withMiddlewares(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		s.applyCORS(ctx)
		if string(ctx.Method()) == fasthttp.MethodOptions {
			ctx.SetStatusCode(fasthttp.StatusNoContent)
			return
		}

		start := time.Now()
		method := string(ctx.Method())
		path := string(ctx.Path())
		slog.Info("Started processing", slog.String("method", method), slog.String("path", path))

		// Auth check
		if !isPublicRoute(ctx) {
			token := string(ctx.Request.Header.Peek("x-auth-token"))
			if token == "" {
				response.Error(ctx, ctx, perrors.New(perrors.ErrCodeUnauthorized, "No token, authorization denied", errors.New("missing x-auth-token header")))
				return
			}

			userID, err := s.auth.Verify(token)
			if err != nil {
				response.Error(ctx, ctx, perrors.New(perrors.ErrCodeUnauthorized, "Token is not valid", err))
				return
			}

			uid, err := uuid.Parse(userID)
			if err != nil {
				response.Error(ctx, ctx, perrors.New(perrors.ErrCodeUnauthorized, "Token is not valid", err))
				return
			}

			// Make the caller's identity available to handlers
			ctx.SetUserValue("userID", uid)
		}

		next(ctx)

		slog.Info("Finished processing",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", ctx.Response.StatusCode()),
			slog.Duration("duration", time.Since(start)))
	}
}

// applyCORS pins the allowed origin to the single configured value instead of
// echoing the request origin.
func (s *Server) applyCORS(ctx *fasthttp.RequestCtx) {
	headers := &ctx.Response.Header
	headers.Set("Access-Control-Allow-Origin", s.conf.ALLOWED_ORIGIN)
	headers.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
	headers.Set("Access-Control-Allow-Headers", "content-type, x-auth-token")
}

func isPublicRoute(ctx *fasthttp.RequestCtx) bool {
	path := string(ctx.Path())

	switch path {
	case "/", "/api/auth/register", "/api/auth/login":
		return true
	default:
		return false
	}
}
