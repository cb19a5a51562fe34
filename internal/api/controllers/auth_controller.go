package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/cloudphoenix/phoenix-api/internal/api/authenticator"
	"github.com/cloudphoenix/phoenix-api/internal/api/response"
	"github.com/cloudphoenix/phoenix-api/internal/perrors"
	"github.com/cloudphoenix/phoenix-api/internal/services"
	user2 "github.com/cloudphoenix/phoenix-api/internal/services/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func RegisterAuthRoutes(r *router.Router, svc *services.Services, auth *authenticator.Authenticator) {
	// Register a new account and issue a token for it
	r.POST("/api/auth/register", func(ctx *fasthttp.RequestCtx) {
		stdCtx, cancel := requestContext(ctx)
		defer cancel()

		var body user2.RegisterUserRequest
		if err := parseBody(ctx, &body); err != nil {
			response.Error(ctx, stdCtx, perrors.NewErrValidation("Invalid request body", err))
			return
		}

		created, err := svc.User.Register(stdCtx, &body)
		if err != nil {
			switch {
			case errors.Is(err, user2.ErrMissingFields):
				response.Error(ctx, stdCtx, perrors.NewErrValidation("Name, email and password are required", err))
			case errors.Is(err, user2.ErrEmailTaken):
				response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeConflict, "User already exists", err))
			default:
				response.Error(ctx, stdCtx, perrors.NewErrInternalServerError("Server error", err))
			}
			return
		}

		token, err := auth.Issue(created.ID.String())
		if err != nil {
			response.Error(ctx, stdCtx, perrors.NewErrInternalServerError("Server error", err))
			return
		}

		response.OK(ctx, TokenResponse{Token: token})
	})

	// Login with email/password
	r.POST("/api/auth/login", func(ctx *fasthttp.RequestCtx) {
		stdCtx, cancel := requestContext(ctx)
		defer cancel()

		var body LoginRequest
		if err := parseBody(ctx, &body); err != nil {
			response.Error(ctx, stdCtx, perrors.NewErrValidation("Invalid request body", err))
			return
		}

		user, err := svc.User.Authenticate(stdCtx, body.Email, body.Password)
		if err != nil {
			// Unknown email and wrong password get the identical response
			if errors.Is(err, user2.ErrInvalidCredentials) {
				response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeInvalidCredentials, "Invalid credentials", err))
			} else {
				response.Error(ctx, stdCtx, perrors.NewErrInternalServerError("Server error", err))
			}
			return
		}

		token, err := auth.Issue(user.ID.String())
		if err != nil {
			response.Error(ctx, stdCtx, perrors.NewErrInternalServerError("Server error", err))
			return
		}

		response.OK(ctx, TokenResponse{Token: token})
	})

	// Current user, password hash excluded
	r.GET("/api/auth/", func(ctx *fasthttp.RequestCtx) {
		stdCtx, cancel := requestContext(ctx)
		defer cancel()

		id, err := callerID(ctx)
		if err != nil {
			response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeUnauthorized, "No token, authorization denied", err))
			return
		}

		user, err := svc.User.GetByID(stdCtx, id)
		if err != nil {
			if errors.Is(err, user2.ErrUserNotFound) {
				response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeNotFound, "User not found", err))
			} else {
				response.Error(ctx, stdCtx, perrors.NewErrInternalServerError("Server error", err))
			}
			return
		}

		response.OK(ctx, user)
	})
}
