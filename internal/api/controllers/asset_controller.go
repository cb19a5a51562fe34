package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/cloudphoenix/phoenix-api/internal/api/response"
	"github.com/cloudphoenix/phoenix-api/internal/perrors"
	"github.com/cloudphoenix/phoenix-api/internal/services"
	asset2 "github.com/cloudphoenix/phoenix-api/internal/services/asset"
)

func RegisterAssetRoutes(r *router.Router, svc *services.Services) {
	// Create asset
	r.POST("/api/assets", func(ctx *fasthttp.RequestCtx) {
		stdCtx, cancel := requestContext(ctx)
		defer cancel()

		id, err := callerID(ctx)
		if err != nil {
			response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeUnauthorized, "No token, authorization denied", err))
			return
		}

		var body asset2.CreateAssetRequest
		if err := parseBody(ctx, &body); err != nil {
			response.Error(ctx, stdCtx, perrors.NewErrValidation("Invalid request body", err))
			return
		}

		created, err := svc.Asset.Create(stdCtx, &body, id)
		if err != nil {
			switch {
			case errors.Is(err, asset2.ErrValidation):
				response.Error(ctx, stdCtx, perrors.NewErrValidation(err.Error(), err))
			default:
				response.Error(ctx, stdCtx, perrors.NewErrInternalServerError("Server error", err))
			}
			return
		}

		response.OK(ctx, created)
	})

	// List assets, most recently touched first
	r.GET("/api/assets", func(ctx *fasthttp.RequestCtx) {
		stdCtx, cancel := requestContext(ctx)
		defer cancel()

		assets, err := svc.Asset.List(stdCtx)
		if err != nil {
			response.Error(ctx, stdCtx, perrors.NewErrInternalServerError("Server error", err))
			return
		}

		response.OK(ctx, assets)
	})

	// Partial update: only fields present in the body are touched
	r.PUT("/api/assets/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx, cancel := requestContext(ctx)
		defer cancel()

		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeNotFound, "Asset not found", err))
			return
		}

		var body asset2.UpdateAssetRequest
		if err := parseBody(ctx, &body); err != nil {
			response.Error(ctx, stdCtx, perrors.NewErrValidation("Invalid request body", err))
			return
		}

		updated, err := svc.Asset.Update(stdCtx, id, &body)
		if err != nil {
			switch {
			case errors.Is(err, asset2.ErrAssetNotFound):
				response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeNotFound, "Asset not found", err))
			case errors.Is(err, asset2.ErrValidation):
				response.Error(ctx, stdCtx, perrors.NewErrValidation(err.Error(), err))
			default:
				response.Error(ctx, stdCtx, perrors.NewErrInternalServerError("Server error", err))
			}
			return
		}

		response.OK(ctx, updated)
	})

	// Delete asset
	r.DELETE("/api/assets/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx, cancel := requestContext(ctx)
		defer cancel()

		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeNotFound, "Asset not found", err))
			return
		}

		if err := svc.Asset.Delete(stdCtx, id); err != nil {
			switch {
			case errors.Is(err, asset2.ErrAssetNotFound):
				response.Error(ctx, stdCtx, perrors.New(perrors.ErrCodeNotFound, "Asset not found", err))
			default:
				response.Error(ctx, stdCtx, perrors.NewErrInternalServerError("Server error", err))
			}
			return
		}

		response.OK(ctx, response.Msg{Msg: "Asset removed"})
	})
}
