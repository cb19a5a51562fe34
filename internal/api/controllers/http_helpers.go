package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// Every handler runs under a fixed deadline so a slow store cannot hold a
// request open forever.
const requestTimeout = 10 * time.Second

// requestContext returns the baseline context for handlers. fasthttp does
// not carry a standard request context, so we start from Background with the
// per-request deadline applied.
func requestContext(_ *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func parseBody(ctx *fasthttp.RequestCtx, target any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return errors.New("request body is empty")
	}

	return json.Unmarshal(body, target)
}

func pathParamUUID(ctx *fasthttp.RequestCtx, key string) (uuid.UUID, error) {
	val := ctx.UserValue(key)
	if val == nil {
		return uuid.Nil, fmt.Errorf("%s is required", key)
	}

	return uuid.Parse(fmt.Sprint(val))
}

// callerID returns the authenticated user id stored by the auth middleware.
func callerID(ctx *fasthttp.RequestCtx) (uuid.UUID, error) {
	id, ok := ctx.UserValue("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user on request")
	}

	return id, nil
}
