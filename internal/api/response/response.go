package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	json "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/cloudphoenix/phoenix-api/internal/perrors"
)

// Msg is the body of every non-success response and of confirmation-only
// successes such as delete.
type Msg struct {
	Msg string `json:"msg"`
}

// JSON sets the content type and writes the payload as the response body.
// Success responses carry the payload directly, without an envelope.
func JSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	ctx.Response.Header.Set("content-type", "application/json")
	ctx.SetStatusCode(status)

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Unable to json encode response", slog.Any("error", err))
		ctx.SetStatusCode(http.StatusInternalServerError)
		return
	}

	ctx.SetBody(body)
}

// OK writes a 200 response with the given payload.
func OK(ctx *fasthttp.RequestCtx, payload any) {
	JSON(ctx, http.StatusOK, payload)
}

// Error maps an error to its HTTP status and writes a {msg} body. The
// wrapped cause and stacktrace are logged server-side and never sent to the
// client.
func Error(ctx *fasthttp.RequestCtx, stdCtx context.Context, err error) {
	var perr perrors.Err
	if !errors.As(err, &perr) {
		perr = perrors.NewErrInternalServerError("Server error", err).(perrors.Err)
	}

	perr.Print(stdCtx)
	JSON(ctx, perr.HttpStatus(), Msg{Msg: perr.Message})
}
