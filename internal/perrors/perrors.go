package perrors

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
)

type ErrCode struct {
	Code   string `json:"code"`
	Status int    `json:"status"`
}

// Register/login failures surface as 400 on the wire, matching the published
// API contract, even though conflict and invalid-credentials are distinct
// codes internally.
var (
	ErrCodeValidation         ErrCode = ErrCode{"validation_error", http.StatusBadRequest}
	ErrCodeConflict                   = ErrCode{"conflict", http.StatusBadRequest}
	ErrCodeInvalidCredentials         = ErrCode{"invalid_credentials", http.StatusBadRequest}
	ErrCodeUnauthorized               = ErrCode{"unauthorized", http.StatusUnauthorized}
	ErrCodeNotFound                   = ErrCode{"not_found", http.StatusNotFound}
	ErrCodeNotImplemented             = ErrCode{"not_implemented", http.StatusNotImplemented}
	ErrCodeInternalServer             = ErrCode{"internal_server_error", http.StatusInternalServerError}
)

type Err struct {
	Message    string
	Err        string
	Code       ErrCode
	Stacktrace []string
}

func (e Err) Error() string {
	return e.Err
}

func (e Err) HttpStatus() int {
	return e.Code.Status
}

func (e Err) Print(ctx context.Context) {
	slog.ErrorContext(ctx, e.Message,
		slog.String("code", e.Code.Code),
		slog.Any("error", e.Error()),
		slog.Any("stacktrace", e.Stacktrace),
	)
}

func New(code ErrCode, msg string, err error) error {
	pc := make([]uintptr, 20)
	count := runtime.Callers(1, pc)
	frames := runtime.CallersFrames(pc[:count])

	var stacktrace []string
	for frame, hasMore := frames.Next(); hasMore; frame, hasMore = frames.Next() {
		stacktrace = append(stacktrace, fmt.Sprintf("%s:%d", frame.File, frame.Line))
	}

	errString := "error missing"
	if err != nil {
		errString = err.Error()
	}

	return Err{
		Code:       code,
		Message:    msg,
		Err:        errString,
		Stacktrace: stacktrace,
	}
}

func NewErrValidation(msg string, err error) error {
	return New(ErrCodeValidation, msg, err)
}

func NewErrInternalServerError(msg string, err error) error {
	return New(ErrCodeInternalServer, msg, err)
}
