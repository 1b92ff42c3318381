// Package context carries per-request values from the delivery layer down to the
// use cases, the GORM logger and the event publishers: the request id and a
// logger already tagged with it.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from incoming requests, echoed on responses and
// forwarded on pushed events.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey stores the id on echo.Context for the response envelope.
const echoRequestIDKey = "request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// Bind stores requestID on ctx together with a child of base that logs it as request_id.
func Bind(ctx context.Context, requestID string, base *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	if base != nil {
		ctx = context.WithValue(ctx, loggerKey, base.With(slog.String("request_id", requestID)))
	}

	return ctx
}

// RequestID returns the id bound to ctx, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// Logger returns the request-scoped logger bound to ctx.
// Background work has none and gets fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetEchoRequestID records the id on the echo context.
func SetEchoRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// EchoRequestID returns the id recorded by the request id middleware.
// Responses written before the middleware ran get a fresh uuid so meta is never empty.
func EchoRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}
