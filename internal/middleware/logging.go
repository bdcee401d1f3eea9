package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs one line per
// RPC with the tab session and split mode it ran against. Connect errors
// log at Warn with their code; anything else is unexpected and logs at Error.
// Place it after RequireSession so the session is on the context.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("session_id", GetSessionID(ctx)),
				slog.String("mode", string(GetMode(ctx))),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			level, msg := slog.LevelInfo, "RPC ok"

			var connectErr *connect.Error
			switch {
			case errors.As(err, &connectErr):
				level, msg = slog.LevelWarn, "RPC rejected"
				attrs = append(attrs,
					slog.String("code", connectErr.Code().String()),
					slog.String("error", connectErr.Message()),
				)
			case err != nil:
				level, msg = slog.LevelError, "RPC failed"
				attrs = append(attrs, slog.Any("error", err))
			}

			slog.LogAttrs(ctx, level, msg, attrs...)
			return resp, err
		}
	}
}
