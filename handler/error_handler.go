package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fezwebco/getintouch/pkg/binder"
	"github.com/fezwebco/getintouch/pkg/logger"
	"github.com/fezwebco/getintouch/pkg/validator"
)

// ErrorInfo is what a client is told about an error and how loudly it is logged.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
	LogLevel   slog.Level
}

func logLevelFor(status int) slog.Level {
	if status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps an error to the response a client may see.
// Anything unrecognised becomes a generic 500 so internals never leak.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Message:    ErrInternalServerError.Message,
	}

	var (
		httpErr HTTPError
		valErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &valErrs):
		info.StatusCode = ErrUnprocessableEntity.Code
		info.Message = ErrUnprocessableEntity.Message
		info.Fields = valErrs.Map()
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Message
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info.StatusCode = ErrUnsupportedMediaType.Code
		info.Message = ErrUnsupportedMediaType.Message
	case errors.Is(err, binder.ErrBodyTooLarge):
		info.StatusCode = ErrRequestEntityTooLarge.Code
		info.Message = ErrRequestEntityTooLarge.Message
	case errors.Is(err, binder.ErrFailedToParseJSON):
		info.StatusCode = ErrBadRequest.Code
		info.Message = ErrBadRequest.Message
	}

	info.LogLevel = logLevelFor(info.StatusCode)
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler logs client errors at WARN and server errors at ERROR,
// then writes an ErrorBody. The logged error keeps its full chain; the body
// only carries the classified message.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		resp := JSONError(info.StatusCode, info.Message, info.Fields)
		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
