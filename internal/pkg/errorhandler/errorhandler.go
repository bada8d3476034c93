package errorhandler

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hotelfinder/hotelfinder-api/internal/middleware"
)

// Log records a request-scoped failure with its request ID before the
// handler writes its error response.
func Log(ctx context.Context, code string, err error) {
	log.Error().
		Str("request_id", middleware.GetRequestID(ctx)).
		Str("error_code", code).
		Err(err).
		Msg("Request error")
}

// LogStorageError logs database failures with the operation that issued them.
func LogStorageError(ctx context.Context, operation string, err error) {
	log.Error().
		Str("request_id", middleware.GetRequestID(ctx)).
		Str("operation", operation).
		Err(err).
		Msg("Storage error")
}

// LogExternalServiceError logs errors from external service calls
func LogExternalServiceError(ctx context.Context, service, endpoint string, err error) {
	log.Error().
		Str("request_id", middleware.GetRequestID(ctx)).
		Str("external_service", service).
		Str("endpoint", endpoint).
		Err(err).
		Msg("External service error")
}
