package handlers

import (
	"encoding/json"
	"net/http"

	"events-api/interfaces/appsync"
	pkgerrors "events-api/pkg/errors"

	"github.com/aws/aws-lambda-go/lambda/messages"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ResolverError is one entry of a GraphQL errors list, shaped the way AppSync
// reports a failed direct Lambda resolver
type ResolverError struct {
	ErrorType string                 `json:"errorType"`
	Message   string                 `json:"message"`
	Path      []string               `json:"path,omitempty"`
	ErrorInfo map[string]interface{} `json:"errorInfo,omitempty"`
}

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	Errors    []ResolverError `json:"errors"`
	RequestID string          `json:"requestId,omitempty"`
}

// ErrorResponder writes resolver failures to HTTP clients
type ErrorResponder struct {
	logger *zap.Logger
	debug  bool
}

// NewErrorResponder creates a responder. With debug set, untyped errors expose
// their message instead of the generic internal one.
func NewErrorResponder(logger *zap.Logger, debug bool) *ErrorResponder {
	return &ErrorResponder{
		logger: logger,
		debug:  debug,
	}
}

// Respond writes err as the failure of the resolver field at path (empty when
// no field was resolved). The errorType and message are what the Lambda would
// hand back to AppSync for the same error.
func (e *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, path string, err error) {
	invokeErr, _ := appsync.InvokeError(err).(messages.InvokeResponse_Error)
	entry := ResolverError{
		ErrorType: invokeErr.Type,
		Message:   invokeErr.Message,
	}
	if path != "" {
		entry.Path = []string{path}
	}

	status := http.StatusInternalServerError
	if appErr := pkgerrors.GetAppError(err); appErr != nil {
		if appErr.HTTPStatus != 0 {
			status = appErr.HTTPStatus
		}
		entry.ErrorInfo = appErr.Details
	} else if e.debug {
		entry.Message = err.Error()
	}

	requestID := middleware.GetReqID(r.Context())
	e.log(r, entry, status, requestID, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{
		Errors:    []ResolverError{entry},
		RequestID: requestID,
	}); encErr != nil {
		e.logger.Error("Failed to encode error response", zap.Error(encErr))
	}
}

func (e *ErrorResponder) log(r *http.Request, entry ResolverError, status int, requestID string, err error) {
	fields := []zap.Field{
		zap.String("error_type", entry.ErrorType),
		zap.Strings("path", entry.Path),
		zap.String("method", r.Method),
		zap.Int("status", status),
		zap.String("request_id", requestID),
		zap.Error(err),
	}

	if status >= http.StatusInternalServerError {
		e.logger.Error("Resolver request failed", fields...)
		return
	}
	e.logger.Warn("Resolver request rejected", fields...)
}
