package handlers

import (
	"context"
	"net/http"

	"events-api/interfaces/appsync"
	"events-api/interfaces/http/rest/middleware"
	"events-api/pkg/common"
	pkgerrors "events-api/pkg/errors"

	"go.uber.org/zap"
)

// maxBodyBytes bounds a resolver event body
const maxBodyBytes = 1 << 20

// Resolver resolves a single AppSync resolver event
type Resolver interface {
	Resolve(ctx context.Context, event appsync.ResolverEvent) (interface{}, error)
}

// ResolverHandler serves AppSync resolver events over plain HTTP so the
// resolvers can be exercised without AppSync in front of them
type ResolverHandler struct {
	resolver  Resolver
	responder *ErrorResponder
	logger    *zap.Logger
}

// NewResolverHandler creates a new resolver handler
func NewResolverHandler(resolver Resolver, responder *ErrorResponder, logger *zap.Logger) *ResolverHandler {
	return &ResolverHandler{
		resolver:  resolver,
		responder: responder,
		logger:    logger,
	}
}

// Resolve handles POST /graphql. The body is a resolver event as AppSync
// would send it to a direct Lambda resolver.
func (h *ResolverHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var event appsync.ResolverEvent
	if err := common.ParseJSONBody(r, &event, maxBodyBytes); err != nil {
		h.responder.Respond(w, r, "", pkgerrors.NewValidationError("invalid resolver event: "+err.Error()))
		return
	}

	if event.Identity == nil {
		if username, ok := middleware.GetUsername(r.Context()); ok {
			event.Identity = &appsync.Identity{Username: username}
		}
	}

	result, err := h.resolver.Resolve(r.Context(), event)
	if err != nil {
		h.responder.Respond(w, r, event.Info.FieldName, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
