package appsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	pkgerrors "events-api/pkg/errors"
	"events-api/pkg/observability"

	"github.com/aws/aws-lambda-go/lambda/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func event(typeName, fieldName string, args map[string]interface{}) ResolverEvent {
	return ResolverEvent{
		Arguments: args,
		Info:      ResolverInfo{ParentTypeName: typeName, FieldName: fieldName},
	}
}

func TestResolverEvent_Unmarshal(t *testing.T) {
	payload := `{
		"arguments": {"eventIds": ["e1", "e2"]},
		"identity": {"sub": "abc", "username": "racer-1", "groups": ["admin"]},
		"source": null,
		"request": {"headers": {}},
		"info": {"parentTypeName": "Mutation", "fieldName": "deleteEvents", "variables": {}}
	}`

	var e ResolverEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &e))

	assert.Equal(t, "Mutation.deleteEvents", e.Key())
	assert.Equal(t, "racer-1", e.Username())

	var args struct {
		EventIDs []string `json:"eventIds"`
	}
	require.NoError(t, e.DecodeArguments(&args))
	assert.Equal(t, []string{"e1", "e2"}, args.EventIDs)
}

func TestResolverEvent_DecodeArguments_WrongShape(t *testing.T) {
	e := event("Mutation", "deleteEvents", map[string]interface{}{"eventIds": "e1"})

	var args struct {
		EventIDs []string `json:"eventIds"`
	}
	err := e.DecodeArguments(&args)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestResolverEvent_AnonymousUsername(t *testing.T) {
	assert.Equal(t, "", ResolverEvent{}.Username())
}

func TestDispatcher_Resolve(t *testing.T) {
	d := NewDispatcher()
	require.NoError(t, d.Register("Query", "getEvents", func(ctx context.Context, e ResolverEvent) (interface{}, error) {
		return "ok", nil
	}))

	result, err := d.Resolve(context.Background(), event("Query", "getEvents", nil))

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, []string{"Query.getEvents"}, d.Fields())
}

func TestDispatcher_UnknownField(t *testing.T) {
	d := NewDispatcher()

	_, err := d.Resolve(context.Background(), event("Mutation", "dropTable", nil))

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Mutation.dropTable")
}

func TestDispatcher_DuplicateRegistration(t *testing.T) {
	d := NewDispatcher()
	fn := func(ctx context.Context, e ResolverEvent) (interface{}, error) { return nil, nil }

	require.NoError(t, d.Register("Query", "getEvents", fn))
	assert.Error(t, d.Register("Query", "getEvents", fn))
}

func TestDispatcher_MiddlewareOrder(t *testing.T) {
	var calls []string
	tag := func(name string) Middleware {
		return func(field string, next ResolverFunc) ResolverFunc {
			return func(ctx context.Context, e ResolverEvent) (interface{}, error) {
				calls = append(calls, name+":"+field)
				return next(ctx, e)
			}
		}
	}

	d := NewDispatcher(tag("outer"), tag("inner"))
	require.NoError(t, d.Register("Query", "getEvents", func(ctx context.Context, e ResolverEvent) (interface{}, error) {
		calls = append(calls, "resolver")
		return nil, nil
	}))

	_, err := d.Resolve(context.Background(), event("Query", "getEvents", nil))

	require.NoError(t, err)
	assert.Equal(t, []string{"outer:Query.getEvents", "inner:Query.getEvents", "resolver"}, calls)
}

func TestDispatcher_ObservabilityMiddlewarePassesThrough(t *testing.T) {
	boom := pkgerrors.NewNotFoundError("event e1")
	d := NewDispatcher(
		Tracing(observability.NewTracer("events-api", false)),
		Logging(zap.NewNop()),
		Metrics(observability.NewMetrics("EventsAPI/test", nil, zap.NewNop())),
	)
	require.NoError(t, d.Register("Mutation", "updateEvent", func(ctx context.Context, e ResolverEvent) (interface{}, error) {
		return nil, boom
	}))
	require.NoError(t, d.Register("Query", "getEvents", func(ctx context.Context, e ResolverEvent) (interface{}, error) {
		return []string{"e1"}, nil
	}))

	_, err := d.Resolve(context.Background(), event("Mutation", "updateEvent", nil))
	assert.Equal(t, boom, err)

	result, err := d.Resolve(context.Background(), event("Query", "getEvents", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, result)
}

func TestInvokeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType string
		wantMsg  string
	}{
		{
			name:     "validation error",
			err:      pkgerrors.NewValidationError("update requires at least one field"),
			wantType: "VALIDATION",
			wantMsg:  "update requires at least one field",
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("failed to update event: %w", pkgerrors.NewNotFoundError("event e9")),
			wantType: "NOT_FOUND",
			wantMsg:  "event e9 not found",
		},
		{
			name:     "untyped error",
			err:      errors.New("connection reset"),
			wantType: "INTERNAL",
			wantMsg:  "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InvokeError(tt.err)

			var invokeErr messages.InvokeResponse_Error
			require.True(t, errors.As(err, &invokeErr))
			assert.Equal(t, tt.wantType, invokeErr.Type)
			assert.Equal(t, tt.wantMsg, invokeErr.Message)
		})
	}

	assert.NoError(t, InvokeError(nil))
}

