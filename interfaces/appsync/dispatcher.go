package appsync

import (
	"context"
	"fmt"
	"sync"

	pkgerrors "events-api/pkg/errors"
)

// ResolverFunc resolves one GraphQL field
type ResolverFunc func(ctx context.Context, event ResolverEvent) (interface{}, error)

// Middleware wraps a resolver. field is the registry key of the resolver
// being wrapped.
type Middleware func(field string, next ResolverFunc) ResolverFunc

// Dispatcher routes resolver events to the resolver registered for their
// parent type and field name
type Dispatcher struct {
	resolvers   map[string]ResolverFunc
	middlewares []Middleware
	mu          sync.RWMutex
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(middlewares ...Middleware) *Dispatcher {
	return &Dispatcher{
		resolvers:   make(map[string]ResolverFunc),
		middlewares: middlewares,
	}
}

// Register registers a resolver for typeName.fieldName. Middleware is
// applied at registration, first middleware outermost.
func (d *Dispatcher) Register(typeName, fieldName string, fn ResolverFunc) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := resolverKey(typeName, fieldName)
	if _, exists := d.resolvers[key]; exists {
		return fmt.Errorf("resolver already registered for %s", key)
	}

	for i := len(d.middlewares) - 1; i >= 0; i-- {
		fn = d.middlewares[i](key, fn)
	}
	d.resolvers[key] = fn
	return nil
}

// Fields returns the registered resolver keys
func (d *Dispatcher) Fields() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	keys := make([]string, 0, len(d.resolvers))
	for k := range d.resolvers {
		keys = append(keys, k)
	}
	return keys
}

// Resolve dispatches event to its resolver
func (d *Dispatcher) Resolve(ctx context.Context, event ResolverEvent) (interface{}, error) {
	d.mu.RLock()
	fn, exists := d.resolvers[event.Key()]
	d.mu.RUnlock()

	if !exists {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("no resolver registered for %s", event.Key()))
	}

	return fn(ctx, event)
}
