package appsync

import (
	"context"

	"events-api/application/commands"
	cmdhandlers "events-api/application/commands/handlers"
	"events-api/application/queries"
	queryhandlers "events-api/application/queries/handlers"
)

// Resolvers binds the GraphQL fields of the events API to their handlers
type Resolvers struct {
	deleteEvents *cmdhandlers.DeleteEventsHandler
	updateEvent  *cmdhandlers.UpdateEventHandler
	addEvent     *cmdhandlers.AddEventHandler
	getEvents    *queryhandlers.GetEventsHandler
}

// NewResolvers creates the resolver set
func NewResolvers(
	deleteEvents *cmdhandlers.DeleteEventsHandler,
	updateEvent *cmdhandlers.UpdateEventHandler,
	addEvent *cmdhandlers.AddEventHandler,
	getEvents *queryhandlers.GetEventsHandler,
) *Resolvers {
	return &Resolvers{
		deleteEvents: deleteEvents,
		updateEvent:  updateEvent,
		addEvent:     addEvent,
		getEvents:    getEvents,
	}
}

// Register registers every field on d
func (r *Resolvers) Register(d *Dispatcher) error {
	registrations := []struct {
		typeName  string
		fieldName string
		fn        ResolverFunc
	}{
		{"Mutation", "deleteEvents", r.DeleteEvents},
		{"Mutation", "updateEvent", r.UpdateEvent},
		{"Mutation", "addEvent", r.AddEvent},
		{"Query", "getEvents", r.GetEvents},
	}

	for _, reg := range registrations {
		if err := d.Register(reg.typeName, reg.fieldName, reg.fn); err != nil {
			return err
		}
	}
	return nil
}

// DeleteEvents resolves Mutation.deleteEvents(eventIds: [String!]!)
func (r *Resolvers) DeleteEvents(ctx context.Context, event ResolverEvent) (interface{}, error) {
	var cmd commands.DeleteEventsCommand
	if err := event.DecodeArguments(&cmd); err != nil {
		return nil, err
	}
	return r.deleteEvents.Handle(ctx, cmd)
}

// UpdateEvent resolves Mutation.updateEvent. Every argument other than
// eventId is a field to set.
func (r *Resolvers) UpdateEvent(ctx context.Context, event ResolverEvent) (interface{}, error) {
	return r.updateEvent.Handle(ctx, commands.NewUpdateEventCommand(event.Arguments))
}

// AddEvent resolves Mutation.addEvent
func (r *Resolvers) AddEvent(ctx context.Context, event ResolverEvent) (interface{}, error) {
	attributes := make(map[string]interface{}, len(event.Arguments))
	for k, v := range event.Arguments {
		attributes[k] = v
	}

	return r.addEvent.Handle(ctx, commands.AddEventCommand{
		Attributes: attributes,
		CreatedBy:  event.Username(),
	})
}

// GetEvents resolves Query.getEvents
func (r *Resolvers) GetEvents(ctx context.Context, event ResolverEvent) (interface{}, error) {
	return r.getEvents.Handle(ctx, queries.GetEventsQuery{})
}
