package queries

// GetEventsQuery lists every event with its links attached
type GetEventsQuery struct{}

// Validate implements the query contract; the query takes no arguments
func (q GetEventsQuery) Validate() error {
	return nil
}
