package config

// DomainConfig holds the configurable rules for event records
type DomainConfig struct {
	// UpdatableFields is the allow-list of attributes a partial update may set
	UpdatableFields []string

	// ProtectedFields can never be written by a partial update, even if
	// they appear in UpdatableFields
	ProtectedFields []string

	// MaxEventsPerDelete bounds a single deleteEvents batch
	MaxEventsPerDelete int
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		UpdatableFields: []string{
			"eventName",
			"typeOfEvent",
			"eventDate",
			"countryCode",
			"fleetId",
			"raceConfig",
			"tracks",
			"landingPageConfig",
			"sponsor",
		},
		ProtectedFields: []string{
			"eventId",
			"createdAt",
			"createdBy",
			"links",
		},
		MaxEventsPerDelete: 100,
	}
}

// IsUpdatable reports whether name may be set by a partial update
func (c *DomainConfig) IsUpdatable(name string) bool {
	for _, p := range c.ProtectedFields {
		if p == name {
			return false
		}
	}
	for _, u := range c.UpdatableFields {
		if u == name {
			return true
		}
	}
	return false
}
