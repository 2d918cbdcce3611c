package appsync

import (
	"encoding/json"
	"fmt"

	pkgerrors "events-api/pkg/errors"
)

// ResolverEvent is the payload AppSync sends to a direct Lambda resolver
type ResolverEvent struct {
	Arguments map[string]interface{} `json:"arguments"`
	Identity  *Identity              `json:"identity,omitempty"`
	Source    map[string]interface{} `json:"source,omitempty"`
	Info      ResolverInfo           `json:"info"`
}

// ResolverInfo names the GraphQL field being resolved
type ResolverInfo struct {
	ParentTypeName   string                 `json:"parentTypeName"`
	FieldName        string                 `json:"fieldName"`
	Variables        map[string]interface{} `json:"variables,omitempty"`
	SelectionSetList []string               `json:"selectionSetList,omitempty"`
}

// Identity is the caller identity for Cognito and IAM authorized requests
type Identity struct {
	Sub      string   `json:"sub,omitempty"`
	Username string   `json:"username,omitempty"`
	Groups   []string `json:"groups,omitempty"`
	UserArn  string   `json:"userArn,omitempty"`
}

// Key returns the registry key, e.g. "Mutation.updateEvent"
func (e ResolverEvent) Key() string {
	return resolverKey(e.Info.ParentTypeName, e.Info.FieldName)
}

// Username returns the caller's username, or "" for anonymous callers
func (e ResolverEvent) Username() string {
	if e.Identity == nil {
		return ""
	}
	return e.Identity.Username
}

// DecodeArguments copies the resolver arguments into target via JSON
func (e ResolverEvent) DecodeArguments(target interface{}) error {
	raw, err := json.Marshal(e.Arguments)
	if err != nil {
		return pkgerrors.NewValidationError(fmt.Sprintf("unreadable arguments: %v", err))
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return pkgerrors.NewValidationError(fmt.Sprintf("invalid arguments for %s: %v", e.Key(), err))
	}
	return nil
}

func resolverKey(typeName, fieldName string) string {
	return typeName + "." + fieldName
}
