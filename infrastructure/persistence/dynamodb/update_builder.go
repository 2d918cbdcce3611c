package dynamodb

import (
	"strings"

	"events-api/domain/core/valueobjects"
	pkgerrors "events-api/pkg/errors"
)

const (
	setKeyword         = "set"
	namePlaceholder    = "#"
	valuePlaceholder   = ":"
	assignmentJoiner   = ", "
	placeholderSubRune = '_'
)

// UpdateExpressionSpec is a rendered SET update expression. The clause never
// contains a raw attribute name or value; both are reached through the
// bindings so reserved words are safe to use as attribute names.
type UpdateExpressionSpec struct {
	Clause        string
	NameBindings  map[string]string
	ValueBindings map[string]interface{}
}

// MergeNames adds extra name placeholders, e.g. from a condition expression.
// A token already bound to a different name is a collision.
func (s *UpdateExpressionSpec) MergeNames(names map[string]string) error {
	for token, name := range names {
		if existing, ok := s.NameBindings[token]; ok && existing != name {
			return pkgerrors.NewNameCollisionError(token, existing, name)
		}
		s.NameBindings[token] = name
	}
	return nil
}

// ExistsCondition binds name with the same token scheme as the SET terms and
// returns attribute_exists(#token). Binding a name that is also being set
// reuses its token.
func (s *UpdateExpressionSpec) ExistsCondition(name string) (string, error) {
	token := namePlaceholder + placeholderSuffix(name)
	if err := s.MergeNames(map[string]string{token: name}); err != nil {
		return "", err
	}
	return "attribute_exists(" + token + ")", nil
}

type assignment struct {
	nameToken  string
	valueToken string
}

// updateExpressionBuilder accumulates SET assignments and renders them once.
type updateExpressionBuilder struct {
	terms  []assignment
	names  map[string]string
	values map[string]interface{}
}

func newUpdateExpressionBuilder(capacity int) *updateExpressionBuilder {
	return &updateExpressionBuilder{
		terms:  make([]assignment, 0, capacity),
		names:  make(map[string]string, capacity),
		values: make(map[string]interface{}, capacity),
	}
}

func (b *updateExpressionBuilder) set(name string, value interface{}) error {
	if name == "" {
		return pkgerrors.NewValidationError("field name cannot be empty")
	}

	suffix := placeholderSuffix(name)
	nameToken := namePlaceholder + suffix
	valueToken := valuePlaceholder + suffix

	if existing, ok := b.names[nameToken]; ok {
		return pkgerrors.NewNameCollisionError(nameToken, existing, name)
	}

	b.names[nameToken] = name
	b.values[valueToken] = value
	b.terms = append(b.terms, assignment{nameToken: nameToken, valueToken: valueToken})
	return nil
}

func (b *updateExpressionBuilder) build() (*UpdateExpressionSpec, error) {
	if len(b.terms) == 0 {
		return nil, pkgerrors.NewValidationError("update requires at least one field")
	}

	rendered := make([]string, len(b.terms))
	for i, t := range b.terms {
		rendered[i] = t.nameToken + " = " + t.valueToken
	}

	return &UpdateExpressionSpec{
		Clause:        setKeyword + " " + strings.Join(rendered, assignmentJoiner),
		NameBindings:  b.names,
		ValueBindings: b.values,
	}, nil
}

// BuildUpdateExpression renders fields as a SET update expression.
//
// Each field k becomes the term "#k = :k". Characters outside [A-Za-z0-9_]
// are replaced with '_' when deriving tokens; two names that derive the same
// token are rejected with a name collision error. An empty field set is a
// validation error.
func BuildUpdateExpression(fields *valueobjects.FieldUpdate) (*UpdateExpressionSpec, error) {
	b := newUpdateExpressionBuilder(fields.Len())

	var err error
	fields.Each(func(name string, value interface{}) {
		if err != nil {
			return
		}
		err = b.set(name, value)
	})
	if err != nil {
		return nil, err
	}

	return b.build()
}

// placeholderSuffix maps an attribute name onto the placeholder alphabet
func placeholderSuffix(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return placeholderSubRune
		}
	}, name)
}
