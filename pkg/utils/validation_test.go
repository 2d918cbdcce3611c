package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	ID   string   `validate:"required"`
	Tags []string `validate:"required,min=1,dive,required"`
	Kind string   `validate:"omitempty,oneof=race practice"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{name: "valid", input: sample{ID: "e1", Tags: []string{"a"}}},
		{name: "missing id", input: sample{Tags: []string{"a"}}, wantErr: "ID is required"},
		{name: "empty list", input: sample{ID: "e1", Tags: []string{}}, wantErr: "Tags must contain at least 1 entries"},
		{name: "empty element", input: sample{ID: "e1", Tags: []string{""}}, wantErr: "Tags[0] is required"},
		{name: "bad enum", input: sample{ID: "e1", Tags: []string{"a"}, Kind: "x"}, wantErr: "Kind must be one of: race practice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
