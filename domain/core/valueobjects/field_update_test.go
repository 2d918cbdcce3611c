package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUpdate_SetKeepsFirstPosition(t *testing.T) {
	fu := NewFieldUpdate().
		Set("eventName", "a").
		Set("fleetId", "f-1").
		Set("eventName", "b")

	assert.Equal(t, []string{"eventName", "fleetId"}, fu.Names())
	assert.Equal(t, 2, fu.Len())

	v, ok := fu.Get("eventName")
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestNewFieldUpdateFromMap_SortsNames(t *testing.T) {
	fu := NewFieldUpdateFromMap(map[string]interface{}{
		"tracks":    []interface{}{"t1"},
		"eventName": "Summit",
		"fleetId":   "f-1",
	})

	assert.Equal(t, []string{"eventName", "fleetId", "tracks"}, fu.Names())
}

func TestFieldUpdate_NamesIsACopy(t *testing.T) {
	fu := NewFieldUpdate().Set("a", 1)

	names := fu.Names()
	names[0] = "mutated"

	assert.Equal(t, []string{"a"}, fu.Names())
}

func TestFieldUpdate_Empty(t *testing.T) {
	var nilUpdate *FieldUpdate

	assert.True(t, nilUpdate.IsEmpty())
	assert.Equal(t, 0, nilUpdate.Len())
	assert.Nil(t, nilUpdate.Names())
	assert.Empty(t, nilUpdate.ToMap())

	_, ok := nilUpdate.Get("a")
	assert.False(t, ok)

	assert.True(t, NewFieldUpdate().IsEmpty())
	assert.True(t, NewFieldUpdateFromMap(nil).IsEmpty())
}

func TestFieldUpdate_ZeroValueIsUsable(t *testing.T) {
	var fu FieldUpdate
	fu.Set("a", 1)

	assert.Equal(t, map[string]interface{}{"a": 1}, fu.ToMap())
}

func TestFieldUpdate_Each(t *testing.T) {
	fu := NewFieldUpdate().Set("b", 2).Set("a", 1)

	var visited []string
	fu.Each(func(name string, value interface{}) {
		visited = append(visited, name)
	})

	assert.Equal(t, []string{"b", "a"}, visited)
}
