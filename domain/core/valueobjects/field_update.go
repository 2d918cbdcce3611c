package valueobjects

import "sort"

// FieldUpdate is an ordered set of attribute assignments for a partial update.
// Iteration order is the order in which fields were first set, so placeholder
// ordering in a rendered expression is reproducible.
type FieldUpdate struct {
	names  []string
	values map[string]interface{}
}

// NewFieldUpdate creates an empty FieldUpdate
func NewFieldUpdate() *FieldUpdate {
	return &FieldUpdate{values: make(map[string]interface{})}
}

// NewFieldUpdateFromMap builds a FieldUpdate from an unordered map. Keys are
// taken in lexical order.
func NewFieldUpdateFromMap(fields map[string]interface{}) *FieldUpdate {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	fu := NewFieldUpdate()
	for _, name := range names {
		fu.Set(name, fields[name])
	}
	return fu
}

// Set assigns value to name. Setting an existing name replaces its value and
// keeps its original position.
func (f *FieldUpdate) Set(name string, value interface{}) *FieldUpdate {
	if f.values == nil {
		f.values = make(map[string]interface{})
	}
	if _, exists := f.values[name]; !exists {
		f.names = append(f.names, name)
	}
	f.values[name] = value
	return f
}

// Get returns the value assigned to name
func (f *FieldUpdate) Get(name string) (interface{}, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f.values[name]
	return v, ok
}

// Len returns the number of fields
func (f *FieldUpdate) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

// IsEmpty reports whether no fields are set
func (f *FieldUpdate) IsEmpty() bool {
	return f.Len() == 0
}

// Names returns field names in iteration order
func (f *FieldUpdate) Names() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Each calls fn for every field in iteration order
func (f *FieldUpdate) Each(fn func(name string, value interface{})) {
	if f == nil {
		return
	}
	for _, name := range f.names {
		fn(name, f.values[name])
	}
}

// ToMap returns a copy of the assignments as a plain map
func (f *FieldUpdate) ToMap() map[string]interface{} {
	out := make(map[string]interface{}, f.Len())
	f.Each(func(name string, value interface{}) {
		out[name] = value
	})
	return out
}
