/*
File    : lux/objects/table.go
Project : Lux language interpreter
*/
package objects

import "strings"

// Table is the Lua-style associative value: a named-field map, a dense
// positional array, and an optional metatable reference. Positional keys
// are 1-based on the surface but stored 0-based in the array. String
// keys never collide with positional keys because they live in separate
// storage.
//
// Tables are reference values: every holder of a *Table sees the same
// storage, which is what lets `t.x = 7` mutate the stored table. Join
// threads receive deep copies (see Clone) so mutations stay isolated.
type Table struct {
	Fields    map[string]LuxObject // named fields
	Array     []LuxObject          // positional entries, 0-based internally
	Metatable *Table               // optional metatable back-reference
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		Fields: make(map[string]LuxObject),
		Array:  make([]LuxObject, 0),
	}
}

// Get looks a key up. Positive integer keys index the positional array
// (1-based); string keys index the field map. Any other key, and any
// missing key, yields (nil, false).
func (t *Table) Get(key LuxObject) (LuxObject, bool) {
	switch k := key.(type) {
	case *Integer:
		if k.Value > 0 {
			index := int(k.Value - 1)
			if index < len(t.Array) {
				return t.Array[index], true
			}
		}
	case *String:
		if value, ok := t.Fields[k.Value]; ok {
			return value, true
		}
	}
	return nil, false
}

// Set stores a value under a key. Setting positional index N grows the
// array to length N, filling new slots with Nil. Keys that are neither
// positive integers nor strings are ignored.
func (t *Table) Set(key, value LuxObject) {
	switch k := key.(type) {
	case *Integer:
		if k.Value > 0 {
			index := int(k.Value - 1)
			for index >= len(t.Array) {
				t.Array = append(t.Array, NIL)
			}
			t.Array[index] = value
		}
	case *String:
		t.Fields[k.Value] = value
	}
}

// SetField stores a value under a named field.
func (t *Table) SetField(name string, value LuxObject) {
	t.Fields[name] = value
}

// Len returns the length of the positional array. Named fields do not
// contribute.
func (t *Table) Len() int {
	return len(t.Array)
}

// GetType returns the type of the Table object
func (t *Table) GetType() LuxType { return TableType }

// ToString renders the table: "{}" when empty, "[a, b]" when it has
// only positional entries, "{...}" otherwise.
func (t *Table) ToString() string {
	if len(t.Array) == 0 && len(t.Fields) == 0 {
		return "{}"
	}
	if len(t.Fields) == 0 {
		parts := make([]string, 0, len(t.Array))
		for _, v := range t.Array {
			parts = append(parts, v.ToString())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "{...}"
}

// ToObject returns a detailed representation
func (t *Table) ToObject() string { return "<table " + t.ToString() + ">" }
