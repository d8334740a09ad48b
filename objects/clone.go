/*
File    : lux/objects/clone.go
Project : Lux language interpreter
*/
package objects

// Clone produces a snapshot copy of a value. Primitives are immutable
// and returned as-is. Tables are copied deeply, including their
// metatable chain, so a clone and its source never observe each other's
// mutations. Pointer cells are shared deliberately: the cell's own
// mutex mediates cross-thread access, and sharing is the point of the
// & operator. Function values are immutable and shared.
func Clone(obj LuxObject) LuxObject {
	switch v := obj.(type) {
	case *Table:
		return cloneTable(v)
	default:
		return obj
	}
}

// cloneTable deep-copies a table and its metatable.
func cloneTable(t *Table) *Table {
	if t == nil {
		return nil
	}
	clone := &Table{
		Fields: make(map[string]LuxObject, len(t.Fields)),
		Array:  make([]LuxObject, len(t.Array)),
	}
	for k, v := range t.Fields {
		clone.Fields[k] = Clone(v)
	}
	for i, v := range t.Array {
		clone.Array[i] = Clone(v)
	}
	clone.Metatable = cloneTable(t.Metatable)
	return clone
}
