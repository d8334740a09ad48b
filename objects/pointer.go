/*
File    : lux/objects/pointer.go
Project : Lux language interpreter
*/
package objects

import "sync"

// Pointer is a shared, interior-mutable value cell created by the &
// operator. The cell holds a snapshot of the operand at capture time;
// reads return a snapshot clone of the current contents. The cell
// carries its own mutex so holders on different join threads never
// race. Lifetime is that of the longest holder.
type Pointer struct {
	mu   sync.Mutex
	cell LuxObject
}

// NewPointer creates a pointer cell around a snapshot of value.
func NewPointer(value LuxObject) *Pointer {
	return &Pointer{cell: Clone(value)}
}

// Load returns a snapshot clone of the cell's current contents.
func (p *Pointer) Load() LuxObject {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Clone(p.cell)
}

// Store replaces the cell's contents with a snapshot of value.
func (p *Pointer) Store(value LuxObject) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cell = Clone(value)
}

// GetType returns the type of the Pointer object
func (p *Pointer) GetType() LuxType { return PointerType }

// ToString returns "<pointer to TYPE>"
func (p *Pointer) ToString() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return "<pointer to " + TypeName(p.cell) + ">"
}

// ToObject returns a detailed representation
func (p *Pointer) ToObject() string { return p.ToString() }
