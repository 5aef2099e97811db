package scope

import (
	"maps"
	"slices"
	"sync"

	"github.com/ardnew/svexpr/value"
)

// Resolver looks up the storage cell bound to a name.
type Resolver interface {
	Lookup(name string) (Cell, bool)
}

// table is the value storage shared by every scope of one chain.
type table struct {
	mu     sync.RWMutex
	values []value.Value
}

// Cell is a handle to one binding. The zero Cell is unbound.
type Cell struct {
	t *table
	i int
}

// Valid reports whether c refers to a binding.
func (c Cell) Valid() bool { return c.t != nil }

// Load returns a copy of the bound value marked as an lvalue.
func (c Cell) Load() value.Value {
	if c.t == nil {
		return value.Value{}
	}

	c.t.mu.RLock()
	defer c.t.mu.RUnlock()

	return c.t.values[c.i].AsLvalue()
}

// Store replaces the bound value with v.
func (c Cell) Store(v value.Value) {
	if c.t == nil {
		return
	}

	c.t.mu.Lock()
	defer c.t.mu.Unlock()

	c.t.values[c.i] = v.AsRvalue()
}

// Scope is one lexical level of name bindings.
//
// A nil *Scope is an empty scope: Lookup finds nothing and Names is empty.
type Scope struct {
	parent *Scope
	table  *table
	names  map[string]int
}

// New returns an empty scope enclosed by parent, which may be nil.
func New(parent *Scope) *Scope {
	t := &table{}
	if parent != nil {
		t = parent.table
	}

	return &Scope{parent: parent, table: t, names: make(map[string]int)}
}

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}

	return s.parent
}

// Set binds name to v in s, replacing an existing local binding and
// shadowing any binding of the same name in an enclosing scope.
func (s *Scope) Set(name string, v value.Value) Cell {
	s.table.mu.Lock()
	defer s.table.mu.Unlock()

	i, ok := s.names[name]
	if !ok {
		i = len(s.table.values)
		s.table.values = append(s.table.values, value.Value{})
		s.names[name] = i
	}

	s.table.values[i] = v.AsRvalue()

	return Cell{t: s.table, i: i}
}

// Lookup returns the cell bound to name in s or the nearest enclosing scope
// that binds it.
func (s *Scope) Lookup(name string) (Cell, bool) {
	for ; s != nil; s = s.parent {
		s.table.mu.RLock()
		i, ok := s.names[name]
		s.table.mu.RUnlock()

		if ok {
			return Cell{t: s.table, i: i}, true
		}
	}

	return Cell{}, false
}

// Names returns every name visible from s in sorted order.
func (s *Scope) Names() []string {
	seen := make(map[string]struct{})

	for ; s != nil; s = s.parent {
		s.table.mu.RLock()
		for name := range s.names {
			seen[name] = struct{}{}
		}
		s.table.mu.RUnlock()
	}

	return slices.Sorted(maps.Keys(seen))
}

// Values returns a copy of every valid binding visible from s, with inner
// bindings shadowing outer ones.
func (s *Scope) Values() map[string]value.Value {
	out := make(map[string]value.Value)

	for _, name := range s.Names() {
		c, _ := s.Lookup(name)
		if v := c.Load(); v.IsValid() {
			out[name] = v.AsRvalue()
		}
	}

	return out
}

// Snapshot returns a deep copy of the chain ending at s. The copy has its
// own value table, so stores through its cells are invisible to s.
func (s *Scope) Snapshot() *Scope {
	if s == nil {
		return nil
	}

	return s.snapshot(&table{})
}

func (s *Scope) snapshot(t *table) *Scope {
	var parent *Scope
	if s.parent != nil {
		parent = s.parent.snapshot(t)
	}

	c := &Scope{parent: parent, table: t, names: make(map[string]int, len(s.names))}

	s.table.mu.RLock()
	defer s.table.mu.RUnlock()

	for name, i := range s.names {
		c.names[name] = len(t.values)
		t.values = append(t.values, s.table.values[i])
	}

	return c
}
