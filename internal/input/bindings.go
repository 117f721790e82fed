package input

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

type bindingMap map[string][]Source

// Table maps action names to their input sources.
//
// The map is never mutated in place: Bind and Unbind build a new map and
// publish it with a single pointer swap, so a reader on another goroutine
// sees either the old source list or the new one, never a mix.
type Table struct {
	mu      sync.Mutex // serializes writers
	current atomic.Pointer[bindingMap]
}

// NewTable creates an empty binding table.
func NewTable() *Table {
	t := &Table{}
	empty := bindingMap{}
	t.current.Store(&empty)
	return t
}

func (t *Table) load() bindingMap {
	return *t.current.Load()
}

// Bind replaces the sources of action name. Every source is validated first;
// on error the table is left unchanged.
func (t *Table) Bind(name string, sources ...Source) error {
	list, err := checkBinding(name, sources)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.clone(1)
	next[name] = list
	t.current.Store(&next)
	return nil
}

// BindAll validates every binding in m and applies them in one swap.
// If any binding is invalid nothing is applied.
func (t *Table) BindAll(m map[string][]Source) error {
	checked := make(bindingMap, len(m))
	for name, sources := range m {
		list, err := checkBinding(name, sources)
		if err != nil {
			return err
		}
		checked[name] = list
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.clone(len(checked))
	for name, list := range checked {
		next[name] = list
	}
	t.current.Store(&next)
	return nil
}

// Unbind removes action name. Unbinding an unknown name is a no-op.
func (t *Table) Unbind(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.load()[name]; !ok {
		return
	}
	next := t.clone(0)
	delete(next, name)
	t.current.Store(&next)
}

// Lookup returns a copy of the sources bound to name.
func (t *Table) Lookup(name string) ([]Source, bool) {
	list, ok := t.load()[name]
	if !ok {
		return nil, false
	}
	out := make([]Source, len(list))
	copy(out, list)
	return out, true
}

// sources returns the bound list without copying; callers must not modify it.
func (t *Table) sources(name string) []Source {
	return t.load()[name]
}

// Actions returns the bound action names in sorted order.
func (t *Table) Actions() []string {
	m := t.load()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound actions.
func (t *Table) Len() int {
	return len(t.load())
}

func (t *Table) clone(extra int) bindingMap {
	cur := t.load()
	next := make(bindingMap, len(cur)+extra)
	for k, v := range cur {
		next[k] = v
	}
	return next
}

func checkBinding(name string, sources []Source) ([]Source, error) {
	if name == "" {
		return nil, ErrEmptyAction
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("bind %q: %w", name, ErrNoSources)
	}
	for i, src := range sources {
		if src == nil {
			return nil, fmt.Errorf("bind %q: source %d: %w: nil", name, i, ErrInvalidSource)
		}
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("bind %q: source %d: %w", name, i, err)
		}
	}
	list := make([]Source, len(sources))
	copy(list, sources)
	return list, nil
}
