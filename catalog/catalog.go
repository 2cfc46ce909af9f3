package catalog

import (
	"sort"
)

// Column describes one column of a model's schema.
type Column struct {
	Name string
	Type string
}

// Catalog is a read-only snapshot of the external model registry: the
// set of known models and each model's ordered column list. It is an
// input to the engine, never mutated by it; a fresh registry arrives
// via Replace. Stale node references are treated as simply absent.
type Catalog struct {
	models map[string][]Column
}

// New creates a catalog from the registry's current model set. The
// input is copied so later mutation by the caller is invisible.
func New(models map[string][]Column) *Catalog {
	c := &Catalog{}
	c.Replace(models)
	return c
}

// Replace adopts a new registry snapshot wholesale.
func (c *Catalog) Replace(models map[string][]Column) {
	next := make(map[string][]Column, len(models))
	for name, cols := range models {
		next[name] = append([]Column(nil), cols...)
	}
	c.models = next
}

// Columns returns the model's ordered column list. Unknown models
// yield nil and false.
func (c *Catalog) Columns(model string) ([]Column, bool) {
	cols, ok := c.models[model]
	if !ok {
		return nil, false
	}
	return append([]Column(nil), cols...), true
}

// HasColumn reports whether the model exists and declares the column.
func (c *Catalog) HasColumn(model, column string) bool {
	for _, col := range c.models[model] {
		if col.Name == column {
			return true
		}
	}
	return false
}

// Models returns the known model names, sorted.
func (c *Catalog) Models() []string {
	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports how many models the catalog currently knows.
func (c *Catalog) Len() int {
	return len(c.models)
}
