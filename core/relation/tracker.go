package relation

import "slices"

// Cascade describes side effects one field's outcome has on other fields.
type Cascade struct {
	Clear   []string `json:"clear,omitempty"`
	Enable  []string `json:"enable,omitempty"`
	Disable []string `json:"disable,omitempty"`
}

// IsEmpty reports whether the cascade carries no side effects.
func (c Cascade) IsEmpty() bool {
	return len(c.Clear) == 0 && len(c.Enable) == 0 && len(c.Disable) == 0
}

// Merge appends other into c, keeping each name once per list.
func (c Cascade) Merge(other Cascade) Cascade {
	for _, name := range other.Clear {
		c.Clear = appendUnique(c.Clear, name)
	}
	for _, name := range other.Enable {
		c.Disable = slices.DeleteFunc(c.Disable, func(s string) bool { return s == name })
		c.Enable = appendUnique(c.Enable, name)
	}
	for _, name := range other.Disable {
		c.Enable = slices.DeleteFunc(c.Enable, func(s string) bool { return s == name })
		c.Disable = appendUnique(c.Disable, name)
	}
	return c
}

// Tracker answers which fields must react when a field is re-evaluated.
// It holds no state beyond the table built at parse time.
type Tracker struct {
	table *Table
}

// NewTracker wraps a relation table. A nil table yields empty cascades.
func NewTracker(table *Table) *Tracker {
	if table == nil {
		table = NewTable()
	}
	return &Tracker{table: table}
}

// OnFieldChanged returns the cascade triggered by field's latest outcome.
// Dependents and clear targets are only listed when field passed, since a
// failing field has no trustworthy value to compare against. Callers
// decide which of them are actually stale.
func (t *Tracker) OnFieldChanged(field string, passed bool) Cascade {
	var c Cascade

	if passed {
		c.Clear = t.Dependents(field)
		for _, target := range t.table.Clear[field] {
			c.Clear = appendUnique(c.Clear, target)
		}
	}

	for _, gated := range t.table.Enable[field] {
		if passed {
			c.Enable = appendUnique(c.Enable, gated)
		} else {
			c.Disable = appendUnique(c.Disable, gated)
		}
	}

	return c
}

// Dependents returns every field cleared when field changes.
func (t *Tracker) Dependents(field string) []string {
	var out []string
	for _, dep := range t.table.Same[field] {
		out = appendUnique(out, dep)
	}
	for _, dep := range t.table.Different[field] {
		out = appendUnique(out, dep)
	}
	return out
}

// Targets returns the fields field resets through clear:<target>.
func (t *Tracker) Targets(field string) []string {
	return slices.Clone(t.table.Clear[field])
}
