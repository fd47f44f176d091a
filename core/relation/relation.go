package relation

import "slices"

// Table records which fields react when another field changes.
// Every map is keyed by the field whose change triggers the reaction,
// so "who reacts to X" is a single lookup.
type Table struct {
	// Same maps a target to the fields declaring same:<target>.
	Same map[string][]string
	// Different maps a target to the fields declaring different:<target>.
	Different map[string][]string
	// Enable maps a source to the fields declaring enable:<source>.
	Enable map[string][]string
	// Clear maps a field declaring clear:<target> to its targets.
	Clear map[string][]string
}

// NewTable returns an empty table ready for use.
func NewTable() *Table {
	return &Table{
		Same:      make(map[string][]string),
		Different: make(map[string][]string),
		Enable:    make(map[string][]string),
		Clear:     make(map[string][]string),
	}
}

// AddSame records that dependent must match target.
func (t *Table) AddSame(target, dependent string) {
	t.Same[target] = appendUnique(t.Same[target], dependent)
}

// AddDifferent records that dependent must differ from target.
func (t *Table) AddDifferent(target, dependent string) {
	t.Different[target] = appendUnique(t.Different[target], dependent)
}

// AddEnable records that gated stays disabled until source passes.
func (t *Table) AddEnable(source, gated string) {
	t.Enable[source] = appendUnique(t.Enable[source], gated)
}

// AddClear records that target is reset when source takes a value
// different from it.
func (t *Table) AddClear(source, target string) {
	t.Clear[source] = appendUnique(t.Clear[source], target)
}

// Gates returns the sources gating field, sorted by name.
func (t *Table) Gates(field string) []string {
	var sources []string
	for source, gated := range t.Enable {
		if slices.Contains(gated, field) {
			sources = append(sources, source)
		}
	}
	slices.Sort(sources)
	return sources
}

func appendUnique(list []string, name string) []string {
	if slices.Contains(list, name) {
		return list
	}
	return append(list, name)
}
