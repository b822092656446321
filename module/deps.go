package module

// Dependency is one resolved-or-pending edge request: a specifier and the
// syntactic form that produced it
type Dependency struct {
	Source string
	Kind   ResolveKind
}

// DependencyList is an append-only collection with set semantics keyed by
// (Source, Kind). The zero value is ready to use. Not safe for concurrent
// use; each list belongs to a single module's analysis.
type DependencyList struct {
	entries []Dependency
	seen    map[Dependency]struct{}
}

// Add appends d unless an identical entry is already present. It reports
// whether the entry was added.
func (l *DependencyList) Add(d Dependency) bool {
	if l.seen == nil {
		l.seen = make(map[Dependency]struct{})
	}
	if _, dup := l.seen[d]; dup {
		return false
	}
	l.seen[d] = struct{}{}
	l.entries = append(l.entries, d)
	return true
}

// Contains reports whether any entry has the given source, regardless of kind
func (l *DependencyList) Contains(source string) bool {
	for _, d := range l.entries {
		if d.Source == source {
			return true
		}
	}
	return false
}

// Entries returns the entries in insertion order. The slice is a copy.
func (l *DependencyList) Entries() []Dependency {
	out := make([]Dependency, len(l.entries))
	copy(out, l.entries)
	return out
}

// Kinds returns the kind of every entry in insertion order
func (l *DependencyList) Kinds() []ResolveKind {
	out := make([]ResolveKind, len(l.entries))
	for i, d := range l.entries {
		out[i] = d.Kind
	}
	return out
}

// Len returns the number of entries
func (l *DependencyList) Len() int {
	return len(l.entries)
}
