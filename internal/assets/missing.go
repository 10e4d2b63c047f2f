package assets

// MissingList accumulates unresolved icon names in insertion order,
// recording each distinct name once. One list serves a whole render
// request across both styles.
type MissingList struct {
	seen  map[string]struct{}
	names []string
}

// NewMissingList returns an empty list.
func NewMissingList() *MissingList {
	return &MissingList{seen: make(map[string]struct{})}
}

// Record adds a name unless it was recorded before.
func (l *MissingList) Record(name string) {
	if _, ok := l.seen[name]; ok {
		return
	}
	l.seen[name] = struct{}{}
	l.names = append(l.names, name)
}

// Names returns the recorded names in insertion order.
func (l *MissingList) Names() []string {
	return l.names
}

// Len returns the number of distinct recorded names.
func (l *MissingList) Len() int {
	return len(l.names)
}
