// Package partition keeps a catalog split into an available and a chosen
// partition.
//
// Every name of the catalog lives in exactly one partition at all times.
// All operations are value-returning: the receiver is never modified, and
// names that are not found turn the operation into a no-op.
package partition

// Named is implemented by every catalog item; the name is its identity key
type Named interface {
	GetName() string
}

// Predicate decides whether an item is shown
type Predicate[T Named] func(T) bool

// All combines predicates; an item must pass every one of them
func All[T Named](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	}
}

// Entry wraps a catalog item with its per-partition flags
type Entry[T Named] struct {
	Item     T
	Disabled bool
	// Level selects a per-level value for leveled items such as adversaries.
	// Zero is the base level.
	Level int
}

// Name returns the identity key of the wrapped item
func (e Entry[T]) Name() string {
	return e.Item.GetName()
}

// State is an immutable snapshot of both partitions
type State[T Named] struct {
	Available []Entry[T]
	Chosen    []Entry[T]
}

// New puts every item into the available partition, enabled
func New[T Named](items []T) State[T] {
	available := make([]Entry[T], len(items))
	for i, item := range items {
		available[i] = Entry[T]{Item: item}
	}
	return State[T]{Available: available}
}

// Choose moves name from available to chosen at the base level
func (s State[T]) Choose(name string) State[T] {
	return s.ChooseAt(name, 0)
}

// ChooseAt moves name from available to chosen, recording level
func (s State[T]) ChooseAt(name string, level int) State[T] {
	idx := indexOf(s.Available, name)
	if idx < 0 {
		return s
	}
	entry := s.Available[idx]
	entry.Level = level
	return State[T]{
		Available: without(s.Available, idx),
		Chosen:    appendEntry(s.Chosen, entry),
	}
}

// Unchoose moves name from chosen back to the end of available. The
// disabled flag travels with the entry and the level resets to base.
func (s State[T]) Unchoose(name string) State[T] {
	idx := indexOf(s.Chosen, name)
	if idx < 0 {
		return s
	}
	entry := s.Chosen[idx]
	entry.Level = 0
	return State[T]{
		Available: appendEntry(s.Available, entry),
		Chosen:    without(s.Chosen, idx),
	}
}

// SetDisabled flags or unflags name wherever it lives
func (s State[T]) SetDisabled(name string, disabled bool) State[T] {
	return State[T]{
		Available: update(s.Available, name, func(e *Entry[T]) { e.Disabled = disabled }),
		Chosen:    update(s.Chosen, name, func(e *Entry[T]) { e.Disabled = disabled }),
	}
}

// SetLevel rewrites the level of a chosen entry
func (s State[T]) SetLevel(name string, level int) State[T] {
	if indexOf(s.Chosen, name) < 0 {
		return s
	}
	return State[T]{
		Available: s.Available,
		Chosen:    update(s.Chosen, name, func(e *Entry[T]) { e.Level = level }),
	}
}

// Trash moves every chosen entry back to available, keeping disabled flags
func (s State[T]) Trash() State[T] {
	next := s
	for len(next.Chosen) > 0 {
		next = next.Unchoose(next.Chosen[0].Name())
	}
	return next
}

// FindAvailable returns the available entry named name
func (s State[T]) FindAvailable(name string) (Entry[T], bool) {
	return find(s.Available, name)
}

// FindChosen returns the chosen entry named name
func (s State[T]) FindChosen(name string) (Entry[T], bool) {
	return find(s.Chosen, name)
}

// Visible returns the available entries passing pred, disabled included
func (s State[T]) Visible(pred Predicate[T]) []Entry[T] {
	var out []Entry[T]
	for _, e := range s.Available {
		if pred == nil || pred(e.Item) {
			out = append(out, e)
		}
	}
	return out
}

// Eligible returns the visible entries that may be picked by a randomizer
func (s State[T]) Eligible(pred Predicate[T]) []Entry[T] {
	var out []Entry[T]
	for _, e := range s.Visible(pred) {
		if !e.Disabled {
			out = append(out, e)
		}
	}
	return out
}

// ChosenItems returns the items of the chosen partition in order
func (s State[T]) ChosenItems() []T {
	items := make([]T, len(s.Chosen))
	for i, e := range s.Chosen {
		items[i] = e.Item
	}
	return items
}

// DisabledNames returns the names flagged disabled in either partition
func (s State[T]) DisabledNames() []string {
	var names []string
	for _, e := range s.Available {
		if e.Disabled {
			names = append(names, e.Name())
		}
	}
	for _, e := range s.Chosen {
		if e.Disabled {
			names = append(names, e.Name())
		}
	}
	return names
}

// Names returns every name across both partitions, available first
func (s State[T]) Names() []string {
	names := make([]string, 0, len(s.Available)+len(s.Chosen))
	for _, e := range s.Available {
		names = append(names, e.Name())
	}
	for _, e := range s.Chosen {
		names = append(names, e.Name())
	}
	return names
}

func indexOf[T Named](entries []Entry[T], name string) int {
	for i, e := range entries {
		if e.Name() == name {
			return i
		}
	}
	return -1
}

func find[T Named](entries []Entry[T], name string) (Entry[T], bool) {
	if idx := indexOf(entries, name); idx >= 0 {
		return entries[idx], true
	}
	var zero Entry[T]
	return zero, false
}

func without[T Named](entries []Entry[T], idx int) []Entry[T] {
	out := make([]Entry[T], 0, len(entries)-1)
	out = append(out, entries[:idx]...)
	return append(out, entries[idx+1:]...)
}

func appendEntry[T Named](entries []Entry[T], entry Entry[T]) []Entry[T] {
	out := make([]Entry[T], 0, len(entries)+1)
	out = append(out, entries...)
	return append(out, entry)
}

func update[T Named](entries []Entry[T], name string, fn func(*Entry[T])) []Entry[T] {
	idx := indexOf(entries, name)
	if idx < 0 {
		return entries
	}
	out := make([]Entry[T], len(entries))
	copy(out, entries)
	fn(&out[idx])
	return out
}
