package fleet

import "github.com/talgya/realmfleet/internal/galaxy"

// List is the ordered set of fleets owned by one realm with an ID index.
type List struct {
	fleets []*Fleet
	index  map[ID]*Fleet
}

// NewList creates an empty fleet list.
func NewList() *List {
	return &List{index: make(map[ID]*Fleet)}
}

// Add appends a fleet. A fleet already present is not added twice.
func (l *List) Add(f *Fleet) {
	if _, ok := l.index[f.ID]; ok {
		return
	}
	l.fleets = append(l.fleets, f)
	l.index[f.ID] = f
}

// Remove deletes the fleet with the given ID. Removing an absent fleet is a no-op.
func (l *List) Remove(id ID) {
	if _, ok := l.index[id]; !ok {
		return
	}
	delete(l.index, id)
	for i, f := range l.fleets {
		if f.ID == id {
			l.fleets = append(l.fleets[:i], l.fleets[i+1:]...)
			return
		}
	}
}

// Get returns the fleet with the given ID, or nil.
func (l *List) Get(id ID) *Fleet {
	if id == NoFleet {
		return nil
	}
	return l.index[id]
}

// Rename changes a fleet's display name. Missions reference fleets by ID so
// nothing else needs rewriting.
func (l *List) Rename(id ID, name string) bool {
	f := l.index[id]
	if f == nil {
		return false
	}
	f.Name = name
	return true
}

// ByName returns the first fleet with the given display name, or nil.
func (l *List) ByName(name string) *Fleet {
	for _, f := range l.fleets {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// At returns every fleet at coordinate c.
func (l *List) At(c galaxy.Coord) []*Fleet {
	var result []*Fleet
	for _, f := range l.fleets {
		if f.Coord == c {
			result = append(result, f)
		}
	}
	return result
}

// All returns a snapshot of the fleets in list order. Callers may mutate the
// list while iterating the snapshot.
func (l *List) All() []*Fleet {
	out := make([]*Fleet, len(l.fleets))
	copy(out, l.fleets)
	return out
}

// Len returns the number of fleets.
func (l *List) Len() int {
	return len(l.fleets)
}
