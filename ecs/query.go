package ecs

// Query returns the live entities that carry every listed kind. The result is
// a snapshot, so callers may destroy entities while walking it.
func (w *World) Query(kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID())
		if s == nil || s.size() == 0 {
			return nil
		}
		stores = append(stores, s)
	}

	// iterate the smallest store
	smallest := 0
	for i, s := range stores {
		if s.size() < stores[smallest].size() {
			smallest = i
		}
	}

	var out []Entity
	for _, id := range stores[smallest].ids() {
		match := true
		for i, s := range stores {
			if i != smallest && !s.has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity that carries every listed kind. Used for
// singletons like the player or the camera.
func (w *World) First(kinds ...KindID) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func First(w *World, kinds ...KindID) (Entity, bool) {
	return w.First(kinds...)
}
