package ecs

// Store is the ordered collection of every object placed in the world.
//
// An object's index is its identifier for callers that work positionally
// (pickup, menus). An index is only valid until the next removal: SwapRemove
// moves the last object into the freed slot. Anything that must outlive a
// removal holds the object's EntityID and resolves it with IndexOf.
type Store struct {
	nextID  EntityID
	objects []*Object
	player  EntityID
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Spawn mints a new object with a fresh handle and appends it.
func (s *Store) Spawn() *Object {
	o := NewObject()
	o.ID = s.nextID
	s.nextID++
	s.objects = append(s.objects, o)
	return o
}

// Insert appends an existing object (e.g. one dropped from an inventory) and
// returns its index. Objects built with NewObject receive a handle here.
func (s *Store) Insert(o *Object) int {
	if o.ID == NilEntity {
		o.ID = s.nextID
		s.nextID++
	}
	s.objects = append(s.objects, o)
	return len(s.objects) - 1
}

// Len returns the number of objects in the store.
func (s *Store) Len() int { return len(s.objects) }

// At returns the object at index i. Panics if i is out of range.
func (s *Store) At(i int) *Object { return s.objects[i] }

// Objects returns the backing slice. Callers must not hold it across a removal.
func (s *Store) Objects() []*Object { return s.objects }

// SwapRemove removes the object at index i by moving the last object into
// slot i and shrinking the slice. The moved object's index changes.
func (s *Store) SwapRemove(i int) *Object {
	o := s.objects[i]
	last := len(s.objects) - 1
	s.objects[i] = s.objects[last]
	s.objects[last] = nil
	s.objects = s.objects[:last]
	return o
}

// IndexOf returns the current index of the object with the given handle.
func (s *Store) IndexOf(id EntityID) (int, bool) {
	if id == NilEntity {
		return -1, false
	}
	for i, o := range s.objects {
		if o.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns the object with the given handle, or nil.
func (s *Store) Lookup(id EntityID) *Object {
	i, ok := s.IndexOf(id)
	if !ok {
		return nil
	}
	return s.objects[i]
}

// SetPlayer marks the object with the given handle as the player.
func (s *Store) SetPlayer(id EntityID) { s.player = id }

// PlayerID returns the player's handle, or NilEntity when none is set.
func (s *Store) PlayerID() EntityID { return s.player }

// Player returns the player's current index and object.
// The index is -1 and the object nil when there is no player in the store.
func (s *Store) Player() (int, *Object) {
	i, ok := s.IndexOf(s.player)
	if !ok {
		return -1, nil
	}
	return i, s.objects[i]
}

// Query returns the indices of all objects that have every listed component
// type, in store order.
func (s *Store) Query(types ...ComponentType) []int {
	if len(types) == 0 {
		return nil
	}
	var result []int
	for i, o := range s.objects {
		if o.HasAll(types...) {
			result = append(result, i)
		}
	}
	return result
}

// Handles returns the handles of all objects that have every listed
// component type. Unlike Query, the result stays meaningful across removals.
func (s *Store) Handles(types ...ComponentType) []EntityID {
	var result []EntityID
	for _, i := range s.Query(types...) {
		result = append(result, s.objects[i].ID)
	}
	return result
}
