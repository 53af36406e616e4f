package ecs

// EntityID is the stable handle of an object. It never changes for the life
// of the object, unlike the object's index in a Store.
type EntityID uint64

// NilEntity is the zero value. No valid object has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct attached to an object.
type Component interface {
	Type() ComponentType
}

// Object is one game entity: a stable handle plus its components.
type Object struct {
	ID         EntityID
	components map[ComponentType]Component
}

// NewObject returns an object with no handle. Store.Spawn is the usual way to
// create objects; NewObject exists for objects built outside a store.
func NewObject() *Object {
	return &Object{components: make(map[ComponentType]Component)}
}

// Add attaches a component, replacing any existing one of the same type.
func (o *Object) Add(c Component) {
	o.components[c.Type()] = c
}

// Get returns the component of the given type, or nil.
func (o *Object) Get(t ComponentType) Component {
	return o.components[t]
}

// Remove detaches a component.
func (o *Object) Remove(t ComponentType) {
	delete(o.components, t)
}

// Has reports whether the object has a component of the given type.
func (o *Object) Has(t ComponentType) bool {
	return o.components[t] != nil
}

// HasAll reports whether the object has every listed component type.
func (o *Object) HasAll(types ...ComponentType) bool {
	for _, t := range types {
		if !o.Has(t) {
			return false
		}
	}
	return true
}
