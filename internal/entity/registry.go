package entity

import (
	"fmt"
	"sort"
)

// Lookup resolves handles to actors.
type Lookup interface {
	Get(h Handle) (*Actor, bool)
}

// Registry is the arena that owns every actor of a session, on the map or
// inside a container. Handles stay valid until Remove; a removed handle
// simply stops resolving.
type Registry struct {
	actors map[Handle]*Actor
	next   Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actors: make(map[Handle]*Actor),
		next:   1,
	}
}

// RestoreRegistry rebuilds a registry from previously spawned actors,
// keeping their handles.
func RestoreRegistry(actors []*Actor) (*Registry, error) {
	r := NewRegistry()
	for _, a := range actors {
		if a == nil || a.ID == NoHandle {
			return nil, fmt.Errorf("restore registry: actor without handle")
		}
		if _, exists := r.actors[a.ID]; exists {
			return nil, fmt.Errorf("restore registry: duplicate handle %d", a.ID)
		}
		a.bind()
		r.actors[a.ID] = a
		if a.ID >= r.next {
			r.next = a.ID + 1
		}
	}
	return r, nil
}

// Spawn assigns a new handle to the actor, binds its capabilities and
// stores it.
func (r *Registry) Spawn(a *Actor) Handle {
	a.ID = r.next
	r.next++
	a.bind()
	r.actors[a.ID] = a
	return a.ID
}

// Get returns the actor for a handle, or false if it was removed.
func (r *Registry) Get(h Handle) (*Actor, bool) {
	a, ok := r.actors[h]
	return a, ok
}

// Remove deletes an actor permanently.
func (r *Registry) Remove(h Handle) {
	delete(r.actors, h)
}

// Len returns the number of live actors.
func (r *Registry) Len() int {
	return len(r.actors)
}

// All returns every actor in handle order.
func (r *Registry) All() []*Actor {
	all := make([]*Actor, 0, len(r.actors))
	for _, a := range r.actors {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Resolve maps handles to actors, skipping handles that no longer resolve.
func (r *Registry) Resolve(handles []Handle) []*Actor {
	out := make([]*Actor, 0, len(handles))
	for _, h := range handles {
		if a, ok := r.actors[h]; ok {
			out = append(out, a)
		}
	}
	return out
}
