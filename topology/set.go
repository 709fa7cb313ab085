package topology

import (
	"errors"
	"fmt"

	"github.com/sksmith/brep/storage"
)

// ErrDuplicateObject is the panic value (wrapped) when constructing an
// object set with the same handle twice. Inserting duplicates into an
// ordered-unique set is a programming error.
var ErrDuplicateObject = errors.New("duplicate object in set")

// ObjectSet is an ordered set of handles: it preserves insertion order and
// rejects duplicates (by identity). The zero value is an empty set.
type ObjectSet[T any] struct {
	handles []storage.Handle[T]
}

// NewObjectSet constructs a set from the given handles, preserving their
// order. Panics if the same handle appears twice.
func NewObjectSet[T any](handles ...storage.Handle[T]) ObjectSet[T] {
	seen := make(map[storage.ObjectID]struct{}, len(handles))

	set := ObjectSet[T]{handles: make([]storage.Handle[T], 0, len(handles))}
	for _, h := range handles {
		if _, dup := seen[h.ID()]; dup {
			panic(fmt.Errorf("%w: %s", ErrDuplicateObject, h))
		}
		seen[h.ID()] = struct{}{}
		set.handles = append(set.handles, h)
	}

	return set
}

// Handles returns the set's handles in insertion order. The returned slice
// must not be modified.
func (s ObjectSet[T]) Handles() []storage.Handle[T] {
	return s.handles
}

// Len returns the number of handles in the set.
func (s ObjectSet[T]) Len() int {
	return len(s.handles)
}

// Contains reports whether the set contains the given handle, by identity.
func (s ObjectSet[T]) Contains(h storage.Handle[T]) bool {
	for _, member := range s.handles {
		if member == h {
			return true
		}
	}

	return false
}
