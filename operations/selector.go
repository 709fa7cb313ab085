package operations

import "github.com/sksmith/brep/storage"

// Selector chooses which members of a collection an update applies to.
type Selector[T any] interface {
	// Select returns the indices of the chosen members, in ascending
	// order.
	Select(handles []storage.Handle[T]) []int
}

// First selects the first member.
type First[T any] struct{}

func (First[T]) Select(handles []storage.Handle[T]) []int {
	if len(handles) == 0 {
		return nil
	}

	return []int{0}
}

// Nth selects the member at index N.
type Nth[T any] struct {
	N int
}

func (s Nth[T]) Select(handles []storage.Handle[T]) []int {
	if s.N < 0 || s.N >= len(handles) {
		return nil
	}

	return []int{s.N}
}

// All selects every member.
type All[T any] struct{}

func (All[T]) Select(handles []storage.Handle[T]) []int {
	indices := make([]int, len(handles))
	for i := range handles {
		indices[i] = i
	}

	return indices
}

// ByHandle selects the members identical to a specific handle.
type ByHandle[T any] struct {
	Handle storage.Handle[T]
}

func (s ByHandle[T]) Select(handles []storage.Handle[T]) []int {
	var indices []int
	for i, h := range handles {
		if h == s.Handle {
			indices = append(indices, i)
		}
	}

	return indices
}
