package circular

// Iterator is a random-access position handle into an Array: a non-owning
// container reference paired with a logical index. Every dereference
// delegates to the Array's O(1) indexed access, so an Iterator carries no
// state of its own to keep in sync.
//
// Iterators are comparable with ==, which means exactly "same Array
// instance, same logical index". An index equal to Len() is the one-past-end
// sentinel returned by End; dereferencing it is undefined behavior, as is
// dereferencing any iterator after the Array has grown or shrunk past its
// index. No staleness is detected at runtime.
//
//	for it := a.Begin(); it != a.End(); it.Next() {
//		fmt.Println(it.Value())
//	}
type Iterator[T any] struct {
	arr *Array[T]
	idx int
}

// Begin returns an Iterator at logical index 0. If the Array is empty,
// Begin == End.
func (a *Array[T]) Begin() Iterator[T] {
	return Iterator[T]{arr: a, idx: 0}
}

// End returns the one-past-end sentinel Iterator, at logical index Len().
func (a *Array[T]) End() Iterator[T] {
	return Iterator[T]{arr: a, idx: a.size}
}

// Index returns the logical index the Iterator is bound to.
func (it Iterator[T]) Index() int { return it.idx }

// Value returns the element at the Iterator's position. Dereferencing End,
// or any position outside [0, Len()), is undefined behavior.
func (it Iterator[T]) Value() T {
	return it.arr.AtUnsafe(it.idx)
}

// Ref returns a pointer to the element at the Iterator's position, for
// in-place mutation. The pointer is invalidated by any growth-triggering
// push or insert. Same precondition as Value.
func (it Iterator[T]) Ref() *T {
	return it.arr.RefUnsafe(it.idx)
}

// Set writes v to the element at the Iterator's position. Same precondition
// as Value.
func (it Iterator[T]) Set(v T) {
	it.arr.SetUnsafe(it.idx, v)
}

// Next advances the Iterator one position and returns it, like C++'s ++it.
// Advancing past End is undefined behavior only once dereferenced; the
// sentinel position itself is always reachable.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.idx++
	return it
}

// Prev moves the Iterator back one position and returns it, like --it.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.idx--
	return it
}

// PostNext advances the Iterator but returns a snapshot of its state before
// the move, like it++. Contrast with Next, which returns the already
// advanced Iterator.
func (it *Iterator[T]) PostNext() Iterator[T] {
	tmp := *it
	it.idx++
	return tmp
}

// PostPrev moves the Iterator back but returns a snapshot of its state
// before the move, like it--.
func (it *Iterator[T]) PostPrev() Iterator[T] {
	tmp := *it
	it.idx--
	return tmp
}

// Advance returns an Iterator offset n positions from it, like it+n. n may
// be negative.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	return Iterator[T]{arr: it.arr, idx: it.idx + n}
}

// Distance returns how many positions it is ahead of from, like it-from.
// Both Iterators must be bound to the same Array.
func (it Iterator[T]) Distance(from Iterator[T]) int {
	return it.idx - from.idx
}

// Less reports whether it precedes other. Both Iterators must be bound to
// the same Array.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.idx < other.idx
}
