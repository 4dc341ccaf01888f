// Package circular provides a generic, growable double-ended sequence backed
// by a single contiguous buffer addressed circularly.
package circular

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Array is a double-ended sequence over a ring buffer. It supports amortized
// O(1) insertion and removal at both ends, O(1) access by logical index, and
// O(n) insertion/removal at an arbitrary position.
//
// The zero value is an empty, unallocated Array ready for use:
//
//	var a circular.Array[int]
//	a.PushBack(1)
//
// Unlike a power-of-two scheme, capacity may be any non-negative count; a
// logical index i lives in physical slot (head+i) % cap. When a push or
// insert finds the buffer full, the Array reallocates to twice its capacity
// (minimum 1) and repacks the elements starting at slot 0. That doubling is
// the only reallocation trigger: the Array never shrinks on pop.
//
// An Array is not safe for concurrent use. Methods with an Unsafe suffix
// skip all precondition checks; see their individual warnings.
type Array[T any] struct {
	buf  []T
	head int // slot of the logical-first element
	tail int // one past the logical-last element, mod cap
	size int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeArray returns an empty Array with no allocated buffer. Equivalent to
// the zero value; provided for symmetry with the other constructors.
func MakeArray[T any]() *Array[T] {
	return &Array[T]{}
}

// MakeArrayWithCapacity preallocates a buffer for exactly capacity elements.
// The Array starts empty; the first capacity pushes will not reallocate.
// Returns an error if passed a negative value.
func MakeArrayWithCapacity[T any](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &Array[T]{buf: make([]T, capacity)}, nil
}

// MakeArrayFilled preallocates a buffer for capacity elements and fills every
// slot with val, so Len() == Cap() == capacity. The next push reallocates.
// Be careful with types holding shared references: every slot gets a copy of
// the same val. Returns an error if passed a negative value.
func MakeArrayFilled[T any](capacity int, val T) (*Array[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	buf := make([]T, capacity)
	for i := range buf {
		buf[i] = val
	}
	// head == tail == 0: one past the last element, mod capacity.
	return &Array[T]{buf: buf, size: capacity}, nil
}

// CopySliceToArray allocates a buffer of exactly len(s) and copies every
// element of the slice into it. The slice's extra capacity is irrelevant, and
// memory is not shared with s.
func CopySliceToArray[T any](s []T) *Array[T] {
	buf := make([]T, len(s))
	copy(buf, s)
	return &Array[T]{buf: buf, size: len(s)}
}

// Clone deep-copies the logical sequence into a new tightly packed Array:
// the clone's capacity equals its length and its first element sits in slot
// 0. Cloning an empty Array yields an empty, unallocated one. The two Arrays
// share no memory afterward.
func (a *Array[T]) Clone() *Array[T] {
	if a.size == 0 {
		return &Array[T]{}
	}
	buf := make([]T, a.size)
	s1, s2 := a.slices()
	n := copy(buf, s1)
	copy(buf[n:], s2)
	return &Array[T]{buf: buf, size: a.size}
}

// Move transfers ownership of the buffer to a new Array and resets the
// receiver to the empty, unallocated state. It is the cheap counterpart to
// Clone: no elements are copied, and the receiver may be reused afterward.
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{buf: a.buf, head: a.head, tail: a.tail, size: a.size}
	*a = Array[T]{}
	return moved
}

/*****************************************************************************
 * ARRAY API
 *****************************************************************************/

// Len returns the number of elements in the Array or 0 if nil.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.size
}

// Cap returns the current Array capacity.
func (a *Array[T]) Cap() int { return len(a.buf) }

// Empty returns whether the Array is empty.
func (a *Array[T]) Empty() bool { return a.size == 0 }

// Full returns whether the Array is full. Pushing to a full Array
// reallocates.
func (a *Array[T]) Full() bool { return a.size == len(a.buf) }

// PushBack appends v as the new logical-last element. Amortized O(1): it
// reallocates to double capacity only when the buffer is full. Use PushBack
// with PopFront for FIFO ordering, or with PopBack for LIFO ordering.
func (a *Array[T]) PushBack(v T) {
	if a.size == len(a.buf) {
		a.grow()
	}
	a.buf[a.tail] = v
	a.tail = (a.tail + 1) % len(a.buf)
	a.size++
}

// PushFront prepends v as the new logical-first element. Amortized O(1): it
// reallocates to double capacity only when the buffer is full.
func (a *Array[T]) PushFront(v T) {
	if a.size == len(a.buf) {
		a.grow()
	}
	if a.head == 0 {
		a.head = len(a.buf) - 1
	} else {
		a.head--
	}
	a.buf[a.head] = v
	a.size++
}

// Front returns the logical-first element. If the Array is empty, it returns
// false.
func (a *Array[T]) Front() (t T, ok bool) {
	if a.Empty() {
		return
	}
	return a.FrontUnsafe(), true
}

// FrontUnsafe returns the logical-first element. Does not panic on an empty
// Array, but worse: silently returns garbage.
func (a *Array[T]) FrontUnsafe() T {
	return a.buf[a.head]
}

// Back returns the logical-last element. If the Array is empty, it returns
// false.
func (a *Array[T]) Back() (t T, ok bool) {
	if a.Empty() {
		return
	}
	return a.BackUnsafe(), true
}

// BackUnsafe returns the logical-last element, taken from slot
// (tail-1) mod cap. Does not panic on an empty Array, but worse: silently
// returns garbage.
func (a *Array[T]) BackUnsafe() T {
	if a.tail == 0 {
		return a.buf[len(a.buf)-1]
	}
	return a.buf[a.tail-1]
}

// PopFront removes the logical-first element and returns it. If the Array is
// empty, it returns false. The vacated slot is not zeroed, so references
// remain and the garbage collector does not free; if your elements hold
// references, prefer PopFrontZero.
func (a *Array[T]) PopFront() (t T, ok bool) {
	if t, ok = a.Front(); ok {
		a.head = (a.head + 1) % len(a.buf)
		a.size--
	}
	return
}

// PopFrontZero removes the logical-first element, zeroes its slot, and
// returns it. If the Array is empty, it returns false. This is how you
// should drain an Array whose elements hold references.
func (a *Array[T]) PopFrontZero() (t T, ok bool) {
	if t, ok = a.PopFront(); ok {
		var zero T
		if a.head == 0 {
			a.buf[len(a.buf)-1] = zero
		} else {
			a.buf[a.head-1] = zero
		}
	}
	return
}

// PopFrontUnsafe removes the logical-first element and returns it, with no
// emptiness check. Calling it on an empty Array corrupts the bookkeeping and
// leads to undefined behavior from then on.
func (a *Array[T]) PopFrontUnsafe() T {
	result := a.buf[a.head]
	a.head = (a.head + 1) % len(a.buf)
	a.size--
	return result
}

// PopBack removes the logical-last element and returns it. If the Array is
// empty, it returns false. The vacated slot is not zeroed, so references
// remain and the garbage collector does not free; if your elements hold
// references, prefer PopBackZero.
func (a *Array[T]) PopBack() (t T, ok bool) {
	if t, ok = a.Back(); ok {
		if a.tail == 0 {
			a.tail = len(a.buf) - 1
		} else {
			a.tail--
		}
		a.size--
	}
	return
}

// PopBackZero removes the logical-last element, zeroes its slot, and returns
// it. If the Array is empty, it returns false. This is how you should drain
// an Array whose elements hold references.
func (a *Array[T]) PopBackZero() (t T, ok bool) {
	if t, ok = a.PopBack(); ok {
		var zero T
		a.buf[a.tail] = zero
	}
	return
}

// PopBackUnsafe removes the logical-last element and returns it, with no
// emptiness check. Calling it on an empty Array corrupts the bookkeeping and
// leads to undefined behavior from then on.
func (a *Array[T]) PopBackUnsafe() T {
	if a.tail == 0 {
		a.tail = len(a.buf) - 1
	} else {
		a.tail--
	}
	a.size--
	return a.buf[a.tail]
}

// Clear empties the Array in O(Len()), zeroing the logical elements so any
// references they hold become collectable. Capacity is retained and the next
// element pushed lands in slot 0.
func (a *Array[T]) Clear() {
	s1, s2 := a.slices()
	clear(s1)
	clear(s2)
	a.head, a.tail, a.size = 0, 0, 0
}

/*****************************************************************************
 * POSITIONAL API
 *****************************************************************************/

// At returns the element at logical index i. Panics if out of bounds.
func (a *Array[T]) At(i int) T {
	a.checkBounds(i)
	return a.AtUnsafe(i)
}

// AtUnsafe returns the element at logical index i, read straight from slot
// (head+i) mod cap. It never panics, but returns garbage if i is out of
// bounds.
func (a *Array[T]) AtUnsafe(i int) T {
	return a.buf[(a.head+i)%len(a.buf)]
}

// Set writes v to logical index i. Panics if out of bounds.
func (a *Array[T]) Set(i int, v T) {
	a.checkBounds(i)
	a.SetUnsafe(i, v)
}

// SetUnsafe writes v to logical index i. It never panics, but writes to
// another index inside the Array if i is out of bounds.
func (a *Array[T]) SetUnsafe(i int, v T) {
	a.buf[(a.head+i)%len(a.buf)] = v
}

// Ref returns a pointer to the element at logical index i, for in-place
// mutation. The pointer is invalidated by any growth-triggering push or
// insert. Panics if out of bounds.
func (a *Array[T]) Ref(i int) *T {
	a.checkBounds(i)
	return a.RefUnsafe(i)
}

// RefUnsafe returns a pointer to the element at logical index i. It never
// panics, but points at another index inside the Array if i is out of
// bounds. The pointer is invalidated by any growth-triggering push or
// insert.
func (a *Array[T]) RefUnsafe(i int) *T {
	return &a.buf[(a.head+i)%len(a.buf)]
}

// InsertAt inserts v as the new element at logical index pos, shifting every
// element at or after pos one position toward the back. O(Len()-pos);
// reallocates first if the buffer is full. pos may equal Len(), which is the
// same as PushBack. Panics if pos is out of [0, Len()].
func (a *Array[T]) InsertAt(v T, pos int) {
	if pos < 0 || pos > a.size {
		panic(fmt.Sprintf("circular: insert position %d out of bounds with length %d", pos, a.size))
	}
	a.InsertAtUnsafe(v, pos)
}

// InsertAtUnsafe is InsertAt without the bounds check. A pos outside
// [0, Len()] leads to undefined behavior.
func (a *Array[T]) InsertAtUnsafe(v T, pos int) {
	if a.size == len(a.buf) {
		a.grow()
	}
	for i := a.size; i > pos; i-- {
		a.buf[(a.head+i)%len(a.buf)] = a.buf[(a.head+i-1)%len(a.buf)]
	}
	a.buf[(a.head+pos)%len(a.buf)] = v
	a.tail = (a.tail + 1) % len(a.buf)
	a.size++
}

// RemoveAt removes the element at logical index pos, shifting every later
// element one position toward the front. O(Len()-pos). The vacated slot at
// the back is not zeroed. Panics if pos is out of bounds.
func (a *Array[T]) RemoveAt(pos int) {
	a.checkBounds(pos)
	a.RemoveAtUnsafe(pos)
}

// RemoveAtUnsafe is RemoveAt without the bounds check. A pos outside
// [0, Len()) leads to undefined behavior.
func (a *Array[T]) RemoveAtUnsafe(pos int) {
	for i := pos; i < a.size-1; i++ {
		a.buf[(a.head+i)%len(a.buf)] = a.buf[(a.head+i+1)%len(a.buf)]
	}
	if a.tail == 0 {
		a.tail = len(a.buf) - 1
	} else {
		a.tail--
	}
	a.size--
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Helper to reuse the slices package functions. The logical sequence
// occupies at most two contiguous arcs of the buffer.
func (a *Array[T]) slices() (s1, s2 []T) {
	if a == nil || a.size == 0 {
		return nil, nil
	}
	if a.head < a.tail {
		return a.buf[a.head:a.tail], nil
	}
	return a.buf[a.head:], a.buf[:a.tail]
}

// MakeSliceCopy allocates a slice to hold every element and copies them out
// in logical order. Prefer passing a buffer to CopySlice for memory reuse.
func (a *Array[T]) MakeSliceCopy() []T {
	s := make([]T, a.Len())
	a.CopySlice(0, s)
	return s
}

// CopySlice has the same semantics as the copy() built-in: it copies
// elements starting at logical index start into buf until buf is full or the
// Array is over, whichever happens first, and returns the number copied.
func (a *Array[T]) CopySlice(start int, buf []T) int {
	s1, s2 := a.slices()
	if start < len(s1) {
		n := copy(buf, s1[start:])
		if start+len(buf) > len(s1) {
			n += copy(buf[n:], s2)
		}
		return n
	}
	if start-len(s1) >= len(s2) {
		return 0
	}
	return copy(buf, s2[start-len(s1):])
}

// IndexFunc returns the first logical index satisfying f, or -1 if there is
// none. It has the same semantics as slices.IndexFunc.
func (a *Array[T]) IndexFunc(f func(T) bool) int {
	s1, s2 := a.slices()
	if i := slices.IndexFunc(s1, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(s2, f); i != -1 {
		return i + len(s1)
	}
	return -1
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// All returns an iterator over index-value pairs in logical order, with the
// same semantics as slices.All. If you don't need indexes, use Iter instead.
// Does not panic if the Array is modified during iteration, but the walk may
// observe a mix of old and new elements.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s1, s2 := a.slices()
		for i, t := range s1 {
			if !yield(i, t) {
				return
			}
		}
		for i, t := range s2 {
			if !yield(i+len(s1), t) {
				return
			}
		}
	}
}

// Iter returns an iterator over values only, in logical order. If you need
// indexes, use All instead.
func (a *Array[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		s1, s2 := a.slices()
		for _, t := range s1 {
			if !yield(t) {
				return
			}
		}
		for _, t := range s2 {
			if !yield(t) {
				return
			}
		}
	}
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrNegativeCapacity is returned when asked to construct an Array with a
// negative capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// grow reallocates to double capacity (minimum 1) and repacks the logical
// sequence into slots 0..size-1 of the new buffer. Callers only invoke it on
// a full buffer, so the two copies below move exactly size elements in
// logical order.
func (a *Array[T]) grow() {
	newBuf := make([]T, 2*max(len(a.buf), 1))
	n := copy(newBuf, a.buf[a.head:])
	copy(newBuf[n:], a.buf[:a.head])
	a.buf = newBuf
	a.head = 0
	a.tail = a.size
}

func (a *Array[T]) checkBounds(i int) {
	if i < 0 || i >= a.size {
		panic(fmt.Sprintf("circular: index %d out of bounds with length %d", i, a.size))
	}
}
