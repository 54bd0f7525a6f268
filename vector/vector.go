// Package vector implements a generic resizable array with explicit
// amortized-growth bookkeeping. It is a plain sequential container;
// the companion skiplist package provides the ordered map.
package vector

import "fmt"

// minCapacity is the smallest buffer allocated once a vector grows at
// all.
const minCapacity = 4

// Vector is a resizable array of T. The zero value is an empty vector
// ready for use.
type Vector[T any] struct {
	items []T
}

// Option configures a Vector at construction time.
type Option func(*settings)

type settings struct {
	capacity int
}

// WithCapacity pre-allocates room for n elements. Non-positive values
// are ignored.
func WithCapacity(n int) Option {
	return func(s *settings) { s.capacity = n }
}

// New creates an empty Vector.
func New[T any](opts ...Option) *Vector[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	v := &Vector[T]{}
	if s.capacity > 0 {
		v.items = make([]T, 0, s.capacity)
	}
	return v
}

// Len returns the number of stored elements.
func (v *Vector[T]) Len() int {
	return len(v.items)
}

// Cap returns the current buffer capacity.
func (v *Vector[T]) Cap() int {
	return cap(v.items)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return len(v.items) == 0
}

// grown returns a buffer with room for at least n more elements,
// doubling the capacity when the current buffer is full.
func (v *Vector[T]) grown(n int) []T {
	need := len(v.items) + n
	if need <= cap(v.items) {
		return v.items
	}
	newCap := 2 * cap(v.items)
	if newCap < need {
		newCap = need
	}
	if newCap < minCapacity {
		newCap = minCapacity
	}
	buf := make([]T, len(v.items), newCap)
	copy(buf, v.items)
	return buf
}

// Grow ensures capacity for at least n additional elements.
func (v *Vector[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	v.items = v.grown(n)
}

// Push appends an element to the end of the vector.
func (v *Vector[T]) Push(item T) {
	v.items = append(v.grown(1), item)
}

// Pop removes and returns the last element. It returns the zero value
// and false when the vector is empty.
func (v *Vector[T]) Pop() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}
	last := len(v.items) - 1
	item := v.items[last]
	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
	return item, true
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return v.items[i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (v *Vector[T]) Set(i int, item T) {
	v.checkIndex(i)
	v.items[i] = item
}

// Insert places an element at index i, shifting later elements right.
// i may equal Len(), which appends. It panics if i is out of range.
func (v *Vector[T]) Insert(i int, item T) {
	if i == len(v.items) {
		v.Push(item)
		return
	}
	v.checkIndex(i)
	v.items = append(v.grown(1), item)
	copy(v.items[i+1:], v.items[i:])
	v.items[i] = item
}

// Remove deletes and returns the element at index i, shifting later
// elements left. It panics if i is out of range.
func (v *Vector[T]) Remove(i int) T {
	v.checkIndex(i)
	item := v.items[i]
	copy(v.items[i:], v.items[i+1:])
	last := len(v.items) - 1
	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
	return item
}

// Swap exchanges the elements at indices i and j. It panics if either
// index is out of range.
func (v *Vector[T]) Swap(i, j int) {
	v.checkIndex(i)
	v.checkIndex(j)
	v.items[i], v.items[j] = v.items[j], v.items[i]
}

// Truncate shortens the vector to n elements, keeping capacity. It
// does nothing when n is at or beyond the current length.
func (v *Vector[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(v.items) {
		return
	}
	var zero T
	for i := n; i < len(v.items); i++ {
		v.items[i] = zero
	}
	v.items = v.items[:n]
}

// Clear removes all elements, keeping the allocated buffer.
func (v *Vector[T]) Clear() {
	v.Truncate(0)
}

// ForEach applies fn to every element in index order, stopping early
// when fn returns false.
func (v *Vector[T]) ForEach(fn func(i int, item T) bool) {
	for i, item := range v.items {
		if !fn(i, item) {
			return
		}
	}
}

// Clone returns a vector holding a copy of the elements.
func (v *Vector[T]) Clone() *Vector[T] {
	clone := &Vector[T]{}
	if len(v.items) > 0 {
		clone.items = make([]T, len(v.items))
		copy(clone.items, v.items)
	}
	return clone
}

// Items returns a copy of the elements as a slice.
func (v *Vector[T]) Items() []T {
	if len(v.items) == 0 {
		return nil
	}
	items := make([]T, len(v.items))
	copy(items, v.items)
	return items
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, len(v.items)))
	}
}
