package linkedqueue

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"

	"github.com/dchest/siphash"

	"github.com/snwfog/linkedqueue/pkg/hashing"
)

// region Node
type node[T any] struct {
	value T
	next  *node[T]
}

// endregion

// region LinkedQueue

// LinkedQueue is a FIFO queue over a singly linked chain. The zero value is an
// empty queue ready for use.
type LinkedQueue[T any] struct {
	head *node[T]
	tail *node[T] // only used to make Enqueue O(1)

	count    int
	modCount int
}

func New[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Of returns a queue holding values in order.
func Of[T any](values ...T) *LinkedQueue[T] {
	q := New[T]()
	q.EnqueueMany(values...)
	return q
}

// From returns a queue holding every element of seq in iteration order.
func From[T any](seq iter.Seq[T]) *LinkedQueue[T] {
	q := New[T]()
	q.EnqueueAll(seq)
	return q
}

// Clone returns a deep, order preserving copy of q.
func (q *LinkedQueue[T]) Clone() *LinkedQueue[T] {
	c := New[T]()
	c.EnqueueAll(q.All())
	return c
}

func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.count == 0
}

func (q *LinkedQueue[T]) Len() int {
	return q.count
}

// Peek returns the head element without removing it.
func (q *LinkedQueue[T]) Peek() (T, error) {
	ref, err := q.PeekRef()
	if err != nil {
		var zero T
		return zero, err
	}

	return *ref, nil
}

// PeekRef returns a reference to the head element. Writes through it update
// the queue in place and do not count as a structural mutation.
func (q *LinkedQueue[T]) PeekRef() (*T, error) {
	if q.head == nil {
		return nil, fail(ErrEmptyQueue, "LinkedQueue.Peek")
	}

	return &q.head.value, nil
}

// Enqueue appends v at the rear and returns the number of elements added,
// which is always 1.
func (q *LinkedQueue[T]) Enqueue(v T) int {
	n := &node[T]{value: v}
	if q.head == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}

	q.count++
	q.modCount++
	return 1
}

func (q *LinkedQueue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, fail(ErrEmptyQueue, "LinkedQueue.Dequeue")
	}

	n := q.head
	q.head = n.next
	n.next = nil
	if q.head == nil {
		q.tail = nil
	}

	q.count--
	q.modCount++
	return n.value, nil
}

// Clear drops the whole chain. It is a single mutation regardless of length.
func (q *LinkedQueue[T]) Clear() {
	q.head, q.tail = nil, nil
	q.count = 0
	q.modCount++
}

// EnqueueAll enqueues every element of seq in order and returns how many were
// added. seq must not range over q itself.
func (q *LinkedQueue[T]) EnqueueAll(seq iter.Seq[T]) int {
	count := 0
	for v := range seq {
		count += q.Enqueue(v)
	}

	return count
}

func (q *LinkedQueue[T]) EnqueueMany(values ...T) int {
	count := 0
	for _, v := range values {
		count += q.Enqueue(v)
	}

	return count
}

// Assign replaces the contents of q with a copy of src. Assigning a queue to
// itself does nothing.
func (q *LinkedQueue[T]) Assign(src *LinkedQueue[T]) {
	if q == src {
		return
	}

	var head, tail *node[T]
	for p := src.head; p != nil; p = p.next {
		n := &node[T]{value: p.value}
		if head == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	q.head, q.tail = head, tail
	q.count = src.count
	q.modCount++
}

// EqualFunc reports whether q and rhs hold the same number of elements and eq
// holds pairwise from head to rear. A nil queue only equals nil.
func (q *LinkedQueue[T]) EqualFunc(rhs *LinkedQueue[T], eq func(a, b T) bool) bool {
	if q == rhs {
		return true
	}
	if q == nil || rhs == nil {
		return false
	}
	if q.count != rhs.count {
		return false
	}

	for l, r := q.head, rhs.head; l != nil; l, r = l.next, r.next {
		if !eq(l.value, r.value) {
			return false
		}
	}

	return true
}

func Equal[T comparable](a, b *LinkedQueue[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable](a, b *LinkedQueue[T]) bool {
	return !Equal(a, b)
}

// ToSlice returns the elements from head to rear.
func (q *LinkedQueue[T]) ToSlice() []T {
	out := make([]T, 0, q.count)
	for p := q.head; p != nil; p = p.next {
		out = append(out, p.value)
	}

	return out
}

// Each calls fn on every element from head to rear until fn returns false.
// If fn mutates q, Each stops and returns ErrConcurrentModification.
func (q *LinkedQueue[T]) Each(fn func(v T) bool) error {
	it := q.Begin()
	end := q.End()
	for {
		done, err := it.Equal(end)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		v, err := it.Value()
		if err != nil {
			return err
		}
		if !fn(v) {
			return nil
		}

		if err := it.Next(); err != nil {
			return err
		}
	}
}

// All returns a range-over-func sequence of the elements. Mutating q while
// ranging panics with ErrConcurrentModification, as a map would.
func (q *LinkedQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if err := q.Each(yield); err != nil {
			panic(err)
		}
	}
}

// String renders the elements as queue[a,b,c]:rear.
func (q *LinkedQueue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("queue[")
	for p := q.head; p != nil; p = p.next {
		fmt.Fprint(&sb, p.value)
		if p.next != nil {
			sb.WriteByte(',')
		}
	}
	sb.WriteString("]:rear")
	return sb.String()
}

// Dump is the debugging rendering: cached size, modification count and the
// chain from front to rear.
func (q *LinkedQueue[T]) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "LinkedQueue[used=%d,mod_count=%d]:front", q.count, q.modCount)
	for p := q.head; p != nil; p = p.next {
		fmt.Fprintf(&sb, "->%v", p.value)
	}
	sb.WriteString("->nil:rear")
	if q.tail != nil {
		fmt.Fprintf(&sb, "=%v", q.tail.value)
	}
	return sb.String()
}

func (q *LinkedQueue[T]) Begin() *Iterator[T] {
	return newIterator(q, q.head)
}

func (q *LinkedQueue[T]) End() *Iterator[T] {
	return newIterator(q, nil)
}

// endregion

// region Hash
const (
	// fold keys, distinct from the element keys in pkg/hashing
	sipHashKey1 = 0x5c1b6ad0f4e0d2a3
	sipHashKey2 = 0x9e07c3d1b0a84f6e
)

// Hash folds the key of every element, head to rear, into one value. Queues
// that are Equal hash equally. Element keys come from hashing.Key, which panics
// on types it cannot key.
func Hash[T any](q *LinkedQueue[T]) uint64 {
	return q.HashFunc(func(v T) uint64 { return hashing.Key(v) })
}

func (q *LinkedQueue[T]) HashFunc(key func(T) uint64) uint64 {
	var buf [16]byte
	h := uint64(q.count)
	for p := q.head; p != nil; p = p.next {
		binary.LittleEndian.PutUint64(buf[:8], h)
		binary.LittleEndian.PutUint64(buf[8:], key(p.value))
		h = siphash.Hash(sipHashKey1, sipHashKey2, buf[:])
	}

	return h
}

// endregion
