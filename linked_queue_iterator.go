package linkedqueue

import (
	"fmt"
)

// region Cursor

// Cursor is the iterator protocol over a queue of T. Iterator is the only
// implementation in this package; comparing it against any other Cursor fails
// with ErrIteratorType.
type Cursor[T any] interface {
	Next() error
	Value() (T, error)
	Erase() (T, error)
	Equal(rhs Cursor[T]) (bool, error)
}

// endregion

// region Iterator

// Iterator walks a LinkedQueue from its head to the position one past the
// rear. When canErase is false, current already denotes the element after the
// erased one and the next advance only re-arms the cursor.
//
// WARN: NOT CONCURRENT SAFE!!
type Iterator[T any] struct {
	prev    *node[T] // nil when current is the head
	current *node[T] // nil at End
	queue   *LinkedQueue[T]

	expectedModCount int
	canErase         bool
}

var _ Cursor[int] = (*Iterator[int])(nil)

func newIterator[T any](q *LinkedQueue[T], initial *node[T]) *Iterator[T] {
	return &Iterator[T]{
		current:          initial,
		queue:            q,
		expectedModCount: q.modCount,
		canErase:         initial != nil,
	}
}

func (it *Iterator[T]) check(op string) error {
	if it.expectedModCount != it.queue.modCount {
		return fail(ErrConcurrentModification, op)
	}

	return nil
}

// Next advances the cursor. Right after an Erase it does not move, because
// Erase already stepped onto the following element. At End it is a no-op.
func (it *Iterator[T]) Next() error {
	if err := it.check("LinkedQueue.Iterator.Next"); err != nil {
		return err
	}

	it.advance()
	return nil
}

// PostNext advances the cursor like Next and returns a copy of the cursor as
// it was before advancing.
func (it *Iterator[T]) PostNext() (*Iterator[T], error) {
	if err := it.check("LinkedQueue.Iterator.PostNext"); err != nil {
		return nil, err
	}

	before := it.Clone()
	it.advance()
	return before, nil
}

func (it *Iterator[T]) advance() {
	if it.current == nil {
		return
	}

	if it.canErase {
		it.prev = it.current
		it.current = it.current.next
		it.canErase = it.current != nil
	} else {
		it.canErase = true
	}
}

// Value returns the element under the cursor.
func (it *Iterator[T]) Value() (T, error) {
	ref, err := it.ref("LinkedQueue.Iterator.Value")
	if err != nil {
		var zero T
		return zero, err
	}

	return *ref, nil
}

// Ref returns a reference to the element under the cursor for in-place
// updates.
func (it *Iterator[T]) Ref() (*T, error) {
	return it.ref("LinkedQueue.Iterator.Ref")
}

func (it *Iterator[T]) ref(op string) (*T, error) {
	if err := it.check(op); err != nil {
		return nil, err
	}
	if !it.canErase || it.current == nil {
		return nil, fail(ErrIteratorPositionIllegal, op)
	}

	return &it.current.value, nil
}

// Erase unlinks the element under the cursor and returns it. The cursor moves
// onto the following element but must be advanced with Next before it can be
// dereferenced or erased again.
func (it *Iterator[T]) Erase() (T, error) {
	var zero T
	if err := it.check("LinkedQueue.Iterator.Erase"); err != nil {
		return zero, err
	}
	if !it.canErase || it.current == nil {
		return zero, fail(ErrCannotErase, "LinkedQueue.Iterator.Erase")
	}

	q := it.queue
	erased := it.current
	it.current = erased.next
	if it.prev == nil {
		q.head = it.current
	} else {
		it.prev.next = it.current
	}
	if it.current == nil {
		q.tail = it.prev
	}
	erased.next = nil

	q.count--
	q.modCount++
	it.expectedModCount = q.modCount
	it.canErase = false
	return erased.value, nil
}

// Equal reports whether both cursors denote the same position. rhs must be an
// Iterator over the same queue.
func (it *Iterator[T]) Equal(rhs Cursor[T]) (bool, error) {
	other, err := it.peer(rhs, "LinkedQueue.Iterator.Equal")
	if err != nil {
		return false, err
	}

	return it.current == other.current, nil
}

func (it *Iterator[T]) NotEqual(rhs Cursor[T]) (bool, error) {
	other, err := it.peer(rhs, "LinkedQueue.Iterator.NotEqual")
	if err != nil {
		return false, err
	}

	return it.current != other.current, nil
}

// peer validates a comparison. Only the receiver is checked for staleness, so
// an End taken before a loop of erases stays comparable.
func (it *Iterator[T]) peer(rhs Cursor[T], op string) (*Iterator[T], error) {
	if err := it.check(op); err != nil {
		return nil, err
	}
	other, ok := rhs.(*Iterator[T])
	if !ok || other == nil {
		return nil, fail(ErrIteratorType, op)
	}
	if it.queue != other.queue {
		return nil, fail(ErrComparingDifferentIterators, op)
	}

	return other, nil
}

// Clone returns an independent cursor at the same position and state.
func (it *Iterator[T]) Clone() *Iterator[T] {
	c := *it
	return &c
}

func (it *Iterator[T]) String() string {
	current := "nil"
	if it.current != nil {
		current = fmt.Sprint(it.current.value)
	}

	return fmt.Sprintf("LinkedQueue.Iterator[current=%s,can_erase=%t,expected_mod_count=%d,mod_count=%d]",
		current, it.canErase, it.expectedModCount, it.queue.modCount)
}

// endregion
