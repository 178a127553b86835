package generic

//go:generate genny -in=$GOFILE -out=../item/item_linked_queue.go -pkg=item gen "Value=*Item"

import (
	"github.com/cheekybits/genny/generic"

	"github.com/snwfog/linkedqueue"
)

type Value generic.Type

// ValueLinkedQueue is a LinkedQueue of Value.
type ValueLinkedQueue = linkedqueue.LinkedQueue[Value]

type ValueIterator = linkedqueue.Iterator[Value]

func NewValueLinkedQueue(values ...Value) *ValueLinkedQueue {
	return linkedqueue.Of[Value](values...)
}

// DrainValueLinkedQueue dequeues every Value in order, calling fn on each.
func DrainValueLinkedQueue(q *ValueLinkedQueue, fn func(Value)) int {
	n := 0
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		if err != nil {
			break
		}
		fn(v)
		n++
	}

	return n
}

// EraseValueIf erases every Value matching pred through a single iterator and
// returns how many were removed.
func EraseValueIf(q *ValueLinkedQueue, pred func(Value) bool) (int, error) {
	n := 0
	end := q.End()
	for it := q.Begin(); ; {
		done, err := it.Equal(end)
		if err != nil {
			return n, err
		}
		if done {
			return n, nil
		}

		v, err := it.Value()
		if err != nil {
			return n, err
		}
		if pred(v) {
			if _, err := it.Erase(); err != nil {
				return n, err
			}
			n++
		}

		if err := it.Next(); err != nil {
			return n, err
		}
	}
}
