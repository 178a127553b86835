// This file was automatically generated by genny.
// Any changes will be lost if this file is regenerated.
// see https://github.com/cheekybits/genny

package item

import (
	"github.com/snwfog/linkedqueue"
)

// ItemLinkedQueue is a LinkedQueue of *Item.
type ItemLinkedQueue = linkedqueue.LinkedQueue[*Item]

type ItemIterator = linkedqueue.Iterator[*Item]

func NewItemLinkedQueue(values ...*Item) *ItemLinkedQueue {
	return linkedqueue.Of[*Item](values...)
}

// DrainItemLinkedQueue dequeues every *Item in order, calling fn on each.
func DrainItemLinkedQueue(q *ItemLinkedQueue, fn func(*Item)) int {
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

// EraseItemIf erases every *Item matching pred through a single iterator and
// returns how many were removed.
func EraseItemIf(q *ItemLinkedQueue, pred func(*Item) bool) (int, error) {
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
