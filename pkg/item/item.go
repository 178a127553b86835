package item

import (
	"fmt"

	"go.uber.org/atomic"
)

type Item struct {
	Id          int
	AccessCount *atomic.Int64
}

func NewItem(id int) *Item {
	return &Item{Id: id, AccessCount: atomic.NewInt64(0)}
}

func (it *Item) Identity() uint64 {
	return uint64(it.Id)
}

func (it *Item) String() string {
	return fmt.Sprintf("item(%d)", it.Id)
}

// Touch bumps the access count of every item in q, head to rear, and returns
// the number of items visited. Items may be shared between queues owned by
// different goroutines.
func Touch(q *ItemLinkedQueue) (int, error) {
	n := 0
	err := q.Each(func(it *Item) bool {
		it.AccessCount.Inc()
		n++
		return true
	})

	return n, err
}
