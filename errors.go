package linkedqueue

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptyQueue                  = errors.New("queue is empty")
	ErrConcurrentModification      = errors.New("concurrent modification")
	ErrCannotErase                 = errors.New("iterator cursor already erased")
	ErrIteratorPositionIllegal     = errors.New("iterator position illegal")
	ErrComparingDifferentIterators = errors.New("comparing iterators of different queues")
	ErrIteratorType                = errors.New("iterator type mismatch")
)

func fail(err error, op string) error {
	return errors.WithMessage(err, op)
}
