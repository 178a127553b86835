// Package linkedqueue provides a FIFO queue backed by a singly linked chain of
// nodes, together with a fail-fast Iterator that can erase the element it is
// positioned on.
//
// Every structural mutation bumps the queue's modification counter. An
// Iterator caches the counter when it is created and compares it on every
// access, so using an Iterator after the queue was changed through another
// handle returns ErrConcurrentModification instead of reading a detached node.
// Erase through the Iterator itself re-synchronises its cached counter.
//
// Neither type is safe for concurrent use.
package linkedqueue
