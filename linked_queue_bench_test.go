package linkedqueue

import (
	"testing"
)

var Result int

func BenchmarkEnqueueDequeue(b *testing.B) {
	q := New[int]()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		Result, _ = q.Dequeue()
	}
}

func BenchmarkIterate(b *testing.B) {
	q := New[int]()
	for i := 0; i < 1<<10; i++ {
		q.Enqueue(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range q.All() {
			sum += v
		}
		Result = sum
	}
}

func BenchmarkEraseEveryOther(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		q := New[int]()
		for j := 0; j < 1<<10; j++ {
			q.Enqueue(j)
		}
		b.StartTimer()

		it := q.Begin()
		for keep := true; it.current != nil; keep = !keep {
			if !keep {
				_, _ = it.Erase()
			}
			_ = it.Next()
		}
		Result = q.Len()
	}
}

func BenchmarkHash(b *testing.B) {
	q := New[int]()
	for i := 0; i < 1<<10; i++ {
		q.Enqueue(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Result = int(Hash(q))
	}
}
