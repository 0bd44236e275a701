package pathfinding

import "container/heap"

type queueItem[T any] struct {
	value    T
	priority float64
}

// queueItems реализует heap.Interface
type queueItems[T any] []queueItem[T]

func (q queueItems[T]) Len() int           { return len(q) }
func (q queueItems[T]) Less(i, j int) bool { return q[i].priority < q[j].priority }
func (q queueItems[T]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *queueItems[T]) Push(x any) {
	*q = append(*q, x.(queueItem[T]))
}

func (q *queueItems[T]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = queueItem[T]{}
	*q = old[:n-1]
	return item
}

// PriorityQueue is a binary min-heap. Items with equal priority come out in
// no particular order.
type PriorityQueue[T any] struct {
	items queueItems[T]
}

// Enqueue adds item with the given priority.
func (pq *PriorityQueue[T]) Enqueue(item T, priority float64) {
	heap.Push(&pq.items, queueItem[T]{value: item, priority: priority})
}

// Dequeue removes and returns the lowest-priority item. ok is false when the
// queue is empty.
func (pq *PriorityQueue[T]) Dequeue() (item T, ok bool) {
	if len(pq.items) == 0 {
		return item, false
	}
	return heap.Pop(&pq.items).(queueItem[T]).value, true
}

func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.items) == 0 }

func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }
