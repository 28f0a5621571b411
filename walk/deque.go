package walk

// deque is a double-ended work list backing the traversal loops. Popping from
// the front gives breadth-first order, popping from the back depth-first.
type deque[T any] struct {
	items []T
	head  int
}

func (d *deque[T]) Len() int {
	return len(d.items) - d.head
}

func (d *deque[T]) PushBack(v T) {
	d.items = append(d.items, v)
}

func (d *deque[T]) PopFront() T {
	v := d.items[d.head]
	var zero T
	d.items[d.head] = zero
	d.head++
	if d.head == len(d.items) {
		d.items = d.items[:0]
		d.head = 0
	}
	return v
}

func (d *deque[T]) PopBack() T {
	last := len(d.items) - 1
	v := d.items[last]
	var zero T
	d.items[last] = zero
	d.items = d.items[:last]
	return v
}
