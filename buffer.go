package batch

// growBuffer is a dynamic array with an explicit fill count. Growth copies
// the filled prefix into a new backing array; the buffer never shrinks.
type growBuffer[T any] struct {
	data []T
	n    int
}

func newGrowBuffer[T any](capacity int) growBuffer[T] {
	return growBuffer[T]{data: make([]T, capacity)}
}

// free returns the unused capacity.
func (b *growBuffer[T]) free() int { return len(b.data) - b.n }

// reset drops the contents, keeping the allocation.
func (b *growBuffer[T]) reset() { b.n = 0 }

// filled returns the used prefix.
func (b *growBuffer[T]) filled() []T { return b.data[:b.n] }

// newCapacity returns the capacity needed for need more elements, or the
// current capacity if they already fit. Growth is at least minGrowth, the
// shortfall and the current capacity. limit caps the result when positive.
func (b *growBuffer[T]) newCapacity(need, minGrowth, limit int) int {
	shortfall := need - b.free()
	if shortfall <= 0 {
		return len(b.data)
	}
	c := len(b.data) + max(minGrowth, shortfall, len(b.data))
	if limit > 0 {
		c = min(c, limit)
	}
	return c
}

// grow replaces the backing array with one of capacity c.
func (b *growBuffer[T]) grow(c int) {
	if c <= len(b.data) {
		return
	}
	next := make([]T, c)
	copy(next, b.data[:b.n])
	b.data = next
}
