package document

// lineCache holds one lazily computed value per line. It is only ever
// cleared as a whole.
type lineCache[T any] struct {
	entries map[int]T
}

func newLineCache[T any]() *lineCache[T] {
	return &lineCache[T]{entries: make(map[int]T)}
}

// get returns the cached value for line, computing and storing it with
// fill on a miss.
func (c *lineCache[T]) get(line int, fill func(line int) T) T {
	if v, ok := c.entries[line]; ok {
		return v
	}
	v := fill(line)
	c.entries[line] = v
	return v
}

func (c *lineCache[T]) has(line int) bool {
	_, ok := c.entries[line]
	return ok
}

func (c *lineCache[T]) len() int {
	return len(c.entries)
}

// clear drops every entry, keeping the map.
func (c *lineCache[T]) clear() {
	clear(c.entries)
}
