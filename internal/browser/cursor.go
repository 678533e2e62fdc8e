package browser

// Cursor is a selection index into one pane's collection.
type Cursor int

// NoSelection marks a cursor whose collection is empty.
const NoSelection Cursor = -1

// Index returns the selected index and whether the cursor is set.
func (c Cursor) Index() (int, bool) {
	if c < 0 {
		return 0, false
	}
	return int(c), true
}

// Valid reports whether the cursor is set and inside a collection of length n.
func (c Cursor) Valid(n int) bool {
	i, ok := c.Index()
	return ok && i < n
}

// Wrap moves the cursor by delta within a collection of length n, wrapping
// past either end. An unset cursor moves as if it were at 0. When n is zero
// the cursor is returned unchanged.
func (c Cursor) Wrap(delta, n int) Cursor {
	if n <= 0 {
		return c
	}
	i, _ := c.Index()
	return Cursor(((i+delta)%n + n) % n)
}

// resetFor returns the cursor a freshly replaced collection of length n gets.
func resetFor(n int) Cursor {
	if n > 0 {
		return 0
	}
	return NoSelection
}
