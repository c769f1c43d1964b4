package adapt

// Cursor tracks which logical section of a document the structured-lesson
// flow has reached. It advances by exactly one per successful generation and
// never moves backwards. Callers issue requests sequentially, so no locking.
type Cursor struct {
	index int
}

// Index returns the zero-based section the next request will target.
func (c *Cursor) Index() int { return c.index }

func (c *Cursor) advance() { c.index++ }
