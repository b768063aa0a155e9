package state

// Collection is the session snapshot of one fetched resource. Every fetch is
// tagged with a generation; only the latest generation may complete it.
// Collection does no locking of its own, Grid serialises access.
type Collection[T any] struct {
	items      []T
	status     Status
	err        error
	generation uint64
}

// Begin marks a new fetch in flight and returns its generation
func (c *Collection[T]) Begin() uint64 {
	c.generation++
	c.status = StatusLoading
	c.err = nil
	return c.generation
}

// Complete replaces the items if gen is still the latest fetch. It reports
// whether the result was applied.
func (c *Collection[T]) Complete(gen uint64, items []T) bool {
	if gen != c.generation {
		return false
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.status = StatusReady
	c.err = nil
	return true
}

// Fail records err if gen is still the latest fetch. Items from an earlier
// successful fetch are kept.
func (c *Collection[T]) Fail(gen uint64, err error) bool {
	if gen != c.generation {
		return false
	}
	c.status = StatusFailed
	c.err = err
	return true
}

func (c *Collection[T]) Items() []T {
	return c.items
}

func (c *Collection[T]) Status() Status {
	return c.status
}

// Err returns the failure reason when Status is StatusFailed
func (c *Collection[T]) Err() error {
	return c.err
}
