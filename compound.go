package recurrence

import "time"

// CompoundIterator streams a k-way merge of included iterators minus a
// k-way merge of excluded iterators, emitting each unique occurrence once.
// It is itself an OccurrenceIterator, so Join/Except compose.
type CompoundIterator struct {
	included []OccurrenceIterator
	excluded []OccurrenceIterator

	next *Occurrence
	done bool
}

// Join returns the union of iters.
func Join(iters ...OccurrenceIterator) *CompoundIterator {
	return &CompoundIterator{included: iters}
}

// Except returns the set difference: every occurrence included emits that
// excluded does not.
func Except(included, excluded []OccurrenceIterator) *CompoundIterator {
	return &CompoundIterator{included: included, excluded: excluded}
}

func (c *CompoundIterator) HasNext() bool {
	if c.done {
		return false
	}
	if c.next != nil {
		return true
	}
	occ, ok := c.computeNext()
	if !ok {
		c.done = true
		return false
	}
	c.next = &occ
	return true
}

func (c *CompoundIterator) Peek() (Occurrence, bool) {
	if !c.HasNext() {
		return Occurrence{}, false
	}
	return *c.next, true
}

func (c *CompoundIterator) Next() Occurrence {
	occ, ok := c.Peek()
	if !ok {
		return Occurrence{}
	}
	c.next = nil
	return occ
}

func (c *CompoundIterator) AdvanceTo(t time.Time) {
	for _, it := range c.included {
		it.AdvanceTo(t)
	}
	for _, it := range c.excluded {
		it.AdvanceTo(t)
	}
	c.next = nil
	c.done = false
}

// computeNext finds the minimum head across included, drops excluded heads
// strictly below it, and discards the minimum if an excluded iterator's
// head exactly matches it (type-aware).
func (c *CompoundIterator) computeNext() (Occurrence, bool) {
	for {
		h, ok := c.minIncludedHead()
		if !ok {
			return Occurrence{}, false
		}

		for _, it := range c.included {
			if occ, ok := it.Peek(); ok && occ.equal(h) {
				it.Next()
			}
		}

		for _, it := range c.excluded {
			for {
				occ, ok := it.Peek()
				if !ok || !occ.Value.Before(h.Value) {
					break
				}
				it.Next()
			}
		}

		excludedMatch := false
		for _, it := range c.excluded {
			if occ, ok := it.Peek(); ok && occ.equal(h) {
				excludedMatch = true
			}
		}
		if excludedMatch {
			logExcluded(h)
			continue
		}
		return h, true
	}
}

func (c *CompoundIterator) minIncludedHead() (Occurrence, bool) {
	var min Occurrence
	found := false
	for _, it := range c.included {
		occ, ok := it.Peek()
		if !ok {
			continue
		}
		if !found || occ.Value.Before(min.Value) {
			min = occ
			found = true
		}
	}
	return min, found
}
