package grid

// operation is one queued ledger edit.
type operation struct {
	index  int
	remove int
	events []Event
}

// Ledger collects insertions and removals against an event sequence and applies
// them in one linear pass. Indices always refer to the original sequence, so
// operations can be registered in any order without re-indexing.
type Ledger struct {
	ops      []operation
	consumed bool
}

// Add queues the removal of remove events starting at index, and the
// insertion of events at index. Inserts at the same index are emitted in the
// order they were added; an index equal to the sequence length appends.
func (l *Ledger) Add(index, remove int, events ...Event) {
	l.ops = append(l.ops, operation{index: index, remove: remove, events: events})
}

// Len returns the number of queued operations.
func (l *Ledger) Len() int {
	return len(l.ops)
}

// Apply produces the edited sequence. It fails without output when an
// operation is out of range or two removals overlap. A ledger can be applied
// once.
func (l *Ledger) Apply(events []Event) ([]Event, error) {
	if l.consumed {
		return nil, ErrLedgerConsumed
	}
	l.consumed = true

	ordered, err := l.sorted(len(events))
	if err != nil {
		return nil, err
	}

	size := len(events)
	for _, op := range ordered {
		size += len(op.events) - op.remove
	}
	out := make([]Event, 0, size)

	skipTo := 0
	next := 0
	for idx := 0; idx <= len(events); idx++ {
		for next < len(ordered) && ordered[next].index == idx {
			op := ordered[next]
			out = append(out, op.events...)
			if op.remove > 0 {
				if idx < skipTo {
					return nil, &OverlapError{Index: idx, PrevEnd: skipTo}
				}
				skipTo = idx + op.remove
			}
			next++
		}
		if idx < len(events) && idx >= skipTo {
			out = append(out, events[idx])
		}
	}

	return out, nil
}

// sorted buckets the operations by index. The sort is stable and linear in
// the number of events and operations.
func (l *Ledger) sorted(size int) ([]operation, error) {
	counts := make([]int, size+2)
	for _, op := range l.ops {
		if op.index < 0 || op.index > size || op.remove < 0 || op.index+op.remove > size {
			return nil, &RangeError{Index: op.index, Remove: op.remove, Len: size}
		}
		counts[op.index+1]++
	}
	for idx := 1; idx < len(counts); idx++ {
		counts[idx] += counts[idx-1]
	}

	ordered := make([]operation, len(l.ops))
	for _, op := range l.ops {
		ordered[counts[op.index]] = op
		counts[op.index]++
	}
	return ordered, nil
}
