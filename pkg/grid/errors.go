package grid

import (
	"errors"
	"fmt"
)

// ErrLedgerConsumed is returned when a ledger is applied a second time.
var ErrLedgerConsumed = errors.New("grid: ledger already applied")

// RangeError describes a ledger operation outside the event sequence.
type RangeError struct {
	Index  int
	Remove int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("grid: edit [%d:+%d] out of range for %d events", e.Index, e.Remove, e.Len)
}

// OverlapError describes a removal that starts inside an earlier removal.
type OverlapError struct {
	Index   int
	PrevEnd int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("grid: removal at %d overlaps removal ending at %d", e.Index, e.PrevEnd)
}

// ConsistencyError reports an event sequence the resolver cannot structure.
type ConsistencyError struct {
	Index   int
	Message string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("grid: inconsistent events at %d: %s", e.Index, e.Message)
}

// BalanceError reports an Enter/Exit mismatch or a coverage violation found by
// the Check functions.
type BalanceError struct {
	Index   int
	Message string
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("grid: event %d: %s", e.Index, e.Message)
}
