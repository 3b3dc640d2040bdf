package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Sequence hands out monotonically increasing order numbers for synthesized
// purchase orders. It is owned by the caller layer, which seeds it from the
// highest persisted order number; planning operations receive it explicitly
// instead of reaching for shared global state.
//
// Sequence is not safe for concurrent use; the engine assumes a single logical
// caller per lifetime.
type Sequence struct {
	next int
}

// NewSequence creates a sequence whose first issued number is next.
// The seed must be positive.
func NewSequence(next int) (*Sequence, error) {
	if next <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"next",
			fmt.Errorf("%d is not greater than 0", next),
		)
	}

	return &Sequence{next: next}, nil
}

// Next issues the next order number and advances the sequence.
func (s *Sequence) Next() int {
	n := s.next
	s.next++
	return n
}

// Peek returns the number the next call to Next will issue, without advancing.
func (s *Sequence) Peek() int {
	return s.next
}
