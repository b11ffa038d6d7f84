package batcher

import (
	"errors"
)

var ErrInvalidSize = errors.New("batch size must be greater than 0")

// Batch splits input into consecutive groups of size elements. The last group
// holds the remainder. An empty input yields no groups.
func Batch[T any](input []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	var batches [][]T
	if len(input) > 0 {
		batches = make([][]T, 0, Count(len(input), size))
	}
	for idx := 0; idx < len(input); idx += size {
		endidx := min(idx+size, len(input))
		// cap each group so an append on it can't spill into the next one
		batches = append(batches, input[idx:endidx:endidx])
	}

	return batches, nil
}

// Count returns how many groups Batch produces for n items.
func Count(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
