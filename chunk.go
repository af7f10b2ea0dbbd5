// Package chunk implements lazy fixed-size chunking of range functions.
//
// Chunks adapts a sequence of values into a sequence of groups of exactly
// size elements, preserving encounter order:
//
//	chunks, err := chunk.Chunks(3, slices.Values([]int{0, 1, 2, 3, 4, 5, 6}))
//	if err != nil {
//		...
//	}
//	for c := range chunks {
//		fmt.Println(c) // [0 1 2], then [3 4 5]
//	}
//
// Trailing values that do not fill a complete group (6 above) are consumed
// from the source but never delivered.
package chunk

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrInvalidChunkSize is reported at construction when the requested chunk
// size is less than one.
var ErrInvalidChunkSize = errors.New("chunk size must be at least 1")

func checkSize(size int) error {
	if size < 1 {
		return errors.Wrapf(ErrInvalidChunkSize, "size=%d", size)
	}
	return nil
}

// Chunks returns a sequence of groups of exactly size values read from seq,
// in the order seq produced them. Values remaining after the last complete
// group are consumed but dropped; no short group is ever yielded.
//
// The groups share a single buffer allocated when iteration begins and
// overwritten on each turn of the loop, so a group is only valid until the
// consumer's loop body returns and must be cloned if retained.
func Chunks[V any](size int, seq iter.Seq[V]) (iter.Seq[[]V], error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return func(yield func([]V) bool) {
		buf := make([]V, size)
		n := 0

		for buf[n] = range seq {
			if n++; n == size {
				if !yield(buf) {
					return
				}
				n = 0
			}
		}
	}, nil
}

// ChunksErr is like Chunks for sequences that can fail. An error produced by
// seq is yielded unmodified as soon as it occurs and terminates the returned
// sequence; values buffered for the group in progress are discarded, never
// delivered alongside or after the error.
func ChunksErr[V any](size int, seq iter.Seq2[V, error]) (iter.Seq2[[]V, error], error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return func(yield func([]V, error) bool) {
		buf := make([]V, size)
		n := 0

		for v, err := range seq {
			if err != nil {
				yield(nil, err)
				return
			}
			buf[n] = v
			if n++; n == size {
				if !yield(buf, nil) {
					return
				}
				n = 0
			}
		}
	}, nil
}
