package chunk_test

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	chunk "github.com/achille-roussel/chunk-go"
)

func ExampleChunks() {
	chunks, err := chunk.Chunks(3, slices.Values([]int{0, 1, 2, 3, 4, 5, 6}))
	if err != nil {
		panic(err)
	}

	for c := range chunks {
		fmt.Println(c)
	}

	// Output:
	// [0 1 2]
	// [3 4 5]
}

func ExampleChunksErr() {
	sequence := func(n int, err error) iter.Seq2[int, error] {
		return func(yield func(int, error) bool) {
			for i := range n {
				if !yield(i, nil) {
					return
				}
			}
			yield(0, err)
		}
	}

	chunks, err := chunk.ChunksErr(2, sequence(5, errors.New("connection lost")))
	if err != nil {
		panic(err)
	}

	for c, err := range chunks {
		if err != nil {
			fmt.Println("error:", err)
			break
		}
		fmt.Println(c)
	}

	// Output:
	// [0 1]
	// [2 3]
	// error: connection lost
}

func ExamplePull() {
	next, stop, err := chunk.Pull(2, slices.Values([]string{"a", "b", "c", "d", "e"}))
	if err != nil {
		panic(err)
	}
	defer stop()

	for {
		c, ok := next()
		if !ok {
			break
		}
		fmt.Println(c)
	}

	// Output:
	// [a b]
	// [c d]
}
