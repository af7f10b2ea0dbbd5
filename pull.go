package chunk

import "iter"

// Pull converts chunk production into explicit calls to next and stop.
// next returns the next complete group and true, or nil and false once seq
// has no further complete group to offer; from then on every call returns
// false without pulling from seq again. stop releases seq early, after
// which next also keeps returning false.
//
// As with Chunks, the group returned by next is reused and only valid until
// the following call to next or stop.
func Pull[V any](size int, seq iter.Seq[V]) (next func() ([]V, bool), stop func(), err error) {
	chunks, err := Chunks(size, seq)
	if err != nil {
		return nil, nil, err
	}
	next, stop = iter.Pull(chunks)
	return next, stop, nil
}
