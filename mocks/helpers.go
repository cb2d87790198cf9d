//Package mocks provides fakes for random sources and output sinks
package mocks

import (
	"errors"
	"io"
)

//ErrProgrammedWriteFailure is returned by FailingWriter once its budget is used up
var ErrProgrammedWriteFailure = errors.New("programmed writer failure")

//SequenceSource replays Values in order and starts over once all have been returned.
//Fulfills the golang.org/x/exp/rand Source interface
type SequenceSource struct {
	Values []uint64
	next   int
}

func (s *SequenceSource) Uint64() uint64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next]
	s.next = (s.next + 1) % len(s.Values)
	return v
}

func (s *SequenceSource) Seed(_ uint64) {
	s.next = 0
}

//FailingWriter accepts Budget bytes and fails every write that would exceed it
type FailingWriter struct {
	Budget  int
	Written []byte
}

func (f *FailingWriter) Write(p []byte) (int, error) {
	remaining := f.Budget - len(f.Written)
	if remaining >= len(p) {
		f.Written = append(f.Written, p...)
		return len(p), nil
	}
	if remaining < 0 {
		remaining = 0
	}
	f.Written = append(f.Written, p[:remaining]...)
	return remaining, ErrProgrammedWriteFailure
}

var _ io.Writer = (*FailingWriter)(nil)
