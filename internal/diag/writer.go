// This file is part of stackvm.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diag implements the diagnostic sink cmd/bm hands to the
// execution engine.
package diag

import (
	"io"

	"github.com/pkg/errors"

	"stackvm/vm"
)

// Sink wraps the destination cmd/bm dumps the stack to. It latches the
// first write error so a broken pipe is reported once instead of on
// every dumped stack line, and it tallies how many instructions ran
// successfully so Report can turn a bare vm.Err into a run summary.
type Sink struct {
	w     io.Writer
	Err   error
	Steps int
}

// NewSink returns a Sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) Write(p []byte) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.Err = errors.Wrap(err, "write diagnostic output")
	}
	return n, s.Err
}

// Report records the outcome of one Step. It returns nil and tallies
// the step when e is OK; otherwise it returns e wrapped with the
// number of instructions that completed before the failure, which is
// the detail cmd/bm prints to the user instead of the bare error name.
func (s *Sink) Report(e vm.Err) error {
	if e.Ok() {
		s.Steps++
		return nil
	}
	return errors.Wrapf(e, "after %d instruction(s)", s.Steps)
}
