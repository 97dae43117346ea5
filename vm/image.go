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

package vm

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// RecordSize is the on-disk size, in bytes, of one encoded
// instruction: a one-byte opcode tag, seven bytes of zero padding,
// and an eight-byte little-endian operand.
const RecordSize = 16

// EncodeImage writes prog as a sequence of fixed-size records to w, in
// the canonical little-endian layout documented for the image format.
func EncodeImage(w io.Writer, prog []Instruction) error {
	var rec [RecordSize]byte
	for i, inst := range prog {
		rec[0] = byte(inst.Op)
		rec[1], rec[2], rec[3], rec[4], rec[5], rec[6], rec[7] = 0, 0, 0, 0, 0, 0, 0
		binary.LittleEndian.PutUint64(rec[8:], uint64(inst.Operand))
		if _, err := w.Write(rec[:]); err != nil {
			return errors.Wrapf(err, "write record %d", i)
		}
	}
	return nil
}

// DecodeImage reads a sequence of fixed-size records from r until EOF
// and returns the decoded program. It returns an error if the input
// length is not a multiple of RecordSize or exceeds ProgramCapacity
// instructions.
func DecodeImage(r io.Reader) ([]Instruction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read image")
	}
	if len(data)%RecordSize != 0 {
		return nil, errors.Errorf("image size %d is not a multiple of record size %d", len(data), RecordSize)
	}
	n := len(data) / RecordSize
	if n > ProgramCapacity {
		return nil, errors.Errorf("image holds %d instructions, exceeds capacity %d", n, ProgramCapacity)
	}
	prog := make([]Instruction, n)
	for i := 0; i < n; i++ {
		rec := data[i*RecordSize : (i+1)*RecordSize]
		prog[i] = Instruction{
			Op:      Opcode(rec[0]),
			Operand: Word(binary.LittleEndian.Uint64(rec[8:16])),
		}
	}
	return prog, nil
}
