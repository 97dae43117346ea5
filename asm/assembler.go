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

package asm

import (
	"strings"

	"github.com/pkg/errors"

	"stackvm/vm"
)

// LabelCapacity bounds both the resolved-label table and the
// unresolved-reference table independently.
const LabelCapacity = 8

type labelEntry struct {
	name string
	addr int
}

// Assemble translates source into a program. It is a two-pass
// translation: pass one scans lines, builds the resolved-label table
// and the program, and records any jump whose operand could not yet be
// resolved; pass two patches those jumps. Assembler failures are fatal
// and returned as a single descriptive error, never partial output.
func Assemble(source string) ([]vm.Instruction, error) {
	var (
		program    []vm.Instruction
		resolved   []labelEntry
		unresolved []labelEntry
	)

	lines := strings.Split(source, "\n")
	for _, raw := range lines {
		line := TrimRight(TrimLeft(raw))
		if line == "" || line[0] == '#' {
			continue
		}
		if line[len(line)-1] == ':' {
			name := line[:len(line)-1]
			for _, e := range resolved {
				if Equal(e.name, name) {
					return nil, errors.Errorf("ERROR: label already defined `%s`", name)
				}
			}
			if len(resolved) >= LabelCapacity {
				return nil, errors.Errorf("ERROR: label table exceeded `%s`", name)
			}
			resolved = append(resolved, labelEntry{name: name, addr: len(program)})
			continue
		}

		if len(program) >= vm.ProgramCapacity {
			return nil, errors.Errorf("ERROR: program capacity exceeded `%s`", line)
		}
		enc := EncodeLine(line)
		program = append(program, enc.Inst)
		if enc.Label != "" {
			if len(unresolved) >= LabelCapacity {
				return nil, errors.Errorf("ERROR: unresolved reference table exceeded `%s`", enc.Label)
			}
			unresolved = append(unresolved, labelEntry{name: enc.Label, addr: len(program)})
		}
	}

	for _, ref := range unresolved {
		addr, ok := lookupLabel(resolved, ref.name)
		if !ok {
			return nil, errors.Errorf("ERROR: label does not exist `%s`", ref.name)
		}
		program[ref.addr-1].Operand = vm.Word(addr)
	}

	return program, nil
}

func lookupLabel(table []labelEntry, name string) (int, bool) {
	for _, e := range table {
		if Equal(e.name, name) {
			return e.addr, true
		}
	}
	return 0, false
}
