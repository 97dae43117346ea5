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

import "stackvm/vm"

// Encoded is the result of encoding a single source line: the
// instruction to emit, and, if the operand is an as-yet-unresolved
// label reference, the referenced name.
type Encoded struct {
	Inst  vm.Instruction
	Label string // non-empty iff Inst's operand is a pending label reference
}

// EncodeLine translates a single trimmed source line (no trailing
// newline, no leading/trailing whitespace required) into an
// Encoded instruction. An unrecognized mnemonic encodes as NOP, per
// the table in the instruction encoder's contract.
func EncodeLine(line string) Encoded {
	mnemonic, residue := ChopBlank(line)
	residue = TrimLeft(residue)

	switch mnemonic {
	case "push":
		return Encoded{Inst: vm.Instruction{Op: vm.Push, Operand: vm.Word(ParseInt(residue))}}
	case "dup":
		return Encoded{Inst: vm.Instruction{Op: vm.Dup, Operand: vm.Word(ParseInt(residue))}}
	case "plus":
		return Encoded{Inst: vm.Instruction{Op: vm.Plus}}
	case "min":
		return Encoded{Inst: vm.Instruction{Op: vm.Minus}}
	case "mul":
		return Encoded{Inst: vm.Instruction{Op: vm.Mult}}
	case "div":
		return Encoded{Inst: vm.Instruction{Op: vm.Div}}
	case "eq":
		return Encoded{Inst: vm.Instruction{Op: vm.Eq}}
	case "jmp":
		return encodeJumpLike(vm.Jmp, residue)
	case "jmp_if":
		if residue == "" {
			return Encoded{Inst: vm.Instruction{Op: vm.JmpIf}}
		}
		return encodeJumpLike(vm.JmpIf, residue)
	case "hart":
		return Encoded{Inst: vm.Instruction{Op: vm.Halt}}
	case "print":
		return Encoded{Inst: vm.Instruction{Op: vm.PrintDebug}}
	case "ret":
		return Encoded{Inst: vm.Instruction{Op: vm.Ret}}
	default:
		return Encoded{Inst: vm.Instruction{Op: vm.Nop}}
	}
}

// encodeJumpLike handles the shared jmp/jmp_if operand rule: a
// literal integer address, or (when parse_int returns its sentinel) a
// label name, captured for later resolution.
func encodeJumpLike(op vm.Opcode, residue string) Encoded {
	name, _ := ChopBlank(residue)
	if n := ParseInt(residue); n != -1 {
		return Encoded{Inst: vm.Instruction{Op: op, Operand: vm.Word(n)}}
	}
	return Encoded{Inst: vm.Instruction{Op: op}, Label: name}
}
