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
	"fmt"
	"io"

	"stackvm/vm"
)

var mnemonics = [...]string{
	vm.Nop:        "nop",
	vm.Push:       "push",
	vm.Dup:        "dup",
	vm.Plus:       "plus",
	vm.Minus:      "min",
	vm.Mult:       "mul",
	vm.Div:        "div",
	vm.Jmp:        "jmp",
	vm.JmpIf:      "jmp_if",
	vm.Eq:         "eq",
	vm.Halt:       "hart",
	vm.PrintDebug: "print",
	vm.Ret:        "ret",
}

// hasOperand reports whether op's disassembled form carries an
// explicit ":operand" suffix.
func hasOperand(op vm.Opcode) bool {
	switch op {
	case vm.Push, vm.Dup, vm.Jmp, vm.JmpIf:
		return true
	}
	return false
}

// Disassemble writes one line per instruction in prog to w: the
// mnemonic, or "mnemonic:operand" for opcodes that carry one.
func Disassemble(w io.Writer, prog []vm.Instruction) error {
	for _, inst := range prog {
		name := "nop"
		if int(inst.Op) < len(mnemonics) {
			name = mnemonics[inst.Op]
		}
		var err error
		if hasOperand(inst.Op) {
			_, err = fmt.Fprintf(w, "%s:%d\n", name, inst.Operand)
		} else {
			_, err = fmt.Fprintln(w, name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
