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

// Package asm implements the textual front end for the vm package: a
// two-pass assembler that translates a line-oriented source language
// into a vm.Instruction program, and a disassembler that lists a
// program one instruction per line using the same mnemonics, as
// "mnemonic" or "mnemonic:operand". The assembler does not accept the
// "mnemonic:operand" form.
package asm
