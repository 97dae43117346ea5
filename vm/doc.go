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

// Package vm implements a small stack-based virtual machine.
//
// A Machine owns a fixed-capacity evaluation stack of signed 64-bit
// Words and a fixed-capacity program of Instructions. Run steps the
// machine one instruction at a time under a caller-supplied instruction
// budget and returns as soon as the program halts, the budget is
// exhausted, or a precondition for the current instruction is violated.
//
// The machine never allocates during execution: the stack and program
// are backed by arrays sized to StackCapacity and ProgramCapacity. This
// package does not parse assembly text; see the sibling asm package for
// that.
package vm
