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

// Command bm loads and runs a stackvm binary program image, or (with
// -d) disassembles it to standard output instead of running it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"stackvm/asm"
	"stackvm/internal/diag"
	"stackvm/vm"
)

var (
	disasm = flag.Bool("d", false, "disassemble the image instead of running it")
	budget = flag.Int("budget", -1, "instruction budget; negative means unlimited")
	trace  = flag.Bool("trace", false, "print an ip/opcode trace to stderr before each step")
)

func run() error {
	flag.Parse()
	if flag.NArg() != 1 {
		return errors.New("usage: bm [-d] [-budget N] <input.bin>")
	}
	inName := flag.Arg(0)

	f, err := os.Open(inName)
	if err != nil {
		return errors.Wrapf(err, "open `%s`", inName)
	}
	defer f.Close()

	prog, err := vm.DecodeImage(f)
	if err != nil {
		return errors.Wrapf(err, "decode `%s`", inName)
	}

	if *disasm {
		return asm.Disassemble(os.Stdout, prog)
	}

	m := vm.New()
	m.Load(prog)
	m.SetOutput(os.Stdout)

	sink := diag.NewSink(os.Stdout)
	if err := runWithBudget(m, *budget, sink); err != nil {
		return err
	}
	if sink.Err != nil {
		return sink.Err
	}
	return nil
}

// runWithBudget drives m one instruction at a time under the budget
// convention (budget > 0 bounds the instruction count, 0 does nothing,
// negative is unlimited), dumping the stack to sink after every
// successful step and reporting the run's outcome through sink.Report.
// When -trace is set it also prints "ip: OPCODE operand" (the opcode's
// debug name, e.g. "0: PUSH 34") to stderr
// before each step; this is purely a CLI debugging aid and has no
// effect on the machine's observable state.
func runWithBudget(m *vm.Machine, budget int, sink *diag.Sink) error {
	if budget == 0 {
		return nil
	}
	unlimited := budget < 0
	for unlimited || budget > 0 {
		if m.Halted() {
			return nil
		}
		if *trace {
			ip := int(m.IP())
			if ip >= 0 && ip < m.ProgramLen() {
				inst := m.Program(ip)
				fmt.Fprintf(os.Stderr, "%d: %s %d\n", ip, inst.Op, inst.Operand)
			}
		}
		e := m.Step()
		if err := sink.Report(e); err != nil {
			fmt.Fprintln(sink, e.Error())
			return err
		}
		if !unlimited {
			budget--
		}
		m.DumpStack(sink)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
