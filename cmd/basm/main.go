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

// Command basm assembles a textual source file into a binary program
// image for the stackvm machine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"stackvm/asm"
	"stackvm/vm"
)

func run() error {
	flag.Parse()
	if flag.NArg() != 2 {
		return errors.New("usage: basm <input.src> <output.bin>")
	}
	srcName, outName := flag.Arg(0), flag.Arg(1)

	src, err := os.ReadFile(srcName)
	if err != nil {
		return errors.Wrapf(err, "read `%s`", srcName)
	}

	prog, err := asm.Assemble(string(src))
	if err != nil {
		return err
	}

	out, err := os.Create(outName)
	if err != nil {
		return errors.Wrapf(err, "create `%s`", outName)
	}
	defer out.Close()

	if err := vm.EncodeImage(out, prog); err != nil {
		return errors.Wrapf(err, "write `%s`", outName)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
