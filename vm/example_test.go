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

package vm_test

import (
	"io"
	"os"

	"stackvm/vm"
)

func Example() {
	m := vm.New()
	m.Load([]vm.Instruction{
		{Op: vm.Push, Operand: 1},
		{Op: vm.Push, Operand: 2},
		{Op: vm.Plus},
		{Op: vm.PrintDebug},
		{Op: vm.Halt},
	})
	m.SetOutput(os.Stdout)
	m.Run(vm.UnlimitedBudget, io.Discard)
	// Output:
	// 3
}
