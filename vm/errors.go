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

// Err is the closed set of outcomes the execution engine can return
// from a single step. The numeric order is part of the package's test
// surface: callers may rely on it being stable.
type Err int

// The error taxonomy, in stable numeric order.
const (
	OK Err = iota
	ErrStackOverflow
	ErrStackUnderflow
	ErrIllegalInst
	ErrIllegalInstAccess
	ErrIllegalOperand
	ErrDivByZero
	ErrIllegalOperandType
)

var errNames = [...]string{
	OK:                    "OK",
	ErrStackOverflow:      "STACK_OVERFLOW",
	ErrStackUnderflow:     "STACK_UNDERFLOW",
	ErrIllegalInst:        "ILLEGAL_INST",
	ErrIllegalInstAccess:  "ILLEGAL_INST_ACCESS",
	ErrIllegalOperand:     "ILLEGAL_OPERAND",
	ErrDivByZero:          "DIV_BY_ZERO",
	ErrIllegalOperandType: "ILLEGAL_OPERAND_TYPE",
}

// Error implements the error interface so that a non-OK Err can be
// wrapped with github.com/pkg/errors by callers that bubble it up past
// this package's boundary (e.g. the CLI).
func (e Err) Error() string {
	if int(e) >= 0 && int(e) < len(errNames) {
		return errNames[e]
	}
	return "UNKNOWN_ERR"
}

// Ok reports whether e is the OK outcome.
func (e Err) Ok() bool { return e == OK }
