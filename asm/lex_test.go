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

package asm_test

import (
	"testing"

	"stackvm/asm"
)

func TestTrimLeft(t *testing.T) {
	data := []struct{ in, want string }{
		{"  hi", "hi"},
		{"\t\nhi", "hi"},
		{"hi", "hi"},
		{"   ", ""},
		{"", ""},
	}
	for _, d := range data {
		if got := asm.TrimLeft(d.in); got != d.want {
			t.Errorf("TrimLeft(%q) = %q, want %q", d.in, got, d.want)
		}
	}
}

func TestTrimRight(t *testing.T) {
	data := []struct{ in, want string }{
		{"hi  ", "hi"},
		{"hi\t\n", "hi"},
		{"hi", "hi"},
		{"   ", ""},
	}
	for _, d := range data {
		if got := asm.TrimRight(d.in); got != d.want {
			t.Errorf("TrimRight(%q) = %q, want %q", d.in, got, d.want)
		}
	}
}

func TestChopUntil(t *testing.T) {
	data := []struct {
		in, wantTok, wantRest string
		delim                 byte
	}{
		{"push 1", "push", "1", ' '},
		{"push#comment", "push", "#comment", ' '},
		{"noDelimHere", "noDelimHere", "", ' '},
		{":5:6", "", "5:6", ':'},
	}
	for _, d := range data {
		tok, rest := asm.ChopUntil(d.in, d.delim)
		if tok != d.wantTok || rest != d.wantRest {
			t.Errorf("ChopUntil(%q, %q) = (%q, %q), want (%q, %q)", d.in, d.delim, tok, rest, d.wantTok, d.wantRest)
		}
	}
}

func TestChopBlank(t *testing.T) {
	data := []struct{ in, wantTok, wantRest string }{
		{"push 1", "push", "1"},
		{"push", "push", ""},
		{"jmp\tend", "jmp", "end"},
	}
	for _, d := range data {
		tok, rest := asm.ChopBlank(d.in)
		if tok != d.wantTok || rest != d.wantRest {
			t.Errorf("ChopBlank(%q) = (%q, %q), want (%q, %q)", d.in, tok, rest, d.wantTok, d.wantRest)
		}
	}
}

func TestParseInt(t *testing.T) {
	data := []struct {
		in   string
		want int64
	}{
		{"123", 123},
		{"123abc", 123},
		{"", -1},
		{"abc", -1},
		{"-5", -1}, // no sign handling, matches the original sentinel behavior
		{"0", 0},
	}
	for _, d := range data {
		if got := asm.ParseInt(d.in); got != d.want {
			t.Errorf("ParseInt(%q) = %d, want %d", d.in, got, d.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !asm.Equal("end", "end") {
		t.Error("Equal(\"end\", \"end\") = false, want true")
	}
	if asm.Equal("end", "endx") {
		t.Error("Equal(\"end\", \"endx\") = true, want false")
	}
}
