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

// isSpace reports whether b is one of the ASCII whitespace characters
// this package recognizes: space, tab, CR, LF, VT, FF.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// TrimLeft returns the suffix of s starting at the first non-whitespace
// character, or "" if s is all whitespace.
func TrimLeft(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// TrimRight returns the prefix of s ending at the last non-whitespace
// character, or "" if s is all whitespace.
func TrimRight(s string) string {
	i := len(s)
	for i > 0 && isSpace(s[i-1]) {
		i--
	}
	return s[:i]
}

// ChopUntil returns the longest prefix of s containing neither delim
// nor '#', and the remainder of s with exactly one delim character
// removed from its front, if one was present immediately after the
// prefix. A leading '#' in the remainder is left untouched so the
// caller can recognize it as a comment.
func ChopUntil(s string, delim byte) (token, rest string) {
	i := 0
	for i < len(s) && s[i] != delim && s[i] != '#' {
		i++
	}
	token = s[:i]
	if i < len(s) && s[i] == delim {
		return token, s[i+1:]
	}
	return token, s[i:]
}

// ChopBlank is ChopUntil with the delimiter being any whitespace
// character.
func ChopBlank(s string) (token, rest string) {
	i := 0
	for i < len(s) && !isSpace(s[i]) && s[i] != '#' {
		i++
	}
	token = s[:i]
	if i < len(s) && isSpace(s[i]) {
		return token, s[i+1:]
	}
	return token, s[i:]
}

// ParseInt returns -1 if s does not start with an ASCII digit;
// otherwise it returns the value of the maximal leading digit run,
// interpreted as decimal, ignoring any non-digit suffix. The sentinel
// -1 doubles as "no literal operand present" for callers that also
// want to accept a label name in the same position.
func ParseInt(s string) int64 {
	if len(s) == 0 || s[0] < '0' || s[0] > '9' {
		return -1
	}
	var v int64
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int64(s[i]-'0')
		i++
	}
	return v
}

// Equal reports whether a and b have equal lengths and byte-identical
// contents. Go's == already does this for strings; Equal exists so
// label-name comparisons in this package read the same way the
// underlying contract is described, independent of the concrete
// representation of a source slice.
func Equal(a, b string) bool {
	return a == b
}
