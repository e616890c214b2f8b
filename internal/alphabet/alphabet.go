// Copyright 2024 The Base64URL Authors
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

// Package alphabet defines the symbol tables used by the base64url codec.
//
// An Alphabet maps 6-bit values to symbols and back. Keeping the mapping
// behind a small interface lets a single codec engine serve multiple
// alphabet variants; this module ships only the URL- and filename-safe
// variant of RFC 4648 section 5.
package alphabet

// Pad is the padding symbol. It is not part of any alphabet and never has a
// 6-bit value.
const Pad = '='

// An Alphabet is a bijection between the 6-bit values 0-63 and a set of 64
// distinct symbols, none of which is Pad.
type Alphabet interface {
	// SymbolAt returns the symbol for the 6-bit value v. v must be < 64.
	SymbolAt(v byte) byte

	// ValueOf returns the 6-bit value of sym, or ok == false if sym is not
	// in the alphabet. ValueOf(Pad) is never ok.
	ValueOf(sym byte) (v byte, ok bool)

	// IsPad reports whether sym is the padding symbol.
	IsPad(sym byte) bool
}

// URL is the URL- and filename-safe alphabet of RFC 4648 section 5: the
// standard base64 alphabet with '-' and '_' in place of '+' and '/'.
var URL Alphabet = urlAlphabet{}

const urlSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// urlValues maps each symbol byte to its 6-bit value; 0xff marks bytes
// outside the alphabet. Each line covers 16 byte values.
const urlValues = "" +
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // 00-0f
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // 10-1f
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\x3e\xff\xff" + // 20-2f ('-')
	"\x34\x35\x36\x37\x38\x39\x3a\x3b\x3c\x3d\xff\xff\xff\xff\xff\xff" + // 30-3f ('0'-'9')
	"\xff\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e" + // 40-4f ('A'-'O')
	"\x0f\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\xff\xff\xff\xff\x3f" + // 50-5f ('P'-'Z', '_')
	"\xff\x1a\x1b\x1c\x1d\x1e\x1f\x20\x21\x22\x23\x24\x25\x26\x27\x28" + // 60-6f ('a'-'o')
	"\x29\x2a\x2b\x2c\x2d\x2e\x2f\x30\x31\x32\x33\xff\xff\xff\xff\xff" + // 70-7f ('p'-'z')
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // 80-ff (not ASCII)
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" +
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" +
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" +
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" +
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" +
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" +
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff"

type urlAlphabet struct{}

func (urlAlphabet) SymbolAt(v byte) byte { return urlSymbols[v] }

func (urlAlphabet) ValueOf(sym byte) (byte, bool) {
	v := urlValues[sym]
	return v, v != 0xff
}

func (urlAlphabet) IsPad(sym byte) bool { return sym == Pad }
