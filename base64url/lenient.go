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

package base64url

import "base64url.org/go/internal/alphabet"

// DecodeLenient decodes p on a best-effort basis and never fails. Symbols
// outside the alphabet are discarded, scanning stops at the first pad
// symbol, and a trailing symbol that cannot contribute a full byte is
// dropped. This is not an RFC 4648 decoder: it accepts input the strict
// decoders reject and assigns it a meaning. Do not use it where malformed
// input must be detected. p's tag is ignored.
func DecodeLenient(p Payload) []byte {
	return decodeLenient(p.Data)
}

// DecodeLenientString is DecodeLenient on a bare string.
func DecodeLenientString(s string) []byte {
	return decodeLenient([]byte(s))
}

func decodeLenient(s []byte) []byte {
	ab := alphabet.URL
	syms := make([]byte, 0, len(s))
	for _, c := range s {
		if ab.IsPad(c) {
			break
		}
		if _, ok := ab.ValueOf(c); ok {
			syms = append(syms, c)
		}
	}
	if len(syms)%4 == 1 {
		syms = syms[:len(syms)-1]
	}
	b, err := decodeRun(syms, ab, false)
	if err != nil {
		// Unreachable: the run is filtered and its length normalized.
		return nil
	}
	return b
}
