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

// Encode returns the padded base64url encoding of src. The result is
// tagged Padded and its length is always a multiple of four. Encoding
// never fails; an empty src yields an empty payload.
func Encode(src []byte) Payload {
	return Payload{Pad: Padded, Data: encode(src, alphabet.URL, true)}
}

// EncodeUnpadded returns the base64url encoding of src without trailing
// '=' symbols. The result is tagged Unpadded.
func EncodeUnpadded(src []byte) Payload {
	return Payload{Pad: Unpadded, Data: encode(src, alphabet.URL, false)}
}

// EncodedLen returns the length in bytes of the base64url encoding of an
// input buffer of length n under the given padding shape. Unspecified is
// treated as Padded.
func EncodedLen(n int, pad Padding) int {
	if pad == Unpadded {
		return (n*4 + 2) / 3
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoded data
// corresponding to n bytes of base64url-encoded data.
func DecodedLen(n int) int {
	return n * 6 / 8
}

func encode(src []byte, ab alphabet.Alphabet, pad bool) []byte {
	if len(src) == 0 {
		return nil
	}
	n := len(src)
	dst := make([]byte, 0, EncodedLen(n, Padded))

	// Full 3-byte chunks map to 4 symbols, first symbol from the top 6
	// bits of the first byte.
	i := 0
	for ; i+3 <= n; i += 3 {
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		dst = append(dst,
			ab.SymbolAt(byte(v>>18&0x3f)),
			ab.SymbolAt(byte(v>>12&0x3f)),
			ab.SymbolAt(byte(v>>6&0x3f)),
			ab.SymbolAt(byte(v&0x3f)))
	}

	// The final partial chunk is zero-extended before extraction.
	switch n - i {
	case 1:
		v := uint32(src[i]) << 16
		dst = append(dst,
			ab.SymbolAt(byte(v>>18&0x3f)),
			ab.SymbolAt(byte(v>>12&0x3f)))
		if pad {
			dst = append(dst, alphabet.Pad, alphabet.Pad)
		}
	case 2:
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8
		dst = append(dst,
			ab.SymbolAt(byte(v>>18&0x3f)),
			ab.SymbolAt(byte(v>>12&0x3f)),
			ab.SymbolAt(byte(v>>6&0x3f)))
		if pad {
			dst = append(dst, alphabet.Pad)
		}
	}
	return dst
}
