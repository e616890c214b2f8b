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

import (
	"bytes"

	"base64url.org/go/internal/alphabet"
)

// Decode returns the bytes represented by p, accepting both the padded and
// the unpadded shape regardless of p's tag. If pad symbols are present they
// must form a well-placed suffix of a multiple-of-four input; if absent the
// input length must not be 1 mod 4. Trailing bits beyond the recovered byte
// boundary are not required to be zero; use DecodeCanonical for that.
func Decode(p Payload) ([]byte, error) {
	return decodeAny(p.Data, false)
}

// DecodeString is Decode on a bare string with an Unspecified tag.
func DecodeString(s string) ([]byte, error) {
	return decodeAny([]byte(s), false)
}

// DecodeCanonical is Decode with strict canonicity checking: the unused
// low-order bits of the final symbol must be zero, so each byte sequence
// has exactly one accepted encoding per padding shape. Violations are
// reported as InvalidPadding at the offending symbol.
func DecodeCanonical(p Payload) ([]byte, error) {
	return decodeAny(p.Data, true)
}

// DecodePadded decodes p requiring the padded shape: the input length must
// be a multiple of four, with '=' completing any partial final group. A
// payload tagged Unpadded, or an input whose length shows padding was
// omitted, fails with PaddingRequired. A genuinely pad-free input whose
// final group is full is accepted.
func DecodePadded(p Payload) ([]byte, error) {
	if p.Pad == Unpadded {
		return nil, &DecodeError{Kind: PaddingRequired, Offset: -1}
	}
	s := p.Data
	switch len(s) % 4 {
	case 0:
	case 1:
		return nil, &DecodeError{Kind: InvalidLength, Offset: -1}
	default:
		if bytes.IndexByte(s, alphabet.Pad) >= 0 {
			return nil, &DecodeError{Kind: InvalidPadding, Offset: -1}
		}
		return nil, &DecodeError{Kind: PaddingRequired, Offset: -1}
	}
	return decodePadded(s, false)
}

// DecodeUnpadded decodes p requiring the unpadded shape. Any pad symbol in
// the input, or a payload tagged Padded, fails with InvalidPadding; padding
// is never silently stripped. The input length must not be 1 mod 4.
func DecodeUnpadded(p Payload) ([]byte, error) {
	if p.Pad == Padded {
		return nil, &DecodeError{Kind: InvalidPadding, Offset: -1}
	}
	if i := bytes.IndexByte(p.Data, alphabet.Pad); i >= 0 {
		return nil, &DecodeError{Kind: InvalidPadding, Offset: i}
	}
	return decodeRun(p.Data, alphabet.URL, false)
}

// DecodeWith decodes p according to its tag and applies conv to the
// result. A decode failure surfaces as a *DecodeError; a conv failure is
// wrapped in a *ConversionError. This is the seam text adapters build on.
func DecodeWith[T any](p Payload, conv func([]byte) (T, error)) (T, error) {
	var zero T
	var b []byte
	var err error
	switch p.Pad {
	case Padded:
		b, err = DecodePadded(p)
	case Unpadded:
		b, err = DecodeUnpadded(p)
	default:
		b, err = Decode(p)
	}
	if err != nil {
		return zero, err
	}
	x, err := conv(b)
	if err != nil {
		return zero, &ConversionError{Err: err}
	}
	return x, nil
}

func decodeAny(s []byte, canonical bool) ([]byte, error) {
	if bytes.IndexByte(s, alphabet.Pad) >= 0 {
		if len(s)%4 != 0 {
			return nil, &DecodeError{Kind: InvalidPadding, Offset: -1}
		}
		return decodePadded(s, canonical)
	}
	return decodeRun(s, alphabet.URL, canonical)
}

// decodePadded decodes an input of multiple-of-four length that may carry a
// pad suffix. Pads anywhere but a trailing run of one or two are rejected.
func decodePadded(s []byte, canonical bool) ([]byte, error) {
	ab := alphabet.URL
	n := len(s)
	npad := 0
	for npad < n && ab.IsPad(s[n-1-npad]) {
		npad++
	}
	if npad > 2 {
		return nil, &DecodeError{Kind: InvalidPadding, Offset: n - npad}
	}
	// Interior pads remain in the run and are rejected there.
	return decodeRun(s[:n-npad], ab, canonical)
}

// decodeRun decodes a pad-free symbol run by inverting the 6-bit packing.
func decodeRun(s []byte, ab alphabet.Alphabet, canonical bool) ([]byte, error) {
	n := len(s)
	if n%4 == 1 {
		return nil, &DecodeError{Kind: InvalidLength, Offset: -1}
	}
	dst := make([]byte, 0, DecodedLen(n))

	i := 0
	for ; i+4 <= n; i += 4 {
		v, err := groupValue(s, i, 4, ab)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte(v>>16), byte(v>>8), byte(v))
	}

	switch n - i {
	case 2:
		v, err := groupValue(s, i, 2, ab)
		if err != nil {
			return nil, err
		}
		if canonical && v&0xf000 != 0 {
			return nil, &DecodeError{Kind: InvalidPadding, Offset: n - 1}
		}
		dst = append(dst, byte(v>>16))
	case 3:
		v, err := groupValue(s, i, 3, ab)
		if err != nil {
			return nil, err
		}
		if canonical && v&0xc0 != 0 {
			return nil, &DecodeError{Kind: InvalidPadding, Offset: n - 1}
		}
		dst = append(dst, byte(v>>16), byte(v>>8))
	}
	return dst, nil
}

// groupValue assembles k symbols starting at i into a 24-bit value,
// zero-filling the positions of absent symbols.
func groupValue(s []byte, i, k int, ab alphabet.Alphabet) (uint32, error) {
	var v uint32
	for j := 0; j < k; j++ {
		c := s[i+j]
		b, ok := ab.ValueOf(c)
		if !ok {
			kind := InvalidCharacter
			if ab.IsPad(c) {
				kind = InvalidPadding
			}
			return 0, &DecodeError{Kind: kind, Offset: i + j}
		}
		v |= uint32(b) << (18 - 6*j)
	}
	return v, nil
}
