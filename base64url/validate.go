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

// IsBase64URL reports whether s decodes successfully under Decode, in
// either padding shape. This is the round-trip check: every input it
// accepts yields bytes.
func IsBase64URL(s string) bool {
	_, err := DecodeString(s)
	return err == nil
}

// IsValidBase64URL reports whether s has the shape of a base64url
// encoding: only alphabet symbols, at most a well-formed trailing pad run
// of two, and a length consistent with some padded or unpadded decoding.
// It is a pure shape check; IsBase64URL implies IsValidBase64URL but not
// the converse.
func IsValidBase64URL(s string) bool {
	ab := alphabet.URL
	n := len(s)
	npad := 0
	for npad < n && ab.IsPad(s[n-1-npad]) {
		npad++
	}
	if npad > 2 {
		return false
	}
	for i := 0; i < n-npad; i++ {
		if _, ok := ab.ValueOf(s[i]); !ok {
			return false
		}
	}
	if npad > 0 {
		return n%4 == 0
	}
	return n%4 != 1
}
