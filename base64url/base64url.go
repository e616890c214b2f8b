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

// Package base64url implements the URL- and filename-safe base64 encoding
// specified by RFC 4648, section 5.
//
// Encoded data is carried in a Payload, which pairs the bytes with a
// Padding tag recording whether the producer padded the encoding to a
// multiple of four symbols. Decoders use the tag to choose a validation
// path: Decode accepts either shape, while DecodePadded and DecodeUnpadded
// enforce one shape and reject payloads tagged with the other.
//
// All operations are pure functions over their input. They never modify
// their arguments, hold no state, and are safe for concurrent use.
package base64url

// Padding records whether an encoding carries trailing '=' symbols.
type Padding int

const (
	// Unspecified means the padding shape is unknown; decoders accept
	// either shape but still validate it once determined.
	Unspecified Padding = iota

	// Padded means the encoding is padded with '=' to a multiple of four
	// symbols.
	Padded

	// Unpadded means the encoding carries no '=' symbols at all.
	Unpadded
)

func (p Padding) String() string {
	switch p {
	case Padded:
		return "padded"
	case Unpadded:
		return "unpadded"
	}
	return "unspecified"
}

// A Payload is an encoded text annotated with its padding shape. Encoders
// produce payloads with the tag fixed by the operation called; decoders
// validate the data against the tag.
type Payload struct {
	Pad  Padding
	Data []byte
}

// String returns the encoded text.
func (p Payload) String() string { return string(p.Data) }
