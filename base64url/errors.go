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
	"fmt"

	"golang.org/x/xerrors"
)

// Kind classifies decode failures.
type Kind int

const (
	// InvalidLength means the input length admits no decoding: an
	// unpadded length of 1 mod 4 cannot represent any byte sequence.
	InvalidLength Kind = iota

	// InvalidCharacter means the input contains a byte that is neither an
	// alphabet symbol nor the pad symbol.
	InvalidCharacter

	// InvalidPadding means pad symbols are misplaced, wrong in number, or
	// present where the operation forbids them.
	InvalidPadding

	// PaddingRequired means a padded decoding was requested but the input
	// lacks the padding its length calls for.
	PaddingRequired
)

func (k Kind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case InvalidCharacter:
		return "invalid character"
	case InvalidPadding:
		return "invalid padding"
	case PaddingRequired:
		return "padding required"
	}
	return fmt.Sprintf("unknown kind %d", int(k))
}

// A DecodeError reports why an input could not be decoded. Offset is the
// byte offset of the offending symbol, or -1 when the failure concerns the
// input as a whole.
type DecodeError struct {
	Kind   Kind
	Offset int
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("base64url: %v", e.Kind)
	}
	return fmt.Sprintf("base64url: %v at offset %d", e.Kind, e.Offset)
}

// A ConversionError wraps a failure from a caller-supplied conversion
// applied to successfully decoded bytes. See DecodeWith.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("base64url: conversion failed: %v", e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// IsKind reports whether err is, or wraps, a DecodeError of kind k.
func IsKind(err error, k Kind) bool {
	var de *DecodeError
	return xerrors.As(err, &de) && de.Kind == k
}
