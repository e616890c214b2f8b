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
	"testing"

	"golang.org/x/xerrors"
)

func TestDecodeErrorMessage(t *testing.T) {
	testCases := []struct {
		err  *DecodeError
		want string
	}{
		{&DecodeError{Kind: InvalidLength, Offset: -1}, "base64url: invalid length"},
		{&DecodeError{Kind: InvalidCharacter, Offset: 4}, "base64url: invalid character at offset 4"},
		{&DecodeError{Kind: InvalidPadding, Offset: 0}, "base64url: invalid padding at offset 0"},
		{&DecodeError{Kind: PaddingRequired, Offset: -1}, "base64url: padding required"},
	}
	for _, tc := range testCases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	_, err := DecodeString("Zg=A")
	wrapped := xerrors.Errorf("reading token: %w", err)
	if !IsKind(wrapped, InvalidPadding) {
		t.Errorf("IsKind(wrapped, InvalidPadding) = false for %v", wrapped)
	}
	if IsKind(wrapped, InvalidLength) {
		t.Errorf("IsKind(wrapped, InvalidLength) = true for %v", wrapped)
	}
	if IsKind(nil, InvalidPadding) {
		t.Error("IsKind(nil, _) = true")
	}
}

func TestConversionErrorUnwrap(t *testing.T) {
	cause := xerrors.New("not text")
	err := &ConversionError{Err: cause}
	if !xerrors.Is(err, cause) {
		t.Errorf("xerrors.Is(%v, cause) = false", err)
	}
	if IsKind(err, InvalidCharacter) {
		t.Errorf("conversion error classified as a decode kind")
	}
}
