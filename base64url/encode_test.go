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

	"github.com/google/go-cmp/cmp"
)

// RFC 4648 test vectors plus inputs exercising the URL-safe symbols.
var encodePairs = []struct {
	raw      string
	padded   string
	unpadded string
}{
	{"", "", ""},
	{"f", "Zg==", "Zg"},
	{"fo", "Zm8=", "Zm8"},
	{"foo", "Zm9v", "Zm9v"},
	{"foob", "Zm9vYg==", "Zm9vYg"},
	{"fooba", "Zm9vYmE=", "Zm9vYmE"},
	{"foobar", "Zm9vYmFy", "Zm9vYmFy"},
	{"<<?>>", "PDw_Pj4=", "PDw_Pj4"},
	{"<<>>", "PDw-Pg==", "PDw-Pg"},
	{"\xfb\xff", "-_8=", "-_8"},
}

func TestEncode(t *testing.T) {
	for _, tc := range encodePairs {
		p := Encode([]byte(tc.raw))
		if p.Pad != Padded {
			t.Errorf("Encode(%q).Pad = %v, want Padded", tc.raw, p.Pad)
		}
		if got := p.String(); got != tc.padded {
			t.Errorf("Encode(%q) = %q, want %q", tc.raw, got, tc.padded)
		}
		if len(p.Data)%4 != 0 {
			t.Errorf("Encode(%q): length %d not a multiple of 4", tc.raw, len(p.Data))
		}
	}
}

func TestEncodeUnpadded(t *testing.T) {
	for _, tc := range encodePairs {
		p := EncodeUnpadded([]byte(tc.raw))
		if p.Pad != Unpadded {
			t.Errorf("EncodeUnpadded(%q).Pad = %v, want Unpadded", tc.raw, p.Pad)
		}
		if got := p.String(); got != tc.unpadded {
			t.Errorf("EncodeUnpadded(%q) = %q, want %q", tc.raw, got, tc.unpadded)
		}
	}
}

func TestEncodedLen(t *testing.T) {
	for n := 0; n < 100; n++ {
		src := make([]byte, n)
		if got, want := len(Encode(src).Data), EncodedLen(n, Padded); got != want {
			t.Errorf("len(Encode(%d bytes)) = %d, EncodedLen = %d", n, got, want)
		}
		if got, want := len(EncodeUnpadded(src).Data), EncodedLen(n, Unpadded); got != want {
			t.Errorf("len(EncodeUnpadded(%d bytes)) = %d, EncodedLen = %d", n, got, want)
		}
	}
}

func TestEncodeDoesNotAliasInput(t *testing.T) {
	src := []byte("aliasing")
	p := Encode(src)
	src[0] = 'X'
	if diff := cmp.Diff("YWxpYXNpbmc=", p.String()); diff != "" {
		t.Errorf("encoded payload changed with its input (-want +got):\n%s", diff)
	}
}
