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

package cmd_test

import (
	"strings"
	"testing"

	"base64url.org/go/internal/codectest"
)

func TestEncodeStdin(t *testing.T) {
	codectest.Run(t, "b64url encode", &codectest.Config{
		Stdin:  strings.NewReader("<<?>>"),
		Golden: "PDw_Pj4=",
	})
}

func TestEncodeRawStdin(t *testing.T) {
	codectest.Run(t, "b64url encode -r", &codectest.Config{
		Stdin:  strings.NewReader("<<?>>"),
		Golden: "PDw_Pj4",
	})
}

func TestDecodeStdin(t *testing.T) {
	codectest.Run(t, "b64url decode", &codectest.Config{
		Stdin:  strings.NewReader("PDw_Pj4"),
		Golden: "<<?>>",
	})
}

func TestDecodeLenientStdin(t *testing.T) {
	codectest.Run(t, "b64url decode --lenient", &codectest.Config{
		Stdin:  strings.NewReader("PDw_%%%$}Pj4"),
		Golden: "<<?>>",
	})
}

func TestValidateStdin(t *testing.T) {
	codectest.Run(t, "b64url validate", &codectest.Config{
		Stdin:  strings.NewReader("PDw-Pg=="),
		Golden: "valid",
	})
}

func TestValidateInvalidStdin(t *testing.T) {
	codectest.Run(t, "b64url validate", &codectest.Config{
		Stdin:  strings.NewReader("PDw-Pg="),
		Golden: "invalid: base64url: invalid padding",
	})
}
