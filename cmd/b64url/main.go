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

// b64url is a command-line tool for the URL- and filename-safe base64
// encoding of RFC 4648, section 5.
package main

import (
	"context"
	"fmt"
	"os"

	"base64url.org/go/cmd/b64url/cmd"
)

func main() {
	err := cmd.Main(context.Background(), os.Args[1:])
	if err != nil {
		if err != cmd.ErrPrintedError {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
