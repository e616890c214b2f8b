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

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"base64url.org/go/internal/ctxio"
)

const version = "0.1.0"

func newVersionCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print b64url version",
		Args:  cobra.NoArgs,
		RunE: mkRunE(c, func(cmd *Command, args []string) error {
			fmt.Fprintf(ctxio.Stdout(cmd.ctx), "b64url version %v %v/%v\n",
				version, runtime.GOOS, runtime.GOARCH)
			return nil
		}),
	}
}
