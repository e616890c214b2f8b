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

	"github.com/spf13/cobra"

	"base64url.org/go/base64url"
	"base64url.org/go/internal/ctxio"
)

func newEncodeCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "encode bytes as base64url",
		Long: `encode reads raw bytes from the named file, or from standard input,
and writes their base64url encoding followed by a newline.

By default the output is padded with '=' to a multiple of four symbols;
--raw omits the padding, as JWT and similar formats require.`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, runEncode),
	}

	cmd.Flags().BoolP(string(flagRaw), "r", false,
		"omit '=' padding from the output")

	return cmd
}

func runEncode(cmd *Command, args []string) error {
	src, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var p base64url.Payload
	if flagRaw.Bool(cmd) {
		p = base64url.EncodeUnpadded(src)
	} else {
		p = base64url.Encode(src)
	}

	fmt.Fprintln(ctxio.Stdout(cmd.ctx), p)
	return nil
}
