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
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"base64url.org/go/base64url"
	"base64url.org/go/internal/ctxio"
)

func newValidateCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check that input is valid base64url",
		Long: `validate reads text from the named file, or from standard input, and
reports whether it is valid base64url. It prints "valid" and exits 0 on
success; otherwise it reports why the input was rejected and exits 1.

By default validity means the input decodes. --shape only checks the
character set and length, which is cheaper but does not guarantee that
decoding succeeds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, runValidate),
	}

	cmd.Flags().Bool(string(flagShape), false,
		"check shape only, without decoding")

	return cmd
}

func runValidate(cmd *Command, args []string) error {
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	s := string(bytes.TrimSpace(in))

	if flagShape.Bool(cmd) {
		if !base64url.IsValidBase64URL(s) {
			fmt.Fprintln(cmd.Stderr(), "invalid: malformed base64url shape")
			return nil
		}
	} else if _, err := base64url.DecodeString(s); err != nil {
		fmt.Fprintf(cmd.Stderr(), "invalid: %v\n", err)
		return nil
	}

	if !flagQuiet.Bool(cmd) {
		fmt.Fprintln(ctxio.Stdout(cmd.ctx), "valid")
	}
	return nil
}
