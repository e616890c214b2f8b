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

func newDecodeCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "decode base64url text to bytes",
		Long: `decode reads base64url text from the named file, or from standard
input, and writes the decoded bytes. Surrounding whitespace is ignored.

By default both the padded and the unpadded shape are accepted. --padded
requires padding to be present, --raw forbids it, --strict additionally
rejects non-canonical encodings, and --lenient decodes on a best-effort
basis, discarding anything that is not base64url.`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, runDecode),
	}

	cmd.Flags().BoolP(string(flagRaw), "r", false,
		"require the unpadded shape; reject any '='")
	cmd.Flags().Bool(string(flagPadded), false,
		"require '=' padding to a multiple of four symbols")
	cmd.Flags().Bool(string(flagLenient), false,
		"discard invalid input instead of failing (not RFC 4648)")
	cmd.Flags().Bool(string(flagStrict), false,
		"reject encodings with nonzero trailing bits")

	return cmd
}

func runDecode(cmd *Command, args []string) error {
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	in = bytes.TrimSpace(in)

	raw, padded := flagRaw.Bool(cmd), flagPadded.Bool(cmd)
	if raw && padded {
		return fmt.Errorf("cannot use --raw with --padded")
	}

	var b []byte
	switch {
	case flagLenient.Bool(cmd):
		b = base64url.DecodeLenient(base64url.Payload{Data: in})
	case raw:
		b, err = base64url.DecodeUnpadded(base64url.Payload{Pad: base64url.Unpadded, Data: in})
	case padded:
		b, err = base64url.DecodePadded(base64url.Payload{Pad: base64url.Padded, Data: in})
	case flagStrict.Bool(cmd):
		b, err = base64url.DecodeCanonical(base64url.Payload{Data: in})
	default:
		b, err = base64url.Decode(base64url.Payload{Data: in})
	}
	if err != nil {
		return err
	}

	_, err = ctxio.Stdout(cmd.ctx).Write(b)
	return err
}
