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
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"base64url.org/go/internal/ctxio"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		return f(c, args)
	}
}

// newRootCmd creates the base command when called without any subcommands.
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "b64url",
		Short: "b64url encodes, decodes, and checks base64url data",
		Long: `b64url converts between raw bytes and the URL- and filename-safe
base64 encoding of RFC 4648, section 5.

Input is read from a named file or from standard input; results are
written to standard output. The encoding uses '-' and '_' where
standard base64 uses '+' and '/', and padding with '=' is optional.
Run 'b64url help padding' for how the padding shapes interact with
decoding.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &Command{Command: cmd, root: cmd, ctx: context.Background()}

	subCommands := []*cobra.Command{
		newEncodeCmd(c),
		newDecodeCmd(c),
		newValidateCmd(c),
		newVersionCmd(c),
	}
	subCommands = append(subCommands, newHelpTopics(c)...)

	addGlobalFlags(cmd.PersistentFlags())

	for _, sub := range subCommands {
		cmd.AddCommand(sub)
	}

	return c
}

// New creates the root command for the given arguments. The command reads
// and writes the streams carried by ctx; see internal/ctxio.
func New(ctx context.Context, args []string) (*Command, error) {
	cmd := newRootCmd()
	cmd.ctx = ctx
	cmd.root.SetArgs(args)
	return cmd, nil
}

// Main runs the b64url tool with the given arguments and returns the error
// to report, if any. Errors already written to the command's stderr are
// returned as ErrPrintedError.
func Main(ctx context.Context, args []string) error {
	cmd, err := New(ctx, args)
	if err != nil {
		return err
	}
	return cmd.Run(ctx)
}

// A Command is the currently active b64url command.
type Command struct {
	*cobra.Command

	root *cobra.Command

	ctx context.Context

	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = true
	return c.Command.ErrOrStderr().Write(b)
}

// Stderr returns the writer to be used for error messages. Writing to it
// marks the run as failed.
func (c *Command) Stderr() io.Writer {
	return (*errWriter)(c)
}

// ErrPrintedError indicates error messages have been printed to stderr.
var ErrPrintedError = errors.New("terminating because of errors")

func (c *Command) Run(ctx context.Context) error {
	c.ctx = ctx
	c.root.SetErr(ctxio.Stderr(ctx))
	if err := c.root.Execute(); err != nil {
		return err
	}
	if c.hasErr {
		return ErrPrintedError
	}
	return nil
}
