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

// Package codectest runs the b64url command in-process for tests,
// comparing its output against a golden value.
package codectest

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"

	"base64url.org/go/cmd/b64url/cmd"
	"base64url.org/go/internal/ctxio"
)

type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Golden string
}

// Run executes the given b64url command line and reports any errors
// comparing its standard output to the golden value.
func Run(t *testing.T, command string, cfg *Config) {
	t.Helper()
	if cfg == nil {
		cfg = &Config{}
	}

	args := strings.Fields(command)
	if len(args) == 0 || args[0] != "b64url" {
		t.Fatalf("command %q does not invoke b64url", command)
	}
	args = args[1:]

	buf := &bytes.Buffer{}
	if cfg.Golden != "" {
		if cfg.Stdout != nil {
			t.Fatal("cannot set Golden and Stdout")
		}
		cfg.Stdout = buf
	}

	ctx := context.Background()
	if cfg.Stdout != nil {
		ctx = ctxio.WithStdout(ctx, cfg.Stdout)
	} else {
		ctx = ctxio.WithStdout(ctx, buf)
	}
	ctx = ctxio.WithStderr(ctx, buf)
	if cfg.Stdin != nil {
		ctx = ctxio.WithStdin(ctx, cfg.Stdin)
	}

	c, err := cmd.New(ctx, args)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Run(ctx); err != nil {
		t.Logf("execution failed: %v", err)
	}

	if cfg.Golden == "" {
		return
	}

	got := strings.TrimSpace(buf.String())
	want := strings.TrimSpace(cfg.Golden)
	if got != want {
		t.Errorf("output differs:\n%s", diff.Diff(got, want))
	}
}
