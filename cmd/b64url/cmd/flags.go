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

import "github.com/spf13/pflag"

// Common flags
const (
	flagRaw     flagName = "raw"
	flagPadded  flagName = "padded"
	flagLenient flagName = "lenient"
	flagStrict  flagName = "strict"
	flagShape   flagName = "shape"
	flagQuiet   flagName = "quiet"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagQuiet), "q", false,
		"suppress non-error output")
}

type flagName string

func (f flagName) Bool(cmd *Command) bool {
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	v, _ := cmd.Flags().GetString(string(f))
	return v
}
