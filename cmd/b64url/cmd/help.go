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
	"github.com/spf13/cobra"
)

func newHelpTopics(c *Command) []*cobra.Command {
	return []*cobra.Command{
		paddingHelp,
	}
}

var paddingHelp = &cobra.Command{
	Use:   "padding",
	Short: "padding shapes and how decoding treats them",
	Long: `Base64url encodes every 3 bytes of input as 4 symbols. When the input
length is not a multiple of 3, the final group has only 2 or 3 symbols.
RFC 4648 allows that group to be completed with '=' pad symbols, and for
the URL-safe encoding leaves padding optional.

b64url distinguishes three padding shapes:

	padded       the encoding ends with '=' symbols completing the
	             final group, so its length is a multiple of 4
	unpadded     the encoding carries no '=' at all
	unspecified  either of the above

'b64url decode' accepts the unspecified shape: input with padding must
have it well-formed, and input without padding must not have a length
of 1 mod 4. '--padded' and '--raw' restrict decoding to one shape, and
reject the other instead of converting it silently.

Padding is only ever a suffix of one or two '=' symbols. A pad symbol
anywhere else, a run of three or more, or a padded length that is not a
multiple of 4 is malformed in every shape.
`,
}
