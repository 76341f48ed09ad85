// SPDX-License-Identifier: MPL-2.0

package main

import cmd "spritec-cli/cmd/spritec"

func main() {
	cmd.Execute()
}
