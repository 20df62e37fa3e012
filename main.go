// SPDX-License-Identifier: MPL-2.0

package main

import cmd "wpmoo-cli/cmd/wpmoo"

func main() {
	cmd.Execute()
}
