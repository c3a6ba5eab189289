// SPDX-License-Identifier: MPL-2.0

package main

import cmd "bindle/cmd/bindle"

func main() {
	cmd.Execute()
}
