// SPDX-License-Identifier: MIT

// Command tapematrix manages symmetric band matrices kept in compact
// diagonal storage. Without a subcommand it opens the interactive menu.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
