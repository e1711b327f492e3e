// Command cadio is the CLI entry point; see package cmd for the actual
// command tree.
package main

import "github.com/cadio-project/cadio/cmd"

func main() {
	cmd.Execute()
}
