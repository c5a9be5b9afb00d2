// Command leafecho is a year-end reflection ritual for the terminal.
package main

import "github.com/leafecho/leafecho/internal/cli"

func main() {
	cli.Execute()
}
