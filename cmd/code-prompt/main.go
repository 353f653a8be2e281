// Code-prompt - prompt generator for AI coding assistants
package main

import (
	"os"

	"github.com/Omodaka9375/code-prompt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
