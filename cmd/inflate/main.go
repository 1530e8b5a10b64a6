package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/inflate/internal/cli"
	"github.com/arthur-debert/inflate/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// The command tree silences cobra's own error printing
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
