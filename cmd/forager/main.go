package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "forager",
		Short:         "Train and inspect foraging agents locally",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(trainCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "forager: %v\n", err)
		os.Exit(1)
	}
}
