package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/timebound"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of timebound",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "timebound version %s\n", timebound.Version)
		},
	}
}
