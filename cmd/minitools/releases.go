package main

import (
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/ImSingee/minitools/internal/releases"
)

func init() {
	commands = append(commands, releasesCommand())
}

func releasesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "releases <dir>",
		Short: "List the release version directories in <dir>, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := releases.SortDirectories(args[0])
			if err != nil {
				return err
			}

			for _, name := range names {
				pp.Println(name)
			}
			return nil
		},
	}
}
