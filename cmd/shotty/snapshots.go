package main

import (
	"github.com/spf13/cobra"
)

func newSnapshotsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Commands for snapshots",
	}

	var (
		project string
		listAll bool
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List EBS snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newController(cmd, opts)
			if err != nil {
				return err
			}
			return c.ListSnapshots(cmd.Context(), project, listAll)
		},
	}
	addProjectFlag(listCmd, &project)
	listCmd.Flags().BoolVar(&listAll, "all", false, "List all snapshots for each volume, not just the most recent")

	cmd.AddCommand(listCmd)
	return cmd
}
