package main

import (
	"github.com/spf13/cobra"
)

func newVolumesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volumes",
		Short: "Commands for volumes",
	}

	var project string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List EBS volumes attached to instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newController(cmd, opts)
			if err != nil {
				return err
			}
			return c.ListVolumes(cmd.Context(), project)
		},
	}
	addProjectFlag(listCmd, &project)

	cmd.AddCommand(listCmd)
	return cmd
}
