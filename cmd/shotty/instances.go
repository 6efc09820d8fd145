package main

import (
	"github.com/spf13/cobra"
)

func newInstancesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instances",
		Short: "Commands for instances",
	}

	cmd.AddCommand(
		newInstancesListCmd(opts),
		newInstancesStopCmd(opts),
		newInstancesStartCmd(opts),
		newInstancesSnapshotCmd(opts),
	)
	return cmd
}

func newInstancesListCmd(opts *options) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newController(cmd, opts)
			if err != nil {
				return err
			}
			return c.ListInstances(cmd.Context(), project)
		},
	}
	addProjectFlag(cmd, &project)
	return cmd
}

func newInstancesStopCmd(opts *options) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newController(cmd, opts)
			if err != nil {
				return err
			}
			return c.StopInstances(cmd.Context(), project)
		},
	}
	addProjectFlag(cmd, &project)
	return cmd
}

func newInstancesStartCmd(opts *options) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newController(cmd, opts)
			if err != nil {
				return err
			}
			return c.StartInstances(cmd.Context(), project)
		},
	}
	addProjectFlag(cmd, &project)
	return cmd
}

func newInstancesSnapshotCmd(opts *options) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Create snapshots of all volumes",
		Long: `Stop each instance, snapshot every attached volume that has no
snapshot in progress, then start the instance again. Instances are processed
one at a time; any error stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newController(cmd, opts)
			if err != nil {
				return err
			}
			return c.SnapshotInstances(cmd.Context(), project)
		},
	}
	addProjectFlag(cmd, &project)
	return cmd
}
