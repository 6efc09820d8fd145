package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/younsl/shotty/internal/version"
	"github.com/younsl/shotty/pkg/aws"
	"github.com/younsl/shotty/pkg/fleet"
)

// options are the persistent flags shared by every subcommand
type options struct {
	profile string
	region  string
	debug   bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "shotty",
		Short: "Manage EC2 instances, EBS volumes and snapshots by project",
		Long: `shotty lists EC2 instances, their EBS volumes and snapshots, and can
stop, start or snapshot every instance tagged with a given Project.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), opts.debug)
		},
	}
	rootCmd.SetVersionTemplate(version.Get().String() + "\n")

	rootCmd.PersistentFlags().StringVar(&opts.profile, "profile", "",
		"AWS shared config profile (default: SDK default chain, AWS_PROFILE)")
	rootCmd.PersistentFlags().StringVar(&opts.region, "region", "",
		"AWS region (default: AWS_REGION, profile region or instance metadata)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newSnapshotsCmd(opts),
		newVolumesCmd(opts),
		newInstancesCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		},
	}
}

// setupLogger routes structured logs to stderr so stdout only carries the report
func setupLogger(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// newController builds the session for this invocation and wires the EC2
// client into a fleet controller writing to the command's stdout.
func newController(cmd *cobra.Command, opts *options) (*fleet.Controller, error) {
	cfg, err := aws.NewSession(cmd.Context(), aws.SessionOptions{
		Profile: opts.profile,
		Region:  opts.region,
	})
	if err != nil {
		return nil, err
	}

	client := aws.NewEC2Client(cfg)
	slog.Debug("ec2 client ready", slog.String("region", client.Region()))
	provider := withProgress(client, cmd.ErrOrStderr())

	return fleet.New(provider, cmd.OutOrStdout()), nil
}

// addProjectFlag registers the --project filter on a subcommand
func addProjectFlag(cmd *cobra.Command, project *string) {
	cmd.Flags().StringVar(project, "project", "", "Only instances for project (tag Project:<name>)")
}
