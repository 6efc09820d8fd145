package aws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
)

// ErrNoRegion is returned when neither flags, environment, shared config nor
// instance metadata provide a region.
var ErrNoRegion = errors.New("no AWS region configured (use --region or AWS_REGION)")

// SessionOptions selects the account and region a session is bound to.
// Empty fields fall back to the SDK default resolution chain.
type SessionOptions struct {
	Profile string
	Region  string
}

// NewSession loads the AWS configuration for one invocation of the tool
func NewSession(ctx context.Context, opts SessionOptions) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		// Falls back to the instance metadata region when running on EC2
		config.WithEC2IMDSClientEnableState(imds.ClientEnabled),
		config.WithEC2IMDSRegion(),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("error loading AWS config: %w", err)
	}
	if cfg.Region == "" {
		return aws.Config{}, ErrNoRegion
	}

	slog.Debug("aws session loaded", slog.String("profile", opts.Profile), slog.String("region", cfg.Region))
	return cfg, nil
}
