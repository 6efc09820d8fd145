package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/younsl/shotty/pkg/fleet"
)

// progressProvider shows a spinner while the provider waits on an instance
// state transition.
type progressProvider struct {
	fleet.Provider
	w io.Writer
}

func withProgress(p fleet.Provider, w io.Writer) fleet.Provider {
	return &progressProvider{Provider: p, w: w}
}

func (p *progressProvider) WaitUntilStopped(ctx context.Context, instanceID string) error {
	return p.wait(instanceID, "stopped", func() error {
		return p.Provider.WaitUntilStopped(ctx, instanceID)
	})
}

func (p *progressProvider) WaitUntilRunning(ctx context.Context, instanceID string) error {
	return p.wait(instanceID, "running", func() error {
		return p.Provider.WaitUntilRunning(ctx, instanceID)
	})
}

func (p *progressProvider) wait(instanceID, state string, fn func() error) error {
	start := time.Now()

	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond, spinner.WithWriter(p.w))
	s.Suffix = fmt.Sprintf(" Waiting for %s to be %s ...", instanceID, state)
	s.Start()

	err := fn()
	if err == nil {
		s.FinalMSG = fmt.Sprintf("✓ %s is %s (waited %s)\n", instanceID, state, waited(start, time.Now()))
	}
	s.Stop()

	return err
}

// waited renders a wait duration like "2 minutes"
func waited(start, end time.Time) string {
	return strings.TrimSpace(humanize.RelTime(start, end, "", ""))
}
