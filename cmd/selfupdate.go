package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const githubRepoSlug = "brandstudios/brandos"

// releaseUpdater finds the latest release and installs it over the running
// binary.
type releaseUpdater interface {
	// Latest returns the latest release version and whether it is newer
	// than current.
	Latest(ctx context.Context, current string) (version string, newer bool, err error)
	// Apply installs the release found by the last Latest call.
	Apply(ctx context.Context) error
}

// newUpdater is replaced in tests.
var newUpdater = func() releaseUpdater {
	return &githubUpdater{slug: githubRepoSlug}
}

type githubUpdater struct {
	slug    string
	release *selfupdate.Release
}

func (g *githubUpdater) Latest(ctx context.Context, current string) (string, bool, error) {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(g.slug))
	if err != nil {
		return "", false, fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return "", false, fmt.Errorf("no release found for %s", g.slug)
	}
	g.release = latest
	return latest.Version(), !latest.LessOrEqual(current), nil
}

func (g *githubUpdater) Apply(ctx context.Context) error {
	if g.release == nil {
		return fmt.Errorf("no release selected")
	}
	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, g.release.AssetURL, g.release.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}
	return nil
}

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update brandos to the latest release",
		Long: `Checks for the latest release of brandos on GitHub and, if it is newer
than the running binary, replaces the binary in place.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	ctx := context.Background()
	var out io.Writer = os.Stdout
	if cmd != nil {
		if cmd.Context() != nil {
			ctx = cmd.Context()
		}
		out = cmd.OutOrStdout()
	}

	updater := newUpdater()
	latest, newer, err := updater.Latest(ctx, currentVersion)
	if err != nil {
		return err
	}
	if !newer {
		fmt.Fprintf(out, "Current version (%s) is the latest.\n", currentVersion)
		return nil
	}

	fmt.Fprintf(out, "Updating brandos %s -> %s...\n", currentVersion, latest)
	if err := updater.Apply(ctx); err != nil {
		return err
	}
	fmt.Fprintf(out, "Successfully updated to version %s\n", latest)
	return nil
}
