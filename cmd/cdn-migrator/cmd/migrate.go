package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stackrox/cdn-migrator/migrator/cdn"
	"github.com/stackrox/cdn-migrator/migrator/store"
	"github.com/stackrox/cdn-migrator/pkg/env"
)

func migrateCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Tag attachments and point content URLs at the CDN",
		Long: `Tags every attachment with its bucket and object key, folds subsite
content URLs onto the network root, and then replaces the network root
content URL with the CDN URL in posts, excerpts, post meta and options.

Running it again only touches rows added since the last run.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runMigration(c, cdn.Migrate)
		},
	}
	c.Flags().String(env.CDNURL.Key(), env.CDNURL.Default(), "CDN URL; read from the S3 offload settings when empty")
	c.Flags().String(env.Bucket.Key(), env.Bucket.Default(), "bucket recorded on every tagged attachment")
	return c
}

func undoCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "undo",
		Short: "Remove attachment tags and point content URLs back at the network",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runMigration(c, cdn.Undo)
		},
	}
	c.Flags().String(env.CDNURL.Key(), env.CDNURL.Default(), "CDN URL to replace; read from the S3 offload settings when empty")
	return c
}

// migrationConfig assembles a run configuration from the bound settings.
func migrationConfig(direction cdn.Direction, cdnURL string) cdn.Config {
	return cdn.Config{
		Direction:      direction,
		NetworkHomeURL: env.NetworkHomeURL.Setting(),
		CDNURL:         cdnURL,
		Bucket:         env.Bucket.Setting(),
		BatchSize:      env.BatchSize.IntegerSetting(),
		MaxDepth:       env.MaxDepth.IntegerSetting(),
	}
}

func resolveCDNURL(ctx context.Context, s store.Store) (string, error) {
	if u := env.CDNURL.Setting(); u != "" {
		return u, nil
	}
	u, err := cdn.ResolveCDNURL(ctx, s)
	if err != nil {
		return "", errors.Wrapf(err, "no --%s given", env.CDNURL.Key())
	}
	log.Infof("Using CDN URL %s from the S3 offload settings", u)
	return u, nil
}

func runMigration(c *cobra.Command, direction cdn.Direction) error {
	ctx, cancel := context.WithTimeout(c.Context(), env.MigrationTimeout.DurationSetting())
	defer cancel()

	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	stopMetrics := serveMetrics(env.MetricsListen.Setting())
	defer stopMetrics()

	s := newStore(pool)
	cdnURL, err := resolveCDNURL(ctx, s)
	if err != nil {
		return err
	}

	bar := newProgress(c.ErrOrStderr())
	report, err := cdn.Run(ctx, s, migrationConfig(direction, cdnURL), bar.update)
	bar.wait()
	if report != nil {
		printReport(c, report)
	}
	if err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		return errors.Wrapf(err, "%d rows could not be updated", len(report.Failed))
	}
	return nil
}

func printReport(c *cobra.Command, report *cdn.Report) {
	out := c.OutOrStdout()
	if report.Direction == cdn.Undo {
		fmt.Fprintf(out, "Removed tags from %d attachments\n", report.Attachments)
	} else {
		fmt.Fprintf(out, "Parsed %d attachments\n", report.Attachments)
	}
	fmt.Fprintf(out, "Changed %d URLs\n", report.Substitutions)
	for _, t := range report.Failed {
		fmt.Fprintf(out, "  not updated: tenant %d %s row %d\n", t.PartitionID, t.Column, t.RowID)
	}
}
