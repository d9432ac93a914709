// Package cmd implements the cdn-migrator command line.
package cmd

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stackrox/cdn-migrator/migrator/store"
	"github.com/stackrox/cdn-migrator/pkg/env"
	"github.com/stackrox/cdn-migrator/pkg/errox"
	"github.com/stackrox/cdn-migrator/pkg/logging"
)

var log = logging.LoggerForModule()

// Command returns the root command with every subcommand attached.
func Command() *cobra.Command {
	var configFile, logLevel string

	c := &cobra.Command{
		Use:           "cdn-migrator",
		Short:         "Move the uploaded content of a multisite network onto a CDN, and back",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if err := env.BindFlags(c.Flags()); err != nil {
				return err
			}
			if configFile != "" {
				if err := env.LoadConfigFile(configFile); err != nil {
					return err
				}
			}
			if logLevel != "" {
				level, err := logging.ParseLevel(logLevel)
				if err != nil {
					return errox.InvalidArgs.CausedBy(err)
				}
				logging.SetLevel(level)
			}
			return nil
		},
	}

	flags := c.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML, TOML or JSON file providing any of the settings below")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOGLEVEL")
	flags.String(env.DSN.Key(), env.DSN.Default(), "PostgreSQL connection string of the platform database")
	flags.String(env.TablePrefix.Key(), env.TablePrefix.Default(), "table prefix of the network")
	flags.String(env.NetworkHomeURL.Key(), env.NetworkHomeURL.Default(), "network root URL, e.g. http://www.example.com")
	flags.Int(env.BatchSize.Key(), env.BatchSize.IntegerSetting(), "rows read per query")
	flags.Int(env.MaxDepth.Key(), env.MaxDepth.IntegerSetting(), "nesting limit for serialized values; 0 disables it")
	flags.Duration(env.MigrationTimeout.Key(), env.MigrationTimeout.DurationSetting(), "upper bound for one run")
	flags.String(env.MetricsListen.Key(), env.MetricsListen.Default(), "address serving Prometheus metrics during a run, e.g. :9090")

	c.AddCommand(
		migrateCommand(),
		undoCommand(),
		statusCommand(),
	)
	return c
}

// connect opens a pool on the configured database and checks it is reachable.
func connect(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := env.DSN.Setting()
	if dsn == "" {
		return nil, errox.InvalidArgs.Newf("a database connection string is required, set --%s or %s", env.DSN.Key(), env.DSN.EnvVar())
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to the database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "connecting to the database")
	}
	return pool, nil
}

func newStore(pool *pgxpool.Pool) store.Store {
	return store.New(pool, env.TablePrefix.Setting())
}
