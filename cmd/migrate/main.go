// migrate applies migrations/ to the configured database through the atlas CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"campus-reservation/internal/handler/middleware"
	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var dir, atlasBin string
	var timeout time.Duration

	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&dir, "dir", "migrations", "migration directory")
	flagSet.StringVar(&atlasBin, "atlas", "atlas", "atlas executable")
	flagSet.DurationVar(&timeout, "timeout", 2*time.Minute, "overall time limit")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	middleware.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return errs.Wrapf(err, "load migrations from %s", dir)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "init atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		return errs.Wrap(err, "apply migrations")
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
