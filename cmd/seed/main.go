// seed provisions seats and meeting rooms from a YAML file.
//
//	go run ./cmd/seed --file seed/facilities.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"campus-reservation/internal/handler/middleware"
	"campus-reservation/internal/infra/db"
	"campus-reservation/internal/infra/seed"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/infra/uow"
	"campus-reservation/internal/pkg/config"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var filePath string
	var timeout time.Duration

	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringVar(&filePath, "file", "seed/facilities.yaml", "path to the facilities YAML file")
	flagSet.DurationVar(&timeout, "timeout", 30*time.Second, "overall time limit")
	flagSet.Bool("dry-run", false, "parse and print the plan without writing")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	plan, err := seed.Load(filePath)
	if err != nil {
		return err
	}
	if dryRun, _ := flagSet.GetBool("dry-run"); dryRun {
		fmt.Printf("seats %d..%d (%d unavailable), meeting rooms %d\n",
			plan.Seats.From, plan.Seats.To, len(plan.Seats.Unavailable), len(plan.MeetingRooms))
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	middleware.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := seed.Apply(ctx, uow.NewPostgresUoW(pool, sqlc.New()), plan); err != nil {
		return err
	}
	slog.Info("seed finished", "file", filePath)
	return nil
}
