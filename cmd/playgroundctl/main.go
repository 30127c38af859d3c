package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	app "github.com/sqlplayground/playground/internal/application/seed"
	domain "github.com/sqlplayground/playground/internal/domain/seed"
	"github.com/sqlplayground/playground/internal/infrastructure/file"
	"github.com/sqlplayground/playground/internal/infrastructure/sqlexec"
	"github.com/sqlplayground/playground/internal/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "playgroundctl [command]",
		Short:         "SQL Playground database manager: seed, inspect and repair the practice database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSetupCmd(), newChallengeCmd(), newInfoCmd(), newFixCmd())
	return root
}

func newSetupCmd() *cobra.Command {
	var configPath string
	var large bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Drop, recreate and seed the playground database",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *domain.Config
			switch {
			case large && configPath != "":
				return errors.New("--large and --config are mutually exclusive")
			case large:
				preset := domain.LargeConfig(time.Now())
				cfg = &preset
			case configPath != "":
				loaded, err := file.NewConfigSource(".").Load(configPath, time.Now())
				if err != nil {
					return err
				}
				cfg = &loaded
			}

			return runSetup(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON generation config")
	cmd.Flags().BoolVar(&large, "large", false, "use the large-dataset preset")
	return cmd
}

func newChallengeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenge [light|medium|heavy|<rate>]",
		Short: "Seed a data-quality challenge dataset with injected errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			var cfg domain.Config
			if rate, err := strconv.Atoi(args[0]); err == nil {
				cfg, err = domain.CustomChallengeConfig(rate, now)
				if err != nil {
					return err
				}
			} else {
				cfg, err = domain.ChallengeConfig(args[0], now)
				if err != nil {
					return err
				}
			}

			return runSetup(cmd.Context(), &cfg)
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show row counts for the playground tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			out, err := app.NewGetDatabaseInfo(sqlexec.New(pool)).Execute(cmd.Context())
			if err != nil {
				return err
			}

			for _, table := range out.Tables {
				if table.Error != "" {
					fmt.Printf("%-12s %s\n", table.Name, table.Error)
					continue
				}
				fmt.Printf("%-12s %d rows\n", table.Name, *table.Count)
			}
			return nil
		},
	}
}

func newFixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fix",
		Short: "Reinstall the run_query helper function",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := app.EnsureRunQueryFunction(cmd.Context(), sqlexec.New(pool)); err != nil {
				return err
			}
			fmt.Println("run_query function installed")
			return nil
		},
	}
}

func runSetup(ctx context.Context, cfg *domain.Config) error {
	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	setup := app.NewSetupDatabase(sqlexec.New(pool), app.NopRunRecorder{}, logger)
	out, err := setup.Execute(ctx, app.SetupDatabaseInput{Config: cfg, Trigger: "cli"})
	if err != nil {
		return err
	}

	fmt.Printf("seeded %d countries, %d cities, %d users, %d products, %d orders, %d order items\n",
		out.Counts.Countries, out.Counts.Cities, out.Counts.Users,
		out.Counts.Products, out.Counts.Orders, out.Counts.OrderItems)
	return nil
}

func connect(ctx context.Context) (*pgxpool.Pool, error) {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	return pgxpool.New(ctx, databaseURL)
}

func buildLogger() (*zap.Logger, error) {
	conf := logging.DefaultConfig()

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	parsed, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	conf.Level = zap.NewAtomicLevelAt(parsed)

	return conf.Build()
}
