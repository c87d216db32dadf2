package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ciraganenicole/choir-registry/cmd/cli/commands"
	"github.com/ciraganenicole/choir-registry/internal/config"
	"github.com/ciraganenicole/choir-registry/pkg/postgres"
	"github.com/ciraganenicole/choir-registry/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
	db  *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "choir",
		Short: "Choir Registry CLI - Plan rehearsals and promote them into performances",
		Long:  `A CLI tool for planning choir rehearsals, managing song plans and templates, and promoting completed rehearsals into performances.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if db != nil {
				db.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(
		commands.CreateRehearsalCmd(appRef()),
		commands.ViewRehearsalCmd(appRef()),
		commands.SetStatusCmd(appRef()),
		commands.PromoteRehearsalCmd(appRef()),
		commands.AddSongCmd(appRef()),
		commands.DeleteSongCmd(appRef()),
		commands.DeleteRehearsalCmd(appRef()),
		commands.ListTemplatesCmd(appRef()),
		commands.NewFromTemplateCmd(appRef()),
		commands.ScheduleSeriesCmd(appRef()),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, created empty before initApp fills
// it in during PersistentPreRunE.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

func initApp() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logger.With(zap.String("session_id", uuid.NewString()))

	db, err = postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	a := appRef()
	a.Cfg = cfg
	a.Database = db
	a.Logger = logger
	a.Ctx = ctx

	logger.Debug("Application initialized", zap.String("env", env))
	return nil
}
