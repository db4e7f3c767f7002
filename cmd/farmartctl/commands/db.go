package commands

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/farmart-ke/farmart-backend/internal/application"
	"github.com/farmart-ke/farmart-backend/internal/config"
	"github.com/farmart-ke/farmart-backend/internal/config/db"
	"github.com/farmart-ke/farmart-backend/internal/migrate"
	"github.com/farmart-ke/farmart-backend/internal/repository"
)

var (
	// downTo holds the target version for `db downgrade --to`. Negative
	// means roll back a single migration.
	downTo int64

	// withSeed loads the test fixtures after `db reset`.
	withSeed bool
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management commands",
}

var dbUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Apply all pending migrations",
	RunE:  runDBUpgrade,
}

var dbDowngradeCmd = &cobra.Command{
	Use:   "downgrade",
	Short: "Roll back migrations",
	Long:  `Rolls back the most recent migration, or down to --to N.`,
	RunE:  runDBDowngrade,
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE:  runDBStatus,
}

var dbVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE:  runDBVersion,
}

var dbResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the public schema and rebuild it from the migrations",
	Long: `Drops the public schema with everything in it, including the migration
bookkeeping table, then reapplies every migration from scratch. Meant for
development databases whose migration state has drifted.`,
	RunE: runDBReset,
}

var dbSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the development test fixtures",
	RunE:  runDBSeed,
}

func init() {
	dbDowngradeCmd.Flags().Int64Var(&downTo, "to", -1, "Target schema version (0 removes everything)")
	dbResetCmd.Flags().BoolVar(&withSeed, "seed", false, "Load test fixtures after rebuilding")

	dbCmd.AddCommand(dbUpgradeCmd)
	dbCmd.AddCommand(dbDowngradeCmd)
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbVersionCmd)
	dbCmd.AddCommand(dbResetCmd)
	dbCmd.AddCommand(dbSeedCmd)
}

func loadCLIConfig() {
	if envFile != "" {
		config.LoadConfig(envFile)
		return
	}
	config.LoadConfig()
}

// openRunner loads config and hands back a migration runner on a raw
// database handle. The caller closes the handle.
func openRunner() (*migrate.Runner, *sql.DB, error) {
	loadCLIConfig()

	sqlDB, err := sql.Open("postgres", config.DatabaseURL())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("cannot reach database: %w", err)
	}

	runner, err := migrate.NewRunner(sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	return runner, sqlDB, nil
}

func seedDatabase() error {
	db.Init()
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos)
	return services.Seed.SeedTestData()
}

func runDBUpgrade(cmd *cobra.Command, args []string) error {
	runner, sqlDB, err := openRunner()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return runner.Up(context.Background())
}

func runDBDowngrade(cmd *cobra.Command, args []string) error {
	runner, sqlDB, err := openRunner()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if downTo >= 0 {
		return runner.DownTo(context.Background(), downTo)
	}
	return runner.Down(context.Background())
}

func runDBStatus(cmd *cobra.Command, args []string) error {
	runner, sqlDB, err := openRunner()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return runner.Status(context.Background())
}

func runDBVersion(cmd *cobra.Command, args []string) error {
	runner, sqlDB, err := openRunner()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	version, err := runner.Version(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("database schema version: %d\n", version)
	return nil
}

func runDBReset(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Starting Database Nuclear Reset...")

	runner, sqlDB, err := openRunner()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := runner.Reset(context.Background()); err != nil {
		return err
	}

	if withSeed {
		if err := seedDatabase(); err != nil {
			return err
		}
	}

	fmt.Println("\n✨ Database wiped and rebuilt successfully!")
	if withSeed {
		fmt.Println("\nTest credentials:")
		fmt.Println("  Email: test@farmart.com")
		fmt.Println("  Password: testpass123")
	}
	return nil
}

func runDBSeed(cmd *cobra.Command, args []string) error {
	loadCLIConfig()
	return seedDatabase()
}
