// Command fightsongs prints the conference dashboard tables to a terminal
// and manages the SQLite store.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/csv"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/sqlite"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/config"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/ports"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/services"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "fightsongs",
	Short:         "Explore the Big Ten fight songs dataset",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("WARN fightsongs: could not read .env: %v", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/fightsongs.yaml", "path to the YAML config")
	rootCmd.AddCommand(summaryCmd, rankCmd, profileCmd, compareCmd, importCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and parses its settings.
func loadConfig() (*config.Config, services.Settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, services.Settings{}, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, services.Settings{}, err
	}
	return &cfg, settings, nil
}

// openDashboard builds a loaded dashboard from the configured storage. The
// returned close func releases the store.
func openDashboard(ctx context.Context) (*services.Dashboard, services.Settings, func(), error) {
	cfg, settings, err := loadConfig()
	if err != nil {
		return nil, settings, nil, err
	}

	var repo ports.SongRepository
	closeFn := func() {}
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.NewAdapter(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, settings, nil, err
		}
		repo = db
		closeFn = func() { db.Close() }
	default:
		repo = csv.NewLoader(cfg.Storage.CSVPath)
	}

	svc := services.NewDashboard(repo, nil, settings)
	if err := svc.Load(ctx); err != nil {
		closeFn()
		return nil, settings, nil, fmt.Errorf("load dataset: %w", err)
	}
	return svc, settings, closeFn, nil
}
