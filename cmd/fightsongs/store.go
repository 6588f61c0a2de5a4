package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/csv"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/export"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/sqlite"
)

var importDB string

var importCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Replace the SQLite store's songs with the rows of a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		songs, err := csv.NewLoader(args[0]).LoadSongs(cmd.Context())
		if err != nil {
			return err
		}

		dbPath := importDB
		if dbPath == "" {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			dbPath = cfg.Storage.SQLitePath
		}
		db, err := sqlite.NewAdapter(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := db.SaveSongs(cmd.Context(), songs)
		if err != nil {
			return err
		}
		color.Green("Imported %d songs into %s", len(songs), dbPath)
		fmt.Println(id)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <out.xlsx>",
	Short: "Write the dataset and derived tables to an xlsx workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, settings, closeFn, err := openDashboard(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		report, err := export.FromDashboard(svc, settings.Tropes)
		if err != nil {
			return err
		}
		f, err := export.Build(report)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := f.SaveAs(args[0]); err != nil {
			return fmt.Errorf("save workbook: %w", err)
		}
		color.Green("Wrote %s (snapshot %s)", args[0], report.Snapshot)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importDB, "db", "", "SQLite path (default: storage.sqlite_path from config)")
}
