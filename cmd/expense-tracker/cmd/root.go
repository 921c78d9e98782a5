// Package cmd provides CLI commands for expense-tracker.
package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/shunichi-ikebuchi/expense-tracker/pkg/config"
	"github.com/shunichi-ikebuchi/expense-tracker/pkg/db"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "expense-tracker",
	Short: "Track daily purchase expenses",
	Long: `expense-tracker is a CLI tool that records purchases into a local
SQLite database and reports on them.

It supports:
- Recording orders (item, quantity, unit price, date)
- Computing the total spent on a given day
- Exporting all orders to a CSV file

Example:
  expense-tracker add Coffee 2 1.75
  expense-tracker daily-total 2024-01-05
  expense-tracker export orders.csv`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Arguments are validated by now; a failing command should not
		// dump usage on top of its error.
		cmd.SilenceUsage = true

		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(dailyTotalCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
}

// openStore loads configuration and opens the order store. The caller owns
// the connection and must close it.
func openStore() (*db.Connection, *db.Orders, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("Opening database", "path", cfg.DBPath)
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	return conn, db.NewOrders(conn), nil
}

// today returns the current local calendar date.
func today() string {
	return time.Now().Format("2006-01-02")
}
