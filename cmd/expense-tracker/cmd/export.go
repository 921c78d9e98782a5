package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shunichi-ikebuchi/expense-tracker/pkg/export"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <filepath>",
	Short: "Export all orders to a CSV file",
	Long: `Write every recorded order to a CSV file.

The file gets a header row (item_name,quantity,price,date) followed by one
row per order in insertion order. An existing file at the target path is
overwritten.

Example:
  expense-tracker export orders.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	conn, orders, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	count, err := export.ToCSV(orders, path)
	if err != nil {
		return err
	}

	slog.Debug("Export completed", "path", path, "records", count)
	fmt.Printf("Orders exported to %s\n", path)

	return nil
}
