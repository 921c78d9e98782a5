package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// dailyTotalCmd represents the daily-total command.
var dailyTotalCmd = &cobra.Command{
	Use:   "daily-total [date]",
	Short: "Show total expenses for one day",
	Long: `Sum quantity*price over every order recorded for a date.

The date defaults to today (YYYY-MM-DD) when omitted and is compared as a
string against stored dates, so it must match the stored format exactly.
A date with no orders reports a total of $0.00.

Example:
  expense-tracker daily-total
  expense-tracker daily-total 2024-01-05`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDailyTotal,
}

func runDailyTotal(cmd *cobra.Command, args []string) error {
	date := today()
	if len(args) == 1 {
		date = args[0]
	}

	conn, orders, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	total, err := orders.DailyTotal(date)
	if err != nil {
		return err
	}

	slog.Debug("Computed daily total", "date", date, "total", total)
	fmt.Printf("Total for %s: $%.2f\n", date, total)

	return nil
}
