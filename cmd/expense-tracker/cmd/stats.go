package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display order statistics",
	Long: `Display statistics about all recorded orders.

Shows:
- Total number of orders
- Total amount spent
- Number of distinct days with orders
- Most recent order date

Example:
  expense-tracker stats`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	conn, orders, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	stats, err := orders.GetStats()
	if err != nil {
		return err
	}

	fmt.Println("\n=== Order Statistics ===")
	fmt.Printf("Total orders:      %d\n", stats.TotalOrders)
	fmt.Printf("Total spent:       $%.2f\n", stats.TotalSpend)
	fmt.Printf("Days with orders:  %d\n", stats.DistinctDays)

	if stats.LastDate.Valid {
		fmt.Printf("Last order date:   %s\n", stats.LastDate.String)
	} else {
		fmt.Printf("Last order date:   (none)\n")
	}

	fmt.Println()

	return nil
}
