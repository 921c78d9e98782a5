package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shunichi-ikebuchi/expense-tracker/pkg/db"
	"github.com/spf13/cobra"
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add <item> <quantity> <price> [date]",
	Short: "Record a new order",
	Long: `Record one purchase in the local database.

Quantity is a non-negative integer, price is the unit price. The date
defaults to today (YYYY-MM-DD) when omitted and is stored as given.

Example:
  expense-tracker add Coffee 2 1.75
  expense-tracker add Donut 3 1.25 2024-01-05`,
	Args: addArgs,
	RunE: runAdd,
}

// addArgs validates the add arguments so that malformed input still gets
// usage output, before any store access.
func addArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(3, 4)(cmd, args); err != nil {
		return err
	}
	if _, err := parseQuantity(args[1]); err != nil {
		return err
	}
	if _, err := parsePrice(args[2]); err != nil {
		return err
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	item := args[0]

	// Already validated by addArgs
	quantity, err := parseQuantity(args[1])
	if err != nil {
		return err
	}
	price, err := parsePrice(args[2])
	if err != nil {
		return err
	}

	date := today()
	if len(args) == 4 {
		date = args[3]
	}

	conn, orders, err := openStore()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := orders.Add(db.Order{
		ItemName: item,
		Quantity: quantity,
		Price:    price,
		Date:     date,
	}); err != nil {
		return err
	}

	slog.Debug("Order recorded", "item", item, "quantity", quantity, "price", price, "date", date)
	fmt.Printf("Order added: %s x%d @ $%.2f on %s\n", item, quantity, price, date)

	return nil
}

func parseQuantity(s string) (uint, error) {
	quantity, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: expected a non-negative integer", s)
	}
	return uint(quantity), nil
}

func parsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: expected a number", s)
	}
	return price, nil
}
