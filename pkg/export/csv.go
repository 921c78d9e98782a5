// Package export serializes stored orders to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/shunichi-ikebuchi/expense-tracker/pkg/db"
)

// csvHeader matches the order field names, in column order.
var csvHeader = []string{"item_name", "quantity", "price", "date"}

// ToCSV writes every stored order to a CSV file at path, creating or
// truncating it. The file holds one header row plus one record per order in
// store order. Returns the number of records written.
//
// Any failure aborts the export; a partially written file may remain.
func ToCSV(orders *db.Orders, path string) (int, error) {
	records, err := orders.All()
	if err != nil {
		return 0, fmt.Errorf("failed to read orders: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, order := range records {
		row := []string{
			order.ItemName,
			strconv.FormatUint(uint64(order.Quantity), 10),
			strconv.FormatFloat(order.Price, 'g', -1, 64),
			order.Date,
		}
		if err := w.Write(row); err != nil {
			return 0, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close file: %w", err)
	}

	return len(records), nil
}
