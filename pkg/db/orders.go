package db

import (
	"database/sql"
	"fmt"
)

// Order represents one recorded purchase.
type Order struct {
	ID       int64
	ItemName string
	Quantity uint
	Price    float64 // Unit price
	Date     string  // YYYY-MM-DD
}

// TotalCost returns quantity times unit price.
func (o Order) TotalCost() float64 {
	return float64(o.Quantity) * o.Price
}

// Orders manages order records.
type Orders struct {
	conn *Connection
}

// NewOrders creates a new Orders repository.
func NewOrders(conn *Connection) *Orders {
	return &Orders{conn: conn}
}

// Add inserts one order. The row id is assigned by SQLite.
func (r *Orders) Add(order Order) error {
	query := `
		INSERT INTO orders (item_name, quantity, price, date)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.conn.Exec(query,
		order.ItemName,
		order.Quantity,
		order.Price,
		order.Date,
	)

	if err != nil {
		return fmt.Errorf("failed to add order: %w", err)
	}

	return nil
}

// DailyTotal returns the sum of quantity*price over all orders whose date
// matches exactly. A date with no orders yields 0, not an error.
func (r *Orders) DailyTotal(date string) (float64, error) {
	query := `
		SELECT SUM(quantity * price) FROM orders WHERE date = ?
	`

	var total sql.NullFloat64
	err := r.conn.QueryRow(query, date).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to compute daily total: %w", err)
	}

	if !total.Valid {
		return 0, nil
	}
	return total.Float64, nil
}

// All retrieves every order in insertion (id) order.
func (r *Orders) All() ([]Order, error) {
	query := `
		SELECT id, item_name, quantity, price, date
		FROM orders
		ORDER BY id
	`

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var order Order

		if err := rows.Scan(
			&order.ID,
			&order.ItemName,
			&order.Quantity,
			&order.Price,
			&order.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	return orders, nil
}

// Stats represents order statistics.
type Stats struct {
	TotalOrders  int
	TotalSpend   float64
	DistinctDays int
	LastDate     sql.NullString
}

// GetStats retrieves statistics over all recorded orders.
func (r *Orders) GetStats() (*Stats, error) {
	var stats Stats

	err := r.conn.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&stats.TotalOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to get order count: %w", err)
	}

	var spend sql.NullFloat64
	err = r.conn.QueryRow(`SELECT SUM(quantity * price) FROM orders`).Scan(&spend)
	if err != nil {
		return nil, fmt.Errorf("failed to get total spend: %w", err)
	}
	if spend.Valid {
		stats.TotalSpend = spend.Float64
	}

	err = r.conn.QueryRow(`SELECT COUNT(DISTINCT date) FROM orders`).Scan(&stats.DistinctDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct day count: %w", err)
	}

	err = r.conn.QueryRow(`SELECT MAX(date) FROM orders`).Scan(&stats.LastDate)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last order date: %w", err)
	}

	return &stats, nil
}
