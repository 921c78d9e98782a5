// Package db provides SQLite storage for recorded orders.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Orders table
-- One row per recorded purchase; rows are never updated or deleted
CREATE TABLE IF NOT EXISTS orders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item_name TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    price REAL NOT NULL,               -- Unit price
    date TEXT NOT NULL                 -- YYYY-MM-DD, stored verbatim
);

CREATE INDEX IF NOT EXISTS idx_orders_date
    ON orders(date);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
