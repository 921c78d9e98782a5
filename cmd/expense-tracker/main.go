// Package main is the entry point for the expense-tracker CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/expense-tracker/cmd/expense-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
