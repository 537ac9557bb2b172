//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"os"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/Dhanushcr18/Edu-wealth/internal/report"
	"github.com/shopspring/decimal"
)

func main() {
	expenses := []models.Expense{
		{Amount: decimal.NewFromFloat(850.00), Category: "Food & Drinks"},
		{Amount: decimal.NewFromFloat(300.00), Category: "Entertainment"},
		{Amount: decimal.NewFromFloat(500.00), Category: "Transport"},
		{Amount: decimal.NewFromFloat(1200.00), Category: "Shopping"},
		{Amount: decimal.NewFromFloat(450.00), Category: "Utilities"},
	}

	chartData, err := report.SpendingChart(expenses, "30 days")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("graph.png", chartData, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Created graph.png - Example spending breakdown chart")
}
