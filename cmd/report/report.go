// Package report handles the monthly report command.
package report

import (
	"fmt"
	"time"

	"fjacquet/finledger/cmd/root"

	"github.com/spf13/cobra"
)

var (
	month int
	year  int
)

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a monthly spending report",
	Long: `Generate a report for a calendar month: total spending, the matching
transactions and a per-category breakdown. Defaults to the current month.`,
	Run: reportFunc,
}

func init() {
	now := time.Now()
	Cmd.Flags().IntVarP(&month, "month", "m", int(now.Month()), "Month (1-12)")
	Cmd.Flags().IntVarP(&year, "year", "y", now.Year(), "Year")
}

func reportFunc(cmd *cobra.Command, args []string) {
	if month < 1 || month > 12 {
		root.Log.Fatalf("Invalid month: %d", month)
	}

	c, err := root.Setup()
	if err != nil {
		root.Log.Fatalf("Error initializing application: %v", err)
	}

	r := c.Ledger().MonthlyReport(time.Month(month), year)

	fmt.Printf("Report for %s %d\n", r.Month, r.Year)
	fmt.Printf("Total: %s over %d transactions\n", r.Total.StringFixed(2), len(r.Transactions))
	for category, total := range r.ByCategory {
		fmt.Printf("  %-20s %s\n", category, total.StringFixed(2))
	}
}
