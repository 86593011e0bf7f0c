// Package summary handles the per-category spending summary command.
package summary

import (
	"fmt"
	"sort"

	"fjacquet/finledger/cmd/root"

	"github.com/spf13/cobra"
)

var days int

// Cmd represents the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show spending totals per category",
	Run:   summaryFunc,
}

func init() {
	Cmd.Flags().IntVarP(&days, "days", "n", 0, "Only include transactions from the last N days")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	c, err := root.Setup()
	if err != nil {
		root.Log.Fatalf("Error initializing application: %v", err)
	}

	totals, err := c.Ledger().SummarizeByCategory(days)
	if err != nil {
		root.Log.Fatalf("Error summarizing transactions: %v", err)
	}

	if len(totals) == 0 {
		fmt.Println("No transactions to summarize.")
		return
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%-20s %s\n", name, totals[name].StringFixed(2))
	}
}
