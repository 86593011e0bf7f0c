// Package list handles the transaction listing command.
package list

import (
	"fmt"

	"fjacquet/finledger/cmd/root"

	"github.com/spf13/cobra"
)

var days int

// Cmd represents the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded transactions",
	Long: `List transactions sorted by date, most recent first. With --days only
transactions within the window are shown.`,
	Run: listFunc,
}

func init() {
	Cmd.Flags().IntVarP(&days, "days", "n", 0, "Only show transactions from the last N days")
}

func listFunc(cmd *cobra.Command, args []string) {
	c, err := root.Setup()
	if err != nil {
		root.Log.Fatalf("Error initializing application: %v", err)
	}

	transactions, err := c.Ledger().Query(days)
	if err != nil {
		root.Log.Fatalf("Error querying transactions: %v", err)
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions recorded.")
		return
	}

	for _, tx := range transactions {
		fmt.Printf("#%d %s [%s]\n", tx.ID, tx.String(), tx.PaymentMethod)
	}
}
