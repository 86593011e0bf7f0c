// Package record handles the transaction recording command.
package record

import (
	"fjacquet/finledger/cmd/root"
	"fjacquet/finledger/internal/dateutils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	amount        string
	description   string
	category      string
	date          string
	paymentMethod string
)

// Cmd represents the record command.
var Cmd = &cobra.Command{
	Use:   "record",
	Short: "Record a new transaction",
	Long: `Record a new transaction in the ledger. Without an explicit category
the description is classified against the keyword rules; unmatched
descriptions fall back to the Other category.`,
	Run: recordFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount (required, > 0)")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text description")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Explicit category (skips keyword classification)")
	Cmd.Flags().StringVarP(&date, "date", "t", "", "ISO-8601 date or date-time (default: now)")
	Cmd.Flags().StringVarP(&paymentMethod, "payment-method", "p", "Cash", "Payment method (Cash, Card, ...)")
	if err := Cmd.MarkFlagRequired("amount"); err != nil {
		panic(err)
	}
}

func recordFunc(cmd *cobra.Command, args []string) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		root.Log.Fatalf("Invalid amount %q: %v", amount, err)
	}

	if date != "" {
		if _, err := dateutils.ParseDateString(date); err != nil {
			root.Log.Fatalf("Invalid date %q: %v", date, err)
		}
	}

	c, err := root.Setup()
	if err != nil {
		root.Log.Fatalf("Error initializing application: %v", err)
	}

	assigned, err := c.Ledger().Record(value, description, category, date, paymentMethod)
	if err != nil {
		root.Log.Fatalf("Error recording transaction: %v", err)
	}

	if err := c.SaveLedger(); err != nil {
		root.Log.Fatalf("Error saving ledger: %v", err)
	}

	root.Log.Infof("Transaction recorded under category: %s", assigned)
}
