// Package export handles the data export command.
package export

import (
	"fmt"

	"fjacquet/finledger/cmd/root"

	"github.com/spf13/cobra"
)

var (
	format string
	output string
)

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions and savings goals",
	Long: `Export all transactions and savings goals as a nested JSON document or
a flat CSV table. Without --output the document is printed to stdout.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json or csv")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	c, err := root.Setup()
	if err != nil {
		root.Log.Fatalf("Error initializing application: %v", err)
	}

	if output == "" {
		doc, err := c.Exporter().Export(format)
		if err != nil {
			root.Log.Fatalf("Error exporting data: %v", err)
		}
		fmt.Print(doc)
		return
	}

	if err := c.Exporter().ExportToFile(format, output); err != nil {
		root.Log.Fatalf("Error exporting data: %v", err)
	}
	root.Log.Infof("Data exported to %s", output)
}
