// Package main provides the entry point for the finledger CLI application.
package main

import (
	"fmt"
	"os"

	"fjacquet/finledger/cmd/export"
	"fjacquet/finledger/cmd/goal"
	"fjacquet/finledger/cmd/list"
	"fjacquet/finledger/cmd/record"
	"fjacquet/finledger/cmd/report"
	"fjacquet/finledger/cmd/root"
	"fjacquet/finledger/cmd/summary"
)

func main() {
	root.Cmd.AddCommand(record.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(goal.Cmd)
	root.Cmd.AddCommand(export.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
