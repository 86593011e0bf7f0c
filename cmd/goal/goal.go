// Package goal handles the savings goal commands.
package goal

import (
	"fmt"

	"fjacquet/finledger/cmd/root"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	name        string
	target      string
	deadline    string
	description string
	goalID      int
	amount      string
)

// Cmd represents the goal command group.
var Cmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new savings goal",
	Run:   createFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a contribution to a savings goal",
	Run:   addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List savings goals and their progress",
	Run:   listFunc,
}

func init() {
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Goal name (required)")
	createCmd.Flags().StringVarP(&target, "target", "t", "", "Target amount (required, > 0)")
	createCmd.Flags().StringVarP(&deadline, "deadline", "l", "", "Deadline as ISO-8601 date (optional)")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Goal description")
	if err := createCmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
	if err := createCmd.MarkFlagRequired("target"); err != nil {
		panic(err)
	}

	addCmd.Flags().IntVarP(&goalID, "id", "i", 0, "Goal id (required)")
	addCmd.Flags().StringVarP(&amount, "amount", "a", "", "Contribution amount (required)")
	if err := addCmd.MarkFlagRequired("id"); err != nil {
		panic(err)
	}
	if err := addCmd.MarkFlagRequired("amount"); err != nil {
		panic(err)
	}

	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
}

func createFunc(cmd *cobra.Command, args []string) {
	value, err := decimal.NewFromString(target)
	if err != nil {
		root.Log.Fatalf("Invalid target amount %q: %v", target, err)
	}

	c, err := root.Setup()
	if err != nil {
		root.Log.Fatalf("Error initializing application: %v", err)
	}

	created, err := c.Goals().Create(name, value, deadline, description)
	if err != nil {
		root.Log.Fatalf("Error creating goal: %v", err)
	}

	if err := c.SaveGoals(); err != nil {
		root.Log.Fatalf("Error saving goals: %v", err)
	}

	root.Log.Infof("Goal #%d %q created with target %s", created.ID, created.Name, created.TargetAmount.StringFixed(2))
}

func addFunc(cmd *cobra.Command, args []string) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		root.Log.Fatalf("Invalid amount %q: %v", amount, err)
	}
	if !value.IsPositive() {
		root.Log.Fatalf("Contribution must be greater than zero, got %s", value)
	}

	c, err := root.Setup()
	if err != nil {
		root.Log.Fatalf("Error initializing application: %v", err)
	}

	updated, err := c.Goals().Contribute(goalID, value)
	if err != nil {
		root.Log.Fatalf("Error contributing to goal %d: %v", goalID, err)
	}

	if err := c.SaveGoals(); err != nil {
		root.Log.Fatalf("Error saving goals: %v", err)
	}

	root.Log.Infof("Goal #%d at %s of %s (%.1f%%)", updated.ID,
		updated.CurrentAmount.StringFixed(2), updated.TargetAmount.StringFixed(2), updated.Progress())
}

func listFunc(cmd *cobra.Command, args []string) {
	c, err := root.Setup()
	if err != nil {
		root.Log.Fatalf("Error initializing application: %v", err)
	}

	goalList := c.Goals().List()
	if len(goalList) == 0 {
		fmt.Println("No savings goals defined.")
		return
	}

	for _, g := range goalList {
		line := fmt.Sprintf("#%d %-20s %s / %s (%.1f%%)", g.ID, g.Name,
			g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2), g.Progress())
		if g.Deadline != "" {
			line += " by " + g.Deadline
		}
		fmt.Println(line)
	}
}
