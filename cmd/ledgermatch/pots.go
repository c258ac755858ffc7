package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillfin/ledgermatch/internal/cli"
	"github.com/quillfin/ledgermatch/internal/model"
	"github.com/quillfin/ledgermatch/internal/service"
)

var allPots = []model.Pot{model.PotUnclassified, model.PotLoans, model.PotInvestors, model.PotExpenses}

func potsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pots [pot]",
		Short: "List entries per workflow pot",
		Long: `Show entries by pot (unclassified, loans, investors, expenses).
With no argument, all pots are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPots,
	}
}

func runPots(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pots := allPots
	if len(args) == 1 {
		pot := model.Pot(args[0])
		if !validPot(pot) {
			return fmt.Errorf("unknown pot %q", args[0])
		}
		pots = []model.Pot{pot}
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	for _, pot := range pots {
		p := pot
		entries, err := store.GetEntries(ctx, service.EntryFilter{Pot: &p})
		if err != nil {
			return err
		}

		cmd.Println(cli.TitleStyle.Render(fmt.Sprintf("%s (%d)", pot, len(entries))))
		if len(entries) > 0 {
			cmd.Println(cli.FormatEntries(entries))
		}
	}
	return nil
}

func validPot(pot model.Pot) bool {
	for _, p := range allPots {
		if p == pot {
			return true
		}
	}
	return false
}
