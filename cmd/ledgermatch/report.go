package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/quillfin/ledgermatch/internal/cli"
	"github.com/quillfin/ledgermatch/internal/model"
	"github.com/quillfin/ledgermatch/internal/service"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Summarize reconciliation progress",
		Args:  cobra.NoArgs,
		RunE:  runReport,
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.GetEntries(ctx, service.EntryFilter{})
	if err != nil {
		return err
	}

	byStatus := make(map[model.EntryStatus]int)
	var creditTotal, debitTotal float64
	for i := range entries {
		byStatus[entries[i].Status]++
		if entries[i].IsCredit() {
			creditTotal += entries[i].Amount
		} else {
			debitTotal += math.Abs(entries[i].Amount)
		}
	}

	cmd.Println(cli.TitleStyle.Render("Reconciliation report"))
	cmd.Printf("%d entries: %.2f in, %.2f out\n\n", len(entries), creditTotal, debitTotal)

	for _, status := range []model.EntryStatus{
		model.EntryStatusImported,
		model.EntryStatusSuggested,
		model.EntryStatusConfirmed,
		model.EntryStatusReconciled,
	} {
		cmd.Println(fmt.Sprintf("  %-11s %d", status, byStatus[status]))
	}

	for _, pot := range allPots {
		p := pot
		potEntries, err := store.GetEntries(ctx, service.EntryFilter{Pot: &p})
		if err != nil {
			return err
		}
		cmd.Printf("  pot %-13s %d\n", pot, len(potEntries))
	}
	return nil
}
