package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillfin/ledgermatch/internal/common"
	"github.com/quillfin/ledgermatch/internal/model"
)

func confirmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm <entry-id>",
		Short: "Confirm a suggested classification",
		Long: `Record the human decision for an entry. Confirming moves the entry to
CONFIRMED; --reconciled moves it straight to RECONCILED once the ledger
transaction has been written in the system of record.`,
		Args: cobra.ExactArgs(1),
		RunE: runConfirm,
	}

	cmd.Flags().Bool("reconciled", false, "mark the entry fully reconciled")
	return cmd
}

func runConfirm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	reconciled, _ := cmd.Flags().GetBool("reconciled")

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entry, err := store.GetEntryByID(ctx, args[0])
	if err != nil {
		return err
	}
	if entry.Status == model.EntryStatusReconciled {
		return fmt.Errorf("%w: %s", common.ErrAlreadyConfirmed, entry.ID)
	}

	if _, err := store.GetClassification(ctx, entry.ID); err != nil {
		return fmt.Errorf("entry %s has no classification to confirm: %w", entry.ID, err)
	}

	status := model.EntryStatusConfirmed
	if reconciled {
		status = model.EntryStatusReconciled
	}
	if err := store.UpdateEntryStatus(ctx, entry.ID, status); err != nil {
		return err
	}

	cmd.Printf("Entry %s is now %s\n", entry.ID, status)
	return nil
}
