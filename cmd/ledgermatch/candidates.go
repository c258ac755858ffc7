package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillfin/ledgermatch/internal/model"
)

func candidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Manage the candidate snapshot the engine matches against",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "load <file.json>",
		Short: "Load a candidate snapshot (loans, installments, investors, expense types)",
		Long: `Load a read-only snapshot of the lender's records exported as JSON.
Each load replaces the previous snapshot; the engine never mutates it.`,
		Args: cobra.ExactArgs(1),
		RunE: runCandidatesLoad,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the loaded candidate snapshot",
		Args:  cobra.NoArgs,
		RunE:  runCandidatesList,
	})

	return cmd
}

func runCandidatesLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var candidates []model.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return fmt.Errorf("failed to decode candidate snapshot: %w", err)
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveCandidates(ctx, candidates); err != nil {
		return err
	}

	cmd.Printf("Loaded %d candidates\n", len(candidates))
	return nil
}

func runCandidatesList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	candidates, err := store.GetCandidates(ctx)
	if err != nil {
		return err
	}

	for i := range candidates {
		c := &candidates[i]
		cmd.Printf("%-14s %-12s %10.2f  %s\n", c.Kind, c.ID, c.Amount, c.DisplayName())
	}
	cmd.Printf("%d candidates\n", len(candidates))
	return nil
}
