package main

import (
	"github.com/spf13/cobra"

	"github.com/quillfin/ledgermatch/internal/cli"
	"github.com/quillfin/ledgermatch/internal/model"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one entry and its suggested classification",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entry, err := store.GetEntryByID(ctx, args[0])
	if err != nil {
		return err
	}
	cmd.Println(cli.FormatEntries([]model.BankEntry{*entry}))

	classification, err := store.GetClassification(ctx, args[0])
	if err != nil {
		cmd.Println(cli.SubtleStyle.Render("not yet classified"))
		return nil
	}
	cmd.Println(cli.FormatClassification(classification))
	return nil
}
