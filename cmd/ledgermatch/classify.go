package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quillfin/ledgermatch/internal/classify"
	"github.com/quillfin/ledgermatch/internal/cli"
	"github.com/quillfin/ledgermatch/internal/common"
	"github.com/quillfin/ledgermatch/internal/engine"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify imported entries and assign them to pots",
		Long: `Run the matching engine over every imported-but-unclassified bank entry.
Each entry gets an intent, a confidence score, a suggested match (single or
grouped), and a pot assignment. Nothing is confirmed automatically.`,
		Args: cobra.NoArgs,
		RunE: runClassify,
	}

	cmd.Flags().Int("workers", 0, "classification workers (default: number of CPUs)")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	_ = viper.BindPFlag("engine.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng := engine.NewWithConfig(store, classify.NewResolver(), engine.Config{
		Workers:      viper.GetInt("engine.workers"),
		ShowProgress: !noProgress,
	})

	summary, err := eng.ClassifyAll(ctx)
	if errors.Is(err, common.ErrNoEntries) {
		cmd.Println("No entries to classify")
		return nil
	}
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatSummary(summary))
	return nil
}
