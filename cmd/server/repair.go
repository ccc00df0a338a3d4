package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/theta-arc/internal/config"
	"github.com/KirkDiggler/theta-arc/internal/services/repair"
)

var repairDryRun bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Fix legacy account records",
	Long: `Backfill missing IVs and fix broken instance id allocators in the configured
account store. Run it with the server stopped.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "report what would change without writing")
}

func runRepair(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.SetupLogging(os.Stderr)

	ctx := cmd.Context()
	g, err := newGame(ctx, cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	repairer, err := repair.New(&repair.Config{Ledger: g.ledger, Catalog: g.catalog})
	if err != nil {
		return err
	}

	out, err := repairer.Run(ctx, &repair.Input{DryRun: repairDryRun})
	if err != nil {
		return err
	}

	if repairDryRun {
		fmt.Println("Dry run, nothing written.")
	}
	fmt.Printf("Scanned:          %d\n", out.Scanned)
	fmt.Printf("Repaired:         %d\n", out.Repaired)
	fmt.Printf("IVs backfilled:   %d\n", out.IVsBackfilled)
	fmt.Printf("Allocators fixed: %d\n", out.AllocatorsFixed)
	fmt.Printf("Unknown species:  %d\n", out.UnknownSpecies)
	if out.Failed > 0 {
		return fmt.Errorf("%d accounts failed to save", out.Failed)
	}
	return nil
}
