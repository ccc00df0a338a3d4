package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	adminv1alpha1 "github.com/KirkDiggler/theta-arc/internal/handlers/admin/v1alpha1"
)

var getAccountCmd = &cobra.Command{
	Use:   "get-account [user-id]",
	Short: "Show one player's account",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetAccount,
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [shards|gold|networth]",
	Short: "Show the top of a leaderboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeaderboard,
}

func runGetAccount(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAdminClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting account '%s' from %s...", args[0], serverAddr)

	resp, err := client.GetAccount(ctx, &adminv1alpha1.GetAccountRequest{UserID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("👤 %s (%s)\n", resp.UserID, resp.Status)
	if resp.Clan != "" {
		fmt.Printf("  Clan: %s\n", resp.Clan)
	}
	fmt.Printf("\nShards:\n")
	fmt.Printf("  Gold: %d\n", resp.GoldShards)
	fmt.Printf("  Diamond: %d\n", resp.DiamondShards)
	fmt.Printf("  Enchanted: %d\n", resp.EnchantShards)
	fmt.Printf("  Net worth: %d\n", resp.NetWorth)

	fmt.Printf("\nCollection:\n")
	fmt.Printf("  TACs: %d (%d species)\n", resp.TotalTACs, resp.UniqueSpecies)
	fmt.Printf("  Best IV: %.1f%%\n", resp.BestIV)
	fmt.Printf("  Highest level: %d\n", resp.HighestLevel)
	if resp.TopInstanceID != 0 {
		fmt.Printf("  Top TAC: #%d %s\n", resp.TopInstanceID, resp.TopSpeciesName)
	}
	return nil
}

func runLeaderboard(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAdminClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Leaderboard(ctx, &adminv1alpha1.LeaderboardRequest{Board: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get leaderboard: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("🏆 %s leaderboard\n", resp.Board)
	if len(resp.Entries) == 0 {
		fmt.Println("  (empty)")
		return nil
	}
	for _, e := range resp.Entries {
		fmt.Printf("  %2d. %s  %d\n", e.Position, e.UserID, e.Value)
	}
	return nil
}
