package client

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	adminv1alpha1 "github.com/KirkDiggler/theta-arc/internal/handlers/admin/v1alpha1"
)

var (
	bossTier     string
	spawnSpecies string
)

var summonBossCmd = &cobra.Command{
	Use:   "summon-boss [guild-id] [channel-id]",
	Short: "Open a boss encounter in a guild",
	Args:  cobra.ExactArgs(2),
	RunE:  runSummonBoss,
}

var getBossCmd = &cobra.Command{
	Use:   "get-boss [guild-id]",
	Short: "Show a guild's active boss",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetBoss,
}

var summonSpawnCmd = &cobra.Command{
	Use:   "summon-spawn [guild-id] [channel-id]",
	Short: "Put a wild TAC in a channel",
	Args:  cobra.ExactArgs(2),
	RunE:  runSummonSpawn,
}

func init() {
	summonBossCmd.Flags().StringVar(&bossTier, "tier", "", "boss tier (defaults to wilter)")
	summonSpawnCmd.Flags().StringVar(&spawnSpecies, "species", "", "species key (random when empty)")
}

func runSummonBoss(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAdminClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Summoning boss in guild '%s'...", args[0])

	resp, err := client.SummonBoss(ctx, &adminv1alpha1.SummonBossRequest{
		GuildID:   args[0],
		ChannelID: args[1],
		Tier:      bossTier,
	})
	if err != nil {
		return fmt.Errorf("failed to summon boss: %w", err)
	}
	return printBoss(resp)
}

func runGetBoss(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAdminClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetBoss(ctx, &adminv1alpha1.GetBossRequest{GuildID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get boss: %w", err)
	}
	return printBoss(resp)
}

func printBoss(resp *adminv1alpha1.BossResponse) error {
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("👹 %s (%s)\n", resp.Name, resp.Tier)
	fmt.Printf("  Guild: %s  Channel: %s\n", resp.GuildID, resp.ChannelID)
	fmt.Printf("  HP: %d/%d\n", resp.HP, resp.MaxHP)
	if len(resp.Top) > 0 {
		fmt.Printf("\nTop attackers:\n")
		for i, c := range resp.Top {
			fmt.Printf("  %d. %s  %d dmg\n", i+1, c.UserID, c.Damage)
		}
	}
	return nil
}

func runSummonSpawn(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAdminClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SummonSpawn(ctx, &adminv1alpha1.SummonSpawnRequest{
		GuildID:   args[0],
		ChannelID: args[1],
		Species:   spawnSpecies,
	})
	if err != nil {
		return fmt.Errorf("failed to summon spawn: %w", err)
	}
	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("✨ A wild %s (%s) appeared, gone at %s\n", resp.Name, resp.Species, resp.ExpiresAt.Format(time.Kitchen))
	return nil
}
