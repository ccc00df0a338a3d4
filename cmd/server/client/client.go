// Package client provides operator commands for the Theta Arc admin service
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	adminv1alpha1 "github.com/KirkDiggler/theta-arc/internal/handlers/admin/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all admin client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Admin client commands for a running server",
	Long:  `Client commands inspect and steer a running Theta Arc server over its admin gRPC service.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	ClientCmd.AddCommand(getAccountCmd)
	ClientCmd.AddCommand(leaderboardCmd)

	// Boss and spawn commands
	ClientCmd.AddCommand(summonBossCmd)
	ClientCmd.AddCommand(getBossCmd)
	ClientCmd.AddCommand(summonSpawnCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createAdminClient creates an admin service client
func createAdminClient() (*adminv1alpha1.AdminServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return adminv1alpha1.NewAdminServiceClient(conn), cleanup, nil
}

// printJSON writes v indented to stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	return nil
}
