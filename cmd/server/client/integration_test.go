//go:build integration

package client

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	adminv1alpha1 "github.com/KirkDiggler/theta-arc/internal/handlers/admin/v1alpha1"
)

func dialServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	grpcServerAddress := os.Getenv("GRPC_SERVER_ADDRESS")
	if grpcServerAddress == "" {
		grpcServerAddress = "localhost:50051"
	}
	conn, err := grpc.NewClient(grpcServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("Failed to close connection: %v", err)
		}
	})
	return conn
}

func TestAdminServiceIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	conn := dialServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	health, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{
		Service: adminv1alpha1.ServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, health.Status)

	client := adminv1alpha1.NewAdminServiceClient(conn)

	guildID := "integration-" + time.Now().Format("150405.000")
	_, err = client.GetBoss(ctx, &adminv1alpha1.GetBossRequest{GuildID: guildID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	boss, err := client.SummonBoss(ctx, &adminv1alpha1.SummonBossRequest{GuildID: guildID, ChannelID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "wilter", boss.Tier)
	assert.Equal(t, boss.MaxHP, boss.HP)

	got, err := client.GetBoss(ctx, &adminv1alpha1.GetBossRequest{GuildID: guildID})
	require.NoError(t, err)
	assert.Equal(t, boss.Name, got.Name)

	_, err = client.Leaderboard(ctx, &adminv1alpha1.LeaderboardRequest{Board: "nope"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	board, err := client.Leaderboard(ctx, &adminv1alpha1.LeaderboardRequest{Board: "gold"})
	require.NoError(t, err)
	assert.Equal(t, "gold", board.Board)
}
