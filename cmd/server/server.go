package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/theta-arc/internal/config"
	"github.com/KirkDiggler/theta-arc/internal/gateway"
	adminv1alpha1 "github.com/KirkDiggler/theta-arc/internal/handlers/admin/v1alpha1"
	"github.com/KirkDiggler/theta-arc/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	gatewayAddr    string
	grpcAddr       string
	originPatterns []string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the game server",
	Long:  `Start the websocket gateway for chat bridges and the admin gRPC service.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&gatewayAddr, "gateway-addr", "", "websocket gateway listen address (overrides THETA_ARC_GATEWAY_ADDR)")
	serverCmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "admin gRPC listen address (overrides THETA_ARC_GRPC_ADDR)")
	serverCmd.Flags().StringSliceVar(&originPatterns, "origin", nil, "allowed websocket origin patterns; empty accepts any")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if gatewayAddr != "" {
		cfg.GatewayAddr = gatewayAddr
	}
	if grpcAddr != "" {
		cfg.GRPCAddr = grpcAddr
	}
	cfg.SetupLogging(os.Stderr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTELEndpoint, cfg.OTELEnabled)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Trace flush failed", "error", err)
		}
	}()

	g, err := newGame(ctx, cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	hub := gateway.NewHub()
	dispatcher, announcer, err := g.frontend(hub)
	if err != nil {
		return err
	}
	announcer.Start()
	defer announcer.Stop()

	adminHandler, err := adminv1alpha1.NewHandler(&adminv1alpha1.HandlerConfig{
		Profile:   g.profile,
		Economy:   g.economy,
		Boss:      g.boss,
		Encounter: g.encounter,
	})
	if err != nil {
		return err
	}

	grpcSrv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)
	adminv1alpha1.RegisterAdminServiceServer(grpcSrv, adminHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(adminv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcSrv)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.GatewayAddr,
		Handler:           otelhttp.NewHandler(gateway.NewMux(gateway.NewAcceptHandler(hub, dispatcher, originPatterns...)), "gateway"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := dispatcher.Run(egCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		slog.Info("Admin gRPC server starting", "addr", cfg.GRPCAddr)
		return grpcSrv.Serve(lis)
	})
	eg.Go(func() error {
		slog.Info("Gateway starting", "addr", cfg.GatewayAddr, "path", gateway.Path)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		slog.Info("Shutting down")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Gateway shutdown failed", "error", err)
		}

		stopped := make(chan struct{})
		go func() {
			grpcSrv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			grpcSrv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}
		return nil
	})

	return eg.Wait()
}

// logFunc routes gRPC middleware logs to slog. The middleware levels share
// slog's numbering.
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
