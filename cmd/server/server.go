package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	legalityv1alpha1 "github.com/KirkDiggler/rpg-legality/internal/api/legality/v1alpha1"
	"github.com/KirkDiggler/rpg-legality/internal/config"
	"github.com/KirkDiggler/rpg-legality/internal/engine/levelup"
	"github.com/KirkDiggler/rpg-legality/internal/engine/verifier"
	v1alpha1 "github.com/KirkDiggler/rpg-legality/internal/handlers/legality/v1alpha1"
	"github.com/KirkDiggler/rpg-legality/internal/logger"
	"github.com/KirkDiggler/rpg-legality/internal/metrics"
	"github.com/KirkDiggler/rpg-legality/internal/orchestrators/legality"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/idgen"
)

var (
	grpcPort    int
	metricsPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the legality gRPC server with the configured learnset dataset.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().IntVar(&metricsPort, "metrics-port", -1, "Metrics HTTP port, 0 disables (overrides config)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("metrics-port") {
		cfg.Server.MetricsPort = metricsPort
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(logger.Config{Level: cfg.Logging.Level, JSON: cfg.Logging.JSON})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	repo, closeRepo, err := newDatasetRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	reg, err := loadRegistry(ctx, repo)
	if err != nil {
		return err
	}
	metrics.SetTablesLoaded(reg.Len())
	slog.Info("Learnset registry loaded",
		"source", cfg.Data.Source,
		"tables", reg.Len())

	levelVerifier, err := verifier.New(&verifier.Config{
		Growth:                  reg,
		ActiveTrainerGeneration: cfg.Verifier.ActiveTrainerGeneration,
		AllowGBCartEra:          cfg.Verifier.AllowGBCartEra,
	})
	if err != nil {
		return fmt.Errorf("failed to create verifier: %w", err)
	}

	legalityService, err := legality.NewOrchestrator(&legality.Config{
		Engine:      levelup.New(reg),
		Verifier:    levelVerifier,
		IDGenerator: idgen.NewUUID("scan"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create legality orchestrator: %w", err)
	}

	legalityHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LegalityService: legalityService,
	})
	if err != nil {
		return fmt.Errorf("failed to create legality handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	legalityv1alpha1.RegisterLegalityServiceServer(srv, legalityHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(legalityv1alpha1.LegalityService_ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	var metricsServer *http.Server
	if cfg.Server.MetricsPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("Metrics server starting", "port", cfg.Server.MetricsPort)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("metrics server failed: %w", err)
			}
		}()
	}

	return waitForShutdown(ctx, srv, healthServer, metricsServer, errChan)
}

// waitForShutdown blocks until ctx is canceled or a server fails. Either way
// the gRPC server and the optional metrics server are both stopped before it
// returns.
func waitForShutdown(
	ctx context.Context,
	srv *grpc.Server,
	healthServer *health.Server,
	metricsServer *http.Server,
	errChan <-chan error,
) error {
	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopMetrics(shutdownCtx, metricsServer)

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		slog.Error("Server failed, stopping", "error", err)
		healthServer.Shutdown()
		srv.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		stopMetrics(shutdownCtx, metricsServer)

		return err
	}
}

func stopMetrics(ctx context.Context, metricsServer *http.Server) {
	if metricsServer == nil {
		return
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		slog.Warn("Metrics server shutdown failed", "error", err)
	}
}

// logFunc routes interceptor logs to slog
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
