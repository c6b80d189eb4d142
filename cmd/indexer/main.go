package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcadapter "github.com/dscvr-app/indexer/internal/adapters/grpc"
	"github.com/dscvr-app/indexer/internal/bootstrap"
	"github.com/dscvr-app/indexer/internal/config"
	"github.com/dscvr-app/indexer/internal/observability/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.NewJSONLogger("indexer", cfg.Common.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	srv := grpcadapter.NewServer(grpcadapter.NewFileIndexerServer(
		app.IndexUC,
		app.SearchUC,
		app.DuplicatesUC,
		app.Metrics,
		logger,
	))

	lis, err := net.Listen("tcp", cfg.Indexer.Addr())
	if err != nil {
		log.Fatalf("listen error: %v", err)
	}

	var metricsServer *http.Server
	if cfg.Indexer.MetricsPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", app.Metrics.Handler())
		metricsServer = &http.Server{
			Addr:        fmt.Sprintf("%s:%d", cfg.Indexer.Host, cfg.Indexer.MetricsPort),
			Handler:     mux,
			ReadTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("metrics listening", "addr", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	go func() {
		logger.Info("indexer listening", "addr", cfg.Indexer.Addr())
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	srv.GracefulStop()
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics shutdown error", "error", err)
		}
	}
}
