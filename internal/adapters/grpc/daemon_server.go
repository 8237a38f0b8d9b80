package grpc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adaptermetrics "github.com/akinaridici/stowagemaster/internal/adapters/metrics"
	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	"github.com/akinaridici/stowagemaster/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
)

// DaemonServer hosts the hand-authored engine RPC over a Unix domain
// socket and, when enabled, a side HTTP server exposing solver
// metrics for Prometheus to scrape. It is a scoped-down sibling of
// the teacher's DaemonServer: no container orchestration, no
// multi-collector fleet, since this domain has exactly one kind of
// long-running work (a solver run) to report on.
type DaemonServer struct {
	listener      net.Listener
	grpcServer    *grpc.Server
	metricsServer *http.Server
	metricsConfig *config.MetricsConfig
	metrics       *adaptermetrics.SolverMetricsCollector

	shutdownChan chan os.Signal
	done         chan struct{}
}

// NewDaemonServer creates a daemon server listening on socketPath,
// serving client over gRPC. metrics, already registered with the
// collector that client's mediator middleware is reporting to (see
// cmd/stowage-daemon), is exposed over HTTP when metricsConfig.Enabled;
// pass nil when metrics are off.
func NewDaemonServer(client engine.Client, socketPath string, metricsConfig *config.MetricsConfig, metrics *adaptermetrics.SolverMetricsCollector) (*DaemonServer, error) {
	if err := os.RemoveAll(socketPath); err != nil {
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create unix socket listener: %w", err)
	}
	if err := os.Chmod(socketPath, 0600); err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to set socket permissions: %w", err)
	}

	grpcServer := grpc.NewServer()
	RegisterEngineServiceServer(grpcServer, NewEngineServiceImpl(client))

	server := &DaemonServer{
		listener:      listener,
		grpcServer:    grpcServer,
		metricsConfig: metricsConfig,
		metrics:       metrics,
		shutdownChan:  make(chan os.Signal, 1),
		done:          make(chan struct{}),
	}

	signal.Notify(server.shutdownChan, os.Interrupt, syscall.SIGTERM)

	return server, nil
}

// Start begins serving gRPC requests; it blocks until a shutdown
// signal arrives or the listener fails.
func (s *DaemonServer) Start() error {
	fmt.Printf("Daemon server listening on unix socket: %s\n", s.listener.Addr().String())

	if s.metricsConfig != nil && s.metricsConfig.Enabled && s.metrics != nil {
		if err := s.startMetricsServer(); err != nil {
			fmt.Printf("Warning: failed to start metrics server: %v\n", err)
		} else {
			fmt.Printf("Metrics server listening on %s:%d%s\n", s.metricsConfig.Host, s.metricsConfig.Port, s.metricsConfig.Path)
		}
	}

	go s.handleShutdown()

	errChan := make(chan error, 1)
	go func() {
		if err := s.grpcServer.Serve(s.listener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-s.done:
		fmt.Println("Initiating graceful shutdown of gRPC server...")
		s.grpcServer.GracefulStop()
		return nil
	}
}

func (s *DaemonServer) startMetricsServer() error {
	mux := http.NewServeMux()
	mux.Handle(s.metricsConfig.Path, promhttp.HandlerFor(
		adaptermetrics.GetRegistry(),
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	))

	addr := fmt.Sprintf("%s:%d", s.metricsConfig.Host, s.metricsConfig.Port)
	s.metricsServer = &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := s.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Metrics server error: %v\n", err)
		}
	}()

	return nil
}

func (s *DaemonServer) stopMetricsServer() {
	if s.metricsServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.metricsServer.Shutdown(ctx); err != nil {
		fmt.Printf("Error shutting down metrics server: %v\n", err)
	}
}

func (s *DaemonServer) handleShutdown() {
	<-s.shutdownChan
	fmt.Println("\nShutdown signal received, initiating graceful shutdown...")
	s.stopMetricsServer()
	close(s.done)
}
