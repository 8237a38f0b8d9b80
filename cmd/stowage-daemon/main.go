package main

import (
	"flag"
	"fmt"
	"log"

	daemongrpc "github.com/akinaridici/stowagemaster/internal/adapters/grpc"
	metricsadapter "github.com/akinaridici/stowagemaster/internal/adapters/metrics"
	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	"github.com/akinaridici/stowagemaster/internal/infrastructure/config"
	"github.com/akinaridici/stowagemaster/internal/infrastructure/pidfile"
)

func main() {
	forceFlag := flag.Bool("force", false, "kill any existing daemon and start a new one")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	fmt.Println("stowagemaster daemon")
	fmt.Println("====================")

	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configPath)

	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)

	if err := pf.Acquire(); err != nil {
		if *forceFlag {
			fmt.Println("Force mode enabled - attempting to kill existing daemon...")
			if killErr := pf.KillExisting(); killErr != nil {
				log.Fatalf("Failed to kill existing daemon: %v", killErr)
			}
			if err := pf.Acquire(); err != nil {
				log.Fatalf("Failed to acquire PID file lock after killing existing daemon: %v", err)
			}
		} else {
			log.Fatalf("Failed to acquire PID file lock: %v\nUse --force to kill the existing daemon", err)
		}
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	var collector *metricsadapter.SolverMetricsCollector
	var middlewares []engine.Middleware

	if cfg.Metrics.Enabled {
		metricsadapter.InitRegistry()
		collector = metricsadapter.NewSolverMetricsCollector()
		if err := collector.Register(); err != nil {
			return fmt.Errorf("failed to register solver metrics: %w", err)
		}
		metricsadapter.SetGlobalCollector(collector)
		middlewares = append(middlewares, metricsadapter.SolverMiddleware(collector))
		fmt.Println("Solver metrics enabled")
	}

	client := engine.NewLocalClient(middlewares...)

	fmt.Printf("Starting daemon server on: %s\n", cfg.Daemon.SocketPath)
	daemonServer, err := daemongrpc.NewDaemonServer(client, cfg.Daemon.SocketPath, &cfg.Metrics, collector)
	if err != nil {
		return fmt.Errorf("failed to create daemon server: %w", err)
	}

	fmt.Println("\nDaemon is ready to accept connections")
	fmt.Println("Press Ctrl+C to stop")

	if err := daemonServer.Start(); err != nil {
		return fmt.Errorf("daemon server error: %w", err)
	}

	fmt.Println("\nDaemon stopped")
	return nil
}
