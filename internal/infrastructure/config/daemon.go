package config

import "time"

// DaemonConfig holds settings for the long-running stowage daemon
// that serves the gRPC engine API over a unix socket.
type DaemonConfig struct {
	Address             string        `mapstructure:"address"`
	SocketPath          string        `mapstructure:"socket_path"`
	PIDFile             string        `mapstructure:"pid_file"`
	ShutdownTimeout     time.Duration `mapstructure:"shutdown_timeout"`
	HealthCheckInterval time.Duration `mapstructure:"health_check_interval"`
}
