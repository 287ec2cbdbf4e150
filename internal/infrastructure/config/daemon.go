package config

import "time"

// DaemonConfig holds daemon service configuration
type DaemonConfig struct {
	// Unix socket path for IPC
	SocketPath string `mapstructure:"socket_path" validate:"required,unixsocket"`

	// PID file location
	PIDFile string `mapstructure:"pid_file" validate:"required"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`

	// Request rate limiting on the gRPC server
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds token bucket settings
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
