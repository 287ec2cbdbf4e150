package config

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Include caller information (file:line)
	IncludeCaller bool `mapstructure:"include_caller"`
}
