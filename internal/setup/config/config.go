package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/podiumd/podium/internal/ranking"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// RepositoryVersion is the repository version tag for config file references.
const RepositoryVersion = "v0.3.0"

// Current version of the config file.
const (
	CurrentCommonVersion = 1
	CurrentAPIVersion    = 1
	CurrentWorkerVersion = 1
)

// Config represents the entire application configuration.
type Config struct {
	Common CommonConfig
	API    APIConfig
	Worker WorkerConfig
}

// CommonConfig contains configuration shared between the API server and worker.
type CommonConfig struct {
	// Version of the common config.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	Ranking    Ranking    `koanf:"ranking"`
	Moderation Moderation `koanf:"moderation"`
}

// APIConfig contains REST API server specific configuration.
type APIConfig struct {
	// Version of the api config.
	Version int `koanf:"version"`
	// Server listen configuration.
	Server Server `koanf:"server"`
	// Request authentication configuration.
	Auth Auth `koanf:"auth"`
	// Per-client rate limit configuration.
	RateLimit RateLimit `koanf:"rate_limit"`
}

// WorkerConfig contains maintenance worker specific configuration.
type WorkerConfig struct {
	// Version of the worker config.
	Version int `koanf:"version"`
	// Seconds between rank decay sweeps.
	RankSweepInterval int `koanf:"rank_sweep_interval"`
	// Minimum seconds a score may be stale before the sweep rescores it.
	RankStaleAfter int `koanf:"rank_stale_after"`
	// Number of questions to rescore in one batch.
	RankSweepBatch int `koanf:"rank_sweep_batch"`
	// Seconds between suspension expiry sweeps.
	SuspensionSweepInterval int `koanf:"suspension_sweep_interval"`
	// Number of suspended accounts to check in one batch.
	SuspensionSweepBatch int `koanf:"suspension_sweep_batch"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum log files to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
	// Enable pprof debugging.
	EnablePprof bool `koanf:"enable_pprof"`
	// pprof server port.
	PprofPort int `koanf:"pprof_port"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	// Database hostname.
	Host string `koanf:"host"`
	// Database port.
	Port int `koanf:"port"`
	// Database username.
	User string `koanf:"user"`
	// Database password.
	Password string `koanf:"password"`
	// Database name.
	DBName string `koanf:"db_name"`
	// Maximum open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration.
type Redis struct {
	// Redis hostname.
	Host string `koanf:"host"`
	// Redis port.
	Port int `koanf:"port"`
	// Redis username.
	Username string `koanf:"username"`
	// Redis password.
	Password string `koanf:"password"`
}

// Ranking contains rank score curve configuration.
type Ranking struct {
	// Days for the time decay factor to halve.
	HalfLifeDays float64 `koanf:"half_life_days"`
	// Lower bound on the time decay factor.
	DecayFloor float64 `koanf:"decay_floor"`
	// Vote count where the base score starts saturating.
	Saturation float64 `koanf:"saturation"`
	// Lower bound on the diversity factor.
	DiversityFloor float64 `koanf:"diversity_floor"`
	// Minimum total votes before the diversity factor applies.
	MinDiversitySample int `koanf:"min_diversity_sample"`
}

// ToParams converts the ranking section into calculator parameters,
// falling back to defaults for unset fields.
func (r *Ranking) ToParams() ranking.Params {
	params := ranking.DefaultParams()

	if r.HalfLifeDays > 0 {
		params.HalfLifeDays = r.HalfLifeDays
	}

	if r.DecayFloor > 0 {
		params.DecayFloor = r.DecayFloor
	}

	if r.Saturation > 0 {
		params.Saturation = r.Saturation
	}

	if r.DiversityFloor > 0 {
		params.DiversityFloor = r.DiversityFloor
	}

	if r.MinDiversitySample > 0 {
		params.MinDiversitySample = int64(r.MinDiversitySample)
	}

	return params
}

// Moderation contains moderation pipeline configuration.
type Moderation struct {
	// Minimum similarity for duplicate candidates (0..1).
	DuplicateThreshold float64 `koanf:"duplicate_threshold"`
	// Maximum duplicate candidates returned per check.
	DuplicateLimit int `koanf:"duplicate_limit"`
	// Maximum concurrent targets per bulk action.
	BulkConcurrency int `koanf:"bulk_concurrency"`
}

// Server contains HTTP server configuration.
type Server struct {
	// Listen hostname.
	Host string `koanf:"host"`
	// Listen port.
	Port int `koanf:"port"`
	// Request timeout in milliseconds.
	RequestTimeout int `koanf:"request_timeout"`
}

// Auth contains API authentication configuration.
type Auth struct {
	// Enable API key authentication.
	Enabled bool `koanf:"enabled"`
	// Accepted API keys.
	APIKeys []string `koanf:"api_keys"`
}

// RateLimit contains per-client rate limit configuration.
type RateLimit struct {
	// Enable rate limiting.
	Enabled bool `koanf:"enabled"`
	// Requests allowed per window.
	Requests int `koanf:"requests"`
	// Window length in seconds.
	WindowSeconds int `koanf:"window_seconds"`
}

// LoadConfig loads the configuration from the specified file.
// Returns the config along with the used config directory.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".podium",
		homeDir + "/.podium/config",
		"/etc/podium/config",
		"/app/config",
		"config",
		".",
	}

	// Load all config files
	var usedConfigPath string

	configFiles := []string{"common", "api", "worker"}
	for _, configName := range configFiles {
		configLoaded := false

		for _, path := range configPaths {
			configPath := fmt.Sprintf("%s/%s.toml", path, configName)
			if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
				configLoaded = true

				if usedConfigPath == "" {
					usedConfigPath = path
				}

				break
			}
		}

		if !configLoaded {
			return nil, "", fmt.Errorf("%w: %s.toml", ErrConfigFileNotFound, configName)
		}
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Check versions for each config file
	if err := checkConfigVersion("common", config.Common.Version, CurrentCommonVersion); err != nil {
		return nil, "", err
	}

	if err := checkConfigVersion("api", config.API.Version, CurrentAPIVersion); err != nil {
		return nil, "", err
	}

	if err := checkConfigVersion("worker", config.Worker.Version, CurrentWorkerVersion); err != nil {
		return nil, "", err
	}

	return &config, usedConfigPath, nil
}

// checkConfigVersion checks if the config file version is correct.
func checkConfigVersion(name string, current, expected int) error {
	if current == 0 {
		return fmt.Errorf("%w: %s.toml", ErrConfigVersionMissing, name)
	}

	if current != expected {
		return fmt.Errorf(
			"%w: %s.toml (got: %d, expected: %d)\n"+
				"Please update your config file from: https://github.com/podiumd/podium/tree/%s/config/%s.toml",
			ErrConfigVersionMismatch,
			name,
			current,
			expected,
			RepositoryVersion,
			name,
		)
	}

	return nil
}
