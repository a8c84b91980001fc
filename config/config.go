package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	LogLevel              string
	LogFormat             string
	RateLimit             float64 // requests per second, 0 disables limiting
	RateBurst             int

	// MaxTime bounds the simulated time a request may span, MaxJobs its job
	// count. 0 disables either bound.
	MaxTime int
	MaxJobs int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits on a malformed file.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads the configuration from path, or from config.yaml in the working
// directory when path is empty. A missing file leaves the defaults in place.
// Environment variables prefixed with SCHEDULER_ override both.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("rate_limit.requests_per_second", 50.0)
	v.SetDefault("rate_limit.burst", 100)
	v.SetDefault("scheduler.max_time", 100000)
	v.SetDefault("scheduler.max_jobs", 1000)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		LogLevel:              strings.ToLower(v.GetString("log.level")),
		LogFormat:             strings.ToLower(v.GetString("log.format")),
		RateLimit:             v.GetFloat64("rate_limit.requests_per_second"),
		RateBurst:             v.GetInt("rate_limit.burst"),
		MaxTime:               v.GetInt("scheduler.max_time"),
		MaxJobs:               v.GetInt("scheduler.max_jobs"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.RoundRobinTimeQuantum <= 0 {
		return errors.New("scheduler.round_robin.time_quantum must be a positive integer")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be 'debug', 'info', 'warn', or 'error'")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("log.format must be 'text' or 'json'")
	}
	if c.MaxTime < 0 || c.MaxJobs < 0 {
		return errors.New("scheduler.max_time and scheduler.max_jobs must not be negative")
	}
	return nil
}
