package config

import (
	logger "github.com/Bparsons0904/goLogger"

	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion       string `mapstructure:"GENERAL_VERSION"`
	Environment          string `mapstructure:"ENVIRONMENT"`
	ServerPort           int    `mapstructure:"SERVER_PORT"`
	DatabaseHost         string `mapstructure:"DB_HOST"`
	DatabasePort         int    `mapstructure:"DB_PORT"`
	DatabaseName         string `mapstructure:"DB_NAME"`
	DatabaseUser         string `mapstructure:"DB_USER"`
	DatabasePassword     string `mapstructure:"DB_PASSWORD"`
	DatabaseCacheAddress string `mapstructure:"DB_CACHE_ADDRESS"`
	DatabaseCachePort    int    `mapstructure:"DB_CACHE_PORT"`
	CorsAllowOrigins     string `mapstructure:"CORS_ALLOW_ORIGINS"`
	SecretKey            string `mapstructure:"SECRET_KEY"`

	TicketmasterAPIKey         string `mapstructure:"TICKETMASTER_API_KEY"`
	TicketmasterBaseURL        string `mapstructure:"TICKETMASTER_BASE_URL"`
	TicketmasterCountryCode    string `mapstructure:"TICKETMASTER_COUNTRY_CODE"`
	TicketmasterPageSize       int    `mapstructure:"TICKETMASTER_PAGE_SIZE"`
	TicketmasterTimeoutSeconds int    `mapstructure:"TICKETMASTER_TIMEOUT_SECONDS"`
	RateBudgetAllowance        int    `mapstructure:"RATE_BUDGET_ALLOWANCE"`
	RateBudgetWindowSeconds    int    `mapstructure:"RATE_BUDGET_WINDOW_SECONDS"`
	UpstreamRequestsPerSecond  int    `mapstructure:"UPSTREAM_REQUESTS_PER_SECOND"`
	AggregationTimeoutSeconds  int    `mapstructure:"AGGREGATION_TIMEOUT_SECONDS"`
	SchedulerEnabled           bool   `mapstructure:"SCHEDULER_ENABLED"`
}

const (
	DefaultServerPort                = 3001
	DefaultTicketmasterBaseURL       = "https://app.ticketmaster.com/discovery/v2"
	DefaultTicketmasterCountryCode   = "US"
	DefaultTicketmasterPageSize      = 200
	DefaultTicketmasterTimeout       = 10
	DefaultRateBudgetAllowance       = 1000
	DefaultRateBudgetWindowSeconds   = 24 * 60 * 60
	DefaultUpstreamRequestsPerSecond = 5
	DefaultAggregationTimeout        = 60
)

var ConfigInstance Config

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")
	log.Info("Initializing config")

	viper.AutomaticEnv()

	envVars := []string{
		"GENERAL_VERSION", "ENVIRONMENT", "SERVER_PORT", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"DB_CACHE_ADDRESS", "DB_CACHE_PORT",
		"CORS_ALLOW_ORIGINS", "SECRET_KEY",
		"TICKETMASTER_API_KEY", "TICKETMASTER_BASE_URL", "TICKETMASTER_COUNTRY_CODE",
		"TICKETMASTER_PAGE_SIZE", "TICKETMASTER_TIMEOUT_SECONDS",
		"RATE_BUDGET_ALLOWANCE", "RATE_BUDGET_WINDOW_SECONDS", "UPSTREAM_REQUESTS_PER_SECOND",
		"AGGREGATION_TIMEOUT_SECONDS", "SCHEDULER_ENABLED",
	}

	for _, env := range envVars {
		if err := viper.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	viper.SetDefault("SCHEDULER_ENABLED", true)

	envVarsSet := viper.IsSet("TICKETMASTER_API_KEY") && viper.IsSet("DB_HOST")

	if envVarsSet {
		log.Info("Environment variables detected, skipping file loading")
	} else {
		log.Info("Environment variables not found, attempting to load from files")

		viper.SetConfigFile(".env")
		viper.SetConfigType("env")

		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not find .env file", "error", err)
		} else {
			log.Info("Loaded .env file")
		}

		viper.SetConfigFile(".env.local")
		if err := viper.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		} else {
			log.Info("Loaded .env.local overrides")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if err := validateConfig(&config, log); err != nil {
		return Config{}, err
	}

	log.Info(
		"Successfully initialized config",
		"environment", config.Environment,
		"port", config.ServerPort,
		"upstream", config.TicketmasterBaseURL,
	)
	return ConfigInstance, nil
}

func GetConfig() Config {
	return ConfigInstance
}

// validateConfig fills defaults in place and rejects settings the server
// cannot start with.
func validateConfig(config *Config, log logger.Logger) error {
	if config.ServerPort == 0 {
		config.ServerPort = DefaultServerPort
	}
	if config.ServerPort < 0 {
		return log.Error(
			"Fatal error: invalid server port",
			"port", config.ServerPort,
		)
	}

	if config.TicketmasterAPIKey == "" {
		return log.ErrMsg("Fatal error: TICKETMASTER_API_KEY is required")
	}
	if config.SecretKey == "" {
		return log.ErrMsg("Fatal error: SECRET_KEY is required")
	}

	if config.TicketmasterBaseURL == "" {
		config.TicketmasterBaseURL = DefaultTicketmasterBaseURL
	}
	if config.TicketmasterCountryCode == "" {
		config.TicketmasterCountryCode = DefaultTicketmasterCountryCode
	}
	if config.TicketmasterPageSize <= 0 {
		config.TicketmasterPageSize = DefaultTicketmasterPageSize
	}
	if config.TicketmasterTimeoutSeconds <= 0 {
		config.TicketmasterTimeoutSeconds = DefaultTicketmasterTimeout
	}
	if config.RateBudgetAllowance <= 0 {
		config.RateBudgetAllowance = DefaultRateBudgetAllowance
	}
	if config.RateBudgetWindowSeconds <= 0 {
		config.RateBudgetWindowSeconds = DefaultRateBudgetWindowSeconds
	}
	if config.UpstreamRequestsPerSecond <= 0 {
		config.UpstreamRequestsPerSecond = DefaultUpstreamRequestsPerSecond
	}
	if config.AggregationTimeoutSeconds <= 0 {
		config.AggregationTimeoutSeconds = DefaultAggregationTimeout
	}

	ConfigInstance = *config
	return nil
}
