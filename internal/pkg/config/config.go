package config

import (
	"log"
	"strings"
	"time"

	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads an env-format file into viper (when present) and builds
// the application config. Real environment variables always win.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" && v.GetString("APP_ENV") != "production" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	setSource(v)
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "kurir-dispatch")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "0.0.0.0")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 10)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 10)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 15)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "kurir")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")
	configs.NATS.QueueGroup = GetEnv("NATS_QUEUE_GROUP", "dispatch-service")
	configs.NATS.StreamName = GetEnv("NATS_STREAM_NAME", "DISPATCH")

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "localhost:4150")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "kurir")

	// API keys
	configs.APIKey.OrderingHash = GetEnv("API_KEY_ORDERING_HASH", "")
	configs.APIKey.OnboardingHash = GetEnv("API_KEY_ONBOARDING_HASH", "")
	configs.APIKey.AdminHash = GetEnv("API_KEY_ADMIN_HASH", "")

	// Services config
	configs.Services.RoutingProviderURL = GetEnv("ROUTING_PROVIDER_URL", "http://localhost:8989")
	configs.Services.RoutingTimeout = GetEnvAsDuration("ROUTING_PROVIDER_TIMEOUT", 3*time.Second)
	configs.Services.OnboardingURL = GetEnv("ONBOARDING_SERVICE_URL", "http://localhost:9994")
	configs.Services.OnboardingTimeout = GetEnvAsDuration("ONBOARDING_SERVICE_TIMEOUT", 3*time.Second)
	configs.Services.OnboardingAPIKey = GetEnv("ONBOARDING_SERVICE_API_KEY", "")

	// Dispatch config
	configs.Dispatch.OfferWindow = GetEnvAsDuration("DISPATCH_OFFER_WINDOW", 60*time.Second)
	configs.Dispatch.SearchRadiusKm = GetEnvAsFloat("DISPATCH_SEARCH_RADIUS_KM", 5.0)
	configs.Dispatch.CandidatePageSize = GetEnvAsInt("DISPATCH_CANDIDATE_PAGE_SIZE", 25)
	configs.Dispatch.MaxOfferAttempts = GetEnvAsInt("DISPATCH_MAX_OFFER_ATTEMPTS", 0)
	configs.Dispatch.ExpirySweepInterval = GetEnvAsDuration("DISPATCH_EXPIRY_SWEEP_INTERVAL", time.Second)
	configs.Dispatch.ExpirySweepBatch = GetEnvAsInt("DISPATCH_EXPIRY_SWEEP_BATCH", 100)

	// Batching config
	configs.Batching.MaxBatchSize = GetEnvAsInt("BATCH_MAX_SIZE", 3)
	configs.Batching.MaxDetourKm = GetEnvAsFloat("BATCH_MAX_DETOUR_KM", 2.5)
	configs.Batching.MaxDetourMinutes = GetEnvAsFloat("BATCH_MAX_DETOUR_MINUTES", 10)
	configs.Batching.SearchRadiusKm = GetEnvAsFloat("BATCH_SEARCH_RADIUS_KM", 3.0)
	configs.Batching.StopServiceTime = GetEnvAsDuration("BATCH_STOP_SERVICE_TIME", 2*time.Minute)
	configs.Batching.FallbackSpeedKmh = GetEnvAsFloat("BATCH_FALLBACK_SPEED_KMH", 25)

	// Payout config
	configs.Payout.BaseFee = GetEnvAsFloat("PAYOUT_BASE_FEE", 3.0)
	configs.Payout.PerKm = GetEnvAsFloat("PAYOUT_PER_KM", 0.8)
	configs.Payout.BatchBonus = GetEnvAsFloat("PAYOUT_BATCH_BONUS", 1.0)

	// Activation config
	configs.Activation.RankedPageSize = GetEnvAsInt("ACTIVATION_RANKED_PAGE_SIZE", 20)

	// Retry and circuit breaker for outbound HTTP
	configs.Retry.MaxAttempts = GetEnvAsInt("RETRY_MAX_ATTEMPTS", 3)
	configs.Retry.InitialDelay = GetEnvAsDuration("RETRY_INITIAL_DELAY", 100*time.Millisecond)
	configs.Retry.MaxDelay = GetEnvAsDuration("RETRY_MAX_DELAY", 2*time.Second)
	configs.Retry.BackoffFactor = GetEnvAsFloat("RETRY_BACKOFF_FACTOR", 2.0)
	configs.CircuitBreaker.MaxFailures = GetEnvAsInt("CIRCUIT_BREAKER_MAX_FAILURES", 5)
	configs.CircuitBreaker.ResetTimeout = GetEnvAsDuration("CIRCUIT_BREAKER_RESET_TIMEOUT", 30*time.Second)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "kurir-dispatch")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/dispatch.log")
	configs.Logger.Type = GetEnv("LOG_TYPE", "stdout")

	// Metrics config
	configs.Metrics.Enabled = GetEnvAsBool("METRICS_ENABLED", true)
	configs.Metrics.Path = GetEnv("METRICS_PATH", "/metrics")

	// Rate limit config
	configs.RateLimit.LocationLimit = GetEnvAsInt("RATE_LIMIT_LOCATION", 30)
	configs.RateLimit.LocationPeriod = GetEnvAsDuration("RATE_LIMIT_LOCATION_PERIOD", time.Minute)

	return configs
}
