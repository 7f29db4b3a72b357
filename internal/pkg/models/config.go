package models

import (
	"math"
	"time"
)

// Config represents application configuration
type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	NATS           NATSConfig
	NSQ            NSQConfig
	JWT            JWTConfig
	APIKey         APIKeyConfig
	Services       ServicesConfig
	Dispatch       DispatchConfig
	Batching       BatchingConfig
	Payout         PayoutConfig
	Activation     ActivationConfig
	Retry          RetryConfig
	CircuitBreaker CircuitBreakerConfig
	NewRelic       NewRelicConfig
	Logger         LoggerConfig
	Metrics        MetricsConfig
	RateLimit      RateLimitConfig
}

// ServicesConfig contains URLs for external collaborators
type ServicesConfig struct {
	RoutingProviderURL string
	RoutingTimeout     time.Duration
	OnboardingURL      string
	OnboardingTimeout  time.Duration
	OnboardingAPIKey   string
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL        string
	QueueGroup string
	StreamName string
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig holds bcrypt hashes of the keys accepted on the internal API
type APIKeyConfig struct {
	OrderingHash   string
	OnboardingHash string
	AdminHash      string
}

// DispatchConfig tunes the offer loop
type DispatchConfig struct {
	OfferWindow         time.Duration
	SearchRadiusKm      float64
	CandidatePageSize   int
	MaxOfferAttempts    int // 0 means unlimited
	ExpirySweepInterval time.Duration
	ExpirySweepBatch    int
}

// BatchingConfig tunes order folding
type BatchingConfig struct {
	MaxBatchSize     int
	MaxDetourKm      float64
	MaxDetourMinutes float64
	SearchRadiusKm   float64
	StopServiceTime  time.Duration
	FallbackSpeedKmh float64
}

// PayoutConfig holds the figures used to attach a payout to an assignment
type PayoutConfig struct {
	BaseFee    float64
	PerKm      float64
	BatchBonus float64
}

// For returns the payout for a delivery of distanceKm, rounded to cents
func (c PayoutConfig) For(distanceKm float64, batched bool) float64 {
	amount := c.BaseFee + c.PerKm*distanceKm
	if batched {
		amount += c.BatchBonus
	}
	return math.Round(amount*100) / 100
}

// ActivationConfig tunes queue promotion
type ActivationConfig struct {
	RankedPageSize int
}

// RetryConfig mirrors retry.Config for env loading
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// CircuitBreakerConfig mirrors circuitbreaker.Config for env loading
type CircuitBreakerConfig struct {
	MaxFailures  int
	ResetTimeout time.Duration
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // stdout, file or both
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// RateLimitConfig bounds driver location posts per driver
type RateLimitConfig struct {
	LocationLimit  int
	LocationPeriod time.Duration
}
