package config

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	sourceMu sync.RWMutex
	source   = newEnvSource()
)

func newEnvSource() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

func setSource(v *viper.Viper) {
	sourceMu.Lock()
	defer sourceMu.Unlock()
	source = v
}

func lookup(key string) string {
	sourceMu.RLock()
	defer sourceMu.RUnlock()
	return source.GetString(key)
}

// Helper functions to get configuration values with different types
func GetEnv(key, defaultValue string) string {
	value := lookup(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("45s") or plain seconds ("45")
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}

	log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
	return defaultValue
}
