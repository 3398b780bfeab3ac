package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP       string   // Host IP for the server
	RESTPort     int      // Port for the REST API
	GinMode      string   // Mode for the Gin framework (e.g., release, debug, test)
	CORSOrigins  []string // Origins allowed to call the API
	DBHost       string   // Hostname or IP address for the database; empty disables run history
	DBPort       int      // Port number for the database
	DBUser       string   // Username for the database
	DBPassword   string   // Password for the database
	DBName       string   // Name of the database
	RedisAddr    string   // Address of the Redis server; empty disables the recent-run index
	RedisPass    string   // Password for Redis
	RedisDB      int      // Redis database number
	RecentRuns   int      // Number of runs kept in the recent-run index
	MaxDimension int      // Largest world dimension a request may ask for
	MaxEpisodes  int      // Largest episode count a request may ask for
	MaxFood      int      // Largest food count a request may ask for
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		HostIP:       getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:     getEnvAsIntWithDefault("REST_PORT", 8000),
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
		CORSOrigins:  splitList(getEnvWithDefault("CORS_ORIGINS", "*")),
		DBHost:       getEnvWithDefault("DB_HOST", ""),
		DBName:       getEnvWithDefault("DB_NAME", "forager"),
		RedisAddr:    getEnvWithDefault("REDIS_ADDR", ""),
		RedisPass:    getEnvWithDefault("REDIS_PASS", ""),
		RedisDB:      getEnvAsIntWithDefault("REDIS_DB", 0),
		RecentRuns:   getEnvAsIntWithDefault("RECENT_RUNS", 50),
		MaxDimension: getEnvAsIntWithDefault("MAX_DIMENSION", 50),
		MaxEpisodes:  getEnvAsIntWithDefault("MAX_EPISODES", 20000),
		MaxFood:      getEnvAsIntWithDefault("MAX_FOOD", 500),
	}

	// Credentials are only required once a database is configured
	if cfg.DBHost != "" {
		cfg.DBPort = mustGetEnvAsInt("DB_PORT")
		cfg.DBUser = mustGetEnv("DB_USER")
		cfg.DBPassword = mustGetEnv("DB_PASS")
	}

	return cfg
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
