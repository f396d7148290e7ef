package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory    = "memory"
	StorageFile      = "file"
	StoragePostgres  = "postgres"
	StorageFirestore = "firestore"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	CatalogBaseURL string
	CatalogTimeout time.Duration

	StorageDriver string
	StoragePath   string
	StorageTable  string

	Postgres Postgres

	FirestoreProject     string
	FirestoreCollection  string
	FirestoreCredentials string
}

type Postgres struct {
	Host string
	Port int
	User string
	Pass string
	DB   string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		CatalogBaseURL: strings.TrimRight(getEnv("CATALOG_BASE_URL", "https://fakestoreapi.com"), "/"),
		CatalogTimeout: getEnvDuration("CATALOG_TIMEOUT", 0),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
		StoragePath:   getEnv("STORAGE_PATH", ".storefront/storage.json"),
		StorageTable:  getEnv("STORAGE_TABLE", "kv_entries"),

		Postgres: Postgres{
			Host: getEnv("POSTGRES_HOST", "localhost"),
			Port: getEnvInt("POSTGRES_PORT", 5432),
			User: getEnv("POSTGRES_USER", "shopping"),
			Pass: getEnv("POSTGRES_PASSWORD", "shoppingpassword"),
			DB:   getEnv("POSTGRES_DB", "shopping_db"),
		},

		FirestoreProject:     getEnv("FIRESTORE_PROJECT", ""),
		FirestoreCollection:  getEnv("FIRESTORE_COLLECTION", "device_storage"),
		FirestoreCredentials: getEnv("FIRESTORE_CREDENTIALS", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

// getEnvDuration accepts Go durations ("15s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}

	if d, err := time.ParseDuration(v); err == nil {
		return d
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
