package config

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// Config holds the process-wide settings and the shared database handle.
type Config struct {
	DB              *sql.DB
	DBPath          string
	ListenAddr      string
	AmountPerPerson int64
}

// DefaultAmountPerPerson is the per-head billing rate used when
// MESS_AMOUNT_PER_PERSON is not set.
const DefaultAmountPerPerson = 150

var AppConfig *Config

// Load resolves configuration from the environment, reading a .env file first
// if one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		DBPath:          getEnv("MESS_DB_PATH", "database/mess_management.db"),
		ListenAddr:      getEnv("MESS_LISTEN_ADDR", ":8000"),
		AmountPerPerson: DefaultAmountPerPerson,
	}
	if v := os.Getenv("MESS_AMOUNT_PER_PERSON"); v != "" {
		rate, err := strconv.ParseInt(v, 10, 64)
		if err != nil || rate <= 0 {
			log.Printf("Ignoring invalid MESS_AMOUNT_PER_PERSON %q, using %d", v, DefaultAmountPerPerson)
		} else {
			cfg.AmountPerPerson = rate
		}
	}

	AppConfig = cfg
	return cfg
}

// InitDB opens the single-file SQLite store at the configured path. Foreign
// keys are enabled per connection and writes queue behind SQLite's single
// writer instead of failing immediately.
func InitDB() {
	if AppConfig == nil {
		Load()
	}

	if dir := filepath.Dir(AppConfig.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Cannot create database directory %s: %v", dir, err)
		}
	}

	db, err := sql.Open("sqlite", AppConfig.DBPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("Cannot open database at %s: %v", AppConfig.DBPath, err)
	}

	AppConfig.DB = db
	log.Printf("Database connected: %s", AppConfig.DBPath)
}

// GetDB returns the shared database handle.
func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
