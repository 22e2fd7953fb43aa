package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"time"
)

// Supported values for DB_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Env          string        // application environment (e.g. "dev", "prod")
	Port         string        // HTTP port to listen on
	Debug        bool          // debug mode: verbose logs, no error log file
	LogLevel     string        // DEBUG, INFO, WARN, ERROR
	ErrorLogPath string        // file receiving application logs; empty disables it
	ReadTimeout  time.Duration // HTTP server read timeout
	WriteTimeout time.Duration // HTTP server write timeout
	DB           Database      // relational store settings
	RabbitMQURL  string        // broker for listing events; empty disables publishing
	ListingQueue string        // queue receiving listing events
	// SessionSecret signs the flash cookie; empty means a random key per process.
	SessionSecret string
}

// Database describes how to reach the relational store.  Driver selects
// which of the remaining fields are used: Path for sqlite3, the host/user
// fields for mysql and postgres.
type Database struct {
	Driver      string
	User        string
	Pass        string
	Host        string
	Port        string
	Name        string
	Path        string
	AutoMigrate bool
}

// Load reads configuration values from environment variables and returns a
// Config.  Variables required by the selected database driver are enforced
// by must() and missing values cause the program to exit with a fatal log
// message.
func Load() Config {
	debug := envBool("APP_DEBUG", false)
	errorLog := getenv("ERROR_LOG_PATH", "error.log")
	if debug {
		errorLog = os.Getenv("ERROR_LOG_PATH")
	}
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "5000"),
		Debug:        debug,
		LogLevel:     getenv("LOG_LEVEL", "INFO"),
		ErrorLogPath: errorLog,
		ReadTimeout:  envDur("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: envDur("HTTP_WRITE_TIMEOUT", 15*time.Second),
		DB:           loadDatabase(),
		RabbitMQURL:  rabbitURL(),
		ListingQueue: getenv("LISTINGS_QUEUE", "fyyur.listings"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
	}
}

func loadDatabase() Database {
	db := Database{
		Driver:      getenv("DB_DRIVER", DriverMySQL),
		AutoMigrate: envBool("DB_AUTO_MIGRATE", false),
	}
	switch db.Driver {
	case DriverSQLite:
		db.Path = getenv("DB_PATH", "fyyur.db")
	case DriverMySQL, DriverPostgres:
		db.User = must("DB_USER")
		db.Pass = os.Getenv("DB_PASS") // empty allowed
		db.Host = must("DB_HOST")
		db.Port = getenv("DB_PORT", defaultPort(db.Driver))
		db.Name = must("DB_NAME")
	default:
		log.Fatalf("unsupported DB_DRIVER: %q", db.Driver)
	}
	return db
}

func defaultPort(driver string) string {
	if driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

// rabbitURL mirrors the broker lookup used by the publisher: RABBITMQ_URL
// wins over AMQP_URL.  No default is applied so that publishing stays off
// unless a broker is configured.
func rabbitURL() string {
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		return url
	}
	return os.Getenv("AMQP_URL")
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
