package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DevJWTSecret is only used when JWT_SECRET is not configured.
const DevJWTSecret = "nutrimix-dev-secret-change-me"

// Supported values for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config is the resolved runtime configuration.
type Config struct {
	Port            string
	JWTSecret       string
	TokenTTL        time.Duration
	DBDriver        string
	DatabaseDSN     string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	RedisPassword   string
	ProductCacheTTL time.Duration
	RabbitMQURL     string
	AuthRequired    bool
	CORSOrigins     string
	Seed            bool
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Load reads configuration from an optional .env file, the environment and
// the given command-line arguments, in increasing order of precedence.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: could not load .env: %v", err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	flags := pflag.NewFlagSet("nutrimix", pflag.ContinueOnError)
	flags.Bool("seed", false, "reset the product catalog with the sample products and exit")
	flags.String("port", "", "HTTP listen port (overrides PORT)")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("failed to parse flags: %w", err)
	}
	if err := v.BindPFlag("SEED", flags.Lookup("seed")); err != nil {
		return Config{}, err
	}
	if p, _ := flags.GetString("port"); p != "" {
		v.Set("PORT", p)
	}

	cfg := Config{
		Port:            v.GetString("PORT"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		TokenTTL:        v.GetDuration("TOKEN_TTL"),
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		MongoURI:        v.GetString("MONGODB_URI"),
		MongoDatabase:   v.GetString("MONGODB_DATABASE"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		ProductCacheTTL: v.GetDuration("PRODUCT_CACHE_TTL"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		AuthRequired:    v.GetBool("AUTH_REQUIRED"),
		CORSOrigins:     v.GetString("CORS_ORIGINS"),
		Seed:            v.GetBool("SEED"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	if cfg.JWTSecret == DevJWTSecret {
		log.Println("Warning: JWT_SECRET is not set, using the development secret")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("JWT_SECRET", DevJWTSecret)
	v.SetDefault("TOKEN_TTL", 7*24*time.Hour)
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "nutrimix.db")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "shop")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("PRODUCT_CACHE_TTL", 5*time.Minute)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("SEED", false)
}

func (c Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres, DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}
