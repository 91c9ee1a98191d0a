package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Redis    RedisConfig
	Token    TokenConfig
	Identity IdentityConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// TokenConfig configures local token issuance. Secret is loaded once at
// startup and treated as immutable for the life of the process.
type TokenConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// IdentityConfig points at the external identity provider used for the
// federated signup path. Optional; federated token verification is only
// wired when Issuer is set.
type IdentityConfig struct {
	Issuer   string
	ClientID string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5005")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "taskhive")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("TOKEN_TTL_MINUTES", 360)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      getEnvOrPanic("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		Token: TokenConfig{
			Secret:   getEnvOrPanic("TOKEN_SECRET"),
			TokenTTL: time.Duration(viper.GetInt("TOKEN_TTL_MINUTES")) * time.Minute,
		},
		Identity: IdentityConfig{
			Issuer:   viper.GetString("IDENTITY_ISSUER"),
			ClientID: viper.GetString("IDENTITY_CLIENT_ID"),
		},
	}

	return cfg, nil
}

func getEnvOrPanic(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("environment variable %s is required", key)
	}
	return v
}
