package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Outbox OutboxConfig `mapstructure:"outbox"`
	Audit  AuditConfig  `mapstructure:"audit"`
	Admin  AdminConfig  `mapstructure:"admin"`

	// BaseValues overrides the built-in base-value-by-model table.
	BaseValues map[string]int `mapstructure:"base_values"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type OutboxConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
}

type AuditConfig struct {
	Workers      int           `mapstructure:"workers"`
	BatchSize    int           `mapstructure:"batch_size"`
	FlushTimeout time.Duration `mapstructure:"flush_timeout"`
}

// AdminConfig holds the account seeded at startup. Leaving the username
// empty skips the bootstrap.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}

	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			log.Printf("Loaded environment variables from %s", examplePath)
			return
		}
	}
}

// Load reads config.yaml (if present) and environment variables with the
// EQUIPPED_ prefix. A .env file in the working directory or a parent is
// loaded into the environment first.
func Load() (*Config, error) {
	loadEnv()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("/etc/equipped/")

	v.SetEnvPrefix("EQUIPPED")
	v.AutomaticEnv()

	v.SetDefault("server.port", "9000")
	v.SetDefault("db.host", os.Getenv("DB_HOST"))
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", os.Getenv("POSTGRES_USER"))
	v.SetDefault("db.password", os.Getenv("POSTGRES_PASSWORD"))
	v.SetDefault("db.name", os.Getenv("POSTGRES_DB"))
	v.SetDefault("redis.addr", "")
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "tradein_events")
	v.SetDefault("outbox.poll_interval", 2*time.Second)
	v.SetDefault("outbox.batch_size", 20)
	v.SetDefault("outbox.max_attempts", 5)
	v.SetDefault("audit.workers", 2)
	v.SetDefault("audit.batch_size", 5)
	v.SetDefault("audit.flush_timeout", 500*time.Millisecond)
	v.SetDefault("admin.username", os.Getenv("ADMIN_USERNAME"))
	v.SetDefault("admin.password", os.Getenv("ADMIN_PASSWORD"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
