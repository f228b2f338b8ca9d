package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"climb-feed-service"`
	Env         string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"5000"`
	SeedOnStart bool   `env:"SEED_ON_START" envDefault:"false"`

	DB DBConfig `envPrefix:"DB_"`

	// Optional backends. Empty values disable the feature.
	RedisAddr    string   `env:"REDIS_ADDR"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"climb-feed-topic"`
}

type DBConfig struct {
	Host            string        `env:"HOST" envDefault:"127.0.0.1"`
	Port            string        `env:"PORT" envDefault:"3306"`
	User            string        `env:"USER" envDefault:"root"`
	Pass            string        `env:"PASS"`
	Name            string        `env:"NAME" envDefault:"climb-feed-db"`
	ConnectRetries  int           `env:"CONNECT_RETRIES" envDefault:"10"`
	RetryInterval   time.Duration `env:"RETRY_INTERVAL" envDefault:"3s"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"25"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

// Load reads an optional .env file and then parses the environment.
// A missing .env file is not an error; the returned bool reports whether one was loaded.
func Load() (*Config, bool, error) {
	loaded := godotenv.Load() == nil

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, loaded, fmt.Errorf("parse env: %w", err)
	}
	return cfg, loaded, nil
}

// DSN builds the go-sql-driver/mysql data source name.
func (c DBConfig) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Pass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, c.Port)
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
