package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config captures everything the server needs from the environment. The
// ledger database and Kafka audit topic are optional: without DATABASE_URL
// the server falls back to the in-memory ledger store, and without brokers
// audit events stay in process.
type Config struct {
	Addr          string   `env:"CASEFLOW_ADDR" envDefault:":8080"`
	DatabaseURL   string   `env:"DATABASE_URL"`
	KafkaBrokers  []string `env:"KAFKA_BROKERS"`
	AuditTopic    string   `env:"AUDIT_TOPIC" envDefault:"caseflow.audit"`
	JWTSigningKey string   `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	JWTIssuer     string   `env:"JWT_ISSUER" envDefault:"caseflow"`
	AuthDisabled  bool     `env:"AUTH_DISABLED"`
}

// FromEnv loads configuration from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
