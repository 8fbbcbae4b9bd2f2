package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress        string
	PostgresReplicaAddress string
	PostgresPort           string
	PostgresDB             string
	PostgresUsername       string
	PostgresPassword       string

	HTTPPort string
	LogLevel string

	OperatorWorkers int

	// SweepInterval of zero disables the scheduled sweep.
	SweepInterval       time.Duration
	SweepConcurrency    int
	SweepFallbackStatus string

	ReferralPrefix  string
	ChallengePrefix string
	ProjectPrefix   string
	AccountPrefix   string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is fine, the process environment still applies.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		LogLevel:         "info",
		OperatorWorkers:  4,
		SweepInterval:    15 * time.Minute,
		SweepConcurrency: 4,
		ReferralPrefix:   "REFER",
		ChallengePrefix:  "CHALLENGE",
		ProjectPrefix:    "PROJECT",
		AccountPrefix:    "ACCOUNT",
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresReplicaAddress, "POSTGRES_REPLICA_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.HTTPPort, "HTTP_PORT")
	overrideString(&env.LogLevel, "LOG_LEVEL")
	overrideString(&env.SweepFallbackStatus, "SWEEP_FALLBACK_STATUS")
	overrideString(&env.ReferralPrefix, "REFERRAL_PREFIX")
	overrideString(&env.ChallengePrefix, "CHALLENGE_PREFIX")
	overrideString(&env.ProjectPrefix, "PROJECT_PREFIX")
	overrideString(&env.AccountPrefix, "ACCOUNT_PREFIX")

	if err := overridePositiveInt(&env.OperatorWorkers, "OPERATOR_WORKERS"); err != nil {
		return nil, err
	}
	if err := overridePositiveInt(&env.SweepConcurrency, "SWEEP_CONCURRENCY"); err != nil {
		return nil, err
	}

	if v := os.Getenv("SWEEP_INTERVAL"); len(v) != 0 {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SWEEP_INTERVAL: %w", err)
		}
		if interval < 0 {
			return nil, fmt.Errorf("SWEEP_INTERVAL: must not be negative, got %v", interval)
		}
		env.SweepInterval = interval
	}

	return &env, nil
}

// PostgresURL builds the connection string for the primary database.
func (c *Config) PostgresURL() string {
	return c.postgresURL(c.PostgresAddress)
}

// PostgresReplicaURL returns the read replica connection string, or the
// primary's when no replica is configured.
func (c *Config) PostgresReplicaURL() string {
	if len(c.PostgresReplicaAddress) == 0 {
		return c.PostgresURL()
	}
	return c.postgresURL(c.PostgresReplicaAddress)
}

func (c *Config) postgresURL(address string) string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + address + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func overrideString(target *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*target = v
	}
}

func overridePositiveInt(target *int, key string) error {
	v := os.Getenv(key)
	if len(v) == 0 {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if n < 1 {
		return fmt.Errorf("%s: must be at least 1, got %d", key, n)
	}
	*target = n
	return nil
}
