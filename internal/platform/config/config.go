package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process level configuration.
type Server struct {
	Addr          string `env:"CLUBLEDGER_ADDR" envDefault:":8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSigningKey string `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	JWTIssuer     string `env:"JWT_ISSUER" envDefault:"clubledger"`
	JWTAudience   string `env:"JWT_AUDIENCE" envDefault:"clubledger-api"`
	// AdminTokenHash is the bcrypt hash of the token that authenticates the
	// privileged caller. Empty disables privileged requests.
	AdminTokenHash string `env:"ADMIN_TOKEN_HASH"`
	// DatabaseURL selects the postgres backend; empty runs in memory.
	DatabaseURL string `env:"DATABASE_URL"`

	Club  ClubConfig
	Chain ChainConfig
	Redis RedisConfig
	Kafka KafkaConfig
	Relay RelayConfig
	Limit RateLimitConfig
}

// ClubConfig carries the club engine parameters.
type ClubConfig struct {
	MaxNameLength       uint32 `env:"CLUB_MAX_NAME_LENGTH" envDefault:"256"`
	MaxMembershipYears  uint8  `env:"CLUB_MAX_MEMBERSHIP_YEARS" envDefault:"100"`
	ClubCreationDeposit uint64 `env:"CLUB_CREATION_DEPOSIT" envDefault:"10"`
	YearLength          uint64 `env:"CLUB_YEAR_LENGTH" envDefault:"5256000"`
	TreasurySeed        string `env:"CLUB_TREASURY_SEED" envDefault:"membersp"`
	ExistentialDeposit  uint64 `env:"CLUB_EXISTENTIAL_DEPOSIT" envDefault:"1"`
	// DevEndowments seeds the in-memory ledger, as seed:amount pairs.
	DevEndowments map[string]uint64 `env:"CLUB_DEV_ENDOWMENTS"`
}

// ChainConfig drives the block clock.
type ChainConfig struct {
	Genesis   time.Time     `env:"CHAIN_GENESIS" envDefault:"2024-01-01T00:00:00Z"`
	BlockTime time.Duration `env:"CHAIN_BLOCK_TIME" envDefault:"6s"`
}

// RedisConfig configures the optional redis stream sink.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	Stream       string        `env:"REDIS_STREAM" envDefault:"club-events"`
	StreamMaxLen int64         `env:"REDIS_STREAM_MAXLEN" envDefault:"100000"`
}

// KafkaConfig configures the optional kafka sink.
type KafkaConfig struct {
	Brokers           []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic             string   `env:"KAFKA_TOPIC" envDefault:"club-events"`
	ClientID          string   `env:"KAFKA_CLIENT_ID" envDefault:"clubledger"`
	Partitions        int32    `env:"KAFKA_PARTITIONS" envDefault:"1"`
	ReplicationFactor int16    `env:"KAFKA_REPLICATION_FACTOR" envDefault:"1"`
}

// RelayConfig tunes the outbox relay worker.
type RelayConfig struct {
	Interval  time.Duration `env:"OUTBOX_RELAY_INTERVAL" envDefault:"1s"`
	BatchSize int           `env:"OUTBOX_RELAY_BATCH" envDefault:"100"`
}

// RateLimitConfig sets per-caller request budgets.
type RateLimitConfig struct {
	Disabled bool          `env:"RATELIMIT_DISABLED" envDefault:"false"`
	Reads    int           `env:"RATELIMIT_READS" envDefault:"300"`
	Writes   int           `env:"RATELIMIT_WRITES" envDefault:"60"`
	Window   time.Duration `env:"RATELIMIT_WINDOW" envDefault:"1m"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	cfg.Kafka.Brokers = dedupeAndTrim(cfg.Kafka.Brokers)
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (s Server) Validate() error {
	if s.Club.YearLength == 0 {
		return fmt.Errorf("CLUB_YEAR_LENGTH must be positive")
	}
	if s.Club.MaxMembershipYears == 0 {
		return fmt.Errorf("CLUB_MAX_MEMBERSHIP_YEARS must be positive")
	}
	if s.Club.TreasurySeed == "" {
		return fmt.Errorf("CLUB_TREASURY_SEED must not be empty")
	}
	if s.Chain.BlockTime <= 0 {
		return fmt.Errorf("CHAIN_BLOCK_TIME must be positive")
	}
	if !s.Limit.Disabled && s.Limit.Window <= 0 {
		return fmt.Errorf("RATELIMIT_WINDOW must be positive")
	}
	if s.Relay.BatchSize <= 0 {
		return fmt.Errorf("OUTBOX_RELAY_BATCH must be positive")
	}
	return nil
}

// KafkaEnabled reports whether a kafka sink is configured.
func (s Server) KafkaEnabled() bool {
	return len(s.Kafka.Brokers) > 0
}

// dedupeAndTrim drops blank and repeated entries, keeping first-seen order.
func dedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
