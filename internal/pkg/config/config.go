package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Salon        SalonConfig
	Availability AvailabilityConfig
	Reminder     ReminderConfig
	Notification NotificationConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// Tokens are issued by the identity service; this API only verifies them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type SalonConfig struct {
	TimeZone   string   `envconfig:"SALON_TIMEZONE" default:"Europe/Paris"`
	OpensAt    string   `envconfig:"SALON_OPENS_AT" default:"09:00"`
	ClosesAt   string   `envconfig:"SALON_CLOSES_AT" default:"18:00"`
	ClosedDays []string `envconfig:"SALON_CLOSED_DAYS" default:"sunday"`
}

type AvailabilityConfig struct {
	SameDayOffsets []time.Duration `envconfig:"AVAILABILITY_SAME_DAY_OFFSETS" default:"1h,2h,3h"`
	NextDayStartAt string          `envconfig:"AVAILABILITY_NEXT_DAY_START_AT" default:"10:00"`
	NextDaySlots   int             `envconfig:"AVAILABILITY_NEXT_DAY_SLOTS" default:"4"`
	NextDayStep    time.Duration   `envconfig:"AVAILABILITY_NEXT_DAY_STEP" default:"1h"`
}

type ReminderConfig struct {
	Enabled          bool          `envconfig:"REMINDER_ENABLED" default:"true"`
	DailyAt          string        `envconfig:"REMINDER_DAILY_AT" default:"10:00"`
	HourlyEvery      time.Duration `envconfig:"REMINDER_HOURLY_EVERY" default:"1h"`
	HourlyWindowFrom time.Duration `envconfig:"REMINDER_HOURLY_WINDOW_FROM" default:"2h"`
	HourlyWindowTo   time.Duration `envconfig:"REMINDER_HOURLY_WINDOW_TO" default:"3h"`
	DedupTTL         time.Duration `envconfig:"REMINDER_DEDUP_TTL" default:"48h"`
}

type NotificationConfig struct {
	KafkaBrokers     string        `envconfig:"NOTIFICATION_KAFKA_BROKERS" default:""`
	TopicPrefix      string        `envconfig:"NOTIFICATION_TOPIC_PREFIX" default:"salon"`
	PollEvery        time.Duration `envconfig:"NOTIFICATION_POLL_EVERY" default:"2s"`
	BatchSize        int           `envconfig:"NOTIFICATION_BATCH_SIZE" default:"50"`
	MaxAttempts      int           `envconfig:"NOTIFICATION_MAX_ATTEMPTS" default:"5"`
	RetryBackoff     time.Duration `envconfig:"NOTIFICATION_RETRY_BACKOFF" default:"30s"`
	BreakerFailures  uint32        `envconfig:"NOTIFICATION_BREAKER_FAILURES" default:"5"`
	BreakerOpenDelay time.Duration `envconfig:"NOTIFICATION_BREAKER_OPEN_DELAY" default:"30s"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	AvailabilityPerSecond float64 `envconfig:"RATE_LIMIT_AVAILABILITY_RPS" default:"5"`
	AvailabilityBurst     int     `envconfig:"RATE_LIMIT_AVAILABILITY_BURST" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Salon: SalonConfig{
			TimeZone:   "UTC",
			OpensAt:    "09:00",
			ClosesAt:   "18:00",
			ClosedDays: []string{"sunday"},
		},
		Availability: AvailabilityConfig{
			SameDayOffsets: []time.Duration{time.Hour, 2 * time.Hour, 3 * time.Hour},
			NextDayStartAt: "10:00",
			NextDaySlots:   4,
			NextDayStep:    time.Hour,
		},
		Reminder: ReminderConfig{
			Enabled:          false,
			DailyAt:          "10:00",
			HourlyEvery:      time.Hour,
			HourlyWindowFrom: 2 * time.Hour,
			HourlyWindowTo:   3 * time.Hour,
			DedupTTL:         48 * time.Hour,
		},
		Notification: NotificationConfig{
			PollEvery:        time.Second,
			BatchSize:        10,
			MaxAttempts:      3,
			RetryBackoff:     time.Second,
			BreakerFailures:  5,
			BreakerOpenDelay: time.Second,
		},
		RateLimit: RateLimitConfig{
			AvailabilityPerSecond: 1000,
			AvailabilityBurst:     1000,
		},
	}
}
