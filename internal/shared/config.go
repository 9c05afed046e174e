package shared

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DataSourceMemory = "memory"
	DataSourceMySQL  = "mysql"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	DataSource     string
	MySQLDSN       string
	FeedURL        string
	FeedKey        string
	FeedRPS        int
	SeedWorkers    int
	BookingDelay   time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
}

// Load reads the environment, after merging an optional .env file (or the
// file named by ENV_FILE). Variables already set win over the file.
func Load() Config {
	envFile := env("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("file", envFile).Msg("could not read env file")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		DataSource:     strings.ToLower(env("DATA_SOURCE", DataSourceMemory)),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/listing?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		FeedURL:        env("FEED_URL", ""),
		FeedKey:        env("FEED_API_KEY", ""),
		FeedRPS:        atoi("FEED_RPS", 5),
		SeedWorkers:    atoi("SEED_WORKERS", 8),
		BookingDelay:   time.Duration(atoi("BOOKING_DELAY_MS", 1500)) * time.Millisecond,
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		CORSOrigins:    splitList(env("CORS_ALLOWED_ORIGINS", "")),
	}
	if c.DataSource != DataSourceMemory && c.DataSource != DataSourceMySQL {
		log.Warn().Str("data_source", c.DataSource).Msg("unknown DATA_SOURCE, using memory")
		c.DataSource = DataSourceMemory
	}
	if c.SeedWorkers <= 0 {
		c.SeedWorkers = 1
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
