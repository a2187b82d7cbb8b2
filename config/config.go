package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix — префикс переменных окружения сервиса (BREEDS_HTTP_ADDR и т.д.).
const Prefix = "BREEDS"

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"dogbreeds" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type DogAPI struct {
	BaseURL string        `default:"https://dog.ceo/api" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"5s" envconfig:"TIMEOUT"`
}

// Cache — по умолчанию без ограничений: запись живёт, пока жив процесс.
type Cache struct {
	Capacity int           `default:"0" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"0s" envconfig:"TTL"`
	WarmUp   []string      `envconfig:"WARM_UP"`
}

type Kafka struct {
	Enabled        bool          `default:"false" envconfig:"ENABLED"`
	Brokers        []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic          string        `default:"breed-lookups" envconfig:"TOPIC"`
	GroupID        string        `default:"dogbreeds" envconfig:"GROUP_ID"`
	StartOffset    string        `default:"last" envconfig:"START_OFFSET"`
	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP    HTTP
	Metrics Metrics
	Tracing Tracing
	DogAPI  DogAPI
	Cache   Cache
	Kafka   Kafka
	Logger  Logger
}

// Load — подхватывает .env.local (если есть) и читает окружение с префиксом BREEDS.
func Load() (Config, error) {
	if err := godotenv.Load(".env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return LoadWithPrefix(Prefix)
}

// LoadWithPrefix — чтение конфигурации из окружения с произвольным префиксом (тесты).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
