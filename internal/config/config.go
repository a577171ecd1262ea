package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"gw-fraud-scoring/internal/risk"
)

type Config struct {
	HTTPPort  string `envconfig:"APP_PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile   string `envconfig:"LOG_FILE" default:"fraud-scoring.log"`
	DB        DBConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Risk      risk.Config
	Explainer ExplainerConfig
	Kafka     KafkaConfig
	MongoDB   MongoDBConfig
	Replay    ReplayConfig
}

type DBConfig struct {
	Host           string `envconfig:"POSTGRES_HOST"     required:"true"`
	Port           string `envconfig:"POSTGRES_PORT"     required:"true"`
	User           string `envconfig:"POSTGRES_USER"     required:"true"`
	Password       string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName         string `envconfig:"POSTGRES_DB"       required:"true"`
	SSLMode        string `envconfig:"POSTGRES_SSLMODE"  default:"disable"`
	MaxConns       int    `envconfig:"POSTGRES_MAX_CONNS" default:"50"`
	MinConns       int    `envconfig:"POSTGRES_MIN_CONNS" default:"5"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"migrations"`
}

type JWTConfig struct {
	Secret     string        `envconfig:"JWT_SECRET" required:"true"`
	Expiration time.Duration `envconfig:"JWT_EXPIRATION" default:"24h"`
}

// AdminConfig учётная запись, создаваемая при старте если её нет
type AdminConfig struct {
	Username string `envconfig:"ADMIN_USERNAME" default:"admin"`
	Password string `envconfig:"ADMIN_PASSWORD" default:""`
	Email    string `envconfig:"ADMIN_EMAIL" default:"admin@fraud.local"`
}

type ExplainerConfig struct {
	URL         string        `envconfig:"EXPLAINER_URL" default:"https://api.openai.com/v1/chat/completions"`
	APIKey      string        `envconfig:"EXPLAINER_API_KEY"`
	Model       string        `envconfig:"EXPLAINER_MODEL" default:"gpt-4o-mini"`
	Timeout     time.Duration `envconfig:"EXPLAINER_TIMEOUT" default:"15s"`
	Temperature float64       `envconfig:"EXPLAINER_TEMPERATURE" default:"0.3"`
	MaxTokens   int           `envconfig:"EXPLAINER_MAX_TOKENS" default:"500"`
}

type KafkaConfig struct {
	Brokers        []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	DecisionsTopic string   `envconfig:"KAFKA_DECISIONS_TOPIC" default:"fraud-decisions"`
	BehaviorTopic  string   `envconfig:"KAFKA_BEHAVIOR_TOPIC" default:"behavior-patterns"`
	GroupID        string   `envconfig:"KAFKA_GROUP_ID" default:"fraud-scoring"`
	Workers        int      `envconfig:"KAFKA_WORKERS" default:"5"`
	QueueSize      int      `envconfig:"KAFKA_QUEUE_SIZE" default:"1000"`
	Enabled        bool     `envconfig:"KAFKA_ENABLED" default:"true"`
}

type MongoDBConfig struct {
	URI        string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database   string        `envconfig:"MONGO_DATABASE" default:"fraud_scoring"`
	Collection string        `envconfig:"MONGO_COLLECTION" default:"analyses"`
	Timeout    time.Duration `envconfig:"MONGO_TIMEOUT" default:"10s"`
	Enabled    bool          `envconfig:"MONGO_ENABLED" default:"true"`
}

type ReplayConfig struct {
	Concurrency int `envconfig:"REPLAY_CONCURRENCY" default:"8"`
}

func NewConfig() (*Config, error) {
	envFile := "config.env"

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("warning: не удалось загрузить файл %s, используются только системные переменные окружения: %v", envFile, err)
	}

	return Load()
}

// Load читает только переменные окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации: %w", err)
	}
	if cfg.Replay.Concurrency < 1 {
		cfg.Replay.Concurrency = 1
	}

	return &cfg, nil
}

func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (d *DBConfig) MigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}
