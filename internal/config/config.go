package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type AttributionConfig struct {
	Env           string `yaml:"env" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	AttributionDB `yaml:"attribution_db"`
	LogConfig     `yaml:"log_config"`
	Utmify        `yaml:"utmify"`
	KafkaService  `yaml:"kafka-service"`
	RedisService  `yaml:"redis-service"`
	ChatBridge    `yaml:"chat-bridge"`
	SelfPing      `yaml:"self_ping"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"3000"`
}

type AttributionDB struct {
	Dsn            string `yaml:"dsn" env:"DATABASE_URL"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type Utmify struct {
	APIURL         string `yaml:"api_url" env-default:"https://api.utmify.com.br"`
	APIKey         string `yaml:"api_key" env:"API_KEY"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"15"`
}

type KafkaService struct {
	Host               string `yaml:"host"`
	Port               string `yaml:"port"`
	NotificationsTopic string `yaml:"notifications_topic" env-default:"chat-messages"`
	EventsTopic        string `yaml:"events_topic" env-default:"attribution-events"`
	GroupID            string `yaml:"group_id" env-default:"attribution-service"`
}

type RedisService struct {
	Addr               string `yaml:"addr"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute" env-default:"20"`
}

type ChatBridge struct {
	// ChatID scopes the pipeline to one chat; messages from any other
	// chat are dropped before parsing.
	ChatID int64 `yaml:"chat_id"`
}

type SelfPing struct {
	Enabled bool `yaml:"enabled" env-default:"false"`
}

func MustLoad() *AttributionConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ATTRIBUTION_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ATTRIBUTION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg AttributionConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
