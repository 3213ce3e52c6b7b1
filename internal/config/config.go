package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Europe/Kiev"`
	}

	Telegram struct {
		Token       string `env:"TELEGRAM_BOT_TOKEN"`
		PollTimeout int    `env:"TELEGRAM_POLL_TIMEOUT" envDefault:"60"`
	}

	Database struct {
		// Пустой URL включает хранилище в памяти (локальная разработка)
		URL            string `env:"DATABASE_URL"`
		MaxConnections int    `env:"DATABASE_MAX_CONNECTIONS" envDefault:"5"`
	}

	Schedule struct {
		ConfigPath string `env:"SCHEDULE_CONFIG_PATH" envDefault:"configs/schedule.json"`
	}

	HTTP struct {
		Enabled       bool   `env:"HTTP_SERVER_ENABLED" envDefault:"true"`
		Port          string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host          string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
		BasicUsername string `env:"HTTP_BASIC_USERNAME" envDefault:"queue_bot"`
		BasicPassword string `env:"HTTP_BASIC_PASSWORD" envDefault:"queue_bot"`
	}

	RabbitMq struct {
		Enabled   bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri   string `env:"RABBITMQ_URL"`
		QueueName string `env:"RABBITMQ_QUEUE" envDefault:"queue-bot.queue-status"`
	}

	Cache struct {
		Enabled bool `env:"CACHE_ENABLED"`
		Size    int  `env:"CACHE_ROSTER_SIZE" envDefault:"1000"`
	}

	Notifier struct {
		MaxAttempts int `env:"NOTIFIER_MAX_ATTEMPTS" envDefault:"3"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
