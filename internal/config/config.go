package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingRequiredEnv indica que uma ou mais variáveis obrigatórias não foram definidas
var ErrMissingRequiredEnv = errors.New("missing required environment variables")

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	DevRev          DevRev          `mapstructure:",squash"`
	Slack           Slack           `mapstructure:",squash"`
	HTTP            HTTP            `mapstructure:",squash"`
	SummarySchedule SummarySchedule `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type DevRev struct {
	URL    string `mapstructure:"devrev_url"`
	APIKey string `mapstructure:"devrev_api_key"`
}

type Slack struct {
	URL       string `mapstructure:"slack_url"`
	BotToken  string `mapstructure:"slack_bot_token"`
	ChannelID string `mapstructure:"slack_channel_id"`
}

type HTTP struct {
	// Zero significa sem timeout
	Timeout time.Duration `mapstructure:"http_timeout"`
}

type SummarySchedule struct {
	CronSchedule string `mapstructure:"summary_schedule_cron"`
	Enabled      bool   `mapstructure:"summary_schedule_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)

	v.SetDefault("DEVREV_URL", "https://api.devrev.ai")
	v.SetDefault("DEVREV_API_KEY", "")

	v.SetDefault("SLACK_URL", "https://slack.com/api")
	v.SetDefault("SLACK_BOT_TOKEN", "")
	v.SetDefault("SLACK_CHANNEL_ID", "")

	v.SetDefault("HTTP_TIMEOUT", "0s")

	v.SetDefault("SUMMARY_SCHEDULE_CRON", "0 9 * * 1-5") // Dias úteis às 9h
	v.SetDefault("SUMMARY_SCHEDULE_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")
}

// NewConfig carrega a configuração uma única vez a partir do ambiente (e do .env, se existir).
// O valor retornado não deve ser alterado depois da inicialização.
func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("config: error decoding environment: %w", err)
	}

	config.DevRev.URL = strings.TrimRight(config.DevRev.URL, "/")
	config.Slack.URL = strings.TrimRight(config.Slack.URL, "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica apenas a presença dos segredos, sem validar o formato
func (c *Config) Validate() error {
	missing := make([]string, 0, 3)
	if c.DevRev.APIKey == "" {
		missing = append(missing, "DEVREV_API_KEY")
	}
	if c.Slack.BotToken == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}
	if c.Slack.ChannelID == "" {
		missing = append(missing, "SLACK_CHANNEL_ID")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.WithField("path", location).Debug("config: .env file loaded")
			return
		}
	}

	logrus.Debug("config: no .env file found, using process environment only")
}
