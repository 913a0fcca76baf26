package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type AppConfig struct {
	Env string `yaml:"env" env:"ENV" env-default:"prod"`

	ApiID    int32  `yaml:"api_id" env:"TELEGRAM_API_ID" env-required:"true"`
	ApiHash  string `yaml:"api_hash" env:"TELEGRAM_API_HASH" env-required:"true"`
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
	BaseDir  string `yaml:"base_dir" env:"BASE_DIR" env-default:"./tdlib"`

	SpreadsheetID string `yaml:"spreadsheet_id" env:"SPREADSHEET_ID" env-required:"true"`
	GoogleKeyFile string `yaml:"google_key_file" env:"GOOGLE_KEY_FILE" env-default:"key_google_drive.json"`
	SheetName     string `yaml:"sheet_name" env:"SHEET_NAME" env-default:"Sheet1"`

	AdminsFile       string `yaml:"admins_file" env:"ADMINS_FILE" env-default:"admins.json"`
	RedisURL         string `yaml:"redis_url" env:"REDIS_URL"`
	BootstrapAdminID int64  `yaml:"bootstrap_admin_id" env:"ADMIN_ID" env-required:"true"`

	PitchDeckURL   string `yaml:"pitch_deck_url" env:"PITCH_DECK_URL" env-default:"https://drive.google.com/file/d/1sHlPIp8_baVQ2KhU5OUaepG7g0bElLvO/view?usp=sharing"`
	PitchDeckURLRu string `yaml:"pitch_deck_url_ru" env:"PITCH_DECK_URL_RU" env-default:"https://drive.google.com/file/d/1TTR_AcJ8Q_nPYf5zO1ZpqVVrDBx0RPn3/view?usp=sharing"`
}

// Load читает настройки из yaml-файла (если задан путь) и переменных окружения
func Load() (*AppConfig, error) {
	var cfg AppConfig

	if path := fetchConfigPath(); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("ошибка загрузки конфига %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфига из окружения: %w", err)
	}
	return &cfg, nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
