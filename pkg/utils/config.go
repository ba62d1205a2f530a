package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	OTP     OTPConfig
	Session SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StorageConfig struct {
	DataDir string
}

type OTPConfig struct {
	AttemptLimit  int
	BanHours      int
	Length        int
	ExpiryMinutes int
}

type SessionConfig struct {
	ExpiryHours int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "vridhira")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_DIR", "data/")
	viper.SetDefault("OTP_ATTEMPT_LIMIT", 5)
	viper.SetDefault("OTP_BAN_HOURS", 24)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)

	// Missing .env is fine, defaults and environment cover everything
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Storage: StorageConfig{
			DataDir: viper.GetString("DATA_DIR"),
		},
		OTP: OTPConfig{
			AttemptLimit:  viper.GetInt("OTP_ATTEMPT_LIMIT"),
			BanHours:      viper.GetInt("OTP_BAN_HOURS"),
			Length:        viper.GetInt("OTP_LENGTH"),
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
	}

	return config, nil
}
