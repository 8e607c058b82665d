// internal/config/config.go
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
	Report ReportConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type AppConfig struct {
	UploadDir  string
	ArchiveDir string
}

type ReportConfig struct {
	BusinessName         string
	AdminFeeRate         float64
	DefaultReturnReserve float64
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 30)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 30)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("APP_UPLOAD_DIR", "./data/uploads")
		viper.SetDefault("APP_ARCHIVE_DIR", "./data/reports")
		viper.SetDefault("REPORT_BUSINESS_NAME", "ZKS Indonesia")
		viper.SetDefault("REPORT_ADMIN_FEE_RATE", 0.2128)
		viper.SetDefault("REPORT_DEFAULT_RETURN_RESERVE", 138600.0)

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure upload and archive directories exist
		ensureDir(viper.GetString("APP_UPLOAD_DIR"))
		ensureDir(viper.GetString("APP_ARCHIVE_DIR"))

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			App: AppConfig{
				UploadDir:  viper.GetString("APP_UPLOAD_DIR"),
				ArchiveDir: viper.GetString("APP_ARCHIVE_DIR"),
			},
			Report: ReportConfig{
				BusinessName:         viper.GetString("REPORT_BUSINESS_NAME"),
				AdminFeeRate:         viper.GetFloat64("REPORT_ADMIN_FEE_RATE"),
				DefaultReturnReserve: viper.GetFloat64("REPORT_DEFAULT_RETURN_RESERVE"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
