package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

// StoreConfig carries the backing file paths for the three record stores.
// They are the only configuration the core needs; tests point them at
// temporary locations instead.
type StoreConfig struct {
	CatalogFile string
	AccountFile string
	LedgerFile  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-booking")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CATALOG_FILE", "data/movies.txt")
	viper.SetDefault("ACCOUNT_FILE", "data/users.txt")
	viper.SetDefault("LEDGER_FILE", "data/ticket.txt")

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine; defaults and environment still apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			CatalogFile: viper.GetString("CATALOG_FILE"),
			AccountFile: viper.GetString("ACCOUNT_FILE"),
			LedgerFile:  viper.GetString("LEDGER_FILE"),
		},
	}

	return config, nil
}
