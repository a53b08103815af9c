package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	config.SetDefault("app.name", "nyayasathi-be")
	config.SetDefault("api.port", 8080)
	config.SetDefault("log.level", "info")
	config.SetDefault("database.driver", "sqlite")
	config.SetDefault("database.path", "nyayasathi.db")

	if err := config.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	return config
}
