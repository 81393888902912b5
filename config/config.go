package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port        string
	MongoString string
	DBName      string
}

// LoadConfig reads configuration from the environment, with a .env file as
// an optional source for local development. ATLASDB_URL left empty switches
// the service to its in-memory store.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DB_NAME", "employeeDB")

	return &AppConfig{
		Port:        viper.GetString("PORT"),
		MongoString: viper.GetString("ATLASDB_URL"),
		DBName:      viper.GetString("DB_NAME"),
	}
}
