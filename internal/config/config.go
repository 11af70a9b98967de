package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PORT              string
	MONGO_URI         string
	MONGO_DB          string
	JWT_SECRET        string
	STRIPE_SECRET_KEY string
	KAFKA_ADDRESS     string
	ES_URL            string
	ES_USER           string
	ES_PASSWORD       string
	ES_MENU_INDEX     string
	LOG_LEVEL         string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:              os.Getenv("PORT"),
		MONGO_URI:         os.Getenv("MONGO_URI"),
		MONGO_DB:          os.Getenv("MONGO_DB"),
		JWT_SECRET:        os.Getenv("JWT_SECRET"),
		STRIPE_SECRET_KEY: os.Getenv("STRIPE_SECRET_KEY"),
		KAFKA_ADDRESS:     os.Getenv("KAFKA_ADDRESS"),
		ES_URL:            os.Getenv("ES_URL"),
		ES_USER:           os.Getenv("ES_USER"),
		ES_PASSWORD:       os.Getenv("ES_PASSWORD"),
		ES_MENU_INDEX:     os.Getenv("ES_MENU_INDEX"),
		LOG_LEVEL:         os.Getenv("LOG_LEVEL"),
	}

	if config.PORT == "" {
		config.PORT = "5000"
	}
	if config.MONGO_DB == "" {
		config.MONGO_DB = "bistroDB"
	}
	if config.ES_MENU_INDEX == "" {
		config.ES_MENU_INDEX = "menu"
	}

	return config, nil
}
