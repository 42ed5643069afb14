// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"app"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	JWT struct {
		SecretKey     string        `mapstructure:"secret_key"`
		AccessTTL     time.Duration `mapstructure:"access_ttl"`
		SetupTokenTTL time.Duration `mapstructure:"setup_token_ttl"`
	} `mapstructure:"jwt"`
	Dictionary struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"dictionary"`
	Translator struct {
		URL          string        `mapstructure:"url"`
		SourceLang   string        `mapstructure:"source_lang"`
		TargetLang   string        `mapstructure:"target_lang"`
		Timeout      time.Duration `mapstructure:"timeout"`
		BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	} `mapstructure:"translator"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// Defaults for anything the file or environment left unset.
	if Cfg.App.Name == "" {
		Cfg.App.Name = "vocab_forge"
	}
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = ":8080"
	}
	if Cfg.JWT.AccessTTL <= 0 {
		Cfg.JWT.AccessTTL = 24 * time.Hour
	}
	if Cfg.JWT.SetupTokenTTL <= 0 {
		Cfg.JWT.SetupTokenTTL = 15 * time.Minute
	}
	if Cfg.Dictionary.BaseURL == "" {
		Cfg.Dictionary.BaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	}
	if Cfg.Dictionary.Timeout <= 0 {
		Cfg.Dictionary.Timeout = 15 * time.Second
	}
	if Cfg.Translator.URL == "" {
		Cfg.Translator.URL = "https://libretranslate.de/translate"
	}
	if Cfg.Translator.SourceLang == "" {
		Cfg.Translator.SourceLang = "en"
	}
	if Cfg.Translator.TargetLang == "" {
		Cfg.Translator.TargetLang = "vi"
	}
	if Cfg.Translator.Timeout <= 0 {
		Cfg.Translator.Timeout = 20 * time.Second
	}
	if Cfg.Translator.BatchTimeout <= 0 {
		Cfg.Translator.BatchTimeout = 45 * time.Second
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set; tokens will not survive restarts without one.")
	}

	log.Println("Config loaded successfully")
	return nil
}
