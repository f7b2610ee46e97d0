package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Seed struct {
	CatalogCount int   `yaml:"CATALOG_COUNT" env:"SEED_CATALOG_COUNT" env-default:"45"`
	SendCount    int   `yaml:"SEND_COUNT" env:"SEED_SEND_COUNT" env-default:"8"`
	Random       int64 `yaml:"RANDOM" env:"SEED_RANDOM" env-default:"1"`
}

type Catalog struct {
	PageSize int `yaml:"PAGE_SIZE" env:"CATALOG_PAGE_SIZE" env-default:"8"`
}

type SendFlow struct {
	PriceMin float64 `yaml:"PRICE_MIN" env:"SEND_PRICE_MIN" env-default:"0"`
	PriceMax float64 `yaml:"PRICE_MAX" env:"SEND_PRICE_MAX" env-default:"500"`
}

type Config struct {
	Env      string   `yaml:"env" env:"ENV" env-default:"local"`
	Seed     Seed     `yaml:"seed"`
	Catalog  Catalog  `yaml:"catalog"`
	SendFlow SendFlow `yaml:"send_flow"`
}

// MustLoad reads the config file named by CONFIG_PATH or the -config
// flag; with neither set it falls back to environment defaults.
func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, err
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
