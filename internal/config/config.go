package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Obrafin"`
		Env  string `envconfig:"APP_ENV" default:"development"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Log struct {
		Format string `envconfig:"LOG_FORMAT" default:"text"`
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	RateLimit struct {
		Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
		Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	}

	// Catalog files are imported at startup when set.
	Catalog struct {
		ProductsFile    string `envconfig:"CATALOG_PRODUCTS_FILE"`
		CostCentersFile string `envconfig:"CATALOG_COST_CENTERS_FILE"`
		Collation       string `envconfig:"COLLATION" default:"pt-BR"`
	}

	Export struct {
		Dir string `envconfig:"EXPORT_DIR" default:"./exports"`
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// CollationTag parses the locale used to order sibling tree nodes.
func (c *Config) CollationTag() (language.Tag, error) {
	tag, err := language.Parse(c.Catalog.Collation)
	if err != nil {
		return language.Und, fmt.Errorf("invalid collation %q: %w", c.Catalog.Collation, err)
	}

	return tag, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
