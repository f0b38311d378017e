package config

import (
	"time"
)

type (
	Config struct {
		App      App      `mapstructure:"app"`
		Postgres Postgres `mapstructure:"postgres"`
	}

	App struct {
		Env             string        `mapstructure:"env"`
		HTTPPort        int           `mapstructure:"http_port"`
		HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `mapstructure:"graceful_timeout"`
		Name            string        `mapstructure:"name"`
		LogLevel        string        `mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `mapstructure:"write"`
		Read  Database `mapstructure:"read"`
	}

	Database struct {
		DbHost            string `mapstructure:"db_host"`
		DbPort            string `mapstructure:"db_port"`
		DbUser            string `mapstructure:"db_user"`
		DbPass            string `mapstructure:"db_pass"`
		DbName            string `mapstructure:"db_name"`
		DbSchema          string `mapstructure:"db_schema"`
		MaxOpenConnection int    `mapstructure:"max_open_connections"`
		MaxIdleConnection int    `mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	}
)
