package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	AdminKey       string        `mapstructure:"ADMIN_KEY"`
	LookupBaseURL  string        `mapstructure:"LOOKUP_BASE_URL"`
	LookupCountry  string        `mapstructure:"LOOKUP_COUNTRY"`
	LookupTimeout  time.Duration `mapstructure:"LOOKUP_TIMEOUT"`
	LookupRetries  int           `mapstructure:"LOOKUP_RETRIES"`
	CRMURL         string        `mapstructure:"CRM_URL"`
	CalendarURL    string        `mapstructure:"CALENDAR_URL"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOOKUP_BASE_URL", "https://api.zippopotam.us")
	v.SetDefault("LOOKUP_COUNTRY", "IN")
	v.SetDefault("LOOKUP_TIMEOUT", "3s")
	v.SetDefault("LOOKUP_RETRIES", 2)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
