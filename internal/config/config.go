package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environments recognised by app.env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port   string       `mapstructure:"port"`
	App    AppConfig    `mapstructure:"app"`
	DB     DBConfig     `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Server ServerConfig `mapstructure:"server"`
	Client ClientConfig `mapstructure:"client"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	ClientOrigin string `mapstructure:"client_origin"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type ClientConfig struct {
	APIURL       string `mapstructure:"api_url"`
	IdentityFile string `mapstructure:"identity_file"`
}

// IsProduction reports whether CORS should be locked to the client origin.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, EnvProduction)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "4000")
	v.SetDefault("app.env", EnvDevelopment)
	v.SetDefault("db.path", "database/survey.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("cors.client_origin", "http://localhost:5173")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("client.api_url", "http://localhost:4000")
	v.SetDefault("client.identity_file", ".survey-identity")
}

// envBindings maps config keys to the plain variable names the deployment uses.
var envBindings = map[string]string{
	"port":               "PORT",
	"app.env":            "APP_ENV",
	"db.path":            "DB_PATH",
	"log.level":          "LOG_LEVEL",
	"log.format":         "LOG_FORMAT",
	"cors.client_origin": "CLIENT_ORIGIN",
	"client.api_url":     "API_URL",
}

// Load reads configs/config.yml (or configFile when set), then .env, then the
// environment. A missing config file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// .env is optional; values already in the environment take precedence
	_ = godotenv.Load()

	v.SetEnvPrefix("SURVEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, "SURVEY_"+strings.ReplaceAll(strings.ToUpper(key), ".", "_"), env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
