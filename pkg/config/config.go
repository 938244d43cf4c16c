package config

import (
	"strings"
	"time"

	"balance_gateway/pkg/backend"
	"balance_gateway/pkg/repository"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "GATEWAY"

type Config struct {
	Server  Server  `mapstructure:"server"`
	Backend Backend `mapstructure:"backend"`
	Gateway Gateway `mapstructure:"gateway"`
	DB      DB      `mapstructure:"db"`
	Log     Log     `mapstructure:"log"`
}

type Server struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
}

type Backend struct {
	BaseURL string        `mapstructure:"baseUrl"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
	Routes  Routes        `mapstructure:"routes"`
}

type Routes struct {
	UserStock  string `mapstructure:"userStock"`
	Decrement  string `mapstructure:"decrement"`
	Increment  string `mapstructure:"increment"`
	AdminUsers string `mapstructure:"adminUsers"`
}

type Gateway struct {
	APIKey       string   `mapstructure:"apiKey"`
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

type DB struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// Load reads .env, then <dir>/config.yaml, then GATEWAY_* environment overrides.
// A missing .env or config.yaml is not an error.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %s", err)
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("backend.token", "GATEWAY_BACKEND_TOKEN", "BACKEND_TOKEN_KEY")
	_ = v.BindEnv("db.password", "GATEWAY_DB_PASSWORD", "DB_PASS")
	_ = v.BindEnv("server.port", "GATEWAY_SERVER_PORT", "PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	routes := backend.DefaultRoutes()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", "30s")
	v.SetDefault("server.writeTimeout", "30s")
	v.SetDefault("backend.baseUrl", backend.DefaultBaseURL)
	v.SetDefault("backend.token", "")
	v.SetDefault("backend.timeout", backend.DefaultTimeout.String())
	v.SetDefault("backend.routes.userStock", routes.UserStock)
	v.SetDefault("backend.routes.decrement", routes.Decrement)
	v.SetDefault("backend.routes.increment", routes.Increment)
	v.SetDefault("backend.routes.adminUsers", routes.AdminUsers)
	v.SetDefault("gateway.apiKey", "")
	v.SetDefault("gateway.allowOrigins", []string{"*"})
	v.SetDefault("db.host", "")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.dbname", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("log.level", "info")
}

func (c *Config) BackendConfig() backend.Config {
	return backend.Config{
		BaseURL: c.Backend.BaseURL,
		Token:   c.Backend.Token,
		Timeout: c.Backend.Timeout,
		Routes: backend.Routes{
			UserStock:  c.Backend.Routes.UserStock,
			Decrement:  c.Backend.Routes.Decrement,
			Increment:  c.Backend.Routes.Increment,
			AdminUsers: c.Backend.Routes.AdminUsers,
		},
	}
}

func (c *Config) RepositoryConfig() repository.Config {
	return repository.Config{
		Host:     c.DB.Host,
		Port:     c.DB.Port,
		Username: c.DB.Username,
		Password: c.DB.Password,
		DBName:   c.DB.DBName,
		SSLMode:  c.DB.SSLMode,
	}
}
